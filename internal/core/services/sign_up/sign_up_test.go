package signup

import (
	"context"
	c "edumentor/internal/core/domain/common"
	"edumentor/internal/core/domain/logging"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL    = c.Email("student@test.com")
	PASSWORD = user.RawPassword("secret-password")
)

var Now time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	logger         *logging.FakeLogger
	userRepository *user.FakeUserRepository
	passwordHasher *user.FakePasswordHasher
	service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.userRepository = user.NewFakeUserRepository()
	suite.passwordHasher = user.NewFakePasswordHasher()
	suite.service = New(
		suite.logger,
		suite.userRepository,
		suite.passwordHasher,
		func() time.Time { return Now },
	)
}

func TestSignUpService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(EMAIL, result.User.Email)
	assert.Equal(Now, result.User.CreatedAt)

	expectedHash, hashErr := s.passwordHasher.HashPassword(PASSWORD)
	assert.Nil(hashErr)
	assert.Equal(1, len(s.userRepository.Users))
	assert.Equal(expectedHash, s.userRepository.Users[0].PasswordHash)
}

func (s *testSuite) TestDuplicateEmail() {
	_, err := s.service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})
	s.Require().Nil(err)

	_, err = s.service.Run(context.Background(), Input{Email: EMAIL, Password: user.RawPassword("other")})

	assert := s.Require()
	assert.ErrorIs(err, user.ErrEmailAlreadyExists)
	assert.Equal(1, len(s.userRepository.Users))

	originalHash, hashErr := s.passwordHasher.HashPassword(PASSWORD)
	assert.Nil(hashErr)
	assert.Equal(originalHash, s.userRepository.Users[0].PasswordHash)
}

func (s *testSuite) TestStoreUnavailable() {
	s.userRepository.ReturnError = fmt.Errorf("%w: disk full", user.ErrStoreUnavailable)

	_, err := s.service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	s.Require().ErrorIs(err, user.ErrStoreUnavailable)
}

func (s *testSuite) TestRepositoryError() {
	repositoryErr := errors.New("connection refused")
	s.userRepository.ReturnError = repositoryErr

	_, err := s.service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	assert := s.Require()
	assert.ErrorIs(err, repositoryErr)
	assert.Equal(1, len(s.logger.LoggedWithLevel(logging.ERROR)))
}
