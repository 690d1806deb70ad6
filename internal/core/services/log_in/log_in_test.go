package login

import (
	"context"
	c "edumentor/internal/core/domain/common"
	"edumentor/internal/core/domain/logging"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = c.Email("student@test.com")
	PASSWORD      = user.RawPassword("secret-password")
	SESSION_TOKEN = "test-session-token"
)

var Now time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	logger            *logging.FakeLogger
	userRepository    *user.FakeUserRepository
	sessionRepository *user.FakeSessionRepository
	passwordHasher    *user.FakePasswordHasher
	service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.userRepository = user.NewFakeUserRepository()
	suite.sessionRepository = user.NewFakeSessionRepository(suite.userRepository)
	suite.passwordHasher = user.NewFakePasswordHasher()
	suite.service = New(
		suite.logger,
		suite.userRepository,
		suite.sessionRepository,
		suite.passwordHasher,
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		func() time.Time { return Now },
	)

	passwordHash, err := suite.passwordHasher.HashPassword(PASSWORD)
	if err != nil {
		panic(err)
	}
	_, err = suite.userRepository.Create(context.Background(), user.CreateUserInput{
		Email:        EMAIL,
		PasswordHash: passwordHash,
		CreatedAt:    Now,
	})
	if err != nil {
		panic(err)
	}
}

func TestLogInService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(user.SessionToken(SESSION_TOKEN), result.Token)

	u, err := s.sessionRepository.GetUserByToken(context.Background(), result.Token)
	assert.Nil(err)
	assert.Equal(EMAIL, u.Email)
}

func (s *testSuite) TestWrongPassword() {
	_, err := s.service.Run(context.Background(), Input{Email: EMAIL, Password: user.RawPassword("wrong")})

	assert := s.Require()
	assert.ErrorIs(err, user.ErrInvalidCredentials)
	assert.Equal(0, len(s.sessionRepository.UserIdByToken))
}

func (s *testSuite) TestUnknownEmail() {
	_, err := s.service.Run(
		context.Background(),
		Input{Email: c.Email("unknown@test.com"), Password: PASSWORD},
	)

	assert := s.Require()
	assert.ErrorIs(err, user.ErrInvalidCredentials)
	assert.Equal(0, len(s.sessionRepository.UserIdByToken))
}
