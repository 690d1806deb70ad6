package getuserbysessiontoken

import (
	"context"
	c "edumentor/internal/core/domain/common"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const SESSION_TOKEN = user.SessionToken("test-session-token")

type testSuite struct {
	suite.Suite
	sessionRepository *user.FakeSessionRepository
	service           services.Service[Input, Result]
	user              user.User
}

func (suite *testSuite) SetupTest() {
	userRepository := user.NewFakeUserRepository()
	suite.sessionRepository = user.NewFakeSessionRepository(userRepository)
	suite.service = New(suite.sessionRepository)

	u, err := userRepository.Create(context.Background(), user.CreateUserInput{
		Email:     c.Email("student@test.com"),
		CreatedAt: time.Now().UTC(),
	})
	suite.Require().Nil(err)
	suite.user = u
	err = suite.sessionRepository.Create(context.Background(), user.CreateSessionInput{
		Token:  SESSION_TOKEN,
		UserID: u.ID,
	})
	suite.Require().Nil(err)
}

func TestGetUserBySessionTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.service.Run(context.Background(), Input{Token: SESSION_TOKEN})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(s.user, result.User)
}

func (s *testSuite) TestUnknownToken() {
	_, err := s.service.Run(context.Background(), Input{Token: user.SessionToken("unknown")})

	s.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}
