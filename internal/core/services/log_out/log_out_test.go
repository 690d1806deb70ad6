package logout

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

const SESSION_TOKEN = user.SessionToken("test-session-token")

type testSuite struct {
	suite.Suite
	logger            *logging.FakeLogger
	sessionRepository *user.FakeSessionRepository
	service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	userRepository := user.NewFakeUserRepository()
	suite.sessionRepository = user.NewFakeSessionRepository(userRepository)
	suite.service = New(suite.logger, suite.sessionRepository)

	u, err := userRepository.Create(context.Background(), user.CreateUserInput{
		Email:     c.Email("student@test.com"),
		CreatedAt: time.Now().UTC(),
	})
	suite.Require().Nil(err)
	err = suite.sessionRepository.Create(context.Background(), user.CreateSessionInput{
		Token:  SESSION_TOKEN,
		UserID: u.ID,
	})
	suite.Require().Nil(err)
}

func TestLogOutService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	_, err := s.service.Run(context.Background(), Input{Token: SESSION_TOKEN})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(0, len(s.sessionRepository.UserIdByToken))
}

func (s *testSuite) TestUnknownToken() {
	_, err := s.service.Run(context.Background(), Input{Token: user.SessionToken("unknown")})

	assert := s.Require()
	assert.ErrorIs(err, user.ErrSessionDoesNotExist)
	assert.Equal(1, len(s.sessionRepository.UserIdByToken))
}
