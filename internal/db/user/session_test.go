package user

import (
	"context"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/db"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const SESSION_TOKEN = user.SessionToken("test-session-token")

type sessionTestSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	users    *PgxUserRepository
	sessions *PgxSessionRepository
}

func (suite *sessionTestSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.users = NewPgxUserRepository(suite.pool)
	suite.sessions = NewPgxSessionRepository(suite.pool)
}

func (suite *sessionTestSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *sessionTestSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxSessionRepository(t *testing.T) {
	suite.Run(t, new(sessionTestSuite))
}

func (suite *sessionTestSuite) createSession() user.User {
	u, err := suite.users.Create(context.Background(), user.CreateUserInput{
		Email:        EMAIL,
		PasswordHash: PASSWORD_HASH,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	err = suite.sessions.Create(context.Background(), user.CreateSessionInput{
		Token:     SESSION_TOKEN,
		UserID:    u.ID,
		CreatedAt: NOW,
	})
	suite.Require().Nil(err)
	return u
}

func (suite *sessionTestSuite) TestGetUserByToken() {
	created := suite.createSession()

	u, err := suite.sessions.GetUserByToken(context.Background(), SESSION_TOKEN)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)
	assert.Equal(EMAIL, u.Email)
}

func (suite *sessionTestSuite) TestGetUserByUnknownToken() {
	suite.createSession()

	_, err := suite.sessions.GetUserByToken(context.Background(), user.SessionToken("unknown"))

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *sessionTestSuite) TestDelete() {
	created := suite.createSession()

	userID, err := suite.sessions.Delete(context.Background(), SESSION_TOKEN)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, userID)

	_, err = suite.sessions.GetUserByToken(context.Background(), SESSION_TOKEN)
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *sessionTestSuite) TestDeleteUnknownToken() {
	_, err := suite.sessions.Delete(context.Background(), SESSION_TOKEN)

	suite.Require().ErrorIs(err, user.ErrSessionDoesNotExist)
}
