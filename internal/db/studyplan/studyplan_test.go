package studyplan

import (
	"context"
	c "edumentor/internal/core/domain/common"
	"edumentor/internal/core/domain/studyplan"
	"edumentor/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const OWNER_EMAIL = c.Email("test@test.test")

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxPlanRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.repo = NewPgxPlanRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxPlanRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreateAndListRoundTrip() {
	topics, err := studyplan.Allocate([]string{"algebra", "geometry"}, 2, NOW)
	suite.Require().Nil(err)

	created, err := suite.repo.Create(context.Background(), studyplan.CreateInput{
		OwnerEmail:    OWNER_EMAIL,
		Name:          "Math exam",
		Goal:          "Pass the final",
		DurationWeeks: 2,
		HoursPerDay:   3,
		Topics:        topics,
		CreatedAt:     NOW,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(created.ID > 0)
	assert.Equal(topics, created.Topics)

	plans, err := suite.repo.ListByOwner(context.Background(), OWNER_EMAIL)
	assert.Nil(err)
	assert.Equal(1, len(plans))
	assert.Equal(created, plans[0])
}

func (suite *testSuite) TestListByOwnerFiltersOtherUsers() {
	topics, err := studyplan.Allocate([]string{"history"}, 1, NOW)
	suite.Require().Nil(err)
	_, err = suite.repo.Create(context.Background(), studyplan.CreateInput{
		OwnerEmail:    c.Email("other@test.test"),
		Name:          "History",
		DurationWeeks: 1,
		HoursPerDay:   1,
		Topics:        topics,
		CreatedAt:     NOW,
	})
	suite.Require().Nil(err)

	plans, err := suite.repo.ListByOwner(context.Background(), OWNER_EMAIL)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(0, len(plans))
}
