package listreminders

import (
	"context"
	c "edumentor/internal/core/domain/common"
	"edumentor/internal/core/domain/logging"
	"edumentor/internal/core/domain/reminder"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const USER_EMAIL = c.Email("student@test.com")

var Now time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	logger          *logging.FakeLogger
	entryRepository *reminder.FakeEntryRepository
	service         services.Service[Input, Result]
	input           Input
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.entryRepository = reminder.NewFakeEntryRepository()
	suite.service = New(suite.logger, suite.entryRepository)
	suite.input = Input{User: user.User{ID: user.ID(1), Email: USER_EMAIL}}
}

func TestListRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) createEntry(owner c.Email, at string) {
	timeOfDay, err := reminder.ParseTimeOfDay(at)
	s.Require().Nil(err)
	_, err = s.entryRepository.Create(context.Background(), reminder.CreateInput{
		OwnerEmail: owner,
		At:         timeOfDay,
		CreatedAt:  Now,
	})
	s.Require().Nil(err)
}

func (s *testSuite) TestListReturnsOwnEntriesInInsertionOrder() {
	s.createEntry(USER_EMAIL, "09:00")
	s.createEntry(c.Email("other@test.com"), "10:00")
	s.createEntry(USER_EMAIL, "08:00")

	result, err := s.service.Run(context.Background(), s.input)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(2, len(result.Entries))
	assert.Equal("09:00", result.Entries[0].At.String())
	assert.Equal("08:00", result.Entries[1].At.String())
}

func (s *testSuite) TestListingDoesNotMutateEntries() {
	s.createEntry(USER_EMAIL, "09:00")

	first, err := s.service.Run(context.Background(), s.input)
	s.Require().Nil(err)
	second, err := s.service.Run(context.Background(), s.input)
	s.Require().Nil(err)

	s.Require().Equal(first.Entries, second.Entries)
}

func (s *testSuite) TestEmptyList() {
	result, err := s.service.Run(context.Background(), s.input)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(0, len(result.Entries))
	assert.NotNil(result.Entries)
}

func (s *testSuite) TestRepositoryError() {
	repositoryErr := errors.New("connection refused")
	s.entryRepository.ReturnError = repositoryErr

	_, err := s.service.Run(context.Background(), s.input)

	s.Require().ErrorIs(err, repositoryErr)
}
