package createreminder

import (
	"context"
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/core/domain/logging"
	"edumentor/internal/core/domain/reminder"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	"edumentor/internal/core/services/auth"
	"errors"
	"time"
)

type Input struct {
	User    user.User
	RawTime string
	Message string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Entry reminder.Entry
}

type service struct {
	log             logging.Logger
	entryRepository reminder.EntryRepository
	now             func() time.Time
}

func New(
	log logging.Logger,
	entryRepository reminder.EntryRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if entryRepository == nil {
		panic(e.NewNilArgumentError("entryRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, entryRepository: entryRepository, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	at, err := reminder.ParseTimeOfDay(input.RawTime)
	if err != nil {
		s.log.Info(
			ctx,
			"Invalid reminder time.",
			logging.Entry("owner", input.User.Email),
			logging.Entry("rawTime", input.RawTime),
		)
		return result, err
	}

	entry, err := s.entryRepository.Create(ctx, reminder.CreateInput{
		OwnerEmail: input.User.Email,
		At:         at,
		Message:    input.Message,
		CreatedAt:  s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create reminder entry.",
			logging.Entry("owner", input.User.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder entry has been created.",
		logging.Entry("entryID", entry.ID),
		logging.Entry("at", entry.At.String()),
	)
	return Result{Entry: entry}, nil
}
