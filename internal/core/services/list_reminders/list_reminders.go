package listreminders

import (
	"context"
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/core/domain/logging"
	"edumentor/internal/core/domain/reminder"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	"edumentor/internal/core/services/auth"
)

type Input struct {
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Entries []reminder.Entry
}

type service struct {
	log             logging.Logger
	entryRepository reminder.EntryRepository
}

func New(
	log logging.Logger,
	entryRepository reminder.EntryRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if entryRepository == nil {
		panic(e.NewNilArgumentError("entryRepository"))
	}
	return &service{log: log, entryRepository: entryRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	entries, err := s.entryRepository.ListByOwner(ctx, input.User.Email)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not list reminder entries.",
			logging.Entry("owner", input.User.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Entries: entries}, nil
}
