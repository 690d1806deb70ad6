package liststudyplans

import (
	"context"
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/core/domain/logging"
	"edumentor/internal/core/domain/studyplan"
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
	Plans []studyplan.Plan
}

type service struct {
	log            logging.Logger
	planRepository studyplan.PlanRepository
}

func New(
	log logging.Logger,
	planRepository studyplan.PlanRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if planRepository == nil {
		panic(e.NewNilArgumentError("planRepository"))
	}
	return &service{log: log, planRepository: planRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	plans, err := s.planRepository.ListByOwner(ctx, input.User.Email)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not list study plans.",
			logging.Entry("owner", input.User.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Plans: plans}, nil
}
