package createstudyplan

import (
	"context"
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/core/domain/logging"
	"edumentor/internal/core/domain/studyplan"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	"edumentor/internal/core/services/auth"
	"errors"
	"time"
)

type Input struct {
	User          user.User
	Name          string
	Goal          string
	DurationWeeks int
	HoursPerDay   int
	Topics        []string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Plan studyplan.Plan
}

type service struct {
	log            logging.Logger
	planRepository studyplan.PlanRepository
	now            func() time.Time
}

func New(
	log logging.Logger,
	planRepository studyplan.PlanRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if planRepository == nil {
		panic(e.NewNilArgumentError("planRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, planRepository: planRepository, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	topics, err := studyplan.Allocate(input.Topics, input.DurationWeeks, now)
	if err != nil {
		return result, err
	}

	plan, err := s.planRepository.Create(ctx, studyplan.CreateInput{
		OwnerEmail:    input.User.Email,
		Name:          input.Name,
		Goal:          input.Goal,
		DurationWeeks: input.DurationWeeks,
		HoursPerDay:   input.HoursPerDay,
		Topics:        topics,
		CreatedAt:     now,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create study plan.",
			logging.Entry("owner", input.User.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Study plan has been created.",
		logging.Entry("planID", plan.ID),
		logging.Entry("topicCount", len(plan.Topics)),
	)
	return Result{Plan: plan}, nil
}
