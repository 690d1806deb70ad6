package services

import (
	"edumentor/internal/app/deps"
	drl "edumentor/internal/core/domain/rate_limiter"
	"edumentor/internal/core/services"
	"edumentor/internal/core/services/auth"
	createreminder "edumentor/internal/core/services/create_reminder"
	createstudyplan "edumentor/internal/core/services/create_study_plan"
	dispatchduereminders "edumentor/internal/core/services/dispatch_due_reminders"
	explaintopic "edumentor/internal/core/services/explain_topic"
	getuserbysessiontoken "edumentor/internal/core/services/get_user_by_session_token"
	listreminders "edumentor/internal/core/services/list_reminders"
	liststudyplans "edumentor/internal/core/services/list_study_plans"
	login "edumentor/internal/core/services/log_in"
	logout "edumentor/internal/core/services/log_out"
	ratelimiting "edumentor/internal/core/services/rate_limiting"
	signup "edumentor/internal/core/services/sign_up"
)

type Services struct {
	SignUp                services.Service[signup.Input, signup.Result]
	LogIn                 services.Service[login.Input, login.Result]
	LogOut                services.Service[logout.Input, logout.Result]
	GetUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]

	CreateReminder       services.Service[createreminder.Input, createreminder.Result]
	ListReminders        services.Service[listreminders.Input, listreminders.Result]
	DispatchDueReminders services.Service[dispatchduereminders.Input, dispatchduereminders.Result]

	CreateStudyPlan services.Service[createstudyplan.Input, createstudyplan.Result]
	ListStudyPlans  services.Service[liststudyplans.Input, liststudyplans.Result]

	ExplainTopic services.Service[explaintopic.Input, explaintopic.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		signup.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
			deps.Now,
		),
	)
	s.LogIn = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		login.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(deps.SessionRepository)

	s.CreateReminder = auth.WithAuthentication(
		deps.SessionRepository,
		createreminder.New(
			deps.Logger,
			deps.EntryRepository,
			deps.Now,
		),
	)
	s.ListReminders = auth.WithAuthentication(
		deps.SessionRepository,
		listreminders.New(
			deps.Logger,
			deps.EntryRepository,
		),
	)
	s.DispatchDueReminders = dispatchduereminders.New(
		deps.Logger,
		deps.EntryRepository,
		deps.NotificationGateway,
		deps.AttemptPublishers,
		deps.DeliveryPolicy,
		deps.Config.DeliveryTimeout,
		deps.Now,
	)

	s.CreateStudyPlan = auth.WithAuthentication(
		deps.SessionRepository,
		createstudyplan.New(
			deps.Logger,
			deps.PlanRepository,
			deps.Now,
		),
	)
	s.ListStudyPlans = auth.WithAuthentication(
		deps.SessionRepository,
		liststudyplans.New(
			deps.Logger,
			deps.PlanRepository,
		),
	)

	s.ExplainTopic = auth.WithAuthentication(
		deps.SessionRepository,
		ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Minute, Value: 5},
			explaintopic.New(
				deps.Logger,
				deps.TextGenerator,
			),
		),
	)

	return s
}
