package app

import (
	"edumentor/internal/app/deps"
	"edumentor/internal/app/services"
	"edumentor/internal/dispatcher"
	explaintopic "edumentor/internal/http/handlers/assistant/explain_topic"
	"edumentor/internal/http/handlers/auth"
	login "edumentor/internal/http/handlers/auth/log_in"
	logout "edumentor/internal/http/handlers/auth/log_out"
	signup "edumentor/internal/http/handlers/auth/sign_up"
	"edumentor/internal/http/handlers/health"
	createstudyplan "edumentor/internal/http/handlers/plans/create_study_plan"
	liststudyplans "edumentor/internal/http/handlers/plans/list_study_plans"
	attemptevents "edumentor/internal/http/handlers/reminders/attempt_events"
	createreminder "edumentor/internal/http/handlers/reminders/create_reminder"
	listreminders "edumentor/internal/http/handlers/reminders/list_reminders"
	me "edumentor/internal/http/handlers/user/me"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services, d *dispatcher.Dispatcher) *http.Server {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signup.New(s.SignUp))
	authRouter.Method(http.MethodPost, "/login", login.New(s.LogIn))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))

	profileRouter := chi.NewRouter()
	profileRouter.Use(auth.SetAuthTokenToContext)
	profileRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))

	reminderRouter := chi.NewRouter()
	reminderRouter.Use(auth.SetAuthTokenToContext)
	reminderRouter.Method(http.MethodPost, "/", createreminder.New(s.CreateReminder))
	reminderRouter.Method(http.MethodGet, "/", listreminders.New(s.ListReminders))
	reminderRouter.Method(
		http.MethodGet,
		"/events",
		attemptevents.New(deps.Logger, deps.SseServer, deps.SessionRepository),
	)

	planRouter := chi.NewRouter()
	planRouter.Use(auth.SetAuthTokenToContext)
	planRouter.Method(http.MethodPost, "/", createstudyplan.New(s.CreateStudyPlan))
	planRouter.Method(http.MethodGet, "/", liststudyplans.New(s.ListStudyPlans))

	assistantRouter := chi.NewRouter()
	assistantRouter.Use(auth.SetAuthTokenToContext)
	assistantRouter.Method(http.MethodPost, "/explain", explaintopic.New(s.ExplainTopic))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)
	router.Mount("/reminders", reminderRouter)
	router.Mount("/plans", planRouter)
	router.Mount("/assistant", assistantRouter)
	router.Method(http.MethodGet, "/health", health.New(d, deps.Config.DispatchPeriod, deps.Now))

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
