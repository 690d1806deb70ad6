package main

import (
	"context"
	"edumentor/internal/app"
	"edumentor/internal/app/deps"
	"edumentor/internal/app/services"
	"edumentor/internal/dispatcher"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dl "edumentor/internal/core/domain/logging"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	services := services.InitServices(deps)

	d := dispatcher.New(deps.Logger, services.DispatchDueReminders, deps.Config.DispatchPeriod)
	dispatcherCtx, stopDispatcher := context.WithCancel(context.Background())
	go d.Run(dispatcherCtx)

	httpServer := app.InitHttpServer(deps, services, d)
	go start(httpServer, deps)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	stopDispatcher()
	shutdown(context.Background(), httpServer, deps, shutdownDeps)
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
		dl.Entry("dispatchPeriod", deps.Config.DispatchPeriod),
		dl.Entry("deliveryPolicy", deps.DeliveryPolicy),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		panic(err)
	}

	shutDownDeps()
	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
}
