package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shiftlog/internal/controllers"
	"shiftlog/internal/providers"
	"shiftlog/internal/structures"
	"shiftlog/internal/timesheet/interfaces"
)

type App struct {
	WebServer *http.Server
}

func NewApp(trackerController *controllers.TrackerController, healthController *controllers.HealthController, backups interfaces.BackupSchedulerInterface, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) (*App, error) {
	// Inner mux: tracker routes
	trackerMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		trackerMux.Handle(route.Url, route.Handler)
	}

	// Wrap tracker routes with metrics middleware and response compression
	instrumented := providers.MetricsMiddleware(metrics, trackerMux)

	// Outer mux: infrastructure + instrumented tracker
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", gzhttp.GzipHandler(instrumented))

	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	app := &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	backups.Init()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", conf.WebServer.Host, conf.WebServer.Port)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		return nil, fmt.Errorf("server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.WebServer.Shutdown(ctx); err != nil {
		return nil, err
	}
	if err := backups.Snapshot(); err != nil {
		logger.Errorf(providers.TypeApp, "Final backup failed: %s", err)
	}
	backups.Stop()
	logger.Infof(providers.TypeApp, "gracefully stopped")
	return app, nil
}
