//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"shiftlog/internal"
	"shiftlog/internal/controllers"
	"shiftlog/internal/providers"
	"shiftlog/internal/services"
	"shiftlog/internal/structures"
	"shiftlog/internal/timesheet"
	"shiftlog/internal/views"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewSessionProvider,

		provideRecordStore,
		timesheet.NewZstdCompressor,
		timesheet.NewBackupScheduler,
		services.NewShiftService,
		views.NewRenderer,
		controllers.NewTrackerController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
