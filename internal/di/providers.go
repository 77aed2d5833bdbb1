package di

import (
	"shiftlog/internal/providers"
	"shiftlog/internal/structures"
	"shiftlog/internal/timesheet"
	"shiftlog/internal/timesheet/interfaces"
)

func provideRecordStore(conf *structures.Config, logger providers.Logger) interfaces.RecordStore {
	return timesheet.NewFileStore(conf.Persistence.FilePath, logger)
}
