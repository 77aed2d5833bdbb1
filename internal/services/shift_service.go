package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/atomic"

	"shiftlog/internal/models"
	"shiftlog/internal/providers"
	"shiftlog/internal/timesheet"
	"shiftlog/internal/timesheet/interfaces"
)

// ShiftInput carries raw form fields into the service. Validation and
// defaulting happen here so nothing invalid ever reaches the store.
type ShiftInput struct {
	Name         string
	StartTime    string
	EndTime      string
	Date         string
	BreakMinutes string
}

// DayView is one scope's shifts for a single date, enriched with computed
// worked hours and their total.
type DayView struct {
	Date       string             `json:"date"`
	Records    []models.ShiftView `json:"records"`
	TotalHours float64            `json:"total_hours"`
}

type ShiftServiceInterface interface {
	Add(scope string, in ShiftInput) (models.ShiftRecord, error)
	Get(id, scope string) (models.ShiftRecord, error)
	Update(id, scope string, in ShiftInput) (models.ShiftRecord, error)
	Remove(id, scope string) error
	ListForScope(scope, date string) (DayView, error)
	DatesForScope(scope string) ([]string, error)
	RecordCount() int
	LastSavedAt() time.Time
}

// ShiftService owns the record lifecycle. Every operation is a full
// load-modify-save cycle over the injected store; concurrent writers race
// with last-writer-wins semantics at whole-collection granularity, which is
// the documented contract for this single-operator tool.
type ShiftService struct {
	store       interfaces.RecordStore
	logger      providers.Logger
	cache       providers.CacheProviderInterface
	metrics     providers.MetricsProviderInterface
	recordCount *atomic.Int64
	lastSavedAt *atomic.Time
}

func NewShiftService(store interfaces.RecordStore, logger providers.Logger, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) ShiftServiceInterface {
	return &ShiftService{
		store:       store,
		logger:      logger,
		cache:       cache,
		metrics:     metrics,
		recordCount: atomic.NewInt64(0),
		lastSavedAt: atomic.NewTime(time.Time{}),
	}
}

func (s *ShiftService) Add(scope string, in ShiftInput) (models.ShiftRecord, error) {
	record, err := normalize(in, timesheet.Today())
	if err != nil {
		return models.ShiftRecord{}, err
	}
	record.ID = uuid.NewString()
	record.IP = scope

	records, err := s.store.Load()
	if err != nil {
		return models.ShiftRecord{}, err
	}

	records = append(records, record)
	if err := s.saveAll(records); err != nil {
		return models.ShiftRecord{}, err
	}

	s.logger.Infof(providers.TypeApp, "Added record %s for scope %s on %s", record.ID, scope, record.Date)
	return record, nil
}

func (s *ShiftService) Get(id, scope string) (models.ShiftRecord, error) {
	records, err := s.store.Load()
	if err != nil {
		return models.ShiftRecord{}, err
	}
	for _, r := range records {
		if r.OwnedBy(id, scope) {
			return r, nil
		}
	}
	return models.ShiftRecord{}, models.ErrNotFound
}

func (s *ShiftService) Update(id, scope string, in ShiftInput) (models.ShiftRecord, error) {
	records, err := s.store.Load()
	if err != nil {
		return models.ShiftRecord{}, err
	}

	idx := -1
	for i := range records {
		if records[i].OwnedBy(id, scope) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.ShiftRecord{}, models.ErrNotFound
	}

	// A malformed or absent date on update keeps the record's current date.
	fallbackDate := records[idx].Date
	if fallbackDate == "" {
		fallbackDate = timesheet.Today()
	}

	updated, err := normalize(in, fallbackDate)
	if err != nil {
		return models.ShiftRecord{}, err
	}
	updated.ID = records[idx].ID
	updated.IP = records[idx].IP

	records[idx] = updated
	if err := s.saveAll(records); err != nil {
		return models.ShiftRecord{}, err
	}

	s.logger.Infof(providers.TypeApp, "Updated record %s for scope %s", id, scope)
	return updated, nil
}

func (s *ShiftService) Remove(id, scope string) error {
	records, err := s.store.Load()
	if err != nil {
		return err
	}

	kept := records[:0:0]
	for _, r := range records {
		if !r.OwnedBy(id, scope) {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return models.ErrNotFound
	}

	if err := s.saveAll(kept); err != nil {
		return err
	}

	s.logger.Infof(providers.TypeApp, "Removed record %s for scope %s", id, scope)
	return nil
}

func (s *ShiftService) ListForScope(scope, date string) (DayView, error) {
	today := timesheet.Today()
	if date == "" || !timesheet.ValidDate(date) {
		date = today
	}

	cacheKey := "list:" + scope + ":" + date
	if data, ok := s.cache.Get(cacheKey); ok {
		var view DayView
		if err := json.Unmarshal(data, &view); err == nil {
			return view, nil
		}
	}

	records, err := s.store.Load()
	if err != nil {
		return DayView{}, err
	}

	view := DayView{Date: date, Records: []models.ShiftView{}}
	total := 0.0
	for _, r := range records {
		if r.IP != scope {
			continue
		}
		// Records created before the date field existed show up under today.
		recordDate := r.Date
		if recordDate == "" {
			recordDate = today
		}
		if recordDate != date {
			continue
		}

		hours, err := timesheet.WorkedHours(r.StartTime, r.EndTime, r.BreakMinutes)
		if err != nil {
			return DayView{}, err
		}
		total += hours
		view.Records = append(view.Records, models.ShiftView{ShiftRecord: r, WorkedHours: hours})
	}
	view.TotalHours = timesheet.RoundHours(total)

	if data, err := json.Marshal(view); err == nil {
		s.cache.Set(cacheKey, data)
	}
	return view, nil
}

func (s *ShiftService) DatesForScope(scope string) ([]string, error) {
	cacheKey := "dates:" + scope
	if data, ok := s.cache.Get(cacheKey); ok {
		var dates []string
		if err := json.Unmarshal(data, &dates); err == nil {
			return dates, nil
		}
	}

	records, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	today := timesheet.Today()
	seen := make(map[string]struct{})
	for _, r := range records {
		if r.IP != scope {
			continue
		}
		date := r.Date
		if date == "" {
			date = today
		}
		seen[date] = struct{}{}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	if data, err := json.Marshal(dates); err == nil {
		s.cache.Set(cacheKey, data)
	}
	return dates, nil
}

func (s *ShiftService) RecordCount() int {
	return int(s.recordCount.Load())
}

func (s *ShiftService) LastSavedAt() time.Time {
	return s.lastSavedAt.Load()
}

// saveAll persists the whole collection and invalidates every cached view.
func (s *ShiftService) saveAll(records []models.ShiftRecord) error {
	start := time.Now()
	err := s.store.Save(records)
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting records: %s", err)
		return err
	}

	s.recordCount.Store(int64(len(records)))
	s.lastSavedAt.Store(time.Now())
	s.metrics.SetRecordsTotal(len(records))
	s.cache.Purge()
	return nil
}

// normalize validates raw input and applies the defaulting rules: trimmed
// non-empty name, HH:MM start/end, date falling back to fallbackDate when
// absent or malformed, break minutes coerced to a non-negative integer.
func normalize(in ShiftInput, fallbackDate string) (models.ShiftRecord, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.ShiftRecord{}, models.ErrNameRequired
	}

	if _, err := timesheet.ParseClock(in.StartTime); err != nil {
		return models.ShiftRecord{}, err
	}
	if _, err := timesheet.ParseClock(in.EndTime); err != nil {
		return models.ShiftRecord{}, err
	}

	date := strings.TrimSpace(in.Date)
	if date == "" || !timesheet.ValidDate(date) {
		date = fallbackDate
	}

	breakMinutes := 0
	if raw := strings.TrimSpace(in.BreakMinutes); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			breakMinutes = n
		}
	}

	return models.ShiftRecord{
		Name:         name,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		BreakMinutes: breakMinutes,
		Date:         date,
	}, nil
}
