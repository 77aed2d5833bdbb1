package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"shiftlog/internal/models"
	"shiftlog/internal/providers"
	"shiftlog/internal/services"
	"shiftlog/internal/structures"
	"shiftlog/internal/timesheet"
	"shiftlog/internal/views"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type TrackerController struct {
	logger     providers.Logger
	service    services.ShiftServiceInterface
	store      sessions.Store
	renderer   *views.Renderer
	trustProxy bool
}

func NewTrackerController(logger providers.Logger, service services.ShiftServiceInterface, store *sessions.CookieStore, renderer *views.Renderer, conf *structures.Config) *TrackerController {
	return &TrackerController{
		logger:     logger,
		service:    service,
		store:      store,
		renderer:   renderer,
		trustProxy: conf.WebServer.TrustProxy,
	}
}

func formInput(r *http.Request) services.ShiftInput {
	return services.ShiftInput{
		Name:         r.FormValue("name"),
		StartTime:    r.FormValue("start_time"),
		EndTime:      r.FormValue("end_time"),
		Date:         r.FormValue("date"),
		BreakMinutes: r.FormValue("break_minutes"),
	}
}

// Index renders one day's entries for the requesting owner. A request
// without a date parameter redirects to the canonical URL for today.
func (tc *TrackerController) Index(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("date") {
		http.Redirect(w, r, "/?date="+timesheet.Today(), http.StatusFound)
		return
	}

	scope := ownerScope(r, tc.trustProxy)
	view, err := tc.service.ListForScope(scope, r.URL.Query().Get("date"))
	if err != nil {
		tc.logger.Errorf(providers.TypeGet, "Error listing records for scope %s: %s", scope, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	dates, err := tc.service.DatesForScope(scope)
	if err != nil {
		tc.logger.Errorf(providers.TypeGet, "Error listing dates for scope %s: %s", scope, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// view.Date is always a valid calendar date after ListForScope.
	selected, _ := time.Parse(timesheet.DateLayout, view.Date)

	data := views.IndexData{
		Date:       view.Date,
		PrevDate:   selected.AddDate(0, 0, -1).Format(timesheet.DateLayout),
		NextDate:   selected.AddDate(0, 0, 1).Format(timesheet.DateLayout),
		Dates:      dates,
		Records:    view.Records,
		TotalHours: view.TotalHours,
		Flashes:    popFlashes(tc.store, w, r),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tc.renderer.Index(w, data); err != nil {
		tc.logger.Errorf(providers.TypeGet, "Error rendering index: %s", err)
	}
}

// Add creates a record from the posted form and redirects back to the
// day the record landed on.
func (tc *TrackerController) Add(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	scope := ownerScope(r, tc.trustProxy)

	record, err := tc.service.Add(scope, formInput(r))
	if err != nil {
		tc.handleInputError(w, r, err, "/")
		return
	}

	addFlash(tc.store, w, r, "success", "Added record for "+record.Name+".")
	http.Redirect(w, r, "/?date="+record.Date, http.StatusFound)
}

// EditForm renders the update form for an owned record.
func (tc *TrackerController) EditForm(w http.ResponseWriter, r *http.Request) {
	scope := ownerScope(r, tc.trustProxy)
	id := r.PathValue("id")

	record, err := tc.service.Get(id, scope)
	if errors.Is(err, models.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		tc.logger.Errorf(providers.TypeGet, "Error loading record %s: %s", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	returnDate := record.Date
	if returnDate == "" {
		returnDate = timesheet.Today()
	}

	data := views.EditData{
		Record:     record,
		ReturnDate: returnDate,
		Flashes:    popFlashes(tc.store, w, r),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tc.renderer.Edit(w, data); err != nil {
		tc.logger.Errorf(providers.TypeGet, "Error rendering edit form: %s", err)
	}
}

// Edit applies the posted form to an owned record. Validation failures
// bounce back to the edit form; unknown records are a 404.
func (tc *TrackerController) Edit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	scope := ownerScope(r, tc.trustProxy)
	id := r.PathValue("id")

	record, err := tc.service.Update(id, scope, formInput(r))
	if errors.Is(err, models.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		tc.handleInputError(w, r, err, "/edit/"+id)
		return
	}

	addFlash(tc.store, w, r, "success", "Record updated.")
	http.Redirect(w, r, "/?date="+record.Date, http.StatusFound)
}

// Delete removes an owned record and returns to the day it was viewed
// from, carried in the return_date form field.
func (tc *TrackerController) Delete(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	scope := ownerScope(r, tc.trustProxy)
	id := r.PathValue("id")

	err := tc.service.Remove(id, scope)
	if errors.Is(err, models.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		tc.logger.Errorf(providers.TypePost, "Error removing record %s: %s", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	addFlash(tc.store, w, r, "info", "Record deleted.")
	target := "/"
	if returnDate := r.FormValue("return_date"); timesheet.ValidDate(returnDate) {
		target = "/?date=" + returnDate
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// handleInputError turns validation failures into flash messages and
// anything else into a 500.
func (tc *TrackerController) handleInputError(w http.ResponseWriter, r *http.Request, err error, redirectTo string) {
	switch {
	case errors.Is(err, models.ErrNameRequired):
		addFlash(tc.store, w, r, "danger", "Name is required.")
		http.Redirect(w, r, redirectTo, http.StatusFound)
	case errors.Is(err, models.ErrInvalidTimeFormat):
		addFlash(tc.store, w, r, "danger", "Start and End time must be in HH:MM format.")
		http.Redirect(w, r, redirectTo, http.StatusFound)
	default:
		tc.logger.Errorf(providers.TypePost, "Error handling form submission: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
