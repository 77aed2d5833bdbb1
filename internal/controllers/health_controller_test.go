package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthTestService struct {
	mockShiftService
	records int
	savedAt time.Time
}

func (m *healthTestService) RecordCount() int       { return m.records }
func (m *healthTestService) LastSavedAt() time.Time { return m.savedAt }

func TestHealth_ReportsStatusAndRecordCount(t *testing.T) {
	saved := time.Now().Add(-time.Minute)
	hc := NewHealthController(&healthTestService{records: 7, savedAt: saved})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(7), resp["records"])
	assert.Equal(t, saved.Format(time.RFC3339), resp["last_saved_at"])
	assert.Contains(t, resp, "uptime")
}

func TestHealth_OmitsLastSavedBeforeFirstPersist(t *testing.T) {
	hc := NewHealthController(&healthTestService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "last_saved_at")
}

func TestHealth_RejectsNonGet(t *testing.T) {
	hc := NewHealthController(&healthTestService{})

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h0m5s", formatDuration(5*time.Second))
	assert.Equal(t, "1h1m1s", formatDuration(time.Hour+time.Minute+time.Second))
	assert.Equal(t, "25h0m0s", formatDuration(25*time.Hour))
}
