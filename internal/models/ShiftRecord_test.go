package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftRecord_JSONRoundtrip(t *testing.T) {
	original := ShiftRecord{
		ID:           "a1b2",
		Name:         "Alice",
		StartTime:    "09:00",
		EndTime:      "17:30",
		BreakMinutes: 30,
		Date:         "2024-01-10",
		IP:           "203.0.113.7",
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored ShiftRecord
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestShiftRecord_LegacyFieldsAbsent(t *testing.T) {
	// Records written before the date and break_minutes fields existed.
	raw := `{"id":"x","name":"Bob","start_time":"08:00","end_time":"16:00","ip":"10.0.0.1"}`

	var r ShiftRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	assert.Empty(t, r.Date)
	assert.Zero(t, r.BreakMinutes)
	assert.Equal(t, "Bob", r.Name)
}

func TestShiftRecord_OwnedBy(t *testing.T) {
	r := ShiftRecord{ID: "rec1", IP: "ip1"}

	assert.True(t, r.OwnedBy("rec1", "ip1"))
	assert.False(t, r.OwnedBy("rec1", "ip2"))
	assert.False(t, r.OwnedBy("rec2", "ip1"))
}

func TestShiftView_MarshalsWorkedHours(t *testing.T) {
	v := ShiftView{
		ShiftRecord: ShiftRecord{ID: "rec1", Name: "Alice"},
		WorkedHours: 8.0,
	}

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"worked_hours":8`)
	assert.Contains(t, string(data), `"name":"Alice"`)
}
