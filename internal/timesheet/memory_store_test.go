package timesheet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftlog/internal/models"
)

func TestMemoryStore_StartsEmpty(t *testing.T) {
	store := NewMemoryStore()

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMemoryStore_SaveReplacesCollection(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Save([]models.ShiftRecord{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, store.Save([]models.ShiftRecord{{ID: "c"}}))

	records, err := store.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, 2, store.Saves)
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save([]models.ShiftRecord{{ID: "a", Name: "Alice"}}))

	records, err := store.Load()
	require.NoError(t, err)
	records[0].Name = "mutated"

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Alice", again[0].Name)
}

func TestMemoryStore_InjectedErrors(t *testing.T) {
	store := NewMemoryStore()

	store.SaveErr = errors.New("save boom")
	assert.Error(t, store.Save(nil))

	store.LoadErr = errors.New("load boom")
	_, err := store.Load()
	assert.Error(t, err)
}
