package models

import "errors"

var (
	// ErrNotFound covers both a truly absent record and a record owned by a
	// different scope. The two cases are deliberately indistinguishable so
	// that existence never leaks across scopes.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidTimeFormat rejects start/end values that do not parse as HH:MM.
	ErrInvalidTimeFormat = errors.New("start and end time must be in HH:MM format")

	// ErrNameRequired rejects an empty display name.
	ErrNameRequired = errors.New("name is required")
)
