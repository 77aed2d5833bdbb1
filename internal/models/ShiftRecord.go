package models

// ShiftRecord is a single logged work shift. The JSON field names are the
// on-disk contract; older files may lack date or break_minutes entirely, in
// which case both unmarshal to their zero values and are defaulted upstream.
type ShiftRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	BreakMinutes int    `json:"break_minutes"`
	Date         string `json:"date"`
	// IP is the owner scope token. Records are only visible to and mutable by
	// requests presenting the same token.
	IP string `json:"ip"`
}

// OwnedBy reports whether the record belongs to the given owner scope.
func (r *ShiftRecord) OwnedBy(id, scope string) bool {
	return r.ID == id && r.IP == scope
}

// ShiftView is a ShiftRecord enriched with its computed worked hours for
// listing and rendering.
type ShiftView struct {
	ShiftRecord
	WorkedHours float64 `json:"worked_hours"`
}
