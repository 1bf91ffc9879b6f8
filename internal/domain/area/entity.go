package area

import "time"

// Area is a clinic location. Its name feeds shift classification: check-ins
// at locations matching "olak kemang" fall into the evening override window.
type Area struct {
	ID        string
	Name      string
	Address   *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
