package discipline

import "strings"

// RoleDoctor is the role that receives the later on-time base in every
// shift window. Comparison is case-insensitive.
const RoleDoctor = "dokter"

// ShiftWindow is one band of permissible check-in minutes mapped to the
// on-time ("base") minute per role. LocationPattern, when non-empty, is a
// case-insensitive substring match against the area name and restricts the
// window to matching locations.
type ShiftWindow struct {
	Name            string
	LocationPattern string
	MinCheckIn      int
	MaxCheckIn      int
	DoctorBase      int
	DefaultBase     int
}

// Matches reports whether a check-in minute at the given location falls
// inside the window.
func (w ShiftWindow) Matches(checkInMinutes int, locationName string) bool {
	if w.LocationPattern != "" &&
		!strings.Contains(strings.ToLower(locationName), w.LocationPattern) {
		return false
	}
	return checkInMinutes >= w.MinCheckIn && checkInMinutes <= w.MaxCheckIn
}

// Base returns the on-time minute for the given role.
func (w ShiftWindow) Base(role string) int {
	if strings.EqualFold(strings.TrimSpace(role), RoleDoctor) {
		return w.DoctorBase
	}
	return w.DefaultBase
}

// DefaultShiftTable is the closed set of daily shift windows, evaluated in
// priority order with first match winning. The Olak Kemang afternoon window
// overrides the general bands for that location; extending coverage means
// adding a row here, not changing the classifier.
var DefaultShiftTable = []ShiftWindow{
	{
		Name:            "SORE_OLAK_KEMANG",
		LocationPattern: "olak kemang",
		MinCheckIn:      15 * 60,    // 15:00
		MaxCheckIn:      17 * 60,    // 17:00
		DoctorBase:      15*60 + 30, // 15:30
		DefaultBase:     15*60 + 15, // 15:15
	},
	{
		Name:        "PAGI",
		MinCheckIn:  6 * 60,    // 06:00
		MaxCheckIn:  9 * 60,    // 09:00
		DoctorBase:  7*60 + 30, // 07:30
		DefaultBase: 7 * 60,    // 07:00
	},
	{
		Name:        "SIANG",
		MinCheckIn:  12 * 60,    // 12:00
		MaxCheckIn:  15 * 60,    // 15:00
		DoctorBase:  13*60 + 30, // 13:30
		DefaultBase: 13 * 60,    // 13:00
	},
}

// ClassifyShift maps a check-in minute to its shift window and the on-time
// base minute for the employee's role. ok is false when the check-in falls
// outside every recognized window, in which case the caller must treat the
// day as unscorable.
func ClassifyShift(checkInMinutes int, role, locationName string) (baseMinutes int, shiftName string, ok bool) {
	for _, w := range DefaultShiftTable {
		if w.Matches(checkInMinutes, locationName) {
			return w.Base(role), w.Name, true
		}
	}
	return 0, "", false
}
