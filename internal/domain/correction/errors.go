package correction

import "errors"

var (
	ErrCorrectionNotFound    = errors.New("correction request not found")
	ErrAlreadyProcessed      = errors.New("correction request already processed")
	ErrNotRequestOwner       = errors.New("only the requesting employee can cancel")
	ErrMissingRequestedTime  = errors.New("correction request has no requested time")
	ErrMissingCheckInTime    = errors.New("forgot-to-clock request needs a check-in time")
	ErrInvalidAction         = errors.New("invalid review action")
	ErrSubtypeWithoutKoreksi = errors.New("subtype only applies to time corrections")
)
