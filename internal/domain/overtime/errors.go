package overtime

import "errors"

var (
	ErrOvertimeNotFound = errors.New("overtime request not found")
	ErrAlreadyProcessed = errors.New("overtime request already processed")
	ErrNotRequestOwner  = errors.New("only the requesting employee can cancel")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)
