package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee is inactive")
	ErrEmployeeInUse    = errors.New("employee has attendance records and cannot be deleted")
)
