package area

import "errors"

var (
	ErrAreaNotFound   = errors.New("area not found")
	ErrAreaNameExists = errors.New("area name already exists")
)
