package catalog

import "errors"

var (
	ErrValidation = errors.New("name and rental price are required")
	ErrNotFound   = errors.New("equipment not found")
)
