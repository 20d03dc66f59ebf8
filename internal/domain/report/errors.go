package report

import "errors"

// Report domain errors
var (
	ErrNoEvents = errors.New("no events recorded in the requested range")
)
