package repository

import "errors"

// ErrNotFound is returned when a journey, stage or step id does not exist.
// Callers match it with errors.Is; implementations wrap it with context.
var ErrNotFound = errors.New("not found")
