package service

import "errors"

// ErrInvalidInput is returned for blank required names and unrecognized
// status values. Access layers translate it into a bad-request outcome.
var ErrInvalidInput = errors.New("invalid input")
