package service

import "errors"

// ErrSessionCompleted is returned when a completed session is modified.
var ErrSessionCompleted = errors.New("session is already completed")
