package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted = errors.New("service not started")
	ErrIntegrity  = errors.New("dataset failed integrity check")
)
