package sentinel

import "errors"

// Sentinel dependency errors. Stores and clients return these (optionally wrapped)
// so services can translate them into domain errors exactly once.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrContention  = errors.New("write contention")
	ErrBadData     = errors.New("bad data")
)
