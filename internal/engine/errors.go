package engine

import "errors"

// Validation failures are rejected synchronously and surfaced to the
// caller; no state is mutated when any of these is returned.
var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrDeliverableNotFound = errors.New("deliverable not found")
	ErrExtraCostNotFound   = errors.New("extra cost not found")
	ErrNoActiveDeliverable = errors.New("select an active deliverable before starting a complex project")
	ErrNotComplex          = errors.New("operation applies only to complex projects")
	ErrTimerRunning        = errors.New("pause the timer first")
	ErrProjectCompleted    = errors.New("project is concluded")
)
