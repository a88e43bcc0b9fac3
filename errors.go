package art

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrNoHiddenData is returned when extraction finds no valid
	// payload. Wrong password, corrupted carrier and absence of hidden
	// data are indistinguishable by design.
	ErrNoHiddenData = errors.New("no valid hidden data found")

	// ErrInsufficientCapacity is returned when the redundancy-coded
	// payload does not fit in the carrier.
	ErrInsufficientCapacity = errors.New("insufficient carrier capacity")

	// ErrCollaboratorFailed is returned when the external OutGuess tool
	// exits with a non-zero status.
	ErrCollaboratorFailed = errors.New("external tool failed")

	// ErrUnknownBackend is returned when an unrecognized backend kind
	// is requested.
	ErrUnknownBackend = errors.New("unknown backend")
)

// CapacityError reports a payload that does not fit in the carrier. It
// is returned before any slot is written; a failed embed never produces
// a partially modified output.
type CapacityError struct {
	// NeededBits is the redundancy-coded bitstream length.
	NeededBits int
	// AvailableBits is the carrier's slot count.
	AvailableBits int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity: need %d bits, have %d", e.NeededBits, e.AvailableBits)
}

// Is implements errors.Is for sentinel error matching.
func (e *CapacityError) Is(target error) bool {
	return target == ErrInsufficientCapacity
}

// CollaboratorError reports a failed invocation of the external
// OutGuess tool, with whatever diagnostic text the tool produced.
type CollaboratorError struct {
	Op     string // "embed" or "extract"
	Stderr string
	Err    error
}

func (e *CollaboratorError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("outguess %s: %v: %s", e.Op, e.Err, e.Stderr)
	}
	return fmt.Sprintf("outguess %s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *CollaboratorError) Is(target error) bool {
	return target == ErrCollaboratorFailed
}
