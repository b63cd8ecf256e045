package session

import "fmt"

// NoSessionError is the precondition failure returned when a command
// requires an open browser and none exists. The message names the
// attempted operation so callers can tell which command was rejected.
type NoSessionError struct {
	Op string
}

func (e *NoSessionError) Error() string {
	return fmt.Sprintf("Tried to %s, no open browser", e.Op)
}
