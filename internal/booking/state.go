package booking

import (
	"fmt"
	"strings"
)

// State is the query filter narrowing booking lists, either by time window
// (CURRENT/PAST/FUTURE relative to now) or by exact status.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateApproved State = "APPROVED"
	StateRejected State = "REJECTED"
)

// UnsupportedStateError reports an unrecognized state filter token.
// The message names the offending value verbatim.
type UnsupportedStateError struct {
	Value string
}

func (e *UnsupportedStateError) Error() string {
	return fmt.Sprintf("Unknown state: %s", e.Value)
}

// ParseState converts a query token into a State. An empty token defaults
// to ALL; anything not in the closed set is an UnsupportedStateError,
// never a silent fallback.
func ParseState(token string) (State, error) {
	if token == "" {
		return StateAll, nil
	}
	switch State(strings.ToUpper(token)) {
	case StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateApproved:
		return StateApproved, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", &UnsupportedStateError{Value: token}
	}
}
