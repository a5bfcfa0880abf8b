package domain

import "fmt"

// Reason explains why a move was not applied. Illegal moves are routine player
// behavior, so reasons are advisory values, never hard errors.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonSamePeg
	ReasonEmptySource
	ReasonSizeViolation
	ReasonBadPeg // peg index outside [0,2]; defensive, hosts validate first
	ReasonLocked // interaction gate closed (auto-solve or won game)
)

func (r Reason) String() string {
	switch r {
	case ReasonSamePeg:
		return "SamePeg"
	case ReasonEmptySource:
		return "EmptySource"
	case ReasonSizeViolation:
		return "SizeViolation"
	case ReasonBadPeg:
		return "BadPeg"
	case ReasonLocked:
		return "Locked"
	default:
		return ""
	}
}

// MarshalText renders the reason as its wire name.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a wire name produced by MarshalText.
func (r *Reason) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*r = ReasonNone
	case "SamePeg":
		*r = ReasonSamePeg
	case "EmptySource":
		*r = ReasonEmptySource
	case "SizeViolation":
		*r = ReasonSizeViolation
	case "BadPeg":
		*r = ReasonBadPeg
	case "Locked":
		*r = ReasonLocked
	default:
		return fmt.Errorf("unknown move reason %q", text)
	}
	return nil
}

// MoveResult is the outcome of a single move attempt.
type MoveResult struct {
	Applied   bool   `json:"applied"`
	Reason    Reason `json:"reason,omitempty"`
	MoveCount int    `json:"moveCount"`
	Solved    bool   `json:"solved"`
}
