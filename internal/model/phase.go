package model

import "fmt"

// Phase is the electrical supply configuration, kept as the numeric phase
// count so it round-trips through JSON, CSV and saved history untouched.
type Phase int

const (
	SinglePhase Phase = 1
	ThreePhase  Phase = 3
)

// ParsePhase converts a numeric phase count into a Phase.
func ParsePhase(n int) (Phase, error) {
	switch Phase(n) {
	case SinglePhase, ThreePhase:
		return Phase(n), nil
	default:
		return 0, fmt.Errorf("invalid phase %d, expected 1 or 3", n)
	}
}

// Valid reports whether p is one of the two supported configurations.
func (p Phase) Valid() bool {
	return p == SinglePhase || p == ThreePhase
}

// String returns a short label for logs and metrics.
func (p Phase) String() string {
	switch p {
	case SinglePhase:
		return "single"
	case ThreePhase:
		return "three"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}
