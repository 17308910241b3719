package walk

import "fmt"

// ExhaustionPolicy decides what a Walker does once backtracking has
// emptied the path, i.e. the start vertex itself is a dead end.
type ExhaustionPolicy int

const (
	// Halt stops the walk: Step returns ErrPathExhausted now and on every
	// later call until Reset. The walker state stays readable.
	Halt ExhaustionPolicy = iota
	// ClearExclusions forgets every abandoned vertex and resumes from the
	// current (start) vertex.
	ClearExclusions
	// Restart forgets every abandoned vertex and resumes from a vertex
	// drawn uniformly from the whole grid.
	Restart
)

var policyNames = map[ExhaustionPolicy]string{
	Halt:            "halt",
	ClearExclusions: "clear_exclusions",
	Restart:         "restart",
}

// String returns the policy's config/metrics name.
func (p ExhaustionPolicy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}

	return fmt.Sprintf("ExhaustionPolicy(%d)", int(p))
}

// ParsePolicy maps a config name back to its policy.
func ParsePolicy(s string) (ExhaustionPolicy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}

	return Halt, fmt.Errorf("ParsePolicy(%q): %w", s, ErrUnknownPolicy)
}
