package walk

import "errors"

var (
	// ErrPathExhausted indicates the walk backtracked past its start vertex
	// and the exhaustion policy could not (or was told not to) continue.
	ErrPathExhausted = errors.New("walk: path exhausted")

	// ErrInvalidCapacity indicates a non-positive exclusion capacity.
	ErrInvalidCapacity = errors.New("walk: exclusion capacity must be > 0")

	// ErrNilMap indicates New was called without a map.
	ErrNilMap = errors.New("walk: nil map")
)

// ErrUnknownPolicy indicates an exhaustion policy name that ParsePolicy does not know.
var ErrUnknownPolicy = errors.New("walk: unknown exhaustion policy")
