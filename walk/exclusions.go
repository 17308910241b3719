package walk

import (
	"fmt"

	"github.com/katalvlaran/antwalk/gridgraph"
)

// DefaultExclusionCapacity is the size of the abandoned-vertex memory.
const DefaultExclusionCapacity = 150

// Exclusions is a bounded FIFO set of vertices backed by a ring buffer.
// Membership is a linear scan; the set is small by construction.
type Exclusions struct {
	buf  []gridgraph.Vertex
	head int // oldest element
	n    int
}

// NewExclusions returns an empty set holding at most capacity vertices.
func NewExclusions(capacity int) (*Exclusions, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("NewExclusions(%d): %w", capacity, ErrInvalidCapacity)
	}

	return &Exclusions{buf: make([]gridgraph.Vertex, capacity)}, nil
}

// Len returns the number of excluded vertices.
func (e *Exclusions) Len() int { return e.n }

// Cap returns the maximum number of excluded vertices.
func (e *Exclusions) Cap() int { return len(e.buf) }

// Contains reports whether v is excluded.
// Complexity: O(Len).
func (e *Exclusions) Contains(v gridgraph.Vertex) bool {
	for i := 0; i < e.n; i++ {
		if e.buf[(e.head+i)%len(e.buf)] == v {
			return true
		}
	}

	return false
}

// Add excludes v. When the set is full the oldest vertex is evicted first
// and returned with evicted=true. Adding a vertex that is already excluded
// is a no-op.
// Complexity: O(Len).
func (e *Exclusions) Add(v gridgraph.Vertex) (old gridgraph.Vertex, evicted bool) {
	if e.Contains(v) {
		return gridgraph.Vertex{}, false
	}
	if e.n == len(e.buf) {
		old, evicted = e.buf[e.head], true
		e.head = (e.head + 1) % len(e.buf)
		e.n--
	}
	e.buf[(e.head+e.n)%len(e.buf)] = v
	e.n++

	return old, evicted
}

// Items returns the excluded vertices, oldest first.
func (e *Exclusions) Items() []gridgraph.Vertex {
	out := make([]gridgraph.Vertex, e.n)
	for i := range out {
		out[i] = e.buf[(e.head+i)%len(e.buf)]
	}

	return out
}

// Clear forgets every excluded vertex.
func (e *Exclusions) Clear() {
	e.head, e.n = 0, 0
}
