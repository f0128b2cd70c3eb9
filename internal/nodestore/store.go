package nodestore

type node[T any] struct {
	value T
	next  uint32
}

// Store is an append-only, index-addressable sequence of value+link records.
// It is the single owner of all node storage; everything handed out to
// callers is a plain index.
//
// Index 0 is reserved as the sentinel and never designates a slot: the node
// with index i lives at storage position i-1.
type Store[T any] struct {
	nodes []node[T]
}

// New creates a Store with backing capacity for the given number of nodes.
// A non-positive capacity defers allocation to the first append.
func New[T any](capacity int) *Store[T] {
	s := &Store[T]{}
	if capacity > 0 {
		s.nodes = make([]node[T], 0, capacity)
	}
	return s
}

// Append adds a new node and returns its 1-based index.
// Growth is amortized O(1); existing indices stay valid across growth.
func (s *Store[T]) Append(value T, next uint32) uint32 {
	s.nodes = append(s.nodes, node[T]{value: value, next: next})
	return uint32(len(s.nodes))
}

// Value returns the value of node i.
func (s *Store[T]) Value(i uint32) T { return s.nodes[i-1].value }

// SetValue overwrites the value of node i in place.
func (s *Store[T]) SetValue(i uint32, value T) { s.nodes[i-1].value = value }

// Next returns the link field of node i.
func (s *Store[T]) Next(i uint32) uint32 { return s.nodes[i-1].next }

// SetNext rewrites the link field of node i.
func (s *Store[T]) SetNext(i uint32, next uint32) { s.nodes[i-1].next = next }

// InRange reports whether i designates an allocated slot.
func (s *Store[T]) InRange(i uint32) bool {
	return i >= 1 && int(i) <= len(s.nodes)
}

// Reserve grows the backing capacity to hold at least n nodes in total, so
// that appends up to that point do not reallocate. It never shrinks.
func (s *Store[T]) Reserve(n int) {
	if n <= cap(s.nodes) {
		return
	}
	grown := make([]node[T], len(s.nodes), n)
	copy(grown, s.nodes)
	s.nodes = grown
}

// Len returns the number of nodes ever allocated.
func (s *Store[T]) Len() int { return len(s.nodes) }

// Cap returns the current backing capacity in nodes.
func (s *Store[T]) Cap() int { return cap(s.nodes) }
