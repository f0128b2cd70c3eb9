package stackpool

import "iter"

// Iterator is a lazy, forward-only cursor over one stack's chain.
//
// Iterators compare by position: two iterators over the same Pool are ==
// iff they currently reference the same index, so any exhausted iterator
// equals End(). They are restartable: Begin can be called again from any
// still-valid handle, independent of other iterators.
//
// The traversal is finite for any intact chain. Mutating a stack through
// one handle while iterating through another derived from a now-stale
// chain breaks the chain invariants and leaves the traversal undefined.
type Iterator[T any] struct {
	pool *Pool[T]
	cur  Handle
}

// Begin returns an iterator positioned on the head of the stack h.
// If h is None the iterator is already exhausted.
func (p *Pool[T]) Begin(h Handle) Iterator[T] {
	return Iterator[T]{pool: p, cur: h}
}

// End returns the past-the-end iterator shared by every stack in p.
func (p *Pool[T]) End() Iterator[T] {
	return Iterator[T]{pool: p, cur: None}
}

// Valid reports whether the iterator references a node.
func (it Iterator[T]) Valid() bool { return it.cur != None }

// Handle returns the index the iterator currently references, None when
// exhausted.
func (it Iterator[T]) Handle() Handle { return it.cur }

// Advance moves the iterator to the next node in the chain. Advancing an
// exhausted iterator is the caller's error.
func (it *Iterator[T]) Advance() { it.cur = it.pool.Next(it.cur) }

// Value returns the value of the currently referenced node.
func (it Iterator[T]) Value() T { return it.pool.Value(it.cur) }

// SetValue overwrites the currently referenced node's value in place,
// without altering the chain topology. This is the mutable counterpart of
// Value; use Values for read-only traversal.
func (it Iterator[T]) SetValue(value T) { it.pool.SetValue(it.cur, value) }

// Values returns a read-only lazy sequence of the values in the stack
// headed by h, front to back. Iterating None yields an empty sequence. The
// sequence can be ranged over any number of times; each range restarts
// from h.
func (p *Pool[T]) Values(h Handle) iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := h; cur != None; cur = p.Next(cur) {
			if !yield(p.Value(cur)) {
				return
			}
		}
	}
}

// Handles returns a lazy sequence of the node indices in the stack headed
// by h, front to back. Useful when the traversal needs to rewrite values
// through SetValue or resume from the middle of a chain.
func (p *Pool[T]) Handles(h Handle) iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for cur := h; cur != None; cur = p.Next(cur) {
			if !yield(cur) {
				return
			}
		}
	}
}
