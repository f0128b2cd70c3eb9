package stackpool

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/stackpool/internal/nodestore"
)

const defaultBitsetSize = 64

// Pool is the allocator: it composes the node store and the intrusive free
// list and hands out stacks as plain handles.
//
// Every node in the pool belongs to exactly one chain, either some live
// stack or the free list. The free list is not a separate structure; it is
// one extra head index threaded through the same link fields as the live
// chains, which is what makes FreeStack an O(1) splice after the tail walk.
//
// A Pool is not safe for concurrent use; see the package documentation.
type Pool[T any] struct {
	store     *nodestore.Store[T]
	freeHead  Handle
	freeCount int

	// freeSlots tracks free-list membership for checked mode: bit i set
	// means slot index i+1 is currently free. nil in trusted mode.
	freeSlots *bitset.BitSet

	logger  *Logger
	metrics MetricsCollector
}

// New creates a Pool for values of type T.
//
// By default handles are checked: Push and Pop report typed errors on
// contract violations. See WithTrustedHandles for the unchecked variant.
func New[T any](opts ...Option) *Pool[T] {
	o := options{
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pool[T]{
		store:    nodestore.New[T](o.capacity),
		freeHead: None,
		logger:   o.logger,
		metrics:  o.metricsCollector,
	}
	if !o.trustedHandles {
		p.freeSlots = bitset.New(uint(max(o.capacity, defaultBitsetSize)))
	}
	return p
}

// NewStack returns a handle to a new empty stack. It is O(1) and creates no
// node; storage is only touched by the first Push.
func (p *Pool[T]) NewStack() Handle { return None }

// IsEmpty reports whether h designates the empty stack.
func (p *Pool[T]) IsEmpty(h Handle) bool { return h == None }

// Push prepends value to the stack headed by head and returns the handle of
// the new top node.
//
// If the free list is non-empty its head slot is recycled in place (O(1));
// otherwise a new node is appended to the store (amortized O(1)). The old
// head is not invalidated: it still designates the now-second node if the
// caller kept it, but treating it as the current top is the caller's
// mistake to avoid.
//
// In checked mode a head that is out of range or currently on the free
// list yields *ErrInvalidHandle.
func (p *Pool[T]) Push(value T, head Handle) (Handle, error) {
	if p.freeSlots != nil && !p.isLive(head) {
		err := &ErrInvalidHandle{Op: "push", Handle: head}
		if p.metrics != nil {
			p.metrics.RecordPush(false, err)
		}
		return None, err
	}

	var top Handle
	recycled := p.freeHead != None
	if recycled {
		top = p.freeHead
		p.freeHead = Handle(p.store.Next(uint32(top)))
		p.store.SetValue(uint32(top), value)
		p.store.SetNext(uint32(top), uint32(head))
		p.freeCount--
		if p.freeSlots != nil {
			p.freeSlots.Clear(uint(top - 1))
		}
	} else {
		grew := p.store.Len() == p.store.Cap()
		top = Handle(p.store.Append(value, uint32(head)))
		if grew {
			p.logger.Debug("node store grew",
				"nodes", p.store.Len(),
				"capacity", p.store.Cap(),
			)
		}
	}

	if p.metrics != nil {
		p.metrics.RecordPush(recycled, nil)
	}
	return top, nil
}

// Pop removes the top node of the stack headed by head, moves its slot onto
// the free list, and returns the handle of the remaining stack.
//
// Popping the empty stack is ErrEmptyStack in checked mode and a benign
// no-op returning None in trusted mode. The popped node's value is
// logically destroyed: the slot is the first one recycled by a later Push.
func (p *Pool[T]) Pop(head Handle) (Handle, error) {
	if head == None {
		if p.freeSlots != nil {
			if p.metrics != nil {
				p.metrics.RecordPop(ErrEmptyStack)
			}
			return None, ErrEmptyStack
		}
		return None, nil
	}
	if p.freeSlots != nil && !p.isLive(head) {
		err := &ErrInvalidHandle{Op: "pop", Handle: head}
		if p.metrics != nil {
			p.metrics.RecordPop(err)
		}
		return None, err
	}

	next := Handle(p.store.Next(uint32(head)))
	p.freeNode(head)

	if p.metrics != nil {
		p.metrics.RecordPop(nil)
	}
	return next, nil
}

// FreeStack reclaims the entire chain headed by head in one step: it walks
// to the tail (O(length)), splices the whole chain onto the front of the
// free list (O(1)), and returns the empty-stack handle. Freeing the empty
// stack is a no-op.
func (p *Pool[T]) FreeStack(head Handle) (Handle, error) {
	if head == None {
		return None, nil
	}
	if p.freeSlots != nil && !p.isLive(head) {
		return None, &ErrInvalidHandle{Op: "free", Handle: head}
	}

	tail := head
	n := 1
	if p.freeSlots != nil {
		p.freeSlots.Set(uint(head - 1))
	}
	for {
		next := Handle(p.store.Next(uint32(tail)))
		if next == None {
			break
		}
		tail = next
		n++
		if p.freeSlots != nil {
			p.freeSlots.Set(uint(tail - 1))
		}
	}

	p.store.SetNext(uint32(tail), uint32(p.freeHead))
	p.freeHead = head
	p.freeCount += n

	if p.metrics != nil {
		p.metrics.RecordFreeStack(n)
	}
	p.logger.Debug("stack reclaimed", "handle", uint32(head), "nodes", n)
	return None, nil
}

// Value returns the value of the node designated by h.
//
// Like Next and SetValue it is an unguarded hot-path accessor: h must
// designate a live, non-sentinel node, in every mode. These accessors back
// the iterators, which only ever hold indices obtained from a valid walk.
func (p *Pool[T]) Value(h Handle) T { return p.store.Value(uint32(h)) }

// SetValue overwrites the value of the node designated by h in place. The
// chain topology is unchanged.
func (p *Pool[T]) SetValue(h Handle, value T) { p.store.SetValue(uint32(h), value) }

// Next returns the handle of the node following h in its chain, or None at
// the end of the chain.
func (p *Pool[T]) Next(h Handle) Handle { return Handle(p.store.Next(uint32(h))) }

// Len returns the number of nodes in the stack headed by h, walking the
// chain to the sentinel.
func (p *Pool[T]) Len(h Handle) int {
	n := 0
	for ; h != None; h = p.Next(h) {
		n++
	}
	return n
}

// Reserve grows backing storage to hold at least n nodes in total, so a
// known number of future pushes will not reallocate.
func (p *Pool[T]) Reserve(n int) {
	p.store.Reserve(n)
}

// Capacity reports the current backing storage size in nodes.
func (p *Pool[T]) Capacity() int { return p.store.Cap() }

// isLive reports whether h may head a stack: the sentinel, or an allocated
// slot that is not on the free list.
func (p *Pool[T]) isLive(h Handle) bool {
	if h == None {
		return true
	}
	return p.store.InRange(uint32(h)) && !p.freeSlots.Test(uint(h-1))
}

// freeNode prepends one slot onto the free list.
func (p *Pool[T]) freeNode(h Handle) {
	p.store.SetNext(uint32(h), uint32(p.freeHead))
	p.freeHead = h
	p.freeCount++
	if p.freeSlots != nil {
		p.freeSlots.Set(uint(h - 1))
	}
}

// Stats tracks pool occupancy.
type Stats struct {
	NodesAllocated int // slots ever created by store growth
	NodesFree      int // slots currently on the free list
	NodesInUse     int // slots reachable from live stacks
	Capacity       int // backing storage size in nodes
}

// Stats returns the current pool statistics.
func (p *Pool[T]) Stats() Stats {
	allocated := p.store.Len()
	return Stats{
		NodesAllocated: allocated,
		NodesFree:      p.freeCount,
		NodesInUse:     allocated - p.freeCount,
		Capacity:       p.store.Cap(),
	}
}

func (p *Pool[T]) String() string {
	stats := p.Stats()
	return fmt.Sprintf(
		"Pool{allocated: %d, in use: %d, free: %d, capacity: %d}",
		stats.NodesAllocated,
		stats.NodesInUse,
		stats.NodesFree,
		stats.Capacity,
	)
}
