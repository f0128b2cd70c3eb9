package stackpool

// Handle identifies the head node of one logical stack inside a Pool.
//
// A handle is an index capability, not an owning reference; multiple
// handles may designate disjoint stacks sharing the same Pool. The zero
// value None terminates every chain and denotes the empty stack.
type Handle uint32

// None is the reserved sentinel handle. It is never an allocated slot: it
// marks both the empty stack and the end of every chain.
const None Handle = 0

// IsNone reports whether h is the sentinel.
func (h Handle) IsNone() bool { return h == None }
