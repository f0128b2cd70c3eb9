// Package stackpool implements an arena-backed allocator for intrusive
// singly-linked stacks.
//
// One Pool hosts many independent stacks inside a single contiguous,
// growable node store. Freed nodes are recycled through an intrusive free
// list threaded through the same link fields as the live chains, so push
// and pop stay amortized O(1) without touching the general-purpose
// allocator per node.
//
// # Quick Start
//
//	p := stackpool.New[int](stackpool.WithCapacity(64))
//
//	s := p.NewStack()
//	s, _ = p.Push(1, s)
//	s, _ = p.Push(2, s)
//
//	for v := range p.Values(s) {
//	    fmt.Println(v) // 2, then 1
//	}
//
//	s = p.FreeStack(s) // whole chain back on the free list
//
// # Handles
//
// A Handle is a plain index, not an owning reference: the Pool owns all
// node storage for its entire lifetime. Handles are cheap to copy and
// carry no destructor semantics. Forgetting to free a stack leaks its
// nodes within the arena (they are never reused) but is not a memory
// safety violation. A handle obtained before a Pop or FreeStack that
// reclaimed its node is stale; in checked mode (the default) Push and Pop
// reject stale and out-of-range handles with typed errors, in trusted
// mode (WithTrustedHandles) using one is undefined behavior.
//
// # Concurrency
//
// A Pool is not safe for concurrent use. Any mutation on any stack may
// relink storage shared by every stack in the pool, so callers must
// serialize access at the granularity of the whole Pool.
package stackpool
