package stackpool_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/stackpool"
)

// Example demonstrates building, traversing, and reclaiming a stack.
func Example() {
	p := stackpool.New[int](stackpool.WithCapacity(8))

	s := p.NewStack()
	for _, v := range []int{1, 2, 3} {
		var err error
		s, err = p.Push(v, s)
		if err != nil {
			log.Fatal(err)
		}
	}

	for v := range p.Values(s) {
		fmt.Println(v)
	}

	s, _ = p.FreeStack(s)
	fmt.Println(p.IsEmpty(s))
	// Output:
	// 3
	// 2
	// 1
	// true
}

// Example_multipleStacks demonstrates disjoint stacks sharing one pool and
// free list.
func Example_multipleStacks() {
	p := stackpool.New[string]()

	a, _ := p.Push("a", p.NewStack())
	b, _ := p.Push("b", p.NewStack())

	_, _ = p.FreeStack(a)

	// The freed slot is recycled by the next push, on any stack.
	b, _ = p.Push("c", b)

	for v := range p.Values(b) {
		fmt.Println(v)
	}
	fmt.Println(p.Stats().NodesAllocated)
	// Output:
	// c
	// b
	// 2
}

// Example_iterator demonstrates the position-equality cursor with in-place
// mutation.
func Example_iterator() {
	p := stackpool.New[int]()

	s := p.NewStack()
	for _, v := range []int{1, 2, 3} {
		s, _ = p.Push(v, s)
	}

	for it := p.Begin(s); it != p.End(); it.Advance() {
		it.SetValue(it.Value() * 2)
	}

	for v := range p.Values(s) {
		fmt.Println(v)
	}
	// Output:
	// 6
	// 4
	// 2
}
