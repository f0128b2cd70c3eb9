// Command stackpool-bench exercises the pool from the outside: it builds
// stacks, traverses them, and compares pool push/pop against a plain slice
// stack. It is a consumer of the library, not part of its contract.
package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"

	"github.com/hupe1980/stackpool"
)

var (
	size    = kingpin.Flag("size", "Number of values pushed per run.").Default("1000000").Int()
	rounds  = kingpin.Flag("rounds", "Number of push/pop rounds per run.").Default("5").Int()
	verbose = kingpin.Flag("verbose", "Enable debug logging.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	logger := stackpool.NoopLogger()
	if *verbose {
		logger = stackpool.NewTextLogger(slog.LevelDebug)
	}

	demo(logger)
	bench(logger)
}

// demo mirrors the library's end-to-end usage: reserve, build two stacks,
// traverse and reduce them.
func demo(logger *stackpool.Logger) {
	p := stackpool.New[int](
		stackpool.WithCapacity(22),
		stackpool.WithLogger(logger),
	)

	first := build(p, []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5})
	second := build(p, []int{8, 9, 7, 9, 3, 1, 1, 5, 9, 9, 7})

	fmt.Println("--- Demo ---")
	fmt.Print("first stack: ")
	printStack(p, first)
	fmt.Print("second stack:")
	printStack(p, second)
	fmt.Println("max(first): ", reduce(p, first, func(a, b int) bool { return b > a }))
	fmt.Println("min(second):", reduce(p, second, func(a, b int) bool { return b < a }))
	fmt.Println(p)
}

func build(p *stackpool.Pool[int], values []int) stackpool.Handle {
	s := p.NewStack()
	for _, v := range values {
		var err error
		if s, err = p.Push(v, s); err != nil {
			kingpin.Fatalf("push: %v", err)
		}
	}
	return s
}

func printStack(p *stackpool.Pool[int], h stackpool.Handle) {
	for v := range p.Values(h) {
		fmt.Print(" ", v)
	}
	fmt.Println()
}

func reduce(p *stackpool.Pool[int], h stackpool.Handle, better func(best, v int) bool) int {
	best := p.Value(h)
	for v := range p.Values(h) {
		if better(best, v) {
			best = v
		}
	}
	return best
}

// bench times rounds of size pushes and pops on a pre-reserved pool against
// the same workload on a plain slice stack.
func bench(logger *stackpool.Logger) {
	metrics := &stackpool.BasicMetricsCollector{}
	p := stackpool.New[int](
		stackpool.WithTrustedHandles(),
		stackpool.WithCapacity(*size),
		stackpool.WithLogger(logger),
		stackpool.WithMetricsCollector(metrics),
	)

	fmt.Println("--- Benchmark ---")
	fmt.Println("size:  ", humanize.Comma(int64(*size)))
	fmt.Println("rounds:", *rounds)

	start := time.Now()
	for r := 0; r < *rounds; r++ {
		s := p.NewStack()
		for i := 0; i < *size; i++ {
			s, _ = p.Push(i, s)
		}
		for !p.IsEmpty(s) {
			s, _ = p.Pop(s)
		}
	}
	poolElapsed := time.Since(start)

	start = time.Now()
	for r := 0; r < *rounds; r++ {
		s := make([]int, 0, *size)
		for i := 0; i < *size; i++ {
			s = append(s, i)
		}
		for len(s) > 0 {
			s = s[:len(s)-1]
		}
	}
	sliceElapsed := time.Since(start)

	total := int64(*rounds) * int64(*size)
	fmt.Println("pool:  ", poolElapsed, "for", humanize.Comma(total), "push/pop pairs")
	fmt.Println("slice: ", sliceElapsed)
	fmt.Println("recycled pushes:", humanize.Comma(metrics.PushRecycled.Load()))
	fmt.Println(p)
}
