package stackpool

import "testing"

func BenchmarkPush_Grow(b *testing.B) {
	b.ReportAllocs()

	p := New[int](WithTrustedHandles())
	s := p.NewStack()
	for b.Loop() {
		s, _ = p.Push(1, s)
	}
}

func BenchmarkPush_Recycled(b *testing.B) {
	b.ReportAllocs()

	p := New[int](WithTrustedHandles())
	s := p.NewStack()
	for b.Loop() {
		s, _ = p.Push(1, s)
		s, _ = p.Pop(s)
	}
}

func BenchmarkPush_Checked(b *testing.B) {
	b.ReportAllocs()

	p := New[int]()
	s := p.NewStack()
	for b.Loop() {
		s, _ = p.Push(1, s)
		s, _ = p.Pop(s)
	}
}

func BenchmarkFreeStack(b *testing.B) {
	b.ReportAllocs()

	const chain = 1024
	p := New[int](WithTrustedHandles(), WithCapacity(chain))
	for b.Loop() {
		s := p.NewStack()
		for i := 0; i < chain; i++ {
			s, _ = p.Push(i, s)
		}
		s, _ = p.FreeStack(s)
	}
}

func BenchmarkValues(b *testing.B) {
	b.ReportAllocs()

	const chain = 1024
	p := New[int](WithTrustedHandles(), WithCapacity(chain))
	s := p.NewStack()
	for i := 0; i < chain; i++ {
		s, _ = p.Push(i, s)
	}

	var sink int
	b.ResetTimer()
	for b.Loop() {
		for v := range p.Values(s) {
			sink += v
		}
	}
	_ = sink
}
