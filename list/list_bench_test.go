package list

import (
	"testing"

	"github.com/hupe1980/arenakit/arena"
)

func BenchmarkList_PushBack(b *testing.B) {
	l := New[int](arena.WithCapacity(1024))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := l.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkList_PushPopCycle(b *testing.B) {
	// Steady-state churn: every push after the first is served from the
	// free chain, so no growth happens inside the loop.
	l := New[int]()
	if _, err := l.PushBack(0); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := l.PushBack(i); err != nil {
			b.Fatal(err)
		}
		if _, err := l.PopFront(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkList_RemoveByHandle(b *testing.B) {
	l := New[int](arena.WithCapacity(b.N + 1))
	handles := make([]arena.Handle, b.N)
	for i := 0; i < b.N; i++ {
		h, err := l.PushBack(i)
		if err != nil {
			b.Fatal(err)
		}
		handles[i] = h
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := l.Remove(handles[i]); err != nil {
			b.Fatal(err)
		}
	}
}
