package list_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/arenakit/arena"
	"github.com/hupe1980/arenakit/list"
)

func ExampleList() {
	l := list.New[string]()

	h, _ := l.PushBack("b")
	l.PushBack("c")
	l.PushFront("a")

	// Handles address elements in O(1), independent of their position.
	l.InsertAfter(h, "b2")

	for v := range l.Values() {
		fmt.Println(v)
	}
	// Output:
	// a
	// b
	// b2
	// c
}

func ExampleList_Remove() {
	l := list.New[int]()

	h, _ := l.PushBack(42)
	v, _ := l.Remove(h)
	fmt.Println(v)

	// The handle is stale after the removal, even if the slot is reused.
	l.PushBack(7)
	_, err := l.Remove(h)
	fmt.Println(errors.Is(err, arena.ErrStaleHandle))
	// Output:
	// 42
	// true
}

func ExampleCursor() {
	l := list.New[int]()
	for i := 1; i <= 6; i++ {
		l.PushBack(i)
	}

	// Drop the even elements in place.
	c := l.Cursor()
	on := c.MoveNext()
	for on {
		v, _ := c.Current()
		if *v%2 == 0 {
			c.RemoveCurrent()
			_, on = c.Handle()
		} else {
			on = c.MoveNext()
		}
	}

	for v := range l.Values() {
		fmt.Println(v)
	}
	// Output:
	// 1
	// 3
	// 5
}
