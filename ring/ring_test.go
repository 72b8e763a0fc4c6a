package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values[T any](b *Buffer[T]) []T {
	var out []T
	for v := range b.Values() {
		out = append(out, v)
	}
	return out
}

func TestBuffer_ZeroCapacity(t *testing.T) {
	b := New[int](0)

	assert.True(t, b.Empty())
	assert.True(t, b.Full())
	assert.Empty(t, values(b))

	assert.ErrorIs(t, b.Enqueue(1), ErrFull)
	_, err := b.Dequeue()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestBuffer_From(t *testing.T) {
	b := From([]int{0})

	assert.False(t, b.Empty())
	assert.True(t, b.Full())
	assert.Equal(t, []int{0}, values(b))
}

func TestBuffer_EnqueueDequeue(t *testing.T) {
	b := From([]int{1, 2, 3, 4, 5, 6, 7})

	assert.True(t, b.Full())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, values(b))

	v, err := b.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.False(t, b.Full())
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7}, values(b))

	v, err = b.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{3, 4, 5, 6, 7}, values(b))

	v, err = b.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, []int{3, 4, 5, 6}, values(b))
}

func TestBuffer_Wraparound(t *testing.T) {
	b := New[int](3)

	for i := 1; i <= 3; i++ {
		require.NoError(t, b.Enqueue(i))
	}
	assert.ErrorIs(t, b.Enqueue(4), ErrFull)

	// Free a slot at the front, enqueue wraps to the vacated position.
	v, err := b.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	require.NoError(t, b.Enqueue(4))

	assert.Equal(t, []int{2, 3, 4}, values(b))
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 3, b.Cap())
}

func TestBuffer_Peek(t *testing.T) {
	b := New[int](4)

	_, err := b.Front()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = b.PeekNext()
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, b.Enqueue(1))
	front, err := b.Front()
	require.NoError(t, err)
	assert.Equal(t, 1, *front)

	// One element: there is no next yet.
	_, err = b.PeekNext()
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, b.Enqueue(2))
	next, err := b.PeekNext()
	require.NoError(t, err)
	assert.Equal(t, 2, *next)
}
