package list

import (
	"testing"

	"github.com/Slot148/tlist/gates/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorMatchesForEach(t *testing.T) {
	l := textList(t, "x", "y", "z")

	var fromForEach []string
	require.NoError(t, l.ForEach(func(v string) {
		fromForEach = append(fromForEach, v)
	}))

	var fromCursor []string
	cursor := l.Cursor()
	for cursor.HasNext() {
		assert.Equal(t, len(fromCursor), cursor.Index())
		v, err := cursor.Next()
		require.NoError(t, err)
		fromCursor = append(fromCursor, v)
	}
	require.NoError(t, cursor.Release())

	assert.Equal(t, fromForEach, fromCursor)
}

func TestCursorExhausted(t *testing.T) {
	l := int32List(t, 7)
	cursor := NewCursor(l)

	v, err := cursor.Next()
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)
	assert.False(t, cursor.HasNext())

	for i := 0; i < 2; i++ {
		v, err = cursor.Next()
		require.ErrorIs(t, err, storage.ErrExhausted)
		assert.Zero(t, v)
		assert.Equal(t, 1, cursor.Index())
	}
	assert.True(t, cursor.Valid())
}

func TestCursorOnEmptyList(t *testing.T) {
	cursor := NewText().Cursor()
	assert.False(t, cursor.HasNext())
	_, err := cursor.Next()
	require.ErrorIs(t, err, storage.ErrExhausted)
}

func TestCursorInvalidatedByStructuralMutation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *List[int32])
	}{
		{"append", func(l *List[int32]) { _ = l.Append(4) }},
		{"pop front", func(l *List[int32]) { _, _ = l.PopFront() }},
		{"insert", func(l *List[int32]) { _ = l.InsertAt(1, 9) }},
		{"remove", func(l *List[int32]) { _ = l.RemoveAt(2) }},
		{"take", func(l *List[int32]) { _, _ = l.TakeAt(1) }},
		{"clear", func(l *List[int32]) { l.Clear() }},
		{"destroy", func(l *List[int32]) { _ = l.Destroy() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := int32List(t, 1, 2, 3)
			cursor := l.Cursor()
			_, err := cursor.Next()
			require.NoError(t, err)

			tt.mutate(l)

			assert.False(t, cursor.Valid())
			assert.False(t, cursor.HasNext())
			_, err = cursor.Next()
			require.ErrorIs(t, err, storage.ErrCursorInvalidated)
		})
	}
}

func TestCursorSurvivesReplace(t *testing.T) {
	l := int32List(t, 1, 2, 3)
	cursor := l.Cursor()
	_, err := cursor.Next()
	require.NoError(t, err)

	require.NoError(t, l.Replace(1, 20))

	assert.True(t, cursor.HasNext())
	v, err := cursor.Next()
	require.NoError(t, err)
	assert.Equal(t, int32(20), v)
}

func TestCursorFailedMutationKeepsCursorValid(t *testing.T) {
	l := int32List(t, 1, 2)
	cursor := l.Cursor()

	require.ErrorIs(t, l.RemoveAt(5), storage.ErrOutOfRange)
	require.ErrorIs(t, l.InsertAt(5, 0), storage.ErrOutOfRange)

	assert.True(t, cursor.Valid())
}

func TestCursorRelease(t *testing.T) {
	l := int32List(t, 1, 2)
	cursor := l.Cursor()

	require.NoError(t, cursor.Release())
	assert.False(t, cursor.HasNext())
	assert.False(t, cursor.Valid())

	_, err := cursor.Next()
	require.ErrorIs(t, err, storage.ErrCursorReleased)
	require.ErrorIs(t, cursor.Release(), storage.ErrCursorReleased)

	assert.Equal(t, "[1, 2]", l.String())
	assert.False(t, l.Destroyed())
}
