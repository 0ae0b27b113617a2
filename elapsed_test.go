package algebra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureElapsed_Duration(t *testing.T) {
	got, elapsed, err := MeasureElapsed(func() (int, error) {
		time.Sleep(5 * time.Millisecond)
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
}

func TestMeasureElapsed_Error(t *testing.T) {
	errBoom := errors.New("boom")
	_, elapsed, err := MeasureElapsed(func() (int, error) {
		return 0, errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
}

func TestElapsedPair_CallsDirectly(t *testing.T) {
	// The pair is not folded: fn sees (a, b) in order.
	got, _, err := ElapsedPair(subtract, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestElapsedList_MatchesReduce(t *testing.T) {
	want, err := Reduce(subtract, 10, 3, 1)
	require.NoError(t, err)

	got, elapsed, err := ElapsedList(subtract, 10, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))

	_, _, err = ElapsedList(subtract, 10)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestElapsedValues_MeasuresOnlyFn(t *testing.T) {
	values := []int{1, 2, 3}
	got, elapsed, err := ElapsedValues(func(v []int) (int, error) {
		time.Sleep(2 * time.Millisecond)
		return len(v), nil
	}, values)

	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.GreaterOrEqual(t, elapsed, 2*time.Millisecond)
}
