package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnknownMethodErrors(t *testing.T) {
	_, err := New("Bogus")
	assert.Error(t, err)
}

func TestNoneSnapshotReturnsTail(t *testing.T) {
	a, err := New("None")
	require.NoError(t, err)

	for _, v := range []string{"a", "b", "c", "d"} {
		a.Update(v)
	}
	assert.Equal(t, []string{"c", "d"}, a.Snapshot(2))
	assert.Equal(t, []string{"a", "b", "c", "d"}, a.Snapshot(10))
}

func TestCountTracksFrequencyDescending(t *testing.T) {
	a, err := New("Count")
	require.NoError(t, err)

	for _, v := range []string{"GET", "POST", "GET", "GET", "POST"} {
		a.Update(v)
	}
	got := a.Snapshot(10)
	require.Len(t, got, 2)
	assert.Equal(t, "GET: 3", got[0])
	assert.Equal(t, "POST: 2", got[1])
}

func TestModeReturnsSingleTopValue(t *testing.T) {
	a, err := New("Mode")
	require.NoError(t, err)

	for _, v := range []string{"x", "y", "x"} {
		a.Update(v)
	}
	assert.Equal(t, []string{"x: 2"}, a.Snapshot(5))
}

func TestModeEmptySnapshotIsNil(t *testing.T) {
	a, err := New("Mode")
	require.NoError(t, err)
	assert.Nil(t, a.Snapshot(5))
}

func TestSumAccumulatesNumericValuesAndSkipsInvalid(t *testing.T) {
	a, err := New("Sum")
	require.NoError(t, err)

	for _, v := range []string{"1", "2.5", "not-a-number", "3"} {
		a.Update(v)
	}
	got := a.Snapshot(1)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "6.5")
	assert.Contains(t, got[0], "n=3")
}

func TestMeanComputesRunningAverage(t *testing.T) {
	a, err := New("Mean")
	require.NoError(t, err)

	for _, v := range []string{"2", "4", "6"} {
		a.Update(v)
	}
	assert.Equal(t, []string{"mean: 4"}, a.Snapshot(1))
}

func TestMeanWithNoSamplesIsNA(t *testing.T) {
	a, err := New("Mean")
	require.NoError(t, err)
	assert.Equal(t, []string{"mean: n/a"}, a.Snapshot(1))
}

func TestDateRateBucketsByFormat(t *testing.T) {
	a, err := New("Date(2006-01-02)")
	require.NoError(t, err)

	a.Update("2024-01-01")
	a.Update(" 2024-01-01 ")
	a.Update("2024-01-02")

	got := a.Snapshot(10)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-01: 2", got[0])
	assert.Equal(t, "2024-01-02: 1", got[1])
}

func TestDateRateUnparsedValueBucketsSeparately(t *testing.T) {
	a, err := New("Date(2006-01-02)")
	require.NoError(t, err)

	a.Update("garbage")
	got := a.Snapshot(10)
	require.Len(t, got, 1)
	assert.Equal(t, "unparsed: 1", got[0])
}
