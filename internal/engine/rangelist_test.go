package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReagentX/Logria-sub000/internal/errs"
)

func TestParseRangeListExpandsRangesAndSortsAscending(t *testing.T) {
	got, err := ParseRangeList("1-3,5,9-11,15")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 5, 9, 10, 11, 15}, got)
}

func TestParseRangeListSkipsMalformedRangeSilently(t *testing.T) {
	got, err := ParseRangeList("1--3,4")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, got)
}

func TestParseRangeListNonNumericRangeIsInvalidCommand(t *testing.T) {
	got, err := ParseRangeList("a-b,4")
	assert.True(t, errs.Is(err, errs.InvalidCommand))
	assert.Empty(t, got)
}

func TestParseRangeListIgnoresEmptyItems(t *testing.T) {
	got, err := ParseRangeList("1,,3,")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got)
}

func TestParseRangeListDedupes(t *testing.T) {
	got, err := ParseRangeList("1-3,2,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestParseRangeListNonNumericSingleItemIsInvalidCommand(t *testing.T) {
	_, err := ParseRangeList("abc")
	assert.True(t, errs.Is(err, errs.InvalidCommand))
}
