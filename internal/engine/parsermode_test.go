package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReagentX/Logria-sub000/internal/parsing"
)

func TestParserModeStateMachineTransitions(t *testing.T) {
	p := NewParserMode(10)
	assert.Equal(t, parsing.Disabled, p.State)

	p.Enter()
	assert.Equal(t, parsing.NeedsParser, p.State)

	def := &parsing.Definition{PatternType: parsing.Split, Pattern: ","}
	require.NoError(t, p.SelectParser(def))
	assert.Equal(t, parsing.NeedsIndex, p.State)

	require.NoError(t, p.SelectIndex(1))
	assert.Equal(t, parsing.Full, p.State)
	assert.True(t, p.DidSwitch)

	p.Exit()
	assert.Equal(t, parsing.Disabled, p.State)
	assert.False(t, p.DidSwitch)
}

func TestParserModeSelectIndexArmsTwoSwitchTicks(t *testing.T) {
	p := NewParserMode(10)
	p.Enter()
	require.NoError(t, p.SelectParser(&parsing.Definition{PatternType: parsing.Split, Pattern: ","}))
	require.NoError(t, p.SelectIndex(0))

	assert.True(t, p.ConsumeSwitchTick())
	assert.True(t, p.DidSwitch)
	assert.True(t, p.ConsumeSwitchTick())
	assert.False(t, p.DidSwitch)
	assert.False(t, p.ConsumeSwitchTick())
}

func TestParserModeSelectIndexBuildsAggregatorFromAnalyticsMethods(t *testing.T) {
	p := NewParserMode(10)
	p.Enter()
	def := &parsing.Definition{
		PatternType:      parsing.Split,
		Pattern:          ",",
		AnalyticsMethods: map[string]string{"1": "Count"},
	}
	require.NoError(t, p.SelectParser(def))
	require.NoError(t, p.SelectIndex(1))
	assert.NotNil(t, p.Aggregator)
}

func TestParserModeToggleAggregationOnlyAppliesWhenFull(t *testing.T) {
	p := NewParserMode(10)
	p.ToggleAggregation()
	assert.False(t, p.AggOn)

	p.Enter()
	require.NoError(t, p.SelectParser(&parsing.Definition{PatternType: parsing.Split, Pattern: ","}))
	require.NoError(t, p.SelectIndex(0))
	p.ToggleAggregation()
	assert.True(t, p.AggOn)
}

func TestParserModeAdvanceParsesAndAggregates(t *testing.T) {
	p := NewParserMode(5)
	p.Enter()
	def := &parsing.Definition{
		PatternType:      parsing.Split,
		Pattern:          ",",
		AnalyticsMethods: map[string]string{"0": "Count"},
	}
	require.NoError(t, p.SelectParser(def))
	require.NoError(t, p.SelectIndex(0))
	p.ToggleAggregation()

	msgs := []string{"GET,200", "POST,201", "GET,200"}
	var auxiliary []string
	p.Advance(len(msgs), func(i int) string { return msgs[i] }, func(lines []string) { auxiliary = lines })

	require.Equal(t, 3, p.Cursor.Len())
	assert.Equal(t, "GET", p.Cursor.At(0))
	require.NotEmpty(t, auxiliary)
	assert.Contains(t, auxiliary[0], "GET: 2")
}

func TestParserModeVisibleLength(t *testing.T) {
	p := NewParserMode(5)
	assert.Equal(t, 42, p.VisibleLength(7, 42))

	p.Enter()
	require.NoError(t, p.SelectParser(&parsing.Definition{PatternType: parsing.Split, Pattern: ","}))
	require.NoError(t, p.SelectIndex(0))
	assert.Equal(t, 7, p.VisibleLength(7, 42))
}
