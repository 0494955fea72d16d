package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionCompileRegexSplitsOnPattern(t *testing.T) {
	d := &Definition{PatternType: Regex, Pattern: `\s+`}
	parse, err := d.Compile()
	require.NoError(t, err)

	v, err := parse("2024-01-01 ERROR boom", 1)
	require.NoError(t, err)
	assert.Equal(t, "ERROR", v)
}

func TestDefinitionCompileSplitOnLiteral(t *testing.T) {
	d := &Definition{PatternType: Split, Pattern: "|"}
	parse, err := d.Compile()
	require.NoError(t, err)

	v, err := parse("a|b|c", 2)
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestDefinitionCompileInvalidRegexFails(t *testing.T) {
	d := &Definition{PatternType: Regex, Pattern: "(unterminated"}
	_, err := d.Compile()
	assert.Error(t, err)
}

func TestParseFuncOutOfRangeIndexIsError(t *testing.T) {
	d := &Definition{PatternType: Split, Pattern: ","}
	parse, err := d.Compile()
	require.NoError(t, err)

	_, err = parse("a,b", 5)
	assert.Error(t, err)
}

func TestCursorAdvanceAppendsPlaceholderOnFailureAndKeepsGoing(t *testing.T) {
	d := &Definition{PatternType: Split, Pattern: ","}
	parse, err := d.Compile()
	require.NoError(t, err)

	msgs := []string{"a,b,c", "x", "d,e,f"}
	c := NewCursor(parse, 5) // always out of range
	c.Advance(len(msgs), func(i int) string { return msgs[i] })

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, c.LastParsed())
	for _, v := range c.Values() {
		assert.Contains(t, v, "Unable to parse message")
	}
}

func TestCursorAdvanceNeverReparsesBelowCursor(t *testing.T) {
	calls := 0
	msgs := []string{"a,b", "c,d", "e,f"}
	d := &Definition{PatternType: Split, Pattern: ","}
	parse, _ := d.Compile()
	c := NewCursor(parse, 0)

	at := func(i int) string { calls++; return msgs[i] }
	c.Advance(2, at)
	c.Advance(3, at)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []string{"a", "c", "e"}, c.Values())
}

func TestValidateExampleDetectsMismatch(t *testing.T) {
	d := &Definition{PatternType: Split, Pattern: ",", Example: "a,b"}
	err := d.ValidateExample(5)
	assert.Error(t, err)

	d2 := &Definition{PatternType: Split, Pattern: ",", Example: "a,b,c,d,e"}
	assert.NoError(t, d2.ValidateExample(3))
}
