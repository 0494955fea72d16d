package render

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealLenStripsAnsi(t *testing.T) {
	assert.Equal(t, 5, RealLen("\x1b[31mhello\x1b[0m"))
	assert.Equal(t, 5, RealLen("hello"))
}

func TestStripSGRRemovesFixedPattern(t *testing.T) {
	assert.Equal(t, "hello", StripSGR("\x1b[31mhello\x1b[0m"))
	assert.Equal(t, "plain", StripSGR("plain"))
}

func TestHighlightWrapsMatches(t *testing.T) {
	pattern := regexp.MustCompile(`err`)
	got := Highlight("an err occurred, err again", pattern)
	assert.Equal(t, "an \x1b[35merr\x1b[0m occurred, \x1b[35merr\x1b[0m again", got)
}

func TestHighlightNoPatternReturnsLineUnchanged(t *testing.T) {
	assert.Equal(t, "line", Highlight("line", nil))
}

func TestHighlightNoMatchStillStripsExistingAnsi(t *testing.T) {
	got := Highlight("\x1b[31mclean\x1b[0m", regexp.MustCompile(`nope`))
	assert.Equal(t, "clean", got)
}
