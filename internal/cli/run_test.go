package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test binaries' stdin/stdout are piped, never a tty, so RunCmd should
// always reject with the fixed pipe-input error before touching
// persistence or launching the program.
func TestRunCmdRejectsNonTTY(t *testing.T) {
	globals, _ := newTestGlobals(t)
	cmd := &RunCmd{}
	err := cmd.Run(globals)
	assert.ErrorContains(t, err, "requires an interactive terminal")
}
