package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ReagentX/Logria-sub000/internal/config"
)

// CLI is the root command structure for Logria. Run carries the
// `default:"withargs"` tag so a bare invocation (no subcommand token)
// launches the interactive engine while still accepting its flags;
// Sessions, Parsers and Version are explicit, read-only subcommands.
type CLI struct {
	Run      RunCmd      `cmd:"" default:"withargs" help:"Launch the interactive engine (default)"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
	Sessions SessionsCmd `cmd:"" help:"List persisted sessions"`
	Parsers  ParsersCmd  `cmd:"" help:"List persisted parser definitions"`
}

// Globals holds shared state for all commands.
type Globals struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Verbose bool
	Config  *config.Config
}

// NewGlobals creates a new Globals instance wired to the process's
// standard streams.
func NewGlobals(cfg *config.Config) *Globals {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Globals{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: cfg,
	}
}

// Debug prints a debug message if verbose mode is enabled.
func (g *Globals) Debug(format string, args ...interface{}) {
	if g.Verbose {
		fmt.Fprintf(g.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// VersionCmd shows version information.
type VersionCmd struct{}

// Run executes the version command.
func (v *VersionCmd) Run(globals *Globals) error {
	fmt.Fprintf(globals.Stdout, "logria version %s (%s)\n", Version, Commit)
	return nil
}

// Version information (set at build time).
var (
	Version = "0.1.0"
	Commit  = "none"
)
