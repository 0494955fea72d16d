package cli

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/ReagentX/Logria-sub000/internal/logging"
	"github.com/ReagentX/Logria-sub000/internal/persist"
	"github.com/ReagentX/Logria-sub000/internal/tui"
)

// pipeInputError is the fixed message printed when stdin or stdout is
// not a tty: Logria's screen needs to own the terminal outright.
const pipeInputError = `Logria requires an interactive terminal.
stdin and stdout must both be a tty; piped input/output is not supported.
Run Logria directly in your terminal, without redirection.`

// RunCmd launches the interactive engine. It is the CLI's default
// command: invoking the binary with no subcommand runs it.
type RunCmd struct {
	NoCache      bool   `short:"c" name:"no-cache" help:"Disable history-tape recording and lookback"`
	NoSmartSpeed bool   `short:"n" name:"no-smart-speed" help:"Disable the poll governor; always poll at the configured ceiling"`
	Exec         string `short:"e" name:"exec" help:"Initial source command to stream; omit to choose from Startup mode"`
}

func (r *RunCmd) Run(globals *Globals) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("%s", pipeInputError)
	}

	paths, err := persist.Resolve()
	if err != nil {
		return err
	}
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(filepath.Join(paths.Root, "logria.log"))
	if err != nil {
		globals.Debug("failed to start logging: %v", err)
		logger = zap.NewNop().Sugar()
	} else {
		defer closeLog()
	}

	model, err := tui.New(tui.Options{
		NoCache:      r.NoCache,
		NoSmartSpeed: r.NoSmartSpeed,
		Exec:         r.Exec,
		Paths:        paths,
		Config:       globals.Config,
	})
	if err != nil {
		return err
	}

	logger.Debugw("starting program", "exec", r.Exec, "no_cache", r.NoCache, "no_smart_speed", r.NoSmartSpeed)

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
