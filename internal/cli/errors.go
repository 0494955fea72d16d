package cli

import (
	"github.com/ReagentX/Logria-sub000/internal/errs"
)

// outputErrorCommon normalizes error emission across subcommands: every
// CLI-level failure is reported through errs.Report so command output
// looks like the command-line error format the interactive engine uses.
func outputErrorCommon(globals *Globals, code errs.Code, message string) error {
	err := errs.Newf(code, "%s", message)
	if globals != nil {
		errs.Report(globals.Stderr, err)
	}
	return err
}
