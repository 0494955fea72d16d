package cli

import (
	"github.com/olekukonko/tablewriter"

	"github.com/ReagentX/Logria-sub000/internal/errs"
	"github.com/ReagentX/Logria-sub000/internal/persist"
)

// SessionsCmd lists every persisted session by name and genre.
type SessionsCmd struct{}

// Run executes the sessions listing.
func (c *SessionsCmd) Run(globals *Globals) error {
	paths, err := persist.Resolve()
	if err != nil {
		return outputErrorCommon(globals, errs.CannotRead, err.Error())
	}
	store := persist.NewSessionStore(paths.Sessions)

	names, err := store.List()
	if err != nil {
		return outputErrorCommon(globals, errs.CannotRead, err.Error())
	}

	table := tablewriter.NewTable(globals.Stdout)
	table.Header([]string{"Name", "Genre", "Commands"})
	for _, name := range names {
		sess, err := store.Load(name)
		if err != nil {
			globals.Debug("skipping unreadable session %s: %v", name, err)
			continue
		}
		table.Append([]string{name, string(sess.Genre), joinCommands(sess.Commands)})
	}
	return table.Render()
}
