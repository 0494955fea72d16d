package cli

import (
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ReagentX/Logria-sub000/internal/errs"
	"github.com/ReagentX/Logria-sub000/internal/persist"
)

// ParsersCmd lists every persisted parser definition.
type ParsersCmd struct{}

// Run executes the parsers listing.
func (c *ParsersCmd) Run(globals *Globals) error {
	paths, err := persist.Resolve()
	if err != nil {
		return outputErrorCommon(globals, errs.CannotRead, err.Error())
	}
	store := persist.NewParserStore(paths.Parsers)

	names, err := store.List()
	if err != nil {
		return outputErrorCommon(globals, errs.CannotRead, err.Error())
	}

	table := tablewriter.NewTable(globals.Stdout)
	table.Header([]string{"Name", "Type", "Pattern", "Example"})
	for _, name := range names {
		def, err := store.Load(name)
		if err != nil {
			globals.Debug("skipping unreadable parser %s: %v", name, err)
			continue
		}
		table.Append([]string{name, string(def.PatternType), def.Pattern, def.Example})
	}
	return table.Render()
}

func joinCommands(commands []string) string {
	return strings.Join(commands, "; ")
}
