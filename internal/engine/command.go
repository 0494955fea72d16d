package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ReagentX/Logria-sub000/internal/message"
)

// CommandHooks are the side effects the Command mode dispatcher can
// trigger in the main loop, kept as function fields so the dispatcher
// itself stays a pure, testable unit.
type CommandHooks struct {
	SetPollFloor      func(floor time.Duration)
	SetNumToAggregate func(n int)
	Quit              func()
	BindCredits       func()
}

// CommandDispatcher executes the Command-mode grammar (spec.md §4.6)
// against the current mode/stream state and reports the message to
// show in the command line.
type CommandDispatcher struct {
	Modes      *ModeState
	StreamType message.StreamKind
	IsStartup  bool
	Hooks      CommandHooks
}

// Dispatch runs one gathered command-line string, returning the status
// text to display, and always returns the mode machine to its previous
// mode with the delete callback cleared.
func (d *CommandDispatcher) Dispatch(text string) string {
	defer d.Modes.Return()

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return fmt.Sprintf("Invalid command: %s", text)
	}

	switch fields[0] {
	case "q":
		if d.Hooks.Quit != nil {
			d.Hooks.Quit()
		}
		return ""

	case "poll":
		n, err := parsePositiveInt(fields)
		if err != nil {
			return fmt.Sprintf("Invalid command: %s", text)
		}
		if d.Hooks.SetPollFloor != nil {
			d.Hooks.SetPollFloor(time.Duration(n) * time.Millisecond)
		}
		return fmt.Sprintf("poll floor set to %dms", n)

	case "agg":
		n, err := parsePositiveInt(fields)
		if err != nil {
			return fmt.Sprintf("Invalid command: %s", text)
		}
		if d.Hooks.SetNumToAggregate != nil {
			d.Hooks.SetNumToAggregate(n)
		}
		return fmt.Sprintf("num_to_aggregate set to %d", n)

	case "r":
		return d.dispatchDelete(fields, text)

	case "restart", "config":
		return fields[0]

	case "history":
		if len(fields) == 2 && fields[1] == "off" {
			return "history off"
		}
		if len(fields) == 1 {
			return "history"
		}
		return fmt.Sprintf("Invalid command: %s", text)

	case "credits":
		if !d.IsStartup {
			return fmt.Sprintf("Invalid command: %s", text)
		}
		if d.Hooks.BindCredits != nil {
			d.Hooks.BindCredits()
		}
		return ""

	default:
		return fmt.Sprintf("Invalid command: %s", text)
	}
}

func (d *CommandDispatcher) dispatchDelete(fields []string, text string) string {
	if d.StreamType != message.Auxiliary {
		return "Cannot remove files outside of startup mode."
	}
	if d.Modes.DeleteCallback == nil {
		return "nothing to delete."
	}
	if len(fields) < 2 {
		return fmt.Sprintf("Invalid command: %s", text)
	}
	arg := strings.Join(fields[1:], "")
	indices, err := ParseRangeList(arg)
	if err != nil {
		return fmt.Sprintf("Invalid command: %s", text)
	}
	if err := d.Modes.DeleteCallback(indices); err != nil {
		return fmt.Sprintf("Invalid command: %s", err)
	}
	return fmt.Sprintf("deleted %d item(s)", len(indices))
}

func parsePositiveInt(fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("expected exactly one argument")
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive")
	}
	return n, nil
}
