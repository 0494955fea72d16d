// Package tui hosts the bubbletea program that drives the interactive
// engine: it drains source producers on a governor-paced tick, dispatches
// keystrokes to the active mode handler, advances incremental filter and
// parser work, and redraws the viewport. The state machine and its pure
// helpers live in internal/engine; this package is the thin, stateful
// glue a bubbletea.Model requires.
package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ReagentX/Logria-sub000/internal/config"
	"github.com/ReagentX/Logria-sub000/internal/engine"
	"github.com/ReagentX/Logria-sub000/internal/filter"
	"github.com/ReagentX/Logria-sub000/internal/governor"
	"github.com/ReagentX/Logria-sub000/internal/message"
	"github.com/ReagentX/Logria-sub000/internal/persist"
	"github.com/ReagentX/Logria-sub000/internal/source"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
)

const creditsText = "Logria\n\nAn interactive terminal log explorer.\nPress : then q to quit."

// tickMsg fires every poll interval and drives drain/advance/redraw.
type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Options configures a new Model.
type Options struct {
	NoCache      bool
	NoSmartSpeed bool
	Exec         string
	Paths        persist.Paths
	Config       *config.Config
}

// Model is the bubbletea model wrapping the interactive engine's state.
type Model struct {
	opts Options

	sources            []source.Source
	store              *message.Store
	streamType         message.StreamKind
	previousStreamType message.StreamKind

	clk          clock.Clock
	gov          *governor.Governor
	pollInterval time.Duration
	pollFloor    time.Duration
	lastDrain    time.Time

	modes      *engine.ModeState
	entry      *engine.TextEntry
	viewport   *engine.Viewport
	parser     *engine.ParserMode
	regex      *filter.Engine
	dispatcher *engine.CommandDispatcher

	sessionStore *persist.SessionStore
	parserStore  *persist.ParserStore
	tape         *persist.Tape

	sessionNames []string

	width, height int
	quitting      bool
}

// New builds the initial Model. With opts.Exec set, a single source is
// attached immediately and the engine starts in Normal mode; otherwise
// it starts in Startup mode showing the persisted session list.
func New(opts Options) (*Model, error) {
	tape, err := persist.OpenTape(opts.Paths.TapeFile, opts.NoCache)
	if err != nil {
		return nil, err
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	m := &Model{
		opts:         opts,
		store:        message.NewStore(),
		streamType:   message.StdOut,
		clk:          clock.New(),
		gov:          governor.New(!opts.NoSmartSpeed),
		pollInterval: governor.Default,
		pollFloor:    time.Duration(cfg.PollCeilingMs) * time.Millisecond,
		modes:        &engine.ModeState{Current: engine.Startup},
		viewport:     &engine.Viewport{HighlightMatch: cfg.HighlightMatch},
		parser:       engine.NewParserMode(cfg.NumToAggregate),
		regex:        filter.NewEngine(),
		sessionStore: persist.NewSessionStore(opts.Paths.Sessions),
		parserStore:  persist.NewParserStore(opts.Paths.Parsers),
		tape:         tape,
	}
	m.entry = engine.NewTextEntry(80, m.tape)
	m.dispatcher = &engine.CommandDispatcher{
		Modes:      m.modes,
		StreamType: m.streamType,
		Hooks: engine.CommandHooks{
			SetPollFloor:      func(d time.Duration) { m.pollFloor = d },
			SetNumToAggregate: func(n int) { m.parser.NumToAggregate = n },
			Quit:              m.quit,
			BindCredits:       m.enterCredits,
		},
	}

	if opts.Exec != "" {
		if err := m.attach(opts.Exec); err != nil {
			return nil, err
		}
		m.streamType = message.StdErr
		m.modes.Current = engine.Normal
	} else {
		names, err := m.sessionStore.List()
		if err != nil {
			return nil, err
		}
		m.sessionNames = names
		m.store.ReplaceAuxiliary(startupBanner(names))
		m.streamType = message.Auxiliary
	}
	return m, nil
}

func startupBanner(names []string) []string {
	lines := []string{"Logria", "", "Persisted sessions:"}
	for i, name := range names {
		lines = append(lines, formatStartupEntry(i+1, name))
	}
	if len(names) == 0 {
		lines = append(lines, "(none yet — press : then q to quit, or start with -e)")
	}
	return lines
}

func formatStartupEntry(n int, name string) string {
	return strconv.Itoa(n) + ": " + name
}

func (m *Model) attach(spec string) error {
	kind := source.Classify(spec)
	var s source.Source
	var err error
	if kind == source.KindFile {
		s, err = source.NewFileSource(spec)
	} else {
		s, err = source.NewCommandSource(spec, func() time.Duration { return m.pollInterval })
	}
	if err != nil {
		return err
	}
	m.sources = append(m.sources, s)
	return nil
}

// Init starts the governor-paced tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.pollInterval)
}

// Update dispatches bubbletea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quit()
			return m, tea.Quit
		}
		m.handleKey(msg)
		if m.quitting {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		m.viewport.LastRenderableRow = msg.Height - 2
		if m.viewport.LastRenderableRow < 1 {
			m.viewport.LastRenderableRow = 1
		}
		m.entry.SetWidth(msg.Width)
	case tickMsg:
		m.drain()
		m.advance()
		return m, tickCmd(m.effectiveInterval())
	}
	return m, nil
}

// quit is idempotent: it is the one shutdown path, reached both from
// Ctrl+C and from the `:q` command, and must kill every source and
// close the tape exactly once regardless of which path calls it first.
func (m *Model) quit() {
	if m.quitting {
		return
	}
	m.quitting = true
	for _, s := range m.sources {
		s.Kill()
	}
	if m.tape != nil {
		m.tape.Close()
	}
}

// effectiveInterval applies the command-set poll floor on top of the
// governor's recommendation.
func (m *Model) effectiveInterval() time.Duration {
	if m.pollInterval < m.pollFloor {
		return m.pollFloor
	}
	return m.pollInterval
}

// drain implements main-loop steps 1-2 (spec.md §4.7): a non-blocking
// drain of every source's channels (stderr before stdout, per source),
// then feeds the governor with the observed rate. Skipped in Startup.
func (m *Model) drain() {
	if m.modes.Current == engine.Startup {
		return
	}
	start := m.clk.Now()
	count := 0
	for _, s := range m.sources {
		count += drainChan(s.Stderr(), func(line string) { m.store.Append(message.StdErr, line) })
		count += drainChan(s.Stdout(), func(line string) { m.store.Append(message.StdOut, line) })
	}

	elapsed := time.Duration(0)
	if !m.lastDrain.IsZero() {
		elapsed = start.Sub(m.lastDrain)
	}
	m.lastDrain = start
	m.pollInterval = m.gov.Submit(elapsed, count)
}

func drainChan(ch <-chan string, append func(string)) int {
	count := 0
	for {
		select {
		case line, ok := <-ch:
			if !ok {
				return count
			}
			append(line)
			count++
		default:
			return count
		}
	}
}

// advance implements main-loop step 4: incremental regex/parser work,
// plus the did_switch double-tick quirk (spec.md §9).
func (m *Model) advance() {
	total := m.store.Len(m.streamType)
	at := func(i int) string { return m.store.At(m.streamType, i) }

	m.regex.Advance(total, at)
	m.parser.Advance(total, at, m.store.ReplaceAuxiliary)

	if m.parser.DidSwitch {
		m.parser.ConsumeSwitchTick()
	}
}

// visibleCount implements spec.md §4.3's mode-dependent message count.
func (m *Model) visibleCount() int {
	switch m.modes.Current {
	case engine.Regex:
		if m.regex.Active() {
			return m.regex.MatchLen()
		}
		return m.store.Len(m.streamType)
	case engine.Parser:
		return m.parser.VisibleLength(m.store.Len(message.Auxiliary), m.store.Len(m.streamType))
	default:
		return m.store.Len(m.streamType)
	}
}

func (m *Model) enterCredits() {
	m.previousStreamType = m.streamType
	m.streamType = message.Auxiliary
	m.store.ReplaceAuxiliary(strings.Split(creditsText, "\n"))
	m.viewport.Apply(engine.ScrollTop, m.visibleCount())
}
