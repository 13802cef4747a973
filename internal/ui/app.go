package ui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/almanac/internal/calendar"
	"github.com/five82/almanac/internal/coordinator"
	"github.com/five82/almanac/internal/prefs"
	"github.com/five82/almanac/internal/state"
	"github.com/five82/almanac/internal/todaybutton"
)

// Options configures the UI.
type Options struct {
	Store   *state.Store
	Initial calendar.Date
	Now     func() time.Time // nil uses time.Now

	ShowTodayButton         bool
	DisableAutoDaySelection []calendar.UpdateSource
	NumberOfDays            int
	TimelineLeftInset       int
	TodayBottomMargin       int
	DisabledOpacity         float64

	ThemeName string
	Prefs     prefs.Prefs
	PrefsPath string // empty skips saving

	Logger *logrus.Entry
}

// Model is the root application state for Bubble Tea. It owns the
// coordinator; everything the view shows is read from its Context.
type Model struct {
	coord  *coordinator.Coordinator
	today  *todaybutton.Button
	events *eventLog

	store        *state.Store
	storeVersion uint64

	showTodayButton bool
	styleOpts       StyleOptions
	prefs           prefs.Prefs
	prefsPath       string
	log             *logrus.Entry

	theme    Theme
	styles   Styles
	keys     keyMap
	help     help.Model
	eventsVP viewport.Model

	width    int
	height   int
	ready    bool
	showHelp bool
}

// New creates the model and its coordinator.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}

	initial := opts.Initial
	if initial.IsZero() {
		initial = calendar.Today(opts.Now)
	}

	events := newEventLog(eventLogLimit)
	button := todaybutton.New(opts.Now)

	coord := coordinator.New(coordinator.Options{
		Date:                    initial,
		OnDateChanged:           events.onDateChanged,
		OnMonthChanged:          events.onMonthChanged,
		DisableAutoDaySelection: opts.DisableAutoDaySelection,
		ShowTodayButton:         opts.ShowTodayButton,
		TodayButton:             button,
		NumberOfDays:            opts.NumberOfDays,
		TimelineLeftInset:       opts.TimelineLeftInset,
		Logger:                  log,
	})

	var version uint64
	if opts.Store != nil {
		version = opts.Store.Snapshot().Version
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = opts.Prefs.Theme
	}
	styleOpts := StyleOptions{
		DisabledOpacity:   opts.DisabledOpacity,
		TodayBottomMargin: opts.TodayBottomMargin,
	}
	theme := GetTheme(themeName)

	userPrefs := opts.Prefs
	userPrefs.Theme = theme.Name

	return Model{
		coord:           coord,
		today:           button,
		events:          events,
		store:           opts.Store,
		storeVersion:    version,
		showTodayButton: opts.ShowTodayButton,
		styleOpts:       styleOpts,
		prefs:           userPrefs,
		prefsPath:       opts.PrefsPath,
		log:             log,
		theme:           theme,
		styles:          theme.Styles(styleOpts),
		keys:            DefaultKeyMap(),
		help:            help.New(),
	}
}

// Context exposes the coordinator context the view renders from.
func (m Model) Context() coordinator.Context {
	return m.coord.Context()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(ownerPollInterval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		vpHeight := msg.Height - chromeHeight
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.eventsVP = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.eventsVP.Width = msg.Width
			m.eventsVP.Height = vpHeight
		}
		m.refreshEvents()
		return m, nil

	case tickMsg:
		m.syncOwnerDate()
		return m, tickCmd(ownerPollInterval)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles(m.styleOpts)
		m.prefs.Theme = m.theme.Name
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
				m.log.WithError(err).Warn("save prefs")
			}
		}
		m.refreshEvents()
		return m, nil

	case key.Matches(msg, m.keys.Today):
		if m.showTodayButton {
			m.today.Press(m.Context())
			m.refreshEvents()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleDisabled):
		m.Context().SetDisabled(!m.today.Disabled())
		return m, nil
	}

	for _, mv := range m.keys.moves() {
		if key.Matches(msg, *mv.binding) {
			ctx := m.Context()
			ctx.SetDate(mv.step(ctx.Date, ctx.NumberOfDays), mv.source)
			m.refreshEvents()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.eventsVP, cmd = m.eventsVP.Update(msg)
	return m, cmd
}

// syncOwnerDate forwards a changed owner date from the store to the
// coordinator.
func (m *Model) syncOwnerDate() {
	if m.store == nil {
		return
	}
	snap := m.store.Snapshot()
	if snap.Version == m.storeVersion {
		return
	}
	m.storeVersion = snap.Version
	if m.coord.SyncExternalDate(snap.Date) {
		m.refreshEvents()
	}
}

func (m *Model) refreshEvents() {
	if !m.ready {
		return
	}
	m.eventsVP.SetContent(m.events.render(m.styles))
	m.eventsVP.GotoBottom()
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
