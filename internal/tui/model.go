package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/agbru/lunaris/internal/animation"
	"github.com/agbru/lunaris/internal/config"
	"github.com/agbru/lunaris/internal/logging"
	"github.com/agbru/lunaris/internal/lunar"
	"github.com/agbru/lunaris/internal/metrics"
	"github.com/agbru/lunaris/internal/terminator"
)

// Layout constants for the watch view.
const (
	headerHeight  = 1
	footerHeight  = 1
	minBodyHeight = 8
	// MoonPanelWidthPercent is the share of the width given to the disk.
	MoonPanelWidthPercent = 55
	// maxFrameStep caps the time step fed to the smoother after a stall, so
	// a suspended terminal does not make playback jump.
	maxFrameStep = 250 * time.Millisecond
)

// TickMsg drives one animation frame.
type TickMsg time.Time

// ContextCancelledMsg is sent when the parent context is done.
type ContextCancelledMsg struct {
	Err error
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

func (l LayoutManager) moonWidth() int {
	return l.width * MoonPanelWidthPercent / 100
}

func (l LayoutManager) infoWidth() int {
	return l.width - l.moonWidth()
}

// Options configures the watch view.
type Options struct {
	Version  string
	Start    time.Time
	Clock    animation.Clock
	Metrics  *metrics.Recorder
	Logger   logging.Logger
	Language language.Tag
}

// Model is the root bubbletea model of the watch view.
type Model struct {
	header HeaderModel
	moon   MoonModel
	info   InfoModel
	help   help.Model
	keymap KeyMap

	LayoutManager

	ctx      context.Context
	smoother *animation.Smoother
	interval time.Duration
	lastTick time.Time
	phase    lunar.PhaseResult

	recorder *metrics.Recorder
	logger   logging.Logger
}

// NewModel creates the watch model from the resolved configuration.
func NewModel(ctx context.Context, cfg config.AppConfig, opts Options) (Model, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Model{}, err
	}
	smootherOpts := []animation.Option{
		animation.WithSpeed(cfg.Speed),
		animation.WithSmoothing(cfg.Smoothing),
		animation.WithLocation(loc),
	}
	if !opts.Start.IsZero() {
		smootherOpts = append(smootherOpts, animation.WithStart(opts.Start))
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	m := Model{
		header:   NewHeaderModel(opts.Version, loc.String()),
		moon:     NewMoonModel(cfg.RenderMode),
		info:     NewInfoModel(opts.Language),
		help:     help.New(),
		keymap:   DefaultKeyMap(),
		ctx:      ctx,
		smoother: animation.New(opts.Clock, smootherOpts...),
		interval: time.Second / time.Duration(max(cfg.FPS, 1)),
		recorder: opts.Metrics,
		logger:   opts.Logger,
	}
	m.refresh()
	return m, nil
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.interval), watchContextCmd(m.ctx))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		m.refresh()
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			dt := min(max(now.Sub(m.lastTick), 0), maxFrameStep)
			m.smoother.Advance(dt)
		}
		m.lastTick = now
		m.refresh()
		m.info.Sample()
		return m, tickCmd(m.interval)

	case ContextCancelledMsg:
		m.logger.Debug("watch context done", logging.Err(msg.Err))
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.smoother
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Play):
		s.TogglePlay()
	case key.Matches(msg, m.keymap.Reset):
		s.Reset()
	case key.Matches(msg, m.keymap.PrevDay):
		s.AddDays(-1)
	case key.Matches(msg, m.keymap.NextDay):
		s.AddDays(1)
	case key.Matches(msg, m.keymap.PrevMonth):
		s.AddMonths(-1)
	case key.Matches(msg, m.keymap.NextMonth):
		s.AddMonths(1)
	case key.Matches(msg, m.keymap.FirstDay):
		s.FirstDay()
	case key.Matches(msg, m.keymap.LastDay):
		s.LastDay()
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layoutPanels()
		return m, nil
	default:
		return m, nil
	}
	m.logger.Debug("target moved",
		logging.Time("target", s.Target()),
		logging.Bool("playing", s.Playing()))
	m.refresh()
	return m, nil
}

// refresh recomputes the phase at the visual instant and redraws the disk.
func (m *Model) refresh() {
	m.phase = lunar.ComputePhase(m.smoother.Visual())
	m.recorder.ObservePhase()

	// The rasterizer scales the disk to the panel, so a unit disk suffices.
	g, err := terminator.Build(m.phase.Phase, 1, terminator.Point{X: 1, Y: 1})
	if err != nil {
		m.logger.Error("building terminator", err, logging.Float64("phase", m.phase.Phase))
		return
	}
	m.moon.Draw(g, m.recorder)
	m.info.Update(m.phase, m.smoother.Target())
	m.header.SetPlaying(m.smoother.Playing())
}

// View renders the whole screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.moon.View(), m.info.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.help.View(m.keymap))
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width
	body := m.bodyHeight()
	if m.help.ShowAll {
		body = max(body-len(m.keymap.FullHelp()[0]), minBodyHeight)
	}
	m.moon.SetSize(m.moonWidth(), body)
	m.info.SetSize(m.infoWidth(), body)
}

// Phase returns the phase currently displayed.
func (m Model) Phase() lunar.PhaseResult { return m.phase }

// Smoother exposes the animation state.
func (m Model) Smoother() *animation.Smoother { return m.smoother }

// Run is the public entry point for the watch view. It blocks until the user
// quits or ctx is done.
func Run(ctx context.Context, cfg config.AppConfig, opts Options) error {
	// Rebuild styles from the current ui theme (set by the app via InitTheme).
	initTUIStyles()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model, err := NewModel(ctx, cfg, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// tickCmd schedules the next frame.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}

