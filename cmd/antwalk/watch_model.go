package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/antwalk/config"
	"github.com/katalvlaran/antwalk/render"
	"github.com/katalvlaran/antwalk/sim"
	"github.com/katalvlaran/antwalk/walk"
)

const (
	// rateWindow is the number of frames between steps/s updates.
	rateWindow       = 100
	maxStepsPerFrame = 1024
)

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	gridStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

type keyMap struct {
	Pause  key.Binding
	Step   key.Binding
	Faster key.Binding
	Slower key.Binding
	Reset  key.Binding
	Save   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step, k.Faster, k.Slower},
		{k.Reset, k.Save, k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause:  key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p/space", "pause")),
		Step:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "single step")),
		Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart walk")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save svg")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type frameMsg time.Time

// reloadMsg carries a freshly loaded configuration from the file watcher.
type reloadMsg struct {
	cfg *config.Config
}

// builder turns a configuration into a simulation; watch shares one
// metrics set across rebuilds through it.
type builder func(*config.Config) (*sim.Simulation, error)

type watchModel struct {
	sim   *sim.Simulation
	build builder
	keys  keyMap
	help  help.Model

	interval      time.Duration
	stepsPerFrame int
	paused        bool
	svgDir        string

	frames      uint64
	rate        float64 // steps/s over the last rateWindow frames
	windowStart time.Time
	windowSteps uint64

	status string
	err    error
}

func newWatchModel(s *sim.Simulation, build builder, fps, stepsPerFrame int, svgDir string) watchModel {
	if fps <= 0 {
		fps = 30
	}
	if stepsPerFrame <= 0 {
		stepsPerFrame = 1
	}

	return watchModel{
		sim:           s,
		build:         build,
		keys:          defaultKeyMap(),
		help:          help.New(),
		interval:      time.Second / time.Duration(fps),
		stepsPerFrame: stepsPerFrame,
		svgDir:        svgDir,
		windowStart:   time.Now(),
	}
}

func (m watchModel) Init() tea.Cmd {
	return m.tick()
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Step):
			m.advance(1)
		case key.Matches(msg, m.keys.Faster):
			m.stepsPerFrame = min(m.stepsPerFrame*2, maxStepsPerFrame)
		case key.Matches(msg, m.keys.Slower):
			m.stepsPerFrame = max(m.stepsPerFrame/2, 1)
		case key.Matches(msg, m.keys.Reset):
			m.rebuild(m.sim.Config, "walk restarted")
		case key.Matches(msg, m.keys.Save):
			m.save()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case reloadMsg:
		m.rebuild(msg.cfg, "config reloaded")
		return m, nil

	case frameMsg:
		if !m.paused {
			m.advance(m.stepsPerFrame)
		}
		m.frames++
		if m.frames%rateWindow == 0 {
			now := time.Time(msg)
			if d := now.Sub(m.windowStart); d > 0 {
				m.rate = float64(m.windowSteps) / d.Seconds()
			}
			m.windowStart = now
			m.windowSteps = 0
		}
		return m, m.tick()
	}

	return m, nil
}

// advance performs up to n steps and stops at the first error.
func (m *watchModel) advance(n int) {
	if m.sim.Walker.Halted() {
		return
	}
	for i := 0; i < n; i++ {
		if err := m.sim.Step(); err != nil {
			if !errors.Is(err, walk.ErrPathExhausted) {
				m.err = err
			}
			return
		}
		m.windowSteps++
	}
}

func (m *watchModel) rebuild(cfg *config.Config, status string) {
	s, err := m.build(cfg)
	if err != nil {
		m.err = err
		return
	}
	m.sim = s
	m.err = nil
	m.status = status
}

func (m *watchModel) save() {
	st := m.sim.Walker.Stats()
	path := filepath.Join(m.svgDir, fmt.Sprintf("antwalk-%s-%d.svg", m.sim.ID.String()[:8], st.Steps))
	if err := writeSVG(path, m.sim); err != nil {
		m.err = err
		return
	}
	m.status = "saved " + path
}

func (m watchModel) View() string {
	var b strings.Builder

	g := m.sim.Map.Grid()
	b.WriteString(titleStyle.Render("antwalk"))
	b.WriteString(subtleStyle.Render(fmt.Sprintf("  run %s • %dx%d • %s",
		m.sim.ID.String()[:8], g.Width, g.Height, m.sim.Walker.Policy())))
	b.WriteString("\n")
	b.WriteString(gridStyle.Render(strings.TrimSuffix(render.Terminal(m.sim.Frame()), "\n")))
	b.WriteString("\n")

	st := m.sim.Walker.Stats()
	line := fmt.Sprintf("steps %d • backtracks %d • exhaustions %d • path %d • excluded %d • %d/frame • %.0f steps/s",
		st.Steps, st.Backtracks, st.Exhaustions,
		len(m.sim.Walker.Path()), len(m.sim.Walker.Exclusions()),
		m.stepsPerFrame, m.rate)
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
	case m.sim.Walker.Halted():
		b.WriteString(warnStyle.Render("halted (path exhausted) • " + line))
	case m.paused:
		b.WriteString(warnStyle.Render("paused • " + line))
	default:
		b.WriteString(okStyle.Render(line))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(subtleStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
