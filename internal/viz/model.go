package viz

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/san-kum/bubblescroll/internal/clock"
	"github.com/san-kum/bubblescroll/internal/config"
	"github.com/san-kum/bubblescroll/internal/effect"
	"github.com/san-kum/bubblescroll/internal/engine"
	"github.com/san-kum/bubblescroll/internal/particle"
)

const (
	panelWidth   = 30
	statsWidth   = 36
	historySize  = 120
	wheelLines   = 3
	minPageWidth = 20
)

type phase int

const (
	phaseLoading phase = iota
	phasePage
)

type frameMsg struct {
	gen int
	at  time.Time
}

type Options struct {
	Config *config.Config
	Clock  clock.Clock
	Logger zerolog.Logger
}

type blockSpring struct {
	pos, vel float64
}

// Model is the terminal page: a loading screen, then a scrollable stack
// of sections beside the bubble.
type Model struct {
	cfg     *config.Config
	clock   clock.Clock
	eng     *engine.Engine
	emitter *particle.Emitter
	log     zerolog.Logger

	keys    keyMap
	help    help.Model
	vp      viewport.Model
	spinner spinner.Model
	canvas  *Canvas
	theme   Theme
	styles  styles

	phase         phase
	started       time.Time
	gen           int
	interval      time.Duration
	frame         engine.Frame
	spring        harmonica.Spring
	springs       []blockSpring
	history       []float64
	width, height int
	showStats     bool
	quitting      bool
}

func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	emitter := particle.NewEmitter(cfg.Particles)
	eng := engine.New(engine.Options{Config: cfg, Clock: clk, Particles: emitter, Logger: opts.Logger})

	springs := make([]blockSpring, len(eng.Blocks()))
	for i := range springs {
		springs[i].pos = 1
	}

	m := Model{
		cfg:       cfg,
		clock:     clk,
		eng:       eng,
		emitter:   emitter,
		log:       opts.Logger,
		keys:      defaultKeys(),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		phase:     phaseLoading,
		started:   clk.Now(),
		interval:  cfg.FrameInterval(),
		spring:    harmonica.NewSpring(harmonica.FPS(cfg.FPS), 6.0, 0.5),
		springs:   springs,
		history:   make([]float64, 0, historySize),
		showStats: true,
	}
	m.setTheme(GetTheme(cfg.Theme))
	m.resize(80, 24)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.tick())
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg{gen: gen, at: t} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollTo(m.vp.YOffset - wheelLines)
		case tea.MouseButtonWheelDown:
			m.scrollTo(m.vp.YOffset + wheelLines)
		}
	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case frameMsg:
		if msg.gen != m.gen || m.quitting {
			return m, nil
		}
		m.advance()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.gen++
		m.eng.Teardown()
		m.log.Info().Msg("terminal page closed")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	case key.Matches(msg, m.keys.Theme):
		m.setTheme(NextTheme(m.theme))
		m.log.Debug().Str("theme", m.theme.Name).Msg("theme changed")
	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats
		m.resize(m.width, m.height)
	case key.Matches(msg, m.keys.Up):
		m.scrollTo(m.vp.YOffset - 1)
	case key.Matches(msg, m.keys.Down):
		m.scrollTo(m.vp.YOffset + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollTo(m.vp.YOffset - m.vp.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollTo(m.vp.YOffset + m.vp.Height)
	case key.Matches(msg, m.keys.Top):
		m.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollTo(m.vp.TotalLineCount())
	}
	return m, nil
}

// scrollTo moves the page and reports the new position to the engine. Input
// during loading is ignored, and so is input that does not move the page.
func (m *Model) scrollTo(offset int) {
	if m.phase != phasePage {
		return
	}
	before := m.vp.YOffset
	m.vp.SetYOffset(offset)
	if m.vp.YOffset == before {
		return
	}
	m.eng.Scroll(m.sample())
}

// sample measures the page in lines.
func (m *Model) sample() effect.ScrollSample {
	return effect.ScrollSample{
		PositionPx:       float64(m.vp.YOffset),
		ViewportHeightPx: float64(m.vp.Height),
		DocumentHeightPx: float64(m.vp.TotalLineCount()),
	}
}

func (m *Model) advance() {
	now := m.clock.Now()
	if m.phase == phaseLoading && now.Sub(m.started) >= m.cfg.Loading {
		m.phase = phasePage
		m.eng.Activate()
		m.log.Info().Dur("loading", now.Sub(m.started)).Msg("page active")
	}
	m.frame = m.eng.Tick()
	for i, st := range m.frame.Blocks {
		if i >= len(m.springs) {
			break
		}
		s := &m.springs[i]
		s.pos, s.vel = m.spring.Update(s.pos, s.vel, st.Scale)
	}
	if m.phase == phasePage {
		m.history = append(m.history, m.frame.Progress)
		if len(m.history) > historySize {
			m.history = m.history[1:]
		}
	}
	m.refresh()
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.styles = newStyles(t)
	m.spinner.Style = lipgloss.NewStyle().Foreground(t.Ink)
	m.refresh()
}

// resize lays the page out for a w x h terminal, keeping the scroll
// progress where it was.
func (m *Model) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	progress := m.sample().Progress()
	m.width, m.height = w, h

	pageWidth := w - panelWidth - 2
	if m.showStats {
		pageWidth -= statsWidth + 1
	}
	if pageWidth < minPageWidth {
		pageWidth = minPageWidth
	}
	pageHeight := h - lipgloss.Height(m.styles.help.Render(m.help.View(m.keys)))
	if pageHeight < 3 {
		pageHeight = 3
	}

	if m.vp.Width == 0 && m.vp.Height == 0 {
		m.vp = viewport.New(pageWidth, pageHeight)
	} else {
		m.vp.Width, m.vp.Height = pageWidth, pageHeight
	}
	m.canvas = NewCanvas(panelWidth, pageHeight-2)
	m.refresh()

	scrollable := m.vp.TotalLineCount() - m.vp.Height
	if scrollable > 0 {
		m.vp.SetYOffset(int(math.Round(progress * float64(scrollable))))
	}
}

func (m *Model) refresh() {
	if m.vp.Height == 0 {
		return
	}
	m.vp.SetContent(m.renderSections())
}

// letterGap maps a displayed text scale to extra spaces between letters.
func letterGap(scale float64) int {
	gap := int(math.Round((scale - 1) * 2))
	if gap < 0 {
		return 0
	}
	return gap
}

func (m *Model) renderSections() string {
	blocks := m.eng.Blocks()
	sections := make([]string, len(blocks))
	for i, b := range blocks {
		style := m.styles.sectionA
		if b.Variant == effect.VariantB {
			style = m.styles.sectionB
		}
		scale := 1.0
		if i < len(m.springs) {
			scale = m.springs[i].pos
		}
		text := Spaced(b.Content, letterGap(scale))
		style = style.Bold(scale > 1.05).
			Width(m.vp.Width).
			Height(m.vp.Height).
			MaxHeight(m.vp.Height).
			Padding(0, 2).
			AlignVertical(lipgloss.Center)
		sections[i] = style.Render(text)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == phaseLoading {
		return m.viewLoading()
	}
	cols := []string{m.vp.View(), m.viewBubble()}
	if m.showStats {
		cols = append(cols, m.viewStats())
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	return lipgloss.JoinVertical(lipgloss.Left, row, m.styles.help.Render(m.help.View(m.keys)))
}

// Run starts the terminal page and blocks until it is closed.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
