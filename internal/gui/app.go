package gui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/san-kum/bubblescroll/internal/clock"
	"github.com/san-kum/bubblescroll/internal/config"
	"github.com/san-kum/bubblescroll/internal/effect"
	"github.com/san-kum/bubblescroll/internal/engine"
	"github.com/san-kum/bubblescroll/internal/particle"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	wheelStep    = 80.0
	keyStep      = 40.0
	pxPerRem     = 16.0
	baseFontSize = 48.0
)

var (
	ColInk      = rl.NewColor(0xc5, 0xff, 0x00, 255)
	ColSectionA = rl.NewColor(0x00, 0x00, 0x00, 255)
	ColSectionB = rl.NewColor(0xe4, 0xc1, 0xc1, 255)
	ColText     = rl.NewColor(140, 140, 140, 255)
	ColTextDim  = rl.NewColor(60, 60, 60, 255)
	ColBurst    = rl.NewColor(0xff, 0x47, 0x57, 255)
)

// Page is a scrollable document of sections, one window high each, with
// the bubble fixed in the middle of the window.
type Page struct {
	Height   float64
	Sections int
	Offset   float64
}

// Document is the total height of the page.
func (p Page) Document() float64 { return p.Height * float64(p.Sections) }

// ScrollBy moves the page by d, clamped to the scrollable range, and
// reports whether it moved.
func (p *Page) ScrollBy(d float64) bool {
	return p.ScrollTo(p.Offset + d)
}

func (p *Page) ScrollTo(y float64) bool {
	limit := math.Max(0, p.Document()-p.Height)
	y = math.Max(0, math.Min(limit, y))
	if y == p.Offset {
		return false
	}
	p.Offset = y
	return true
}

func (p Page) Sample() effect.ScrollSample {
	return effect.ScrollSample{
		PositionPx:       p.Offset,
		ViewportHeightPx: p.Height,
		DocumentHeightPx: p.Document(),
	}
}

type App struct {
	Cfg     *config.Config
	Eng     *engine.Engine
	Emitter *particle.Emitter
	Page    Page
	Font    rl.Font
	Loading bool
	Started time.Time
	Frame   engine.Frame

	spring  harmonica.Spring
	springs [][2]float64
	clock   clock.Clock
	log     zerolog.Logger
	quit    bool
}

func initWindow(fps int) {
	rl.InitWindow(screenWidth, screenHeight, "bubblescroll")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationSans-Bold.ttf", 96, nil, 0)
	if font.BaseSize == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config, log zerolog.Logger) *App {
	return newApp(cfg, clock.Real{}, log)
}

func newApp(cfg *config.Config, clk clock.Clock, log zerolog.Logger) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	emitter := particle.NewEmitter(cfg.Particles)
	eng := engine.New(engine.Options{Config: cfg, Clock: clk, Particles: emitter, Logger: log})

	springs := make([][2]float64, len(eng.Blocks()))
	for i := range springs {
		springs[i][0] = 1
	}
	return &App{
		Cfg:     cfg,
		Eng:     eng,
		Emitter: emitter,
		Page:    Page{Height: screenHeight, Sections: len(eng.Blocks())},
		Loading: true,
		Started: clk.Now(),
		spring:  harmonica.NewSpring(harmonica.FPS(cfg.FPS), 6.0, 0.5),
		springs: springs,
		clock:   clk,
		log:     log,
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log zerolog.Logger) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	initWindow(cfg.FPS)
	defer rl.CloseWindow()

	app := NewApp(cfg, log)
	app.Font = loadFont()
	log.Info().Int("width", screenWidth).Int("height", screenHeight).Msg("window opened")
	app.RunLoop()
	app.Eng.Teardown()
	log.Info().Msg("window closed")
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyEscape) {
			a.Quit()
		}
		a.Update()
		a.Draw()
	}
}

// Quit ends RunLoop after the current frame and detaches the effect.
func (a *App) Quit() {
	if a.quit {
		return
	}
	a.quit = true
	a.Eng.Teardown()
	a.log.Info().Msg("quit requested")
}

func (a *App) Quitting() bool { return a.quit }

// sinceStart is the time since the app opened, on the app's clock.
func (a *App) sinceStart() time.Duration {
	return clock.Since(a.clock, a.Started)
}

func (a *App) Update() {
	if a.quit {
		return
	}
	if a.Loading && a.sinceStart() >= a.Cfg.Loading {
		a.Loading = false
		a.Eng.Activate()
		a.log.Info().Msg("page active")
	}
	if !a.Loading {
		a.handleInput()
	}
	a.Frame = a.Eng.Tick()
	for i, st := range a.Frame.Blocks {
		if i < len(a.springs) {
			s := &a.springs[i]
			s[0], s[1] = a.spring.Update(s[0], s[1], st.Scale)
		}
	}
}

func (a *App) handleInput() {
	moved := false
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		moved = a.Page.ScrollBy(-float64(wheel) * wheelStep)
	}
	switch {
	case rl.IsKeyDown(rl.KeyDown), rl.IsKeyDown(rl.KeyJ):
		moved = a.Page.ScrollBy(keyStep) || moved
	case rl.IsKeyDown(rl.KeyUp), rl.IsKeyDown(rl.KeyK):
		moved = a.Page.ScrollBy(-keyStep) || moved
	case rl.IsKeyPressed(rl.KeyPageDown), rl.IsKeyPressed(rl.KeySpace):
		moved = a.Page.ScrollBy(a.Page.Height) || moved
	case rl.IsKeyPressed(rl.KeyPageUp):
		moved = a.Page.ScrollBy(-a.Page.Height) || moved
	case rl.IsKeyPressed(rl.KeyHome):
		moved = a.Page.ScrollTo(0) || moved
	case rl.IsKeyPressed(rl.KeyEnd):
		moved = a.Page.ScrollTo(a.Page.Document()) || moved
	}
	if moved {
		a.Eng.Scroll(a.Page.Sample())
	}
}

// TextScale is the displayed scale of block i, smoothed by a spring.
func (a *App) TextScale(i int) float64 {
	if i < 0 || i >= len(a.springs) {
		return 1
	}
	return a.springs[i][0]
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColSectionA)

	if a.Loading {
		a.drawLoading()
	} else {
		a.drawSections()
		a.drawBubble()
		a.drawDroplets()
		a.drawHUD()
	}

	rl.EndDrawing()
}
