package gui

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/bubblescroll/internal/curve"
	"github.com/san-kum/bubblescroll/internal/effect"
	"github.com/san-kum/bubblescroll/internal/gate"
)

const (
	ringCount  = 5
	ringPeriod = 2 * time.Second
)

var ringPulse = curve.New(0, 0.8, 0.5, 1.2, 1, 0.8)

// RingScale is the breathing scale of loading ring i at elapsed.
func RingScale(elapsed time.Duration, ring int) float64 {
	t := elapsed - time.Duration(ring)*ringPeriod/10
	phase := math.Mod(t.Seconds()/ringPeriod.Seconds(), 1)
	if phase < 0 {
		phase++
	}
	return ringPulse.At(phase)
}

// LetterSpacing widens text as it grows.
func LetterSpacing(scale float64) float32 {
	return float32(1 + math.Max(0, scale-1)*12)
}

func (a *App) drawText(text string, x, y float32, size float32, spacing float32, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(x, y), size, spacing, color)
}

func (a *App) drawLoading() {
	elapsed := a.sinceStart()
	cx, cy := float32(screenWidth/2), float32(screenHeight/2)
	spin := float32(elapsed.Seconds() * 90)
	for i := 0; i < ringCount; i++ {
		r := float32(30*(i+1)) * float32(RingScale(elapsed, i))
		start := spin * float32(i%2*2-1)
		rl.DrawRing(rl.NewVector2(cx, cy), r-2, r, start, start+270, 48, rl.Fade(ColInk, 1-float32(i)*0.15))
	}
	a.drawText("loading", cx-40, cy+190, 20, 2, ColText)
}

func (a *App) drawSections() {
	for i, b := range a.Eng.Blocks() {
		top := float32(float64(i)*a.Page.Height - a.Page.Offset)
		h := float32(a.Page.Height)
		if top+h < 0 || top > screenHeight {
			continue
		}
		bg := ColSectionA
		if b.Variant == effect.VariantB {
			bg = ColSectionB
		}
		rl.DrawRectangle(0, int32(top), screenWidth, int32(h)+1, bg)

		scale := a.TextScale(i)
		size := float32(baseFontSize * scale)
		spacing := LetterSpacing(scale)
		dim := rl.MeasureTextEx(a.Font, b.Content, size, spacing)
		if dim.X > screenWidth-80 {
			size *= (screenWidth - 80) / dim.X
			dim = rl.MeasureTextEx(a.Font, b.Content, size, spacing)
		}
		x := (screenWidth - dim.X) / 2
		y := top + (h-dim.Y)/2
		a.drawText(b.Content, x, y, size, spacing, ColInk)
	}
}

func (a *App) drawBubble() {
	v := a.Frame.Bubble()
	if !v.Visible || v.Opacity <= 0 || v.Scale <= 0 {
		return
	}
	cx := float32(screenWidth/2 + v.X)
	cy := float32(screenHeight/2 + v.Y)
	r := float32(v.Radius() * pxPerRem)
	op := float32(v.Opacity)

	rl.DrawCircleGradient(int32(cx), int32(cy), r, rl.Fade(ColInk, op*0.35), rl.Fade(ColInk, op))
	rl.DrawCircleLines(int32(cx), int32(cy), r, rl.Fade(rl.White, op*0.5))
	rl.DrawCircleV(rl.NewVector2(cx-r*0.35, cy-r*0.35), r*0.18, rl.Fade(rl.White, op*0.45))
}

func (a *App) drawDroplets() {
	for _, d := range a.Emitter.Sample(a.Frame.At) {
		pos := rl.NewVector2(float32(d.X*screenWidth), float32(d.Y*screenHeight))
		rl.DrawCircleV(pos, float32(d.SizePx*d.Scale/2), rl.Fade(ColInk, float32(d.Opacity)))
	}
}

func (a *App) drawHUD() {
	f := a.Frame
	a.drawText("bubblescroll", 30, 30, 24, 1, ColInk)
	a.drawText(fmt.Sprintf("progress %3.0f%%", f.Progress*100), 30, 62, 16, 1, ColText)

	state, col := f.Burst.String(), ColText
	if f.Burst == gate.Burst {
		col = ColBurst
	}
	a.drawText(state, screenWidth-120, 30, 16, 1, col)
	if f.Scrolling {
		a.drawText("SCROLLING", screenWidth-120, 50, 16, 1, ColTextDim)
	}

	a.drawText("[WHEEL/J/K] SCROLL  [PGUP/PGDN] PAGE  [HOME/END] JUMP  [ESC] QUIT", 560, screenHeight-40, 14, 1, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, screenHeight-40, 14, 1, ColTextDim)
}
