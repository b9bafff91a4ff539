package engine

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/JuanFKurucz/game-particles/internal/render"
)

// Draw clears the surface and redraws the whole field, no partial
// invalidation. Order: targets with their glow, collectors, plain
// particles and bursts, then the proximity lines. Glow and ring pulses
// are keyed to the wall clock, not simulation time, so their phase is
// independent of frame rate. A missing surface is a no-op frame.
func (e *Engine) Draw(screen *ebiten.Image) {
	if screen == nil || e.width <= 0 || e.height <= 0 {
		return
	}
	screen.Fill(render.Background)

	t := float64(e.now().UnixMilli()) / 1000
	pulse := 0.5 + 0.5*math.Sin(t*4)

	for i := range e.entities {
		p := e.parts.Get(e.entities[i])
		if !p.IsTarget {
			continue
		}
		x, y := float32(p.X), float32(p.Y)
		glow := float32(p.Size * (3 + pulse*2))
		vector.DrawFilledCircle(screen, x, y, glow, render.WithAlpha(render.TargetGlow, 0.25*(0.5+pulse*0.5)), true)
		vector.DrawFilledCircle(screen, x, y, float32(p.Size*1.5), render.WithAlpha(render.TargetCyan, p.Alpha+0.3), true)
	}

	for i := range e.entities {
		p := e.parts.Get(e.entities[i])
		if !p.IsCollector {
			continue
		}
		x, y := float32(p.X), float32(p.Y)
		ring := float32(p.Size * (2.5 + pulse))
		vector.StrokeCircle(screen, x, y, ring, 1.5, render.WithAlpha(render.CollectorGold, 0.6+pulse*0.4), true)
		vector.DrawFilledCircle(screen, x, y, float32(p.Size), render.WithAlpha(render.CollectorGold, p.Alpha), true)
	}

	burstClr := render.BurstWhite
	if e.progression {
		burstClr = render.BurstCyan
	}
	for i := range e.entities {
		p := e.parts.Get(e.entities[i])
		if p.IsTarget || p.IsCollector {
			continue
		}
		clr := render.ParticleBlue
		if p.Burst {
			clr = burstClr
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), render.WithAlpha(clr, p.Alpha), true)
	}

	e.drawLinks(screen)
}

// drawLinks strokes a line between every particle pair closer than the
// connect distance, fading with separation. O(n²), acceptable at this
// population scale.
func (e *Engine) drawLinks(screen *ebiten.Image) {
	maxD := e.tuning.ConnectDistance
	if maxD <= 0 {
		return
	}
	for i := 0; i < len(e.entities); i++ {
		a := e.parts.Get(e.entities[i])
		for j := i + 1; j < len(e.entities); j++ {
			b := e.parts.Get(e.entities[j])
			d := math.Hypot(b.X-a.X, b.Y-a.Y)
			if d >= maxD {
				continue
			}
			alpha := (1 - d/maxD) * 0.35
			vector.StrokeLine(screen,
				float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
				1, render.WithAlpha(render.LineWhite, alpha), true)
		}
	}
}
