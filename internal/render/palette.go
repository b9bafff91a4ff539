package render

import "image/color"

// Widget palette. Role colors are shared between the field renderer and
// the HUD so upgrades read as the thing they affect.
var (
	Background = color.RGBA{8, 10, 24, 255}

	ParticleBlue  = color.RGBA{110, 140, 255, 255}
	TargetCyan    = color.RGBA{0, 255, 220, 255}
	TargetGlow    = color.RGBA{0, 180, 160, 255}
	CollectorGold = color.RGBA{255, 200, 60, 255}
	LineWhite     = color.RGBA{200, 210, 255, 255}

	// Burst palettes: cyan/green for the progression variant,
	// soft white/blue for the plain arcade field.
	BurstCyan  = color.RGBA{80, 255, 200, 255}
	BurstWhite = color.RGBA{210, 220, 255, 255}

	HUDText   = color.RGBA{235, 240, 255, 255}
	HUDDim    = color.RGBA{120, 130, 160, 255}
	HUDAccent = color.RGBA{0, 255, 220, 255}
	HUDWarn   = color.RGBA{255, 200, 60, 255}
	Takeover  = color.RGBA{40, 0, 60, 40}
)

// WithAlpha scales a color by alpha in [0,1]. Ebitengine expects
// alpha-premultiplied colors, so every channel is scaled.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
