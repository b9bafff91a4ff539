package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/JuanFKurucz/game-particles/assets"
	"github.com/JuanFKurucz/game-particles/internal/audio"
	"github.com/JuanFKurucz/game-particles/internal/config"
	"github.com/JuanFKurucz/game-particles/internal/engine"
	"github.com/JuanFKurucz/game-particles/internal/render"
	"github.com/JuanFKurucz/game-particles/internal/stats"
)

const (
	defaultWidth  = 960
	defaultHeight = 600
	title         = "Particle Field"

	saveInterval = 30 * time.Second

	glyphW   = 7  // basicfont advance, used for HUD layout
	shopCols = 36 // widest shop row, in glyphs
)

var shopKeys = [engine.UpgradeCount]ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
	ebiten.KeyDigit6,
	ebiten.KeyDigit7,
}

// Game is the Ebitengine game struct: the presentation shell. It owns
// input sampling and HUD rendering; all simulation and progression state
// lives in the engine.
type Game struct {
	eng    *engine.Engine
	text   *render.Text
	sound  *audio.Player
	ledger *stats.Store

	progression bool
	savePath    string

	w, h int // layout size in device pixels

	lastFrame    time.Time
	lastSave     time.Time
	sessionStart time.Time

	lastMX, lastMY int
	bestScore      int
	collections    int // collections this session, for the ledger
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	delta := 16 * time.Millisecond
	if !g.lastFrame.IsZero() {
		delta = now.Sub(g.lastFrame)
	}
	g.lastFrame = now

	// Cursor position is already in layout (device-pixel) space.
	mx, my := ebiten.CursorPosition()
	moving := mx != g.lastMX || my != g.lastMY
	g.lastMX, g.lastMY = mx, my

	g.eng.Step(delta, engine.Pointer{X: float64(mx), Y: float64(my), Moving: moving})

	g.handleShopInput(mx, my)

	if g.progression && now.Sub(g.lastSave) >= saveInterval {
		if err := g.eng.Save(g.savePath); err != nil {
			log.Printf("periodic save failed: %v", err)
		}
		g.lastSave = now
	}

	return nil
}

// handleShopInput relays purchase commands: number keys 1-7 or a click
// on a shop row.
func (g *Game) handleShopInput(mx, my int) {
	if !g.eng.Projection().ShowShop {
		return
	}
	for id, key := range shopKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.purchase(engine.UpgradeID(id))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if id, ok := g.shopRowAt(float64(mx), float64(my)); ok {
			g.purchase(id)
		}
	}
}

func (g *Game) purchase(id engine.UpgradeID) {
	if g.eng.Purchase(id) {
		g.sound.Purchase()
	}
}

// hudScale is the HUD text scale: 2x glyphs, adjusted for the display.
func (g *Game) hudScale() float64 {
	return 2 * ebiten.Monitor().DeviceScaleFactor()
}

// shopGeom returns the shop panel origin and row height in device
// pixels. Update (hit testing) and Draw share it so the clickable rows
// are exactly the drawn rows.
func (g *Game) shopGeom() (panelX, firstRowY, rowH float64) {
	scale := g.hudScale()
	panelX = float64(g.w) - float64(shopCols+2)*glyphW*scale
	rowH = g.text.LineHeight(scale) * 1.4
	firstRowY = 8*scale + rowH
	return panelX, firstRowY, rowH
}

// shopRowAt maps a pointer position to a shop row, if any.
func (g *Game) shopRowAt(mx, my float64) (engine.UpgradeID, bool) {
	panelX, firstRowY, rowH := g.shopGeom()
	if mx < panelX || my < firstRowY {
		return 0, false
	}
	row := int((my - firstRowY) / rowH)
	if row < 0 || row >= int(engine.UpgradeCount) {
		return 0, false
	}
	return engine.UpgradeID(row), true
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.eng.Draw(screen)

	proj := g.eng.Projection()
	scale := g.hudScale()
	lh := g.text.LineHeight(scale)

	if proj.UITakeover {
		vector.DrawFilledRect(screen, 0, 0, float32(g.w), float32(g.h), render.Takeover, false)
	}

	if proj.ShowHint {
		hint := "move through the glow to collect"
		x := (float64(g.w) - g.text.Width(hint, scale)) / 2
		g.text.Draw(screen, hint, x, float64(g.h)/2-lh, scale, render.HUDDim)
	}

	if proj.ShowScore {
		y := 8 * scale
		g.text.Draw(screen, fmt.Sprintf("score %d", proj.Score), 8*scale, y, scale, render.HUDText)
		y += lh
		if g.progression {
			g.text.Draw(screen, fmt.Sprintf("energy %d", proj.Currency), 8*scale, y, scale, render.HUDAccent)
			y += lh
		}
		if g.bestScore > 0 {
			g.text.Draw(screen, fmt.Sprintf("best session %d", g.bestScore), 8*scale, y, scale, render.HUDDim)
		}
	}

	if proj.ShowShop {
		g.drawShop(screen, proj, scale)
	}

	fps := fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	g.text.Draw(screen, fps, 8*scale, float64(g.h)-lh-4*scale, scale/2, render.HUDDim)
}

// drawShop renders one row per upgrade: index, name, level and the cost
// of the next level, dimmed when unaffordable.
func (g *Game) drawShop(screen *ebiten.Image, proj engine.Projection, scale float64) {
	panelX, firstRowY, rowH := g.shopGeom()

	g.text.Draw(screen, "upgrades", panelX, 8*scale, scale, render.HUDText)
	for id := engine.UpgradeID(0); id < engine.UpgradeCount; id++ {
		level := proj.Upgrades.Level(id)
		cost := engine.UpgradeCost(id, level)
		line := fmt.Sprintf("%d %-17s lv%-2d cost %d", id+1, engine.UpgradeName(id), level, cost)
		clr := render.HUDDim
		if proj.Currency >= cost {
			clr = render.HUDWarn
		}
		g.text.Draw(screen, line, panelX, firstRowY+float64(id)*rowH, scale, clr)
	}
}

// Layout sizes the drawable surface in device pixels. A size change
// invalidates and rebuilds the particle population.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	if w != g.w || h != g.h {
		g.w, g.h = w, h
		g.eng.Resize(float64(w), float64(h))
	}
	return w, h
}

// shutdown performs the final synchronous save and records the session.
func (g *Game) shutdown() {
	if g.progression {
		if err := g.eng.Save(g.savePath); err != nil {
			log.Printf("final save failed: %v", err)
		}
	}
	proj := g.eng.Projection()
	if err := g.ledger.RecordSession(g.sessionStart, time.Now(), proj.Score, proj.Currency, g.collections); err != nil {
		log.Printf("session not recorded: %v", err)
	}
	if err := g.ledger.Close(); err != nil {
		log.Printf("close stats ledger: %v", err)
	}
}

func main() {
	width := config.GetEnvInt("PARTICLES_WINDOW_W", defaultWidth)
	height := config.GetEnvInt("PARTICLES_WINDOW_H", defaultHeight)
	arcade := config.GetEnvBool("PARTICLES_ARCADE")
	mute := config.GetEnvBool("PARTICLES_MUTE")
	seed := config.GetEnvInt("PARTICLES_SEED", 0)
	saveDir := config.GetEnv("PARTICLES_SAVE_DIR", "data")

	data, err := assets.Config.ReadFile("config/tuning.json")
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}
	tuning, err := engine.LoadTuning(data)
	if err != nil {
		log.Fatalf("parse tuning: %v", err)
	}

	eng := engine.New(*tuning, float64(width), float64(height), engine.Options{
		Progression: !arcade,
		Seed:        uint64(seed),
	})

	savePath := filepath.Join(saveDir, "save.json")
	if !arcade {
		if err := eng.Load(savePath); err != nil {
			log.Printf("starting fresh: %v", err)
		}
	}

	ledger, err := stats.Open(filepath.Join(saveDir, "stats.db"))
	if err != nil {
		log.Printf("stats ledger disabled: %v", err)
		ledger = nil
	}
	best, err := ledger.BestScore()
	if err != nil {
		log.Printf("best score unavailable: %v", err)
	}

	sound, err := audio.New(mute)
	if err != nil {
		log.Printf("audio disabled: %v", err)
	}

	g := &Game{
		eng:          eng,
		text:         render.NewText(),
		sound:        sound,
		ledger:       ledger,
		progression:  !arcade,
		savePath:     savePath,
		lastSave:     time.Now(),
		sessionStart: time.Now(),
		bestScore:    best,
	}
	eng.OnCollect = func(byPlayer bool) {
		g.collections++
		g.sound.Collect(byPlayer)
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	g.shutdown()
}
