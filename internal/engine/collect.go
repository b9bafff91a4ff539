package engine

import "math"

// burstsPerCollection is how many decorative particles a collection
// scatters at the collected position.
const burstsPerCollection = 10

// collect resolves a collection of the particle at index i. It is
// idempotent: if the particle is no longer a target (the same frame can
// detect a collection from both a collector and the pointer) it is a
// no-op. Score always advances; currency only on a progression engine.
func (e *Engine) collect(i int, byPlayer bool) {
	if i < 0 || i >= len(e.entities) {
		return
	}
	p := e.parts.Get(e.entities[i])
	if !p.IsTarget {
		return
	}
	p.IsTarget = false

	e.spawnBursts(p.X, p.Y)

	e.state.Score++
	e.state.GameStarted = true
	if e.progression {
		e.state.Currency++
		if e.state.Currency > e.state.HighestCurrency {
			e.state.HighestCurrency = e.state.Currency
		}
		e.showShop = true
	}
	if e.state.Score >= uiTakeoverScore {
		e.uiTakeover = true
	}

	if e.OnCollect != nil {
		e.OnCollect(byPlayer)
	}
}

// spawnBursts scatters short-lived decorative particles outward from a
// collected position. Bursts carry no roles and no autonomy; they exist
// only until their lifetime runs out or the trim pass reclaims them.
func (e *Engine) spawnBursts(x, y float64) {
	for k := 0; k < burstsPerCollection; k++ {
		angle := e.rng.Float64() * 2 * math.Pi
		speed := 1 + e.rng.Float64()*3
		p := Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Size:  1 + e.rng.Float64()*2,
			Alpha: 1,
			Burst: true,
			Life:  burstLife,
		}
		e.entities = append(e.entities, e.parts.NewEntity(&p))
	}
}
