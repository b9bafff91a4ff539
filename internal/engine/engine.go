package engine

import (
	"math/rand/v2"
	"time"

	"github.com/mlange-42/ark/ecs"
)

// Interaction latch thresholds. Once crossed they never revert
// within a session.
const (
	showScoreAfter = 1000 * time.Millisecond
	hideHintAfter  = 2000 * time.Millisecond
)

// uiTakeoverScore is the cumulative score at which the widget is allowed
// to escalate its visual presence.
const uiTakeoverScore = 100

// Pointer is one pointer sample in surface coordinates (device pixels).
// A zero-valued sample means "no pointer yet"; the engine falls back to
// the last known non-zero sample.
type Pointer struct {
	X, Y   float64
	Moving bool
}

// Options configures an Engine.
type Options struct {
	// Progression enables the currency/upgrade layer. With it off the
	// engine runs the plain arcade field: collections score but earn
	// nothing, and purchases are rejected.
	Progression bool

	// Seed fixes the random source. Zero derives a seed from the clock.
	Seed uint64

	// Now is the clock used for steering cadence, interaction latches
	// and glow phase. Nil means time.Now.
	Now func() time.Time
}

// Engine owns the particle population and the progression state for the
// lifetime of the widget. All mutation happens on the single update
// callback; the shell only ever sees Projection snapshots.
type Engine struct {
	tuning      Tuning
	progression bool

	state GameState

	// Particle storage. Each particle is one entity holding a single
	// Particle component; entities preserves creation order because the
	// simulation's collection and behavior-assignment semantics are
	// index-based.
	world    *ecs.World
	parts    *ecs.Map[Particle]
	entities []ecs.Entity

	width, height float64

	rng *rand.Rand
	now func() time.Time

	pointer          Pointer
	interactionStart time.Time
	showScore        bool
	showHint         bool
	showShop         bool
	uiTakeover       bool

	// OnCollect, if set, is invoked once per collection event.
	OnCollect func(byPlayer bool)
	// OnPurchase, if set, is invoked once per successful purchase.
	OnPurchase func(id UpgradeID)
}

// New creates an engine for a surface of the given size and builds the
// initial population.
func New(tuning Tuning, width, height float64, opts Options) *Engine {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(now().UnixNano())
	}

	w := ecs.NewWorld(256)
	e := &Engine{
		tuning:      tuning,
		progression: opts.Progression,
		world:       w,
		parts:       ecs.NewMap[Particle](w),
		width:       width,
		height:      height,
		rng:         rand.New(rand.NewPCG(seed, seed>>16|3)),
		now:         now,
		showHint:    true,
	}
	e.InitParticles()
	return e
}

// EffectiveMax returns the current particle cap:
// baseMax * (1 + 0.2 per maxParticles level), floored.
func (e *Engine) EffectiveMax() int {
	lvl := e.state.Upgrades.MaxParticles
	return int(float64(e.tuning.BaseMaxParticles) * (1 + float64(lvl)*0.2))
}

// interactionRadius is the pointer repulsion radius after upgrades.
func (e *Engine) interactionRadius() float64 {
	lvl := e.state.Upgrades.InteractionRadius
	return e.tuning.BaseInteractionRadius * (1 + float64(lvl)*0.1)
}

// spawnChance is the per-frame target replenishment probability.
func (e *Engine) spawnChance() float64 {
	lvl := e.state.Upgrades.TargetSpawnRate
	return e.tuning.BaseTargetSpawnRate * (1 + float64(lvl)*0.2)
}

// speedFactor scales all steering impulses.
func (e *Engine) speedFactor() float64 {
	return 1 + float64(e.state.Upgrades.ParticleSpeed)*0.1
}

// sizeFactor scales particle radii.
func (e *Engine) sizeFactor() float64 {
	return 1 + float64(e.state.Upgrades.ParticleSize)*0.1
}

// InitParticles rebuilds the entire population from scratch for the
// current upgrade state and surface size. Behaviors are assigned
// deterministically by creation index, so two engines with the same
// seed, upgrades and size produce identical populations. Runs on first
// mount, on resize and after every successful purchase.
func (e *Engine) InitParticles() {
	for _, ent := range e.entities {
		e.world.RemoveEntity(ent)
	}
	e.entities = e.entities[:0]

	n := e.EffectiveMax()
	collectors := e.state.Upgrades.AutoCollectors
	autonomyLvl := e.state.Upgrades.AutonomyLevel
	size := e.sizeFactor()
	now := e.now()

	for i := 0; i < n; i++ {
		p := Particle{
			X:           e.rng.Float64() * e.width,
			Y:           e.rng.Float64() * e.height,
			VX:          (e.rng.Float64() - 0.5) * e.speedFactor(),
			VY:          (e.rng.Float64() - 0.5) * e.speedFactor(),
			Size:        (e.tuning.BaseParticleSize + e.rng.Float64()*2) * size,
			Alpha:       0.3 + e.rng.Float64()*0.5,
			LastChange:  now,
			ChangeDelay: e.steerDelay(),
		}

		switch {
		case i < collectors:
			p.Behavior = BehaviorCollector
			p.IsCollector = true
			p.Autonomy = 0.5
		case i%10 == 0 && autonomyLvl > 2:
			p.Behavior = BehaviorSeeker
			p.Autonomy = e.drawAutonomy()
		case i%15 == 0 && autonomyLvl > 3:
			p.Behavior = BehaviorAvoider
			p.Autonomy = e.drawAutonomy()
		default:
			p.Behavior = BehaviorNormal
			p.Autonomy = e.drawAutonomy()
		}

		// The field always starts with a few collectibles in play.
		if i < 3 {
			p.IsTarget = true
		}

		e.entities = append(e.entities, e.parts.NewEntity(&p))
	}
}

// drawAutonomy picks a particle's self-steering strength, weighted by
// the autonomy upgrade and capped at MaxAutonomy.
func (e *Engine) drawAutonomy() float64 {
	a := e.rng.Float64()*0.2 + float64(e.state.Upgrades.AutonomyLevel)*0.1
	if a > MaxAutonomy {
		a = MaxAutonomy
	}
	return a
}

// steerDelay picks the wait until a particle's next steering decision:
// 1000ms plus up to 2000ms of jitter.
func (e *Engine) steerDelay() time.Duration {
	return time.Duration(1000+e.rng.IntN(2000)) * time.Millisecond
}

// Purchase buys one level of the named upgrade. The cost is computed
// internally from the current level; callers cannot influence it. On
// success the currency is deducted, the level bumped, and the whole
// population reinitialized to pick up the new parameters. Insufficient
// currency (or a non-progression engine) rejects silently.
func (e *Engine) Purchase(id UpgradeID) bool {
	if !e.progression || id >= UpgradeCount {
		return false
	}
	cost := UpgradeCost(id, e.state.Upgrades.Level(id))
	if e.state.Currency < cost {
		return false
	}
	e.state.Currency -= cost
	e.state.Upgrades.bump(id)
	e.InitParticles()
	if e.OnPurchase != nil {
		e.OnPurchase(id)
	}
	return true
}

// Resize rebuilds the surface dimensions and the full population. No
// in-flight particle state survives a resize.
func (e *Engine) Resize(width, height float64) {
	if width == e.width && height == e.height {
		return
	}
	e.width = width
	e.height = height
	e.InitParticles()
}

// Projection returns the read-only state snapshot for the shell.
func (e *Engine) Projection() Projection {
	return Projection{
		Score:      e.state.Score,
		Currency:   e.state.Currency,
		Upgrades:   e.state.Upgrades,
		ShowScore:  e.showScore,
		ShowHint:   e.showHint,
		ShowShop:   e.showShop,
		UITakeover: e.uiTakeover,
	}
}

// Count returns the current population size, bursts included.
func (e *Engine) Count() int { return len(e.entities) }

// particle returns the particle at a creation index. Engine-internal;
// the shell never touches particles directly.
func (e *Engine) particle(i int) *Particle {
	return e.parts.Get(e.entities[i])
}
