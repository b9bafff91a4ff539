package engine

import (
	"math"
	"time"
)

// Per-frame physics constants.
const (
	maxFrameMS    = 32.0 // delta clamp so a dropped frame can't apply an outsized impulse
	frameUnitMS   = 16.0 // one normalized frame unit
	velocityDamp  = 0.98 // isotropic damping, applied every frame regardless of delta
	bounceRetain  = 0.7  // perpendicular velocity kept on an edge bounce
	minTargets    = 3    // replenish while fewer targets than this are in play
	collectorGain = 0.2  // fixed collector steering impulse, before the speed factor
)

// Step advances the simulation by one frame. Phases run in a fixed
// order: interaction latch, target replenishment, autonomous steering,
// collector auto-collection, pointer repulsion and collection,
// integration and containment, population trim. Callers must not assume
// any other interleaving.
func (e *Engine) Step(delta time.Duration, sample Pointer) {
	ms := float64(delta.Milliseconds())
	if ms > maxFrameMS {
		ms = maxFrameMS
	}
	nd := ms / frameUnitMS

	// An origin sample means "unset"; keep the last known position.
	if sample.X != 0 || sample.Y != 0 {
		e.pointer = sample
	}

	e.updateLatches()
	e.replenishTargets()

	// Role particles created during this frame (bursts) are appended
	// past count and skip this frame's phases.
	count := len(e.entities)

	e.steer(count)
	e.autoCollect(count)
	e.pointerPhase(count, nd)
	e.integrate(nd)
	e.trim()

	e.state.LastUpdate = e.now()
}

// updateLatches drives the one-way interaction latches: the first
// non-zero pointer sample starts the timer; the HUD appears after 1s of
// interaction and the onboarding hint disappears after 2s.
func (e *Engine) updateLatches() {
	if e.pointer.X == 0 && e.pointer.Y == 0 {
		return
	}
	if e.interactionStart.IsZero() {
		e.interactionStart = e.now()
		return
	}
	elapsed := e.now().Sub(e.interactionStart)
	if elapsed >= showScoreAfter {
		e.showScore = true
	}
	if elapsed >= hideHintAfter {
		e.showHint = false
	}
}

// replenishTargets promotes a random eligible particle to target while
// fewer than minTargets are in play. The roll is independent per frame,
// which yields an expected inter-spawn interval rather than a fixed
// timer.
func (e *Engine) replenishTargets() {
	targets := 0
	for i := range e.entities {
		if e.parts.Get(e.entities[i]).IsTarget {
			targets++
		}
	}
	if targets >= minTargets {
		return
	}
	if e.rng.Float64() >= e.spawnChance() {
		return
	}

	var eligible []int
	for i := range e.entities {
		p := e.parts.Get(e.entities[i])
		if !p.IsTarget && !p.IsCollector && !p.Burst {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return
	}
	e.parts.Get(e.entities[eligible[e.rng.IntN(len(eligible))]]).IsTarget = true
}

// steer applies autonomous steering impulses. Collectors re-decide every
// frame; everything else only when its randomized cadence has elapsed.
func (e *Engine) steer(count int) {
	now := e.now()
	speed := e.speedFactor()

	for i := 0; i < count; i++ {
		p := e.parts.Get(e.entities[i])
		if p.Burst {
			continue
		}

		if p.IsCollector {
			if tx, ty, ok := e.nearestTarget(p.X, p.Y, i); ok {
				dx, dy := tx-p.X, ty-p.Y
				d := math.Hypot(dx, dy)
				if d > 0 {
					p.VX += dx / d * collectorGain * speed
					p.VY += dy / d * collectorGain * speed
				}
			} else {
				// No target anywhere: wander.
				p.VX += (e.rng.Float64() - 0.5) * collectorGain * speed
				p.VY += (e.rng.Float64() - 0.5) * collectorGain * speed
			}
			continue
		}

		if p.Autonomy <= 0 || now.Sub(p.LastChange) < p.ChangeDelay {
			continue
		}
		p.LastChange = now
		p.ChangeDelay = e.steerDelay()

		switch p.Behavior {
		case BehaviorSeeker:
			if tx, ty, ok := e.nearestTarget(p.X, p.Y, i); ok {
				dx, dy := tx-p.X, ty-p.Y
				d := math.Hypot(dx, dy)
				if d > 0 {
					p.VX += dx / d * p.Autonomy * 0.05 * speed
					p.VY += dy / d * p.Autonomy * 0.05 * speed
				}
				continue
			}
			fallthrough
		case BehaviorNormal:
			p.VX += (e.rng.Float64() - 0.5) * p.Autonomy * 0.05 * speed
			p.VY += (e.rng.Float64() - 0.5) * p.Autonomy * 0.05 * speed
		case BehaviorAvoider:
			// No actual pointer avoidance, just stronger jitter.
			p.VX += (e.rng.Float64() - 0.5) * p.Autonomy * 0.1 * speed
			p.VY += (e.rng.Float64() - 0.5) * p.Autonomy * 0.1 * speed
		}
	}
}

// nearestTarget is a pure query over the population as it stands right
// now: the closest target particle to (x, y), excluding the given index.
func (e *Engine) nearestTarget(x, y float64, exclude int) (tx, ty float64, ok bool) {
	best := math.MaxFloat64
	for i := range e.entities {
		if i == exclude {
			continue
		}
		p := e.parts.Get(e.entities[i])
		if !p.IsTarget {
			continue
		}
		d := math.Hypot(p.X-x, p.Y-y)
		if d < best {
			best = d
			tx, ty = p.X, p.Y
			ok = true
		}
	}
	return tx, ty, ok
}

// autoCollect lets every collector harvest the first target within the
// collect radius. O(collectors × particles) per frame, fine at this
// entity count.
func (e *Engine) autoCollect(count int) {
	for i := 0; i < count; i++ {
		c := e.parts.Get(e.entities[i])
		if !c.IsCollector {
			continue
		}
		for j := 0; j < count; j++ {
			if j == i {
				continue
			}
			p := e.parts.Get(e.entities[j])
			if !p.IsTarget {
				continue
			}
			if math.Hypot(p.X-c.X, p.Y-c.Y) <= e.tuning.CollectRadius {
				e.collect(j, false)
				break
			}
		}
	}
}

// pointerPhase handles player collection and repulsion against the
// effective pointer sample.
func (e *Engine) pointerPhase(count int, nd float64) {
	if e.pointer.X == 0 && e.pointer.Y == 0 {
		return
	}
	radius := e.interactionRadius()

	for i := 0; i < count; i++ {
		p := e.parts.Get(e.entities[i])
		if p.Burst {
			continue
		}
		dx := p.X - e.pointer.X
		dy := p.Y - e.pointer.Y
		d := math.Hypot(dx, dy)

		if p.IsTarget && d <= e.tuning.CollectRadius {
			e.collect(i, true)
			// Spawning bursts is a structural world change; the component
			// pointer must be re-fetched before the repulsion write.
			p = e.parts.Get(e.entities[i])
		}

		if d < radius && d > 0 {
			f := (radius - d) / radius * e.tuning.RepulsionStrength * nd
			p.VX += dx / d * f
			p.VY += dy / d * f
		}
	}
}

// integrate advances positions, damps velocity, bounces off edges and
// ages burst particles out.
func (e *Engine) integrate(nd float64) {
	for i := len(e.entities) - 1; i >= 0; i-- {
		p := e.parts.Get(e.entities[i])

		p.X += p.VX * nd
		p.Y += p.VY * nd
		p.VX *= velocityDamp
		p.VY *= velocityDamp

		// Inelastic bounce: clamp to the edge, invert and attenuate the
		// perpendicular velocity component.
		if p.X < 0 {
			p.X = 0
			p.VX = -p.VX * bounceRetain
		} else if p.X > e.width {
			p.X = e.width
			p.VX = -p.VX * bounceRetain
		}
		if p.Y < 0 {
			p.Y = 0
			p.VY = -p.VY * bounceRetain
		} else if p.Y > e.height {
			p.Y = e.height
			p.VY = -p.VY * bounceRetain
		}

		if p.Burst {
			p.Life -= nd
			p.Alpha = p.Life / burstLife
			if p.Life <= 0 {
				e.removeAt(i)
			}
		}
	}
}

// trim enforces the population invariant: whenever bursts push the count
// over 1.5× the cap, drop bursts (oldest first) back down to the cap.
// Role particles are never trimmed.
func (e *Engine) trim() {
	max := e.EffectiveMax()
	if len(e.entities) <= max*3/2 {
		return
	}
	for i := 0; i < len(e.entities) && len(e.entities) > max; {
		if e.parts.Get(e.entities[i]).Burst {
			e.removeAt(i)
			continue
		}
		i++
	}
}

// removeAt deletes the entity at index i, preserving the order of the
// rest of the population.
func (e *Engine) removeAt(i int) {
	e.world.RemoveEntity(e.entities[i])
	e.entities = append(e.entities[:i], e.entities[i+1:]...)
}
