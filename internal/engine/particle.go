package engine

import "time"

// Behavior controls a particle's autonomous steering.
type Behavior uint8

const (
	BehaviorNormal Behavior = iota
	BehaviorSeeker
	BehaviorAvoider
	BehaviorCollector
	BehaviorCount // sentinel, not a real behavior
)

// BehaviorName returns the display name for a behavior.
func BehaviorName(b Behavior) string {
	switch b {
	case BehaviorNormal:
		return "Normal"
	case BehaviorSeeker:
		return "Seeker"
	case BehaviorAvoider:
		return "Avoider"
	case BehaviorCollector:
		return "Collector"
	default:
		return "Unknown"
	}
}

// MaxAutonomy caps the self-directed steering strength of any particle.
const MaxAutonomy = 0.8

// burstLife is the lifetime of a decorative burst particle,
// in normalized frame units (one unit ≈ one 16ms frame).
const burstLife = 60.0

// Particle is one simulated entity in the field.
// Role particles (targets, collectors) participate in collection;
// burst particles are decorative only and carry no roles or autonomy.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Alpha  float64

	IsTarget    bool
	IsCollector bool
	Burst       bool
	Life        float64 // remaining burst lifetime; unused for role particles

	Behavior Behavior
	Autonomy float64 // 0..MaxAutonomy; 0 disables autonomous steering

	// Autonomous steering decisions are re-evaluated on a randomized
	// cadence, not every frame.
	LastChange  time.Time
	ChangeDelay time.Duration
}
