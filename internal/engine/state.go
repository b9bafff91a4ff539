package engine

import (
	"math"
	"time"
)

// UpgradeID identifies a purchasable upgrade axis.
type UpgradeID uint8

const (
	UpgradeMaxParticles UpgradeID = iota
	UpgradeParticleSize
	UpgradeInteractionRadius
	UpgradeTargetSpawnRate
	UpgradeAutoCollectors
	UpgradeParticleSpeed
	UpgradeAutonomyLevel
	UpgradeCount // sentinel, not a real upgrade
)

// upgradeEntry holds static info about an upgrade axis.
type upgradeEntry struct {
	Name     string
	BaseCost int
	Growth   float64
}

// upgradeTable maps UpgradeID to name and cost curve parameters.
// Auto collectors are deliberately the most expensive, steepest-growth
// upgrade since they passively trivialize collection.
var upgradeTable = [UpgradeCount]upgradeEntry{
	UpgradeMaxParticles:      {"More Particles", 5, 1.5},
	UpgradeParticleSize:      {"Bigger Particles", 10, 1.8},
	UpgradeInteractionRadius: {"Wider Reach", 15, 2.0},
	UpgradeTargetSpawnRate:   {"Faster Targets", 20, 2.2},
	UpgradeAutoCollectors:    {"Auto Collector", 25, 2.5},
	UpgradeParticleSpeed:     {"Faster Particles", 12, 1.9},
	UpgradeAutonomyLevel:     {"Particle Minds", 18, 2.1},
}

// UpgradeName returns the display name for an upgrade axis.
func UpgradeName(id UpgradeID) string {
	if id < UpgradeCount {
		return upgradeTable[id].Name
	}
	return "Unknown"
}

// UpgradeCost returns the cost of buying the next level of an upgrade
// that currently sits at level. The curve is exponential per axis:
// floor(base * growth^level), strictly increasing in level.
func UpgradeCost(id UpgradeID, level int) int {
	if id >= UpgradeCount || level < 0 {
		return 0
	}
	e := upgradeTable[id]
	return int(float64(e.BaseCost) * math.Pow(e.Growth, float64(level)))
}

// GameUpgrades maps each upgrade axis to its purchased level.
// Levels only ever increase; each level scales one simulation
// parameter multiplicatively.
type GameUpgrades struct {
	MaxParticles      int `json:"maxParticles"`
	ParticleSize      int `json:"particleSize"`
	InteractionRadius int `json:"interactionRadius"`
	TargetSpawnRate   int `json:"targetSpawnRate"`
	AutoCollectors    int `json:"autoCollectors"`
	ParticleSpeed     int `json:"particleSpeed"`
	AutonomyLevel     int `json:"autonomyLevel"`
}

// Level returns the current level of an upgrade axis.
func (u *GameUpgrades) Level(id UpgradeID) int {
	switch id {
	case UpgradeMaxParticles:
		return u.MaxParticles
	case UpgradeParticleSize:
		return u.ParticleSize
	case UpgradeInteractionRadius:
		return u.InteractionRadius
	case UpgradeTargetSpawnRate:
		return u.TargetSpawnRate
	case UpgradeAutoCollectors:
		return u.AutoCollectors
	case UpgradeParticleSpeed:
		return u.ParticleSpeed
	case UpgradeAutonomyLevel:
		return u.AutonomyLevel
	default:
		return 0
	}
}

// bump increments the level of an upgrade axis.
func (u *GameUpgrades) bump(id UpgradeID) {
	switch id {
	case UpgradeMaxParticles:
		u.MaxParticles++
	case UpgradeParticleSize:
		u.ParticleSize++
	case UpgradeInteractionRadius:
		u.InteractionRadius++
	case UpgradeTargetSpawnRate:
		u.TargetSpawnRate++
	case UpgradeAutoCollectors:
		u.AutoCollectors++
	case UpgradeParticleSpeed:
		u.ParticleSpeed++
	case UpgradeAutonomyLevel:
		u.AutonomyLevel++
	}
}

// GameState is the persistent progression state. It is serialized
// wholesale to the save file; there is no schema version field, so a
// field rename silently invalidates old saves.
type GameState struct {
	Currency        int          `json:"currency"`
	Score           int          `json:"score"` // cumulative collection count, never decreases
	Level           int          `json:"level"` // reserved
	Upgrades        GameUpgrades `json:"upgrades"`
	GameStarted     bool         `json:"gameStarted"`
	HighestCurrency int          `json:"highestCurrency"`
	LastUpdate      time.Time    `json:"lastUpdate"`
}

// Projection is the read-only snapshot of engine state handed to the
// presentation shell each frame.
type Projection struct {
	Score      int
	Currency   int
	Upgrades   GameUpgrades
	ShowScore  bool
	ShowHint   bool
	ShowShop   bool
	UITakeover bool
}
