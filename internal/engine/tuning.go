package engine

import (
	"encoding/json"
	"fmt"
)

// Tuning holds the base simulation constants. The shipped values live in
// an embedded JSON file under assets/; upgrades scale these at runtime.
type Tuning struct {
	BaseMaxParticles      int     `json:"baseMaxParticles"`
	BaseParticleSize      float64 `json:"baseParticleSize"`
	BaseInteractionRadius float64 `json:"baseInteractionRadius"`
	BaseTargetSpawnRate   float64 `json:"baseTargetSpawnRate"`
	RepulsionStrength     float64 `json:"repulsionStrength"`
	CollectRadius         float64 `json:"collectRadius"`
	ConnectDistance       float64 `json:"connectDistance"`
}

// LoadTuning parses a Tuning from JSON bytes.
func LoadTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if t.BaseMaxParticles <= 0 {
		return nil, fmt.Errorf("tuning: baseMaxParticles must be positive, got %d", t.BaseMaxParticles)
	}
	if t.BaseParticleSize <= 0 {
		return nil, fmt.Errorf("tuning: baseParticleSize must be positive, got %g", t.BaseParticleSize)
	}
	if t.BaseInteractionRadius <= 0 {
		return nil, fmt.Errorf("tuning: baseInteractionRadius must be positive, got %g", t.BaseInteractionRadius)
	}
	if t.BaseTargetSpawnRate < 0 || t.BaseTargetSpawnRate > 1 {
		return nil, fmt.Errorf("tuning: baseTargetSpawnRate must be in [0,1], got %g", t.BaseTargetSpawnRate)
	}
	if t.CollectRadius <= 0 {
		return nil, fmt.Errorf("tuning: collectRadius must be positive, got %g", t.CollectRadius)
	}
	if t.ConnectDistance < 0 {
		return nil, fmt.Errorf("tuning: connectDistance must be non-negative, got %g", t.ConnectDistance)
	}
	return &t, nil
}

// DefaultTuning returns the stock constants. Kept in sync with the
// embedded assets file; used directly by tests.
func DefaultTuning() Tuning {
	return Tuning{
		BaseMaxParticles:      60,
		BaseParticleSize:      2,
		BaseInteractionRadius: 100,
		BaseTargetSpawnRate:   0.02,
		RepulsionStrength:     0.5,
		CollectRadius:         30,
		ConnectDistance:       80,
	}
}
