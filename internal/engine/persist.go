package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the full GameState as one JSON record to path, overwriting
// whatever was there. Callers treat failures as non-fatal: log and keep
// simulating.
func (e *Engine) Save(path string) error {
	e.state.LastUpdate = e.now()
	data, err := json.MarshalIndent(&e.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create save dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// Load reads a previously saved GameState and, if parseable, replaces
// the current state wholesale, no field-level merge. The population is
// reinitialized to reflect the loaded upgrades. A missing or corrupt
// save leaves the in-memory defaults untouched.
func (e *Engine) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read save: %w", err)
	}
	var st GameState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("parse save: %w", err)
	}
	e.state = st
	if e.progression && st.GameStarted {
		e.showShop = true
	}
	if st.Score >= uiTakeoverScore {
		e.uiTakeover = true
	}
	e.InitParticles()
	return nil
}
