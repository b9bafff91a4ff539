package engine

import "testing"

func TestLoadTuning(t *testing.T) {
	data := []byte(`{
		"baseMaxParticles": 60,
		"baseParticleSize": 2,
		"baseInteractionRadius": 100,
		"baseTargetSpawnRate": 0.02,
		"repulsionStrength": 0.5,
		"collectRadius": 30,
		"connectDistance": 80
	}`)
	tuning, err := LoadTuning(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *tuning != DefaultTuning() {
		t.Fatalf("loaded tuning %+v differs from defaults %+v", *tuning, DefaultTuning())
	}
}

func TestLoadTuningRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{nope`},
		{"zero max", `{"baseMaxParticles":0,"baseParticleSize":2,"baseInteractionRadius":100,"baseTargetSpawnRate":0.02,"collectRadius":30}`},
		{"zero size", `{"baseMaxParticles":60,"baseParticleSize":0,"baseInteractionRadius":100,"baseTargetSpawnRate":0.02,"collectRadius":30}`},
		{"zero radius", `{"baseMaxParticles":60,"baseParticleSize":2,"baseInteractionRadius":0,"baseTargetSpawnRate":0.02,"collectRadius":30}`},
		{"spawn rate above 1", `{"baseMaxParticles":60,"baseParticleSize":2,"baseInteractionRadius":100,"baseTargetSpawnRate":1.5,"collectRadius":30}`},
		{"negative spawn rate", `{"baseMaxParticles":60,"baseParticleSize":2,"baseInteractionRadius":100,"baseTargetSpawnRate":-0.1,"collectRadius":30}`},
		{"zero collect radius", `{"baseMaxParticles":60,"baseParticleSize":2,"baseInteractionRadius":100,"baseTargetSpawnRate":0.02,"collectRadius":0}`},
	}
	for _, tc := range cases {
		if _, err := LoadTuning([]byte(tc.data)); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}
