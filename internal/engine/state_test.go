package engine

import "testing"

func TestCostCurveStrictlyIncreasing(t *testing.T) {
	for id := UpgradeID(0); id < UpgradeCount; id++ {
		for level := 0; level < 12; level++ {
			lo := UpgradeCost(id, level)
			hi := UpgradeCost(id, level+1)
			if hi <= lo {
				t.Errorf("%s: cost(%d)=%d not greater than cost(%d)=%d",
					UpgradeName(id), level+1, hi, level, lo)
			}
		}
	}
}

func TestCostTableAnchors(t *testing.T) {
	if got := UpgradeCost(UpgradeMaxParticles, 0); got != 5 {
		t.Errorf("maxParticles base cost = %d, want 5", got)
	}
	if got := UpgradeCost(UpgradeMaxParticles, 1); got != 7 { // floor(5 * 1.5)
		t.Errorf("maxParticles level-1 cost = %d, want 7", got)
	}
	if got := UpgradeCost(UpgradeAutoCollectors, 0); got != 25 {
		t.Errorf("autoCollectors base cost = %d, want 25", got)
	}
	if got := UpgradeCost(UpgradeAutoCollectors, 1); got != 62 { // floor(25 * 2.5)
		t.Errorf("autoCollectors level-1 cost = %d, want 62", got)
	}
}

func TestUpgradeLevelMapping(t *testing.T) {
	var u GameUpgrades
	for id := UpgradeID(0); id < UpgradeCount; id++ {
		if got := u.Level(id); got != 0 {
			t.Fatalf("%s: fresh level = %d, want 0", UpgradeName(id), got)
		}
		u.bump(id)
		if got := u.Level(id); got != 1 {
			t.Fatalf("%s: level after bump = %d, want 1", UpgradeName(id), got)
		}
	}
}

func TestPurchaseRejectedWhenPoor(t *testing.T) {
	e, _ := newTestEngine(true)
	e.state.Currency = 4 // maxParticles costs 5
	before := e.Count()

	if e.Purchase(UpgradeMaxParticles) {
		t.Fatal("purchase should be rejected")
	}
	if e.state.Currency != 4 {
		t.Fatalf("currency = %d, want 4 (unchanged)", e.state.Currency)
	}
	if e.state.Upgrades.MaxParticles != 0 {
		t.Fatalf("level = %d, want 0 (unchanged)", e.state.Upgrades.MaxParticles)
	}
	if e.Count() != before {
		t.Fatal("rejected purchase must not touch the population")
	}
}

func TestPurchaseAccepted(t *testing.T) {
	e, _ := newTestEngine(true)
	e.state.Currency = 5

	if !e.Purchase(UpgradeMaxParticles) {
		t.Fatal("purchase should succeed with exact currency")
	}
	if e.state.Currency != 0 {
		t.Fatalf("currency = %d, want 0", e.state.Currency)
	}
	if e.state.Upgrades.MaxParticles != 1 {
		t.Fatalf("level = %d, want 1", e.state.Upgrades.MaxParticles)
	}
	// Population reinitialized to the new cap: 60 * 1.2.
	if got := e.Count(); got != 72 {
		t.Fatalf("population = %d, want 72", got)
	}
}

func TestPurchaseIgnoresCallerCost(t *testing.T) {
	// The engine recomputes the cost internally; there is no way to pass
	// one in, so a stale or forged cost can't underpay.
	e, _ := newTestEngine(true)
	e.state.Currency = 30
	if !e.Purchase(UpgradeAutoCollectors) { // costs 25
		t.Fatal("purchase should succeed")
	}
	if e.state.Currency != 5 {
		t.Fatalf("currency = %d, want 5 (30 - 25)", e.state.Currency)
	}
	if e.Purchase(UpgradeAutoCollectors) { // next level costs 62
		t.Fatal("second purchase should be rejected at the recomputed cost")
	}
}

func TestPurchaseCollectorsReshapesPopulation(t *testing.T) {
	e, _ := newTestEngine(true)
	e.state.Currency = 25

	if !e.Purchase(UpgradeAutoCollectors) {
		t.Fatal("purchase should succeed")
	}
	if !e.particle(0).IsCollector {
		t.Fatal("particle 0 should be a collector after the purchase")
	}
}

func TestPurchaseUnknownUpgrade(t *testing.T) {
	e, _ := newTestEngine(true)
	e.state.Currency = 1000
	if e.Purchase(UpgradeCount) {
		t.Fatal("sentinel upgrade id must be rejected")
	}
	if e.state.Currency != 1000 {
		t.Fatal("rejected purchase must not deduct currency")
	}
}
