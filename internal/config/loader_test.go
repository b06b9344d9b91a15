package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScenario(t *testing.T, dir, id, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, "scenarios"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scenarios", id+".yaml"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadScenarioDefaults(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "t1", `
world:
  width: 50
  height: 30
  target: { x: 40, y: 15 }
groups:
  - id: g
`)
	sc, err := LoadScenario(dir, "t1")
	if err != nil {
		t.Fatal(err)
	}
	if sc.ID != "t1" {
		t.Fatalf("id=%q", sc.ID)
	}
	if sc.World.Dt != 0.05 || sc.World.Steps != 1000 {
		t.Fatalf("world defaults: dt=%g steps=%d", sc.World.Dt, sc.World.Steps)
	}
	if sc.World.ArriveRadius != 1.0 || sc.World.SeparationRadius != 2.0 {
		t.Fatalf("radius defaults: %g %g", sc.World.ArriveRadius, sc.World.SeparationRadius)
	}
	g := sc.Groups[0]
	if g.Count != 1 || g.MaxSpeed != 4.0 || g.MaxForce != 8.0 {
		t.Fatalf("group defaults: %+v", g)
	}
	if g.Wander.Jitter != 0.4 || g.Wander.Strength != 1.0 {
		t.Fatalf("wander defaults: %+v", g.Wander)
	}
}

func TestLoadScenarioExplicit(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "t2", `
id: custom
world:
  width: 100
  height: 60
  dt: 0.1
  steps: 500
  threat: { x: 50, y: 30 }
  flee_radius: 12
groups:
  - id: north
    count: 8
    max_speed: 5
    weights: { seek: 1, flee: 1.5 }
`)
	sc, err := LoadScenario(dir, "t2")
	if err != nil {
		t.Fatal(err)
	}
	if sc.ID != "custom" || sc.World.Dt != 0.1 || sc.World.Steps != 500 {
		t.Fatalf("explicit values lost: %+v", sc)
	}
	if sc.World.Threat.X != 50 || sc.World.FleeRadius != 12 {
		t.Fatalf("threat config lost: %+v", sc.World)
	}
	if sc.Groups[0].Count != 8 || sc.Groups[0].Weights.Flee != 1.5 {
		t.Fatalf("group config lost: %+v", sc.Groups[0])
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadScenario(dir, "missing"); err == nil {
		t.Fatalf("missing file must error")
	}
	writeScenario(t, dir, "bad", "world: { width: -1, height: 10 }")
	if _, err := LoadScenario(dir, "bad"); err == nil {
		t.Fatalf("bad bounds must error")
	}
	writeScenario(t, dir, "junk", "{{not yaml")
	if _, err := LoadScenario(dir, "junk"); err == nil {
		t.Fatalf("bad yaml must error")
	}
}
