package sim

import (
	"encoding/json"
	"math"
	"math/rand"

	"swarmsim/internal/config"
	"swarmsim/internal/util"
	"swarmsim/vec2"
)

type Event struct {
	T       float64        `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Env struct {
	Time  float64
	Delta float64
	Rng   *rand.Rand
}

type Weights struct {
	Seek       float64
	Flee       float64
	Wander     float64
	Separation float64
}

type Agent struct {
	ID      int
	Group   string
	Spawn   vec2.Vector2
	Pos     vec2.Vector2
	Vel     vec2.Vector2
	Heading vec2.Vector2 // wander direction, unit length

	MaxSpeed       float64
	MaxForce       float64
	Weights        Weights
	WanderJitter   float64
	WanderStrength float64

	PathLen    float64
	LateralSum float64
	Arrived    bool
	ArrivedAt  float64
	Bounces    int
}

type World struct {
	W, H             float64
	Dt               float64
	Steps            int
	Target           vec2.Vector2
	Threat           vec2.Vector2
	ArriveRadius     float64
	FleeRadius       float64
	SeparationRadius float64
	SnapshotEvery    int
	Agents           []*Agent
}

// NewWorld instantiates agents from the scenario groups. Spawn positions are
// jittered uniformly inside each group's spawn disc and wander headings start
// at a random angle.
func NewWorld(sc *config.ScenarioConfig, rng *rand.Rand) *World {
	w := &World{
		W:                sc.World.Width,
		H:                sc.World.Height,
		Dt:               sc.World.Dt,
		Steps:            sc.World.Steps,
		Target:           vec2.New(sc.World.Target.X, sc.World.Target.Y),
		Threat:           vec2.New(sc.World.Threat.X, sc.World.Threat.Y),
		ArriveRadius:     sc.World.ArriveRadius,
		FleeRadius:       sc.World.FleeRadius,
		SeparationRadius: sc.World.SeparationRadius,
		SnapshotEvery:    sc.World.SnapshotEvery,
	}
	id := 0
	for _, g := range sc.Groups {
		center := vec2.New(g.Spawn.Center.X, g.Spawn.Center.Y)
		for i := 0; i < g.Count; i++ {
			offset := vec2.New(util.Range(rng, 0, g.Spawn.Radius), 0)
			offset.RotateInPlace(util.Range(rng, 0, 2*math.Pi))
			heading := vec2.New(1, 0)
			heading.RotateInPlace(util.Range(rng, 0, 2*math.Pi))
			pos := center.Add(offset)
			w.Agents = append(w.Agents, &Agent{
				ID:             id,
				Group:          g.ID,
				Spawn:          pos,
				Pos:            pos,
				Heading:        heading,
				MaxSpeed:       g.MaxSpeed,
				MaxForce:       g.MaxForce,
				Weights:        Weights(g.Weights),
				WanderJitter:   g.Wander.Jitter,
				WanderStrength: g.Wander.Strength,
			})
			id++
		}
	}
	return w
}

type SimResult struct {
	Scenario       string  `json:"scenario"`
	Seed           int64   `json:"seed"`
	Duration       float64 `json:"duration"`
	Steps          int     `json:"steps"`
	Agents         int     `json:"agents"`
	Arrivals       int     `json:"arrivals"`
	Bounces        int     `json:"bounces"`
	MeanPathLen    float64 `json:"mean_path_len"`
	MeanLateralDev float64 `json:"mean_lateral_dev"`
	Events         []Event `json:"events,omitempty"`
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
