package config

type ScenarioConfig struct {
	ID     string     `yaml:"id"`
	Note   string     `yaml:"note"`
	World  WorldDef   `yaml:"world"`
	Groups []GroupDef `yaml:"groups"`
}

type WorldDef struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Dt               float64 `yaml:"dt"`
	Steps            int     `yaml:"steps"`
	Target           Vec2Def `yaml:"target"`
	Threat           Vec2Def `yaml:"threat"`
	ArriveRadius     float64 `yaml:"arrive_radius"`
	FleeRadius       float64 `yaml:"flee_radius"`
	SeparationRadius float64 `yaml:"separation_radius"`
	SnapshotEvery    int     `yaml:"snapshot_every"`
}

type GroupDef struct {
	ID       string     `yaml:"id"`
	Count    int        `yaml:"count"`
	MaxSpeed float64    `yaml:"max_speed"`
	MaxForce float64    `yaml:"max_force"`
	Spawn    SpawnDef   `yaml:"spawn"`
	Weights  WeightsDef `yaml:"weights"`
	Wander   WanderDef  `yaml:"wander"`
	Note     string     `yaml:"note"`
}

type SpawnDef struct {
	Center Vec2Def `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

type WeightsDef struct {
	Seek       float64 `yaml:"seek"`
	Flee       float64 `yaml:"flee"`
	Wander     float64 `yaml:"wander"`
	Separation float64 `yaml:"separation"`
}

type WanderDef struct {
	Jitter   float64 `yaml:"jitter"`
	Strength float64 `yaml:"strength"`
}

type Vec2Def struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}
