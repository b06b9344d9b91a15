package sim

import "swarmsim/vec2"

// Wall directions. Mirroring a velocity across the wall it hit flips the
// normal component and keeps the tangential one.
var (
	wallV = vec2.New(0, 1) // left and right walls
	wallH = vec2.New(1, 0) // top and bottom walls
)

func bounceWalls(a *Agent, w *World) int {
	n := 0
	if a.Pos.X < 0 {
		a.Pos.X = -a.Pos.X
		a.Vel = a.Vel.MirrorOn(wallV)
		n++
	}
	if a.Pos.X > w.W {
		a.Pos.X = 2*w.W - a.Pos.X
		a.Vel = a.Vel.MirrorOn(wallV)
		n++
	}
	if a.Pos.Y < 0 {
		a.Pos.Y = -a.Pos.Y
		a.Vel = a.Vel.MirrorOn(wallH)
		n++
	}
	if a.Pos.Y > w.H {
		a.Pos.Y = 2*w.H - a.Pos.Y
		a.Vel = a.Vel.MirrorOn(wallH)
		n++
	}
	return n
}

// RunSingle advances the world by fixed steps until the step budget runs out
// or every agent has arrived. With record set, the full event stream is kept
// on the result.
func RunSingle(env *Env, w *World, scenario string, seed int64, record bool) SimResult {
	var events []Event
	emit := func(ev Event) {
		if record {
			events = append(events, ev)
		}
	}

	for _, a := range w.Agents {
		emit(Event{T: env.Time, Type: "Spawn", Payload: map[string]any{
			"id": a.ID, "group": a.Group, "pos": a.Pos.String(),
		}})
	}

	steps := 0
	for step := 0; step < w.Steps; step++ {
		env.Delta = w.Dt
		for _, a := range w.Agents {
			force := steeringForce(a, w, env)
			a.Vel = a.Vel.Add(force.Scale(env.Delta))
			a.Vel.TrimInPlace(a.MaxSpeed)
			prev := a.Pos
			a.Pos = a.Pos.Add(a.Vel.Scale(env.Delta))
			a.PathLen += a.Pos.Dist(prev)
			a.LateralSum += lateralDev(a, w)
			if b := bounceWalls(a, w); b > 0 {
				a.Bounces += b
				emit(Event{T: env.Time, Type: "Bounce", Payload: map[string]any{
					"id": a.ID, "pos": a.Pos.String(), "vel": a.Vel.String(),
				}})
			}
			if !a.Arrived && a.Pos.Dist(w.Target) <= w.ArriveRadius {
				a.Arrived = true
				a.ArrivedAt = env.Time
				emit(Event{T: env.Time, Type: "Arrive", Payload: map[string]any{
					"id": a.ID, "path_len": a.PathLen,
				}})
			}
		}
		env.Time += env.Delta
		steps = step + 1

		if w.SnapshotEvery > 0 && steps%w.SnapshotEvery == 0 {
			speed, heading := 0.0, 0.0
			moving := 0
			for _, a := range w.Agents {
				speed += a.Vel.Len()
				if a.Vel.Len2() > 0 {
					heading += a.Vel.AngleTo()
					moving++
				}
			}
			if len(w.Agents) > 0 {
				speed /= float64(len(w.Agents))
			}
			if moving > 0 {
				heading /= float64(moving)
			}
			emit(Event{T: env.Time, Type: "Snapshot", Payload: map[string]any{
				"mean_speed": speed, "mean_heading": heading, "swirl": swirl(w),
			}})
		}

		done := true
		for _, a := range w.Agents {
			if !a.Arrived {
				done = false
				break
			}
		}
		if done {
			break
		}
	}

	res := SimResult{
		Scenario: scenario,
		Seed:     seed,
		Duration: env.Time,
		Steps:    steps,
		Agents:   len(w.Agents),
	}
	pathSum, latSum := 0.0, 0.0
	for _, a := range w.Agents {
		if a.Arrived {
			res.Arrivals++
		}
		res.Bounces += a.Bounces
		pathSum += a.PathLen
		latSum += a.LateralSum
	}
	if len(w.Agents) > 0 && steps > 0 {
		res.MeanPathLen = pathSum / float64(len(w.Agents))
		res.MeanLateralDev = latSum / float64(len(w.Agents)) / float64(steps)
	}
	if record {
		res.Events = events
	}
	return res
}
