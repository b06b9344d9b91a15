package sim

import (
	"math"

	"swarmsim/internal/util"
	"swarmsim/vec2"
)

// Each behavior returns a steering force already clipped to the agent's
// MaxForce; steeringForce blends them by the agent's weights.

func seek(a *Agent, w *World) vec2.Vector2 {
	desired := w.Target.Sub(a.Pos)
	if desired.Len2() == 0 {
		return vec2.Vector2{}
	}
	desired.NormalizeInPlace()
	steer := desired.Scale(a.MaxSpeed).Sub(a.Vel)
	steer.TrimInPlace(a.MaxForce)
	return steer
}

func flee(a *Agent, w *World) vec2.Vector2 {
	if w.FleeRadius <= 0 {
		return vec2.Vector2{}
	}
	d := a.Pos.Dist(w.Threat)
	if d == 0 || d >= w.FleeRadius {
		return vec2.Vector2{}
	}
	// urgency ramps up linearly as the threat gets closer
	away := a.Pos.Sub(w.Threat).Normalized().Scale(a.MaxSpeed * (1 - d/w.FleeRadius))
	steer := away.Sub(a.Vel)
	steer.TrimInPlace(a.MaxForce)
	return steer
}

func wander(a *Agent, env *Env) vec2.Vector2 {
	phi := util.Range(env.Rng, -a.WanderJitter, a.WanderJitter)
	a.Heading.RotateInPlace(phi)
	return a.Heading.Scale(a.WanderStrength)
}

func separation(a *Agent, w *World) vec2.Vector2 {
	r2 := w.SeparationRadius * w.SeparationRadius
	var push vec2.Vector2
	n := 0
	for _, o := range w.Agents {
		if o == a {
			continue
		}
		d2 := a.Pos.Dist2(o.Pos)
		if d2 == 0 || d2 > r2 {
			continue
		}
		// repulsion falls off with distance
		away := a.Pos.Sub(o.Pos).Normalized().Div(math.Sqrt(d2))
		push = push.Add(away)
		n++
	}
	if n == 0 {
		return push
	}
	push.TrimInPlace(a.MaxForce)
	return push
}

func steeringForce(a *Agent, w *World, env *Env) vec2.Vector2 {
	f := seek(a, w).Scale(a.Weights.Seek)
	f = f.Add(flee(a, w).Scale(a.Weights.Flee))
	f = f.Add(wander(a, env).Scale(a.Weights.Wander))
	f = f.Add(separation(a, w).Scale(a.Weights.Separation))
	f.TrimInPlace(a.MaxForce)
	return f
}

// lateralDev is the distance from the agent to its direct spawn-to-target
// line, measured by projecting onto the line's perpendicular.
func lateralDev(a *Agent, w *World) float64 {
	axis := w.Target.Sub(a.Spawn)
	if axis.Len2() == 0 {
		return a.Pos.Dist(a.Spawn)
	}
	rel := a.Pos.Sub(a.Spawn)
	return rel.ProjectOn(axis.Perpendicular()).Len()
}

// swirl measures the swarm's net rotation around the target: the mean cross
// product of the radial direction with the velocity direction, in [-1, 1].
func swirl(w *World) float64 {
	sum := 0.0
	n := 0
	for _, a := range w.Agents {
		rel := a.Pos.Sub(w.Target)
		if rel.Len2() == 0 || a.Vel.Len2() == 0 {
			continue
		}
		sum += rel.Normalized().Cross(a.Vel.Normalized())
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
