// Package sim is a small bouncing/steering particle world built on geom.
//
// Coordinates are y-down like the framebuffer: positive gravity_y pulls toward
// the bottom edge.
package sim

import (
	"math"
	"math/rand"

	"vec2d/geom"
	"vec2d/internal/config"
)

// Body is a round particle.
type Body struct {
	Pos     geom.Point
	Vel     geom.Vector
	Radius  float64
	Bounces int
}

// World is a closed box of bodies. It is not safe for concurrent use;
// separate worlds may be stepped in parallel.
type World struct {
	Width       float64
	Height      float64
	MaxSpeed    float64
	Restitution float64
	MaxTurnDeg  float64
	Gravity     geom.Vector

	Attract   bool
	Attractor geom.Point

	Bodies []Body
	Steps  uint64
}

// Stats summarizes a world.
type Stats struct {
	Steps     uint64
	Bodies    int
	Bounces   int
	MeanSpeed float64
	MaxSpeed  float64
}

// NewWorld seeds a world from cfg. The same config always yields the same world.
func NewWorld(cfg config.WorldConfig) *World {
	w := &World{
		Width:       cfg.Width,
		Height:      cfg.Height,
		MaxSpeed:    cfg.MaxSpeed,
		Restitution: cfg.Restitution,
		MaxTurnDeg:  cfg.MaxTurnDeg,
		Gravity:     geom.V(cfg.GravityX, cfg.GravityY),
		Attract:     cfg.Attract,
		Attractor:   geom.Pt(cfg.Width/2, cfg.Height/2),
		Bodies:      make([]Body, 0, cfg.Bodies),
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	r := cfg.Radius
	for i := 0; i < cfg.Bodies; i++ {
		pos := geom.Pt(
			r+rng.Float64()*(cfg.Width-2*r),
			r+rng.Float64()*(cfg.Height-2*r),
		)
		speed := cfg.MaxSpeed * (0.25 + 0.75*rng.Float64())
		vel := geom.V(speed, 0).RotatedByDegrees(rng.Float64() * 360)
		w.Bodies = append(w.Bodies, Body{Pos: pos, Vel: vel, Radius: r})
	}
	return w
}

// Step advances every body by one tick.
func (w *World) Step() {
	for i := range w.Bodies {
		w.stepBody(&w.Bodies[i])
	}
	w.Steps++
}

func (w *World) stepBody(b *Body) {
	vel := b.Vel.Add(w.Gravity)
	if w.Attract {
		vel = steer(vel, geom.Between(b.Pos, w.Attractor), w.MaxTurnDeg)
	}
	vel = vel.Normalized(w.MaxSpeed)

	pos := vel.Translate(b.Pos)
	pos, vel, hits := w.collide(pos, vel, b.Radius)

	b.Pos = pos
	b.Vel = vel
	b.Bounces += hits
}

// MoveAttractor shifts the attractor by d, keeping it inside the box.
func (w *World) MoveAttractor(d geom.Vector) {
	p := d.Translate(w.Attractor)
	w.Attractor = geom.Pt(clamp(p.X, 0, w.Width), clamp(p.Y, 0, w.Height))
}

func (w *World) Stats() Stats {
	s := Stats{Steps: w.Steps, Bodies: len(w.Bodies)}
	if len(w.Bodies) == 0 {
		return s
	}
	var sum float64
	for _, b := range w.Bodies {
		speed := b.Vel.Magnitude()
		sum += speed
		s.MaxSpeed = math.Max(s.MaxSpeed, speed)
		s.Bounces += b.Bounces
	}
	s.MeanSpeed = sum / float64(len(w.Bodies))
	return s
}

// steer turns vel toward desired by at most maxTurnDeg degrees.
func steer(vel, desired geom.Vector, maxTurnDeg float64) geom.Vector {
	angle := geom.AngleBetween(vel, desired)
	if math.IsNaN(angle) || maxTurnDeg <= 0 {
		// Zero velocity, body on the attractor, or rounding past ±1 for
		// parallel vectors: nothing to turn toward.
		return vel
	}
	turn := math.Min(angle*180/math.Pi, maxTurnDeg)
	if vel.Cross(desired) < 0 {
		turn = -turn
	}
	return vel.RotatedByDegrees(turn)
}

// wall is an inner boundary line for a body of a given radius.
// normal is unit length and points into the box.
type wall struct {
	at     geom.Point
	normal geom.Vector
}

func (w *World) walls(r float64) [4]wall {
	return [4]wall{
		{at: geom.Pt(r, 0), normal: geom.V(1, 0)},
		{at: geom.Pt(w.Width-r, 0), normal: geom.V(-1, 0)},
		{at: geom.Pt(0, r), normal: geom.V(0, 1)},
		{at: geom.Pt(0, w.Height-r), normal: geom.V(0, -1)},
	}
}

func (w *World) collide(pos geom.Point, vel geom.Vector, r float64) (geom.Point, geom.Vector, int) {
	hits := 0
	for _, wl := range w.walls(r) {
		depth := -geom.Dot(geom.Between(wl.at, pos), wl.normal)
		if depth <= 0 {
			continue
		}
		penetration := wl.normal.Scale(-depth)
		pos = penetration.DisplaceBack(pos)

		if geom.Dot(vel, wl.normal) < 0 {
			vel = bounce(vel, wl.normal, w.Restitution)
			hits++
		}
	}
	return pos, vel, hits
}

// bounce reflects vel off a wall with unit normal n and keeps e of the
// normal speed.
func bounce(vel, n geom.Vector, e float64) geom.Vector {
	out := vel.Reflected(n)
	normal := geom.Project(out, n)
	return out.Sub(geom.Scale(1-e, normal))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
