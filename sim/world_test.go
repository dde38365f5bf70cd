package sim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vec2d/geom"
	"vec2d/internal/config"
)

func emptyWorld() *World {
	return &World{
		Width:       100,
		Height:      100,
		MaxSpeed:    10,
		Restitution: 1,
		Attractor:   geom.Pt(50, 50),
	}
}

func TestStepBounceOffRightWall(t *testing.T) {
	w := emptyWorld()
	w.Bodies = []Body{{Pos: geom.Pt(95, 50), Vel: geom.V(4, 0), Radius: 2}}

	w.Step()

	b := w.Bodies[0]
	require.Equal(t, geom.Pt(98, 50), b.Pos)
	require.Equal(t, geom.V(-4, 0), b.Vel)
	require.Equal(t, 1, b.Bounces)
	require.Equal(t, uint64(1), w.Steps)
}

func TestStepBounceRestitution(t *testing.T) {
	w := emptyWorld()
	w.Restitution = 0.5
	w.Bodies = []Body{{Pos: geom.Pt(50, 3), Vel: geom.V(1, -4), Radius: 2}}

	w.Step()

	b := w.Bodies[0]
	require.Equal(t, geom.Pt(51, 2), b.Pos)
	require.Equal(t, geom.V(1, 2), b.Vel)
}

func TestStepCornerHitsTwoWalls(t *testing.T) {
	w := emptyWorld()
	w.Bodies = []Body{{Pos: geom.Pt(3, 3), Vel: geom.V(-3, -3), Radius: 2}}

	w.Step()

	b := w.Bodies[0]
	require.Equal(t, geom.Pt(2, 2), b.Pos)
	require.Equal(t, geom.V(3, 3), b.Vel)
	require.Equal(t, 2, b.Bounces)
}

func TestStepClampsSpeed(t *testing.T) {
	w := emptyWorld()
	w.MaxSpeed = 5
	w.Bodies = []Body{{Pos: geom.Pt(50, 50), Vel: geom.V(30, 40), Radius: 1}}

	w.Step()

	b := w.Bodies[0]
	assert.InDelta(t, 5, b.Vel.Magnitude(), 1e-9)
	if diff := cmp.Diff(geom.Pt(53, 54), b.Pos, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("position mismatch (-want +got):\n%s", diff)
	}
}

func TestStepKeepsSlowBodiesUnchanged(t *testing.T) {
	w := emptyWorld()
	w.Bodies = []Body{{Pos: geom.Pt(10, 10), Vel: geom.V(1, 2), Radius: 1}}

	w.Step()

	require.Equal(t, geom.V(1, 2), w.Bodies[0].Vel)
	require.Equal(t, geom.Pt(11, 12), w.Bodies[0].Pos)
}

func TestStepZeroVelocityWithAttractorOnBody(t *testing.T) {
	w := emptyWorld()
	w.Attract = true
	w.MaxTurnDeg = 10
	w.Bodies = []Body{{Pos: w.Attractor, Radius: 1}}

	w.Step()

	b := w.Bodies[0]
	require.False(t, b.Vel.IsNaN())
	require.Equal(t, geom.Vector{}, b.Vel)
	require.Equal(t, w.Attractor, b.Pos)
}

func TestSteer(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	deg := math.Pi / 180

	tests := []struct {
		name    string
		vel     geom.Vector
		desired geom.Vector
		maxTurn float64
		want    geom.Vector
	}{
		{"left", geom.V(1, 0), geom.V(0, 1), 10, geom.V(math.Cos(10*deg), math.Sin(10*deg))},
		{"right", geom.V(1, 0), geom.V(0, -1), 10, geom.V(math.Cos(10*deg), -math.Sin(10*deg))},
		{"reach", geom.V(2, 0), geom.V(1, 1), 90, geom.V(math.Sqrt2, math.Sqrt2)},
		{"aligned", geom.V(2, 0), geom.V(5, 0), 10, geom.V(2, 0)},
		{"no target", geom.V(1, 0), geom.Vector{}, 10, geom.V(1, 0)},
		{"no velocity", geom.Vector{}, geom.V(1, 0), 10, geom.Vector{}},
		{"no turning", geom.V(1, 0), geom.V(0, 1), 0, geom.V(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := steer(tt.vel, tt.desired, tt.maxTurn)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Fatalf("steer mismatch (-want +got):\n%s", diff)
			}
			assert.InDelta(t, tt.vel.Magnitude(), got.Magnitude(), 1e-9)
		})
	}
}

func TestBounce(t *testing.T) {
	got := bounce(geom.V(3, -4), geom.V(0, 1), 0.25)
	require.Equal(t, geom.V(3, 1), got)

	got = bounce(geom.V(3, -4), geom.V(0, 1), 0)
	require.Equal(t, geom.V(3, 0), got)
}

func TestNewWorldDeterministic(t *testing.T) {
	cfg := config.NewDefaultConfig().World

	a := NewWorld(cfg)
	b := NewWorld(cfg)
	require.Equal(t, a.Bodies, b.Bodies)
	require.Len(t, a.Bodies, cfg.Bodies)

	for i := 0; i < 100; i++ {
		a.Step()
		b.Step()
	}
	require.Equal(t, a.Bodies, b.Bodies)

	cfg.Seed++
	c := NewWorld(cfg)
	require.NotEqual(t, a.Bodies[0].Pos, c.Bodies[0].Pos)
}

func TestWorldStaysInBounds(t *testing.T) {
	cfg := config.NewDefaultConfig().World
	cfg.Bodies = 50
	cfg.MaxSpeed = 9
	w := NewWorld(cfg)

	for step := 0; step < 2000; step++ {
		w.Step()
		for i, b := range w.Bodies {
			require.False(t, b.Vel.IsNaN(), "step %d body %d velocity %v", step, i, b.Vel)
			require.LessOrEqual(t, b.Vel.Magnitude(), cfg.MaxSpeed+1e-9)
			require.GreaterOrEqual(t, b.Pos.X, b.Radius-1e-9, "step %d body %d", step, i)
			require.LessOrEqual(t, b.Pos.X, cfg.Width-b.Radius+1e-9, "step %d body %d", step, i)
			require.GreaterOrEqual(t, b.Pos.Y, b.Radius-1e-9, "step %d body %d", step, i)
			require.LessOrEqual(t, b.Pos.Y, cfg.Height-b.Radius+1e-9, "step %d body %d", step, i)
		}
	}
	require.Greater(t, w.Stats().Bounces, 0)
}

func TestMoveAttractorClamps(t *testing.T) {
	w := emptyWorld()
	w.MoveAttractor(geom.V(10, -5))
	require.Equal(t, geom.Pt(60, 45), w.Attractor)

	w.MoveAttractor(geom.V(1000, -1000))
	require.Equal(t, geom.Pt(100, 0), w.Attractor)
}

func TestStats(t *testing.T) {
	w := emptyWorld()
	require.Equal(t, Stats{}, w.Stats())

	w.Bodies = []Body{
		{Vel: geom.V(3, 4), Bounces: 2},
		{Vel: geom.V(0, 1), Bounces: 1},
	}
	w.Steps = 7
	require.Equal(t, Stats{Steps: 7, Bodies: 2, Bounces: 3, MeanSpeed: 3, MaxSpeed: 5}, w.Stats())
}
