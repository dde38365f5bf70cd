package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"vec2d/geom"
	"vec2d/hal"
	"vec2d/internal/config"
)

type fakeHAL struct {
	fb    hal.Framebuffer
	keys  chan hal.KeyEvent
	ticks chan uint64
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		fb:    hal.New(64, 64).Display().Framebuffer(),
		keys:  make(chan hal.KeyEvent, 16),
		ticks: make(chan uint64, 16),
	}
}

func (f *fakeHAL) Display() hal.Display { return f }
func (f *fakeHAL) Input() hal.Input     { return f }
func (f *fakeHAL) Time() hal.Time       { return f }

func (f *fakeHAL) Framebuffer() hal.Framebuffer { return f.fb }
func (f *fakeHAL) Keyboard() hal.Keyboard       { return f }
func (f *fakeHAL) Events() <-chan hal.KeyEvent  { return f.keys }
func (f *fakeHAL) Ticks() <-chan uint64         { return f.ticks }

func (f *fakeHAL) press(code hal.KeyCode) {
	f.keys <- hal.KeyEvent{Code: code, Press: true}
	f.keys <- hal.KeyEvent{Code: code, Press: false}
}

func testWorldConfig() config.WorldConfig {
	cfg := config.NewDefaultConfig().World
	cfg.Bodies = 5
	return cfg
}

func TestAppStepAdvancesWorld(t *testing.T) {
	h := newFakeHAL()
	a := New(h, testWorldConfig(), zaptest.NewLogger(t))

	h.ticks <- 16
	h.ticks <- 33
	require.NoError(t, a.Step())
	require.NoError(t, a.Step())

	assert.Equal(t, uint64(2), a.World().Steps)
	assert.Equal(t, uint64(33), a.elapsedMs)
	assert.Contains(t, a.hud(), "t=0.0s n=5")
}

func TestAppPauseKey(t *testing.T) {
	h := newFakeHAL()
	a := New(h, testWorldConfig(), nil)

	h.press(hal.KeyEscape)
	require.NoError(t, a.Step())
	require.True(t, a.Paused())
	require.Equal(t, uint64(0), a.World().Steps)
	assert.Contains(t, a.hud(), "PAUSED")

	h.press(hal.KeySpace)
	require.NoError(t, a.Step())
	require.False(t, a.Paused())
	require.Equal(t, uint64(1), a.World().Steps)
}

func TestAppAttractorKeys(t *testing.T) {
	h := newFakeHAL()
	cfg := testWorldConfig()
	a := New(h, cfg, nil)
	start := a.World().Attractor

	h.press(hal.KeyRight)
	h.press(hal.KeyRight)
	h.press(hal.KeyUp)
	h.press(hal.KeyEscape)
	require.NoError(t, a.Step())

	want := geom.V(2*attractorStep, -attractorStep).Translate(start)
	require.Equal(t, want, a.World().Attractor)
}

func TestAppResetAndToggleVectors(t *testing.T) {
	h := newFakeHAL()
	cfg := testWorldConfig()
	a := New(h, cfg, nil)
	before := a.World()

	h.press(hal.KeyTab)
	h.press(hal.KeyEnter)
	require.NoError(t, a.Step())

	require.NotSame(t, before, a.World())
	require.False(t, a.render.ShowVectors)

	cfg.Seed++
	fresh := NewWorld(cfg)
	fresh.Step()
	require.Equal(t, fresh.Bodies, a.World().Bodies)
}
