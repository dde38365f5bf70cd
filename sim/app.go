package sim

import (
	"fmt"

	"go.uber.org/zap"

	"vec2d/geom"
	"vec2d/hal"
	"vec2d/internal/config"
)

// attractorStep is how far one arrow key press moves the attractor.
const attractorStep = 8

// statsEvery is the number of world steps between stats log lines.
const statsEvery = 600

// App drives a World from a HAL: keys, ticks, stepping and drawing.
type App struct {
	log    *zap.Logger
	cfg    config.WorldConfig
	world  *World
	render *Renderer
	kbd    hal.Keyboard
	ticks  <-chan uint64

	elapsedMs uint64
	paused    bool
	resets    int64
}

// New builds an app around h. Pass App.Step to hal.RunWindow or hal.RunHeadless.
func New(h hal.HAL, cfg config.WorldConfig, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		log:   log.Named("sim"),
		cfg:   cfg,
		world: NewWorld(cfg),
	}
	if d := h.Display(); d != nil {
		a.render = NewRenderer(d.Framebuffer())
	}
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
	}
	if t := h.Time(); t != nil {
		a.ticks = t.Ticks()
	}
	a.log.Info("world created",
		zap.Int("bodies", len(a.world.Bodies)),
		zap.Int64("seed", cfg.Seed),
		zap.Float64("max_speed", cfg.MaxSpeed),
	)
	return a
}

func (a *App) World() *World { return a.world }
func (a *App) Paused() bool  { return a.paused }

// Step handles pending input, advances the world once unless paused and draws a frame.
func (a *App) Step() error {
	a.drainTicks()
	a.handleKeys()

	if !a.paused {
		a.world.Step()
		if a.world.Steps%statsEvery == 0 {
			s := a.world.Stats()
			a.log.Info("world stats",
				zap.Uint64("steps", s.Steps),
				zap.Int("bounces", s.Bounces),
				zap.Float64("mean_speed", s.MeanSpeed),
				zap.Float64("max_speed", s.MaxSpeed),
			)
		}
	}

	if a.render == nil {
		return nil
	}
	if err := a.render.Draw(a.world, a.hud()); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

func (a *App) hud() string {
	s := a.world.Stats()
	state := ""
	if a.paused {
		state = " PAUSED"
	}
	return fmt.Sprintf("t=%.1fs n=%d hits=%d v=%.2f%s",
		float64(a.elapsedMs)/1000, s.Bodies, s.Bounces, s.MeanSpeed, state)
}

func (a *App) drainTicks() {
	if a.ticks == nil {
		return
	}
	for {
		select {
		case seq := <-a.ticks:
			a.elapsedMs = seq
		default:
			return
		}
	}
}

func (a *App) handleKeys() {
	if a.kbd == nil {
		return
	}
	for {
		select {
		case ev := <-a.kbd.Events():
			if ev.Press {
				a.onKey(ev.Code)
			}
		default:
			return
		}
	}
}

func (a *App) onKey(code hal.KeyCode) {
	switch code {
	case hal.KeyUp:
		a.world.MoveAttractor(geom.V(0, -attractorStep))
	case hal.KeyDown:
		a.world.MoveAttractor(geom.V(0, attractorStep))
	case hal.KeyLeft:
		a.world.MoveAttractor(geom.V(-attractorStep, 0))
	case hal.KeyRight:
		a.world.MoveAttractor(geom.V(attractorStep, 0))
	case hal.KeyEnter:
		a.resets++
		cfg := a.cfg
		cfg.Seed += a.resets
		a.world = NewWorld(cfg)
		a.log.Info("world reset", zap.Int64("seed", cfg.Seed))
	case hal.KeyTab:
		if a.render != nil {
			a.render.ShowVectors = !a.render.ShowVectors
		}
	case hal.KeyEscape, hal.KeySpace:
		a.paused = !a.paused
		a.log.Debug("pause toggled", zap.Bool("paused", a.paused))
	}
}
