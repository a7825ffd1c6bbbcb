package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lunarc/nebula/internal/config"
	"github.com/lunarc/nebula/internal/engine"
)

const frameInterval = time.Second / 30

// runLive renders the scene in the terminal at a steady tick, advancing
// rotation state each frame. Keys: q/Esc quit, space toggles
// auto-rotation, r regenerates the scene.
func runLive(eng *engine.Engine, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	canvas := newTermCanvas(screen)

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	rot := engine.RotationState{
		X: cfg.Camera.RotationX,
		Y: cfg.Camera.RotationY,
		Z: cfg.Camera.RotationZ,
	}
	if cfg.Camera.AutoRotate {
		rot.SpeedY = cfg.Camera.AutoRotateSpeed
		rot.SpeedX = cfg.Camera.AutoRotateSpeed * 0.35
	}
	rotating := cfg.Camera.AutoRotate

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			if rotating {
				rot = rot.Advance(now.Sub(last))
			}
			last = now
			eng.RenderFrame(canvas, rot)
			canvas.Flush()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				canvas.resize()
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					close(quit)
					return nil
				case ev.Rune() == ' ':
					rotating = !rotating
				case ev.Rune() == 'r':
					eng.Regenerate(cfg)
				}
			}
		}
	}
}
