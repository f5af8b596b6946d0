package scene

import (
	"context"
	"fmt"
	"math"
	"time"

	"honnef.co/go/ik"
)

// HeadlessConfig controls RunHeadless.
type HeadlessConfig struct {
	Hz int
	// Ticks stops the run after this many frames. 0 runs until the context
	// is done.
	Ticks int
	// OnFrame, if set, is called after every step.
	OnFrame func(*Scene)
}

// Path yields the target for a given frame.
type Path func(frame int) ik.Point

// Orbit returns a path that circles center once every period frames.
func Orbit(center ik.Point, radius float64, period int) Path {
	if period <= 0 {
		period = 1
	}
	return func(frame int) ik.Point {
		th := 2 * math.Pi * float64(frame%period) / float64(period)
		return center.Translate(ik.VecFromAngle(th).Mul(radius))
	}
}

// RunHeadless steps s at cfg.Hz without drawing, moving the target along
// path. It returns nil after cfg.Ticks frames, or the context's error once
// ctx is done.
func RunHeadless(ctx context.Context, s *Scene, cfg HeadlessConfig, path Path) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick int
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if path != nil {
				s.SetTarget(path(s.Frame()))
			}
			s.Step()
			if cfg.OnFrame != nil {
				cfg.OnFrame(s)
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
