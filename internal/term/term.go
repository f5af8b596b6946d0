// Package term shows a scene in a terminal.
package term

import (
	"context"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"honnef.co/go/ik"
	"honnef.co/go/ik/internal/config"
	"honnef.co/go/ik/internal/render"
	"honnef.co/go/ik/internal/scene"
)

// Block is the rune used for filled cells.
const Block = '█'

type tick struct{}

// View renders a scene onto a tcell screen and feeds it mouse input.
type View struct {
	screen       tcell.Screen
	scene        *scene.Scene
	grid         *render.Grid
	style        render.Style
	bg           color.Color
	anchorRadius float64
}

// NewView returns a view of s sized to screen. The screen must already be
// initialized.
func NewView(screen tcell.Screen, s *scene.Scene, cfg *config.Config) *View {
	v := &View{
		screen:       screen,
		scene:        s,
		style:        scene.Style(cfg),
		bg:           cfg.Background,
		anchorRadius: cfg.AnchorRadius,
	}
	cols, rows := screen.Size()
	v.grid = render.NewGrid(cols, rows, v.fit(cols, rows))
	return v
}

func (v *View) fit(cols, rows int) ik.Affine {
	w, h := v.scene.Size()
	return render.Fit(ik.Rect{X1: w, Y1: h}, cols, rows)
}

func (v *View) Grid() *render.Grid { return v.grid }

// Color converts clr to a terminal color.
func Color(clr color.Color) tcell.Color {
	c, ok := colorful.MakeColor(clr)
	if !ok {
		return tcell.NewRGBColor(0, 0, 0)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blit draws the scene into the grid and copies the grid to the screen.
func (v *View) Blit() {
	v.grid.Clear(v.bg)
	v.scene.Draw(v.grid, v.style, v.anchorRadius)

	bg := Color(v.bg)
	empty := tcell.StyleDefault.Background(bg).Foreground(bg)
	w, h := v.grid.Size()
	for y := range h {
		for x := range w {
			c := v.grid.Cell(x, y)
			if !c.Filled {
				v.screen.SetContent(x, y, ' ', nil, empty)
				continue
			}
			v.screen.SetContent(x, y, Block, nil, tcell.StyleDefault.Background(bg).Foreground(Color(c.Color)))
		}
	}
	v.screen.Show()
}

// HandleEvent applies ev to the view and reports whether the user asked to
// quit. Mouse events move the target to the world position of the cell under
// the pointer.
func (v *View) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' || (ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0) {
				return true
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		inv := v.grid.View().Invert()
		v.scene.SetTarget(ik.Pt(float64(x)+0.5, float64(y)+0.5).Transform(inv))
	case *tcell.EventResize:
		cols, rows := ev.Size()
		v.grid.Resize(cols, rows, v.fit(cols, rows))
		v.screen.Sync()
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(tick); ok {
			v.scene.Step()
			v.Blit()
		}
	}
	return false
}

// Run steps and draws the scene tps times a second until the user quits or
// ctx is done.
func (v *View) Run(ctx context.Context, tps int) error {
	if tps <= 0 {
		tps = 60
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	defer func() {
		cancel()
		<-done
	}()

	go func() {
		defer close(done)
		t := time.NewTicker(time.Second / time.Duration(tps))
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				// wake up PollEvent
				v.screen.PostEvent(tcell.NewEventInterrupt(nil))
				return
			case <-t.C:
				v.screen.PostEvent(tcell.NewEventInterrupt(tick{}))
			}
		}
	}()

	v.Blit()
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.HandleEvent(ev) {
			return nil
		}
	}
}
