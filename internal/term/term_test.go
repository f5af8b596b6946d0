package term

import (
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/ik"
	"honnef.co/go/ik/internal/config"
	"honnef.co/go/ik/internal/scene"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// newView returns a view of an 80×24 world on an 80×24 screen, so that world
// and cell coordinates coincide.
func newView(t *testing.T, args ...string) (*View, tcell.SimulationScreen, *scene.Scene) {
	t.Helper()
	cfg, err := config.Parse(append([]string{"-width", "80", "-height", "24", "-chains", "3:4", "-link-width", "1", "-joint-radius", "1", "-anchor-radius", "1"}, args...))
	if err != nil {
		t.Fatal(err)
	}
	s, err := scene.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return NewView(screen, s, cfg), screen, s
}

func TestColor(t *testing.T) {
	diff(t, tcell.NewRGBColor(0x16, 0x70, 0x3d), Color(color.RGBA{0x16, 0x70, 0x3d, 0xff}))
	diff(t, tcell.NewRGBColor(255, 255, 255), Color(color.White))
	// fully transparent colors fall back to black
	diff(t, tcell.NewRGBColor(0, 0, 0), Color(color.Transparent))
}

func TestBlit(t *testing.T) {
	v, screen, s := newView(t)
	v.Blit()

	joint := tcell.NewRGBColor(0x16, 0x70, 0x3d)
	bg := tcell.NewRGBColor(0x0e, 0x0e, 0x0e)

	// The anchor and the head sit on the world center, cell (40, 12).
	diff(t, ik.Pt(40, 12), s.Anchor())
	r, _, style, _ := screen.GetContent(40, 12)
	if r != Block {
		t.Errorf("got rune %q at the anchor, want %q", r, Block)
	}
	if want := tcell.StyleDefault.Background(bg).Foreground(joint); style != want {
		t.Errorf("got style %v at the anchor, want %v", style, want)
	}

	// The chain hangs straight down to (40, 20).
	for y := 12; y <= 20; y++ {
		if r, _, _, _ := screen.GetContent(40, y); r != Block {
			t.Errorf("cell (40, %d) is %q, want %q", y, r, Block)
		}
	}

	r, _, style, _ = screen.GetContent(0, 0)
	if r != ' ' {
		t.Errorf("got rune %q in the corner, want a blank", r)
	}
	if want := tcell.StyleDefault.Background(bg).Foreground(bg); style != want {
		t.Errorf("got style %v in the corner, want %v", style, want)
	}
}

func TestMouseMovesTarget(t *testing.T) {
	v, _, s := newView(t)
	if v.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone)) {
		t.Error("mouse motion should not quit")
	}
	diff(t, ik.Pt(10.5, 5.5), s.Target(), cmpopts.EquateApprox(0, 1e-9))
}

func TestMouseScaledView(t *testing.T) {
	// an 800×600 world on an 80×24 screen
	v, _, s := newView(t, "-width", "800", "-height", "600")
	v.HandleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	diff(t, ik.Pt(5, 12.5), s.Target(), cmpopts.EquateApprox(0, 1e-9))
}

func TestQuitKeys(t *testing.T) {
	v, _, _ := newView(t)
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		if !v.HandleEvent(ev) {
			t.Errorf("%v should quit", ev.Name())
		}
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("'x' should not quit")
	}
}

func TestResize(t *testing.T) {
	v, screen, _ := newView(t)
	screen.SetSize(40, 12)
	v.HandleEvent(tcell.NewEventResize(40, 12))
	if w, h := v.Grid().Size(); w != 40 || h != 12 {
		t.Errorf("got grid size %dx%d, want 40x12", w, h)
	}
	v.Blit()
	// the world center now maps to cell (20, 6)
	if r, _, _, _ := screen.GetContent(20, 6); r != Block {
		t.Errorf("cell (20, 6) is %q, want %q", r, Block)
	}
}

func TestTickSteps(t *testing.T) {
	v, _, s := newView(t)
	s.SetTarget(ik.Pt(60, 12))
	v.HandleEvent(tcell.NewEventInterrupt(tick{}))
	v.HandleEvent(tcell.NewEventInterrupt(nil))
	if s.Frame() != 1 {
		t.Errorf("got frame %d, want 1", s.Frame())
	}
	diff(t, s.Anchor(), s.Chains()[0].Tail())
}

func TestRun(t *testing.T) {
	v, screen, s := newView(t)

	done := make(chan error, 1)
	go func() {
		done <- v.Run(context.Background(), 200)
	}()

	time.Sleep(50 * time.Millisecond)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Esc")
	}
	if s.Frame() == 0 {
		t.Error("Run did not step the scene")
	}

	// the ticker has stopped once Run returns
	for screen.HasPendingEvent() {
		screen.PollEvent()
	}
	time.Sleep(30 * time.Millisecond)
	if screen.HasPendingEvent() {
		t.Error("events were posted after Run returned")
	}
}

func TestRunCancel(t *testing.T) {
	v, _, _ := newView(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- v.Run(ctx, 100)
	}()

	select {
	case err := <-done:
		if err != context.DeadlineExceeded {
			t.Errorf("got %v, want %v", err, context.DeadlineExceeded)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the context expired")
	}
}
