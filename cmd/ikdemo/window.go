package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"honnef.co/go/ik"
	"honnef.co/go/ik/internal/config"
	"honnef.co/go/ik/internal/render"
	"honnef.co/go/ik/internal/scene"
)

// canvas draws onto an ebiten image. World and screen coordinates coincide.
type canvas struct {
	dst *ebiten.Image
}

func (cv canvas) StrokeLine(l ik.Line, width float64, clr color.Color) {
	x0, y0 := l.P0.Splat()
	x1, y1 := l.P1.Splat()
	vector.StrokeLine(cv.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
	// round caps
	r := float32(width / 2)
	vector.DrawFilledCircle(cv.dst, float32(x0), float32(y0), r, clr, true)
	vector.DrawFilledCircle(cv.dst, float32(x1), float32(y1), r, clr, true)
}

func (cv canvas) FillCircle(c ik.Circle, clr color.Color) {
	x, y := c.Center.Splat()
	vector.DrawFilledCircle(cv.dst, float32(x), float32(y), float32(c.Radius), clr, true)
}

type game struct {
	scene        *scene.Scene
	style        render.Style
	bg           color.Color
	anchorRadius float64
	width        int
	height       int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	x, y := ebiten.CursorPosition()
	g.scene.SetTarget(ik.Pt(float64(x), float64(y)))
	g.scene.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.scene.Draw(canvas{screen}, g.style, g.anchorRadius)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// runWindow opens a window the size of the world and blocks until it is
// closed.
func runWindow(s *scene.Scene, cfg *config.Config) error {
	g := &game{
		scene:        s,
		style:        scene.Style(cfg),
		bg:           cfg.Background,
		anchorRadius: cfg.AnchorRadius,
		width:        cfg.Width,
		height:       cfg.Height,
	}
	ebiten.SetWindowTitle("ik (" + string(cfg.Mode) + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}
