// Package scene runs a set of chains that share a target and an anchor.
package scene

import (
	"fmt"

	"honnef.co/go/ik"
	"honnef.co/go/ik/internal/config"
	"honnef.co/go/ik/internal/render"
)

// solver is a chain together with the resolve step its mode calls for.
type solver interface {
	resolve(target, anchor ik.Point)
	chain() *ik.Chain
}

type follow struct{ c *ik.FollowChain }

func (f follow) resolve(target, _ ik.Point) { f.c.Resolve(target) }
func (f follow) chain() *ik.Chain           { return &f.c.Chain }

type reach struct{ c *ik.ReachChain }

func (r reach) resolve(target, anchor ik.Point) { r.c.Resolve(target, anchor) }
func (r reach) chain() *ik.Chain                { return &r.c.Chain }

// Scene is a set of chains rooted at the center of the world. All chains
// chase the same target; in fabrik mode their tails are pinned to the
// anchor.
type Scene struct {
	mode   config.Mode
	width  float64
	height float64
	anchor ik.Point
	target ik.Point
	chains []solver
	frame  int
}

// New builds the scene described by cfg. Chains start hanging from the
// center of the world, and the target starts 100 units above it.
func New(cfg *config.Config) (*Scene, error) {
	center := ik.Pt(float64(cfg.Width)/2, float64(cfg.Height)/2)
	s := &Scene{
		mode:   cfg.Mode,
		width:  float64(cfg.Width),
		height: float64(cfg.Height),
		anchor: center,
		target: center.Translate(ik.Vec(0, -100)),
	}
	for i, spec := range cfg.Chains {
		switch cfg.Mode {
		case config.ModeFollow:
			c, err := ik.NewFollowChain(center, spec.Joints, spec.LinkSize, spec.AngleConstraint)
			if err != nil {
				return nil, fmt.Errorf("chain %d: %w", i, err)
			}
			s.chains = append(s.chains, follow{c})
		case config.ModeFabrik:
			c, err := ik.NewReachChain(center, spec.Joints, spec.LinkSize)
			if err != nil {
				return nil, fmt.Errorf("chain %d: %w", i, err)
			}
			s.chains = append(s.chains, reach{c})
		default:
			return nil, fmt.Errorf("%w %q", config.ErrMode, cfg.Mode)
		}
	}
	return s, nil
}

func (s *Scene) Mode() config.Mode { return s.mode }

// Size returns the size of the world.
func (s *Scene) Size() (float64, float64) { return s.width, s.height }

func (s *Scene) Anchor() ik.Point { return s.anchor }

func (s *Scene) Target() ik.Point { return s.target }

// SetTarget sets the point the chains chase on the next Step. Non-finite
// points are ignored.
func (s *Scene) SetTarget(pt ik.Point) {
	if pt.IsNaN() || pt.IsInf() {
		return
	}
	s.target = pt
}

// Frame returns the number of completed steps.
func (s *Scene) Frame() int { return s.frame }

// Chains returns read-only views of the scene's chains.
func (s *Scene) Chains() []*ik.Chain {
	out := make([]*ik.Chain, len(s.chains))
	for i, c := range s.chains {
		out[i] = c.chain()
	}
	return out
}

// Step resolves every chain once against the current target.
func (s *Scene) Step() {
	for _, c := range s.chains {
		c.resolve(s.target, s.anchor)
	}
	s.frame++
}

// Draw draws every chain and then the anchor, as a disc of anchorRadius in
// the joint color.
func (s *Scene) Draw(cv render.Canvas, st render.Style, anchorRadius float64) {
	for _, c := range s.chains {
		render.DrawChain(cv, c.chain(), st)
	}
	if anchorRadius > 0 {
		cv.FillCircle(ik.Circle{Center: s.anchor, Radius: anchorRadius}, st.JointColor)
	}
}

// Style returns the drawing style configured in cfg.
func Style(cfg *config.Config) render.Style {
	return render.Style{
		LinkWidth:   cfg.LinkWidth,
		JointRadius: cfg.JointRadius,
		LinkColor:   cfg.LinkColor,
		JointColor:  cfg.JointColor,
	}
}
