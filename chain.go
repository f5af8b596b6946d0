package ik

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// Unconstrained is the angle constraint that lets every link bend freely.
const Unconstrained = 2 * math.Pi

var (
	ErrJointCount      = errors.New("ik: joint count must be at least 1")
	ErrLinkSize        = errors.New("ik: link size must be positive and finite")
	ErrAngleConstraint = errors.New("ik: angle constraint must be in (0, 2π]")
	ErrOrigin          = errors.New("ik: origin must be finite")
)

// Chain is a sequence of joints kept a fixed distance apart.
//
// Joint 0 is the head, which follows the target. The last joint is the tail.
// A Chain is only ever modified by the solver that owns it, [FollowChain] or
// [ReachChain]; all accessors return copies.
type Chain struct {
	linkSize float64
	joints   []Point
}

func newChain(origin Point, jointCount int, linkSize float64) (Chain, error) {
	if jointCount < 1 {
		return Chain{}, fmt.Errorf("%w: got %d", ErrJointCount, jointCount)
	}
	if !(linkSize > 0) || math.IsInf(linkSize, 0) {
		return Chain{}, fmt.Errorf("%w: got %g", ErrLinkSize, linkSize)
	}
	if !origin.isFinite() {
		return Chain{}, fmt.Errorf("%w: got %s", ErrOrigin, origin)
	}
	joints := make([]Point, jointCount)
	joints[0] = origin
	for i := 1; i < jointCount; i++ {
		joints[i] = joints[i-1].Translate(Vec(0, linkSize))
	}
	return Chain{linkSize: linkSize, joints: joints}, nil
}

// Len returns the number of joints.
func (c *Chain) Len() int { return len(c.joints) }

// LinkSize returns the distance between adjacent joints.
func (c *Chain) LinkSize() float64 { return c.linkSize }

// Joint returns the position of the i-th joint. It panics if i is out of
// range.
func (c *Chain) Joint(i int) Point { return c.joints[i] }

// Head returns the first joint.
func (c *Chain) Head() Point { return c.joints[0] }

// Tail returns the last joint.
func (c *Chain) Tail() Point { return c.joints[len(c.joints)-1] }

// Joints returns a copy of the joint positions, head first.
func (c *Chain) Joints() []Point {
	out := make([]Point, len(c.joints))
	copy(out, c.joints)
	return out
}

// All iterates over the joints, head first.
func (c *Chain) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, pt := range c.joints {
			if !yield(i, pt) {
				return
			}
		}
	}
}

// Links iterates over the segments between adjacent joints, head first. A
// chain with a single joint has no links.
func (c *Chain) Links() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(c.joints); i++ {
			if !yield(Line{c.joints[i-1], c.joints[i]}) {
				return
			}
		}
	}
}

// Reach returns the length of the fully stretched chain.
func (c *Chain) Reach() float64 {
	return c.linkSize * float64(len(c.joints)-1)
}

// FollowChain is a chain dragged by its head. Every link may bend by at most
// the angle constraint relative to the link ahead of it. The tail is free.
type FollowChain struct {
	Chain
	angleConstraint float64
	angles          []float64
}

// NewFollowChain returns a chain of jointCount joints hanging from origin
// toward positive y. Pass [Unconstrained] to let links bend freely.
func NewFollowChain(origin Point, jointCount int, linkSize, angleConstraint float64) (*FollowChain, error) {
	if !(angleConstraint > 0 && angleConstraint <= Unconstrained) {
		return nil, fmt.Errorf("%w: got %g", ErrAngleConstraint, angleConstraint)
	}
	c, err := newChain(origin, jointCount, linkSize)
	if err != nil {
		return nil, err
	}
	return &FollowChain{
		Chain:           c,
		angleConstraint: angleConstraint,
		angles:          make([]float64, jointCount),
	}, nil
}

// AngleConstraint returns the maximum bend between adjacent links, in
// radians.
func (c *FollowChain) AngleConstraint() float64 { return c.angleConstraint }

// Angles returns a copy of the per-joint headings. Angle i is the heading of
// the link arriving at joint i from joint i−1; angle 0 is the heading of the
// head's last move.
func (c *FollowChain) Angles() []float64 {
	out := make([]float64, len(c.angles))
	copy(out, c.angles)
	return out
}

// Resolve moves the head onto target and drags the remaining joints after
// it, one link at a time.
func (c *FollowChain) Resolve(target Point) {
	c.angles[0] = target.Sub(c.joints[0]).Heading()
	c.joints[0] = target
	for i := 1; i < len(c.joints); i++ {
		cur := c.joints[i-1].Sub(c.joints[i]).Heading()
		c.angles[i] = ConstrainAngle(cur, c.angles[i-1], c.angleConstraint)
		link := VecFromAngle(c.angles[i])
		link.SetMag(c.linkSize)
		c.joints[i] = c.joints[i-1].Translate(link.Negate())
	}
}

// ReachChain is a chain solved with FABRIK. Its head reaches for a target
// while its tail is pinned to an anchor.
type ReachChain struct {
	Chain
}

// NewReachChain returns a chain of jointCount joints hanging from origin
// toward positive y.
func NewReachChain(origin Point, jointCount int, linkSize float64) (*ReachChain, error) {
	c, err := newChain(origin, jointCount, linkSize)
	if err != nil {
		return nil, err
	}
	return &ReachChain{Chain: c}, nil
}

// Resolve runs a single forward and backward FABRIK pass.
//
// The forward pass puts the head on target and pulls each following joint
// to within linkSize of its predecessor. The backward pass pins the tail on
// anchor and pulls the joints back toward it. Afterwards the tail equals
// anchor exactly, but the head may fall short of target; repeated calls
// converge when the target is within reach.
func (c *ReachChain) Resolve(target, anchor Point) {
	c.joints[0] = target
	for i := 1; i < len(c.joints); i++ {
		c.joints[i] = Circle{c.joints[i-1], c.linkSize}.Project(c.joints[i])
	}
	c.joints[len(c.joints)-1] = anchor
	for i := len(c.joints) - 2; i >= 0; i-- {
		c.joints[i] = Circle{c.joints[i+1], c.linkSize}.Project(c.joints[i])
	}
}
