// Package ik provides two-dimensional kinematic chains: sequences of joints
// kept a fixed distance apart that bend to follow a moving target.
//
// # Chains
//
// A [Chain] is an ordered set of joints. Joint 0 is the head, which follows
// the target, and the last joint is the tail. Adjacent joints are connected
// by links of a fixed length. Chains are built once and then resolved once
// per frame.
//
// How a chain is resolved is decided when it is constructed, by choosing one
// of two types:
//
//   - [FollowChain] drags its links after the head. Each link may bend by at
//     most a fixed angle relative to the link ahead of it, which gives a
//     lagging, springy motion. The tail is free.
//   - [ReachChain] uses FABRIK (Forward And Backward Reaching Inverse
//     Kinematics). The head reaches for a target while the tail stays pinned
//     to an anchor. A single call performs one forward and one backward pass.
//     With both ends pinned the problem is over-constrained, so the head may
//     fall short of the target; across successive frames the chain converges.
//
// Both embed [Chain], which exposes the joints read-only, through
// [Chain.Joint], [Chain.Joints], [Chain.All] and [Chain.Links].
//
// # Geometry
//
// [Point] is a position and [Vec2] is a displacement. Subtracting two points
// yields a vector, and translating a point by a vector yields a point. Both
// are plain values; assigning one copies it.
//
// Angles are in radians and headings are measured from the positive x axis
// toward positive y, so in a y-down coordinate system (as is common for
// graphics) positive angles turn clockwise. [NormalizeAngle] reduces angles to
// (−π, π], [ConstrainAngle] clamps an angle to a cone around a reference
// heading, and [ConstrainDistance] projects a point onto a circle around an
// anchor.
//
// [Line], [Circle], [Rect] and [Affine] are small helpers for drawing chains:
// links are lines, joints are circles, and an affine view transform maps
// world coordinates to a canvas.
//
// # Literature
//
//   - [FABRIK: A fast, iterative solver for the Inverse Kinematics problem] by Aristidou and Lasenby
//
// [FABRIK: A fast, iterative solver for the Inverse Kinematics problem]: https://doi.org/10.1016/j.gmod.2011.05.003
package ik
