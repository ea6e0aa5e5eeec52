package eightball

import "math"

// timeToCollisionBalls returns the smallest strictly positive time at
// which balls at (pa, va, ra) and (pb, vb, rb) touch, assuming both move
// at constant velocity, or false if they never touch (or only touch at
// t<=0).
func timeToCollisionBalls(pa, va Vec2, ra float64, pb, vb Vec2, rb float64) (float64, bool) {
	dr := pa.Sub(pb)
	dv := va.Sub(vb)
	return timeToCollision(dr, dv, ra+rb)
}

// timeToCollisionContainer returns the smallest strictly positive time at
// which a ball at (p, v, r) reaches the inner wall of a container of
// radius capacity R, or false if it never does.
func timeToCollisionContainer(p, v Vec2, r, capacity float64) (float64, bool) {
	return timeToCollision(p, v, r-capacity)
}

// timeToCollision solves the common quadratic that underlies both
// ball-ball and ball-container contact: |dr + t*dv|^2 = sumR^2, expanded
// as (dv.dv)t^2 + 2(dr.dv)t + (dr.dr - sumR^2) = 0. The discriminant is
// rearranged into lhs - rhs so the sign of the comparison below reads
// as "do the roots exist" directly.
// When dv is exactly zero (no relative motion), a is zero and the roots
// evaluate to 0/0 = NaN; every NaN comparison below is false, so
// smallestPositive correctly reports no contact without a separate
// zero-velocity guard.
func timeToCollision(dr, dv Vec2, sumR float64) (float64, bool) {
	a := dv.Dot(dv)
	b := dr.Dot(dv)
	lhs := a * sumR * sumR
	rhs := dr.CrossSquared(dv)
	if lhs < rhs {
		return 0, false
	}
	disc := math.Sqrt(lhs - rhs)
	r1 := (-b + disc) / a
	r2 := (-b - disc) / a
	return smallestPositive(r1, r2)
}

// smallestPositive returns the smaller of a and b if it is strictly
// positive; otherwise the larger if it is strictly positive; otherwise
// reports no solution. A tie at exactly zero is treated as no contact.
func smallestPositive(a, b float64) (float64, bool) {
	lo, hi := math.Min(a, b), math.Max(a, b)
	if lo > 0 {
		return lo, true
	}
	if hi > 0 {
		return hi, true
	}
	return 0, false
}

// lineOfCenters returns the unit vector from b's center to a's center.
// It returns false if the centers coincide to within 1 ULP, in which
// case the normal direction is undefined.
func lineOfCenters(a, b Vec2) (Vec2, bool) {
	if a.Equal(b, 1) {
		return Vec2{}, false
	}
	diff := a.Sub(b)
	return diff.Div(diff.Magnitude()), true
}

// resolveBallBall computes the post-collision velocities for two balls in
// an elastic, equal-mass, line-of-centers collision: the normal
// components of velocity are swapped, the tangential components are
// preserved. The normal points from b's center to a's center.
func resolveBallBall(posA, velA, posB, velB Vec2) (newVelA, newVelB Vec2, err error) {
	n, ok := lineOfCenters(posA, posB)
	if !ok {
		return Vec2{}, Vec2{}, newSimError(KindDegenerateGeometry, "ball centers coincide to within 1 ULP")
	}
	t := n.Perpendicular()

	alphaA, betaA := velA.Dot(t), velA.Dot(n)
	alphaB, betaB := velB.Dot(t), velB.Dot(n)

	newVelA = t.Scale(alphaA).Add(n.Scale(betaB))
	newVelB = t.Scale(alphaB).Add(n.Scale(betaA))
	return newVelA, newVelB, nil
}

// resolveBallContainer computes the post-collision velocity for a ball
// bouncing elastically off the inside of the (stationary) container: the
// normal component of velocity is reflected, the tangential component is
// preserved. The normal points from the origin to the ball's center.
func resolveBallContainer(pos, vel Vec2) (newVel Vec2, err error) {
	n, ok := lineOfCenters(pos, Origin)
	if !ok {
		return Vec2{}, newSimError(KindDegenerateGeometry, "ball center coincides with container center")
	}
	t := n.Perpendicular()

	alpha, beta := vel.Dot(t), vel.Dot(n)
	return t.Scale(alpha).Sub(n.Scale(beta)), nil
}
