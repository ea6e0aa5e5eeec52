package eightball

// BallIndex identifies a ball by its position in a Simulator's ball
// sequence. Indices are stable for the Simulator's lifetime.
type BallIndex int

// CollisionPartner is a two-variant sum: either a ball (carrying its
// index) or the singleton container.
type CollisionPartner struct {
	ball      BallIndex
	container bool
}

// BallPartner returns a CollisionPartner naming the ball at index i.
func BallPartner(i BallIndex) CollisionPartner { return CollisionPartner{ball: i} }

// ContainerPartner is the singleton partner representing the container.
var ContainerPartner = CollisionPartner{container: true}

// IsContainer reports whether p names the container rather than a ball.
func (p CollisionPartner) IsContainer() bool { return p.container }

// BallIndex returns the ball index p names. It panics if p names the
// container; callers should guard with IsContainer first.
func (p CollisionPartner) BallIndex() BallIndex {
	if p.container {
		panic("eightball: CollisionPartner is the container, not a ball")
	}
	return p.ball
}

// BallSnapshot is a value copy of a Ball's observable state at a single
// instant, used for the pre/post halves of a DataEvent.
type BallSnapshot struct {
	Index BallIndex
	Pos   Vec2
	Vel   Vec2
	R     float64
}

func snapshotOf(i BallIndex, b Ball) BallSnapshot {
	return BallSnapshot{Index: i, Pos: b.pos, Vel: b.vel, R: b.r}
}

// DataEvent is the structured record emitted for every applied collision:
// the participant identities, their pre- and post-collision snapshots,
// and the absolute time of the collision. It is the only shape observers
// (histogram, pressure, trajectory sinks) ever see; the dynamics engine
// has no dependency in the other direction.
type DataEvent struct {
	Time    float64
	A       BallIndex
	Partner CollisionPartner
	PreA    BallSnapshot
	PostA   BallSnapshot
	// PreB/PostB are only meaningful when Partner.IsContainer() is false.
	PreB  BallSnapshot
	PostB BallSnapshot
}

// ContactPoint returns the geometric point of contact: the midpoint of
// the two centers for a ball-ball event, or the point on the container's
// boundary along the ball's radius vector for a ball-container event.
func (e DataEvent) ContactPoint(containerRadius float64) Vec2 {
	if e.Partner.IsContainer() {
		return e.PreA.Pos.Normalize().Scale(containerRadius)
	}
	return e.PreA.Pos.Add(e.PreB.Pos).Scale(0.5)
}

// ContainerMomentumTransfer returns the magnitude of the change in the
// ball's velocity for a ball-container event, or false for a ball-ball
// event (container events change momentum; ball-ball events do not
// change total momentum and so have no single meaningful transfer value
// here).
func (e DataEvent) ContainerMomentumTransfer() (float64, bool) {
	if !e.Partner.IsContainer() {
		return 0, false
	}
	return e.PreA.Vel.Sub(e.PostA.Vel).Magnitude(), true
}
