package eightball

import (
	"os"

	kitlog "github.com/go-kit/log"
)

// DefaultDelta is the default safety margin applied to free-flight
// integration: each Step advances positions by (1-delta)*t rather than
// the full t, so accumulated floating-point error never places two
// participants closer together than the next time-to-contact solve
// assumes.
const DefaultDelta = 1e-6

// SimStatus is a lightweight, read-only snapshot of a Simulator's
// progress, suitable for periodic logging.
type SimStatus struct {
	GlobalTime     float64
	BallCount      int
	AppliedCount   uint64
	StalePopCount  uint64
	DroppedRecords uint64
}

// StopCondition is a predicate evaluated after every applied collision;
// RunUntil stops as soon as it reports true.
type StopCondition func(*Simulator) bool

// UntilCollisions returns a StopCondition that is satisfied once at
// least n collisions have been applied since RunUntil was called.
func UntilCollisions(n uint64) StopCondition {
	var start uint64 = ^uint64(0) // sentinel: "not yet observed"
	return func(s *Simulator) bool {
		if start == ^uint64(0) {
			start = s.applied
		}
		return s.applied-start >= n
	}
}

// UntilTime returns a StopCondition that is satisfied once global time
// reaches or passes t.
func UntilTime(t float64) StopCondition {
	return func(s *Simulator) bool { return s.globalTime >= t }
}

// Simulator owns a container, an indexed sequence of balls, and the
// priority queue of candidate future collisions between them. It is the
// sole owner of this state for its lifetime: nothing outside the event
// loop mutates it.
type Simulator struct {
	globalTime float64
	delta      float64
	container  *Container
	balls      []Ball
	queue      eventQueue

	initialised bool

	applied   uint64
	stalePops uint64
	dropped   uint64

	logger kitlog.Logger
}

// NewSimulator constructs an empty Simulator confining balls to a
// circular container of radius capacity, centered at the origin.
// capacity must be strictly positive.
func NewSimulator(capacity float64) *Simulator {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	klog = kitlog.With(klog, "component", "simulator")
	return &Simulator{
		delta:     DefaultDelta,
		container: NewContainer(capacity),
		logger:    klog,
	}
}

// SetDelta overrides the default free-flight safety margin. It must be
// called before Initialise.
func (s *Simulator) SetDelta(delta float64) {
	if s.initialised {
		panic("eightball: SetDelta called after Initialise")
	}
	if !(delta > 0) {
		panic("eightball: delta must be positive")
	}
	s.delta = delta
}

// Container returns the simulator's container, primarily so a caller can
// Attach an observation sink to it before Initialise.
func (s *Simulator) Container() *Container { return s.container }

// AddBall appends a new ball to the simulator's indexed sequence. It is
// only valid to call AddBall before Initialise; afterward indices must
// remain stable for the simulator's lifetime.
func (s *Simulator) AddBall(pos, vel Vec2, r float64) BallIndex {
	if s.initialised {
		panic("eightball: AddBall called after Initialise")
	}
	b := NewBall(pos, vel, r)
	if pos.Magnitude()+r > s.container.Radius() {
		panic("eightball: ball does not fit inside container")
	}
	s.balls = append(s.balls, b)
	return BallIndex(len(s.balls) - 1)
}

// GlobalTime returns the simulator's current absolute time.
func (s *Simulator) GlobalTime() float64 { return s.globalTime }

// Balls returns a read-only snapshot of the current ball states.
func (s *Simulator) Balls() []Ball {
	out := make([]Ball, len(s.balls))
	copy(out, s.balls)
	return out
}

// Status returns a snapshot suitable for periodic logging or metrics.
func (s *Simulator) Status() SimStatus {
	return SimStatus{
		GlobalTime:     s.globalTime,
		BallCount:      len(s.balls),
		AppliedCount:   s.applied,
		StalePopCount:  s.stalePops,
		DroppedRecords: s.dropped,
	}
}

// Initialise enumerates every unordered ball pair and every (ball,
// container) pair, computes the candidate collision for each, and
// schedules those that exist. Callers SHOULD treat this as one-shot: a
// second call panics.
func (s *Simulator) Initialise() {
	if s.initialised {
		panic("eightball: Initialise called twice")
	}
	s.initialised = true
	n := len(s.balls)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s.scheduleBallBall(BallIndex(i), BallIndex(j))
		}
		s.scheduleBallContainer(BallIndex(i))
	}
	s.logger.Log("level", "info", "msg", "initialised", "balls", n)
}

func (s *Simulator) scheduleBallBall(i, j BallIndex) {
	a, b := s.balls[i], s.balls[j]
	ttc, ok := timeToCollisionBalls(a.pos, a.vel, a.r, b.pos, b.vel, b.r)
	if !ok {
		return
	}
	s.queue.push(collisionEvent{
		a:              i,
		partner:        BallPartner(j),
		t:              s.globalTime + ttc,
		witnessA:       a.vel,
		witnessPartner: b.vel,
	})
}

func (s *Simulator) scheduleBallContainer(i BallIndex) {
	b := s.balls[i]
	ttc, ok := timeToCollisionContainer(b.pos, b.vel, b.r, s.container.r)
	if !ok {
		return
	}
	s.queue.push(collisionEvent{
		a:              i,
		partner:        ContainerPartner,
		t:              s.globalTime + ttc,
		witnessA:       b.vel,
		witnessPartner: Origin,
	})
}

// pushCandidates recomputes and schedules every candidate event
// involving ball i: against every other ball, and against the container.
func (s *Simulator) pushCandidates(i BallIndex) {
	n := BallIndex(len(s.balls))
	for j := BallIndex(0); j < n; j++ {
		if j == i {
			continue
		}
		lo, hi := i, j
		if lo > hi {
			lo, hi = hi, lo
		}
		s.scheduleBallBall(lo, hi)
	}
	s.scheduleBallContainer(i)
}

// Step advances every ball by (1-delta)*t seconds of free flight and
// advances global time by the full t: global time must land exactly on
// a scheduled event's timestamp, while the small position undershoot
// guards against a freshly-applied collision re-triggering itself.
func (s *Simulator) Step(t float64) {
	scaled := t * (1 - s.delta)
	for i := range s.balls {
		s.balls[i].step(scaled)
	}
	s.globalTime += t
}

// StepUntil advances from the current global time to the absolute time
// t. It fails with KindTimeRegression if t is behind the current time.
func (s *Simulator) StepUntil(t float64) error {
	dt := t - s.globalTime
	if dt < 0 {
		return newSimError(KindTimeRegression, "requested time %g is behind global time %g", t, s.globalTime)
	}
	s.Step(dt)
	return nil
}

// currentVel returns the live velocity of a collision partner: a ball's
// own velocity, or the origin for the container (which never moves).
func (s *Simulator) currentVel(p CollisionPartner) Vec2 {
	if p.IsContainer() {
		return Origin
	}
	return s.balls[p.BallIndex()].vel
}

// nextFreshEvent pops events until it finds one whose witness still
// matches the live velocities of both participants, discarding every
// stale event it encounters along the way. It returns false if the queue
// is exhausted before a fresh event is found.
func (s *Simulator) nextFreshEvent() (collisionEvent, bool) {
	for {
		evt, ok := s.queue.pop()
		if !ok {
			return collisionEvent{}, false
		}
		liveA := s.balls[evt.a].vel
		livePartner := s.currentVel(evt.partner)
		if liveA.BitwiseEqual(evt.witnessA) && livePartner.BitwiseEqual(evt.witnessPartner) {
			return evt, true
		}
		s.stalePops++
	}
}

// applyCollision mutates the two participants' velocities in place via
// the collision kernel. It panics if i equals the ball index named by
// partner, or if partner is the container but i is not a valid ball
// index — both indicate a broken internal invariant rather than a
// reachable runtime condition.
func (s *Simulator) applyCollision(i BallIndex, partner CollisionPartner) error {
	if !partner.IsContainer() && partner.BallIndex() == i {
		panic("eightball: ball cannot collide with itself")
	}
	if partner.IsContainer() {
		newVel, err := resolveBallContainer(s.balls[i].pos, s.balls[i].vel)
		if err != nil {
			return err
		}
		s.balls[i].setVel(newVel)
		return nil
	}
	j := partner.BallIndex()
	newVelA, newVelB, err := resolveBallBall(s.balls[i].pos, s.balls[i].vel, s.balls[j].pos, s.balls[j].vel)
	if err != nil {
		return err
	}
	s.balls[i].setVel(newVelA)
	s.balls[j].setVel(newVelB)
	return nil
}

// StepThroughCollision advances the simulation to, and including, the
// next collision that is actually scheduled to occur: it discards stale
// events until a fresh one is found, advances global time to that
// event's timestamp, applies the collision kernel, and re-schedules
// every candidate event involving the mutated participant(s).
func (s *Simulator) StepThroughCollision() error {
	evt, ok := s.nextFreshEvent()
	if !ok {
		return newSimError(KindQueueExhausted, "no further collisions are scheduled")
	}
	if err := s.StepUntil(evt.t); err != nil {
		return err
	}
	var preA BallSnapshot
	if evt.partner.IsContainer() {
		preA = snapshotOf(evt.a, s.balls[evt.a])
	}
	if err := s.applyCollision(evt.a, evt.partner); err != nil {
		return err
	}
	s.pushCandidates(evt.a)
	if !evt.partner.IsContainer() {
		s.pushCandidates(evt.partner.BallIndex())
	} else {
		s.container.publish(DataEvent{Time: s.globalTime, A: evt.a, Partner: evt.partner,
			PreA: preA, PostA: snapshotOf(evt.a, s.balls[evt.a])})
	}
	s.applied++
	return nil
}

// StepWithData behaves like StepThroughCollision but also returns a
// DataEvent describing the collision, for callers that want the full
// pre/post state rather than just the side effect.
func (s *Simulator) StepWithData() (DataEvent, error) {
	evt, ok := s.nextFreshEvent()
	if !ok {
		return DataEvent{}, newSimError(KindQueueExhausted, "no further collisions are scheduled")
	}
	if err := s.StepUntil(evt.t); err != nil {
		return DataEvent{}, err
	}

	preA := snapshotOf(evt.a, s.balls[evt.a])
	var preB BallSnapshot
	if !evt.partner.IsContainer() {
		preB = snapshotOf(evt.partner.BallIndex(), s.balls[evt.partner.BallIndex()])
	}

	if err := s.applyCollision(evt.a, evt.partner); err != nil {
		return DataEvent{}, err
	}
	s.pushCandidates(evt.a)
	if !evt.partner.IsContainer() {
		s.pushCandidates(evt.partner.BallIndex())
	}
	s.applied++

	postA := snapshotOf(evt.a, s.balls[evt.a])
	data := DataEvent{Time: s.globalTime, A: evt.a, Partner: evt.partner, PreA: preA, PostA: postA}
	if !evt.partner.IsContainer() {
		j := evt.partner.BallIndex()
		data.PreB = preB
		data.PostB = snapshotOf(j, s.balls[j])
	}
	if evt.partner.IsContainer() {
		s.container.publish(data)
	}
	return data, nil
}

// RunCollisions applies exactly n collisions in sequence, stopping at
// the first error.
func (s *Simulator) RunCollisions(n uint64) error {
	for i := uint64(0); i < n; i++ {
		if err := s.StepThroughCollision(); err != nil {
			return err
		}
	}
	return nil
}

// RunCollisionsWithData applies exactly n collisions, sending a
// DataEvent for each to sink. The send is best-effort: a full or nil
// sink never blocks the loop.
func (s *Simulator) RunCollisionsWithData(n uint64, sink chan<- DataEvent) error {
	for i := uint64(0); i < n; i++ {
		data, err := s.StepWithData()
		if err != nil {
			return err
		}
		if sink != nil {
			select {
			case sink <- data:
			default:
				s.dropped++
			}
		}
	}
	return nil
}

// RunUntil repeatedly applies collisions until cond reports true or a
// collision fails.
func (s *Simulator) RunUntil(cond StopCondition) error {
	for !cond(s) {
		if err := s.StepThroughCollision(); err != nil {
			return err
		}
	}
	return nil
}
