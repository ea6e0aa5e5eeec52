package eightball

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"
)

// Scenario describes a declarative initial condition for a Simulator,
// the way a mission file describes a spacecraft's starting orbit. It
// is read with viper so a caller can supply it as TOML, YAML, or JSON
// interchangeably.
type Scenario struct {
	ContainerRadius float64
	Delta           float64
	Rings           []RingSeed
	Collisions      uint64
}

type ringSeedConfig struct {
	Radius     float64 `mapstructure:"radius"`
	Count      int     `mapstructure:"count"`
	BallRadius float64 `mapstructure:"ball_radius"`
	Speed      float64 `mapstructure:"speed"`
	Tangential bool    `mapstructure:"tangential"`
}

// RingSeed places Count balls of radius BallRadius evenly spaced around
// a circle of the given Radius, all moving at Speed in the tangential
// direction (if Tangential is true) or in a random direction otherwise.
// This is the ring seeding strategy, built on the 2-D rotation in
// rotate2D below.
type RingSeed struct {
	Radius     float64
	Count      int
	BallRadius float64
	Speed      float64
	Tangential bool
}

// LoadScenario reads a Scenario from the named configuration file
// (extension determines format; viper supports TOML, YAML, JSON, and
// others).
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("eightball: reading scenario %s: %w", path, err)
	}

	sc := Scenario{
		ContainerRadius: v.GetFloat64("container.radius"),
		Delta:           v.GetFloat64("container.delta"),
		Collisions:      v.GetUint64("run.collisions"),
	}
	if sc.Delta == 0 {
		sc.Delta = DefaultDelta
	}
	if sc.ContainerRadius <= 0 {
		return Scenario{}, fmt.Errorf("eightball: scenario %s: container.radius must be positive", path)
	}

	var rings []ringSeedConfig
	if err := v.UnmarshalKey("rings", &rings); err != nil {
		return Scenario{}, fmt.Errorf("eightball: scenario %s: rings: %w", path, err)
	}
	if len(rings) == 0 {
		return Scenario{}, fmt.Errorf("eightball: scenario %s: missing [[rings]] entries", path)
	}
	for _, r := range rings {
		sc.Rings = append(sc.Rings, RingSeed{
			Radius:     r.Radius,
			Count:      r.Count,
			BallRadius: r.BallRadius,
			Speed:      r.Speed,
			Tangential: r.Tangential,
		})
	}
	return sc, nil
}

// Build constructs a fully-seeded, initialised Simulator from the
// scenario. rng supplies randomness for non-tangential ring seeding; a
// caller wanting determinism should pass a seeded *rand.Rand.
func (sc Scenario) Build(rng *rand.Rand) (*Simulator, error) {
	sim := NewSimulator(sc.ContainerRadius)
	sim.SetDelta(sc.Delta)
	for _, ring := range sc.Rings {
		if err := ring.seed(sim, rng); err != nil {
			return nil, err
		}
	}
	sim.Initialise()
	return sim, nil
}

// seed adds Count balls evenly spaced around the ring, using a 2-D
// R(theta) Euler rotation to place each ball and, if Tangential, to
// orient its velocity.
func (r RingSeed) seed(sim *Simulator, rng *rand.Rand) error {
	if r.Count <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(r.Count)
	for k := 0; k < r.Count; k++ {
		theta := step * float64(k)
		pos := rotate2D(Vec2{X: r.Radius, Y: 0}, theta)

		var vel Vec2
		if r.Tangential {
			vel = pos.Perpendicular().Normalize().Scale(r.Speed)
		} else {
			dir := rng.Float64() * 2 * math.Pi
			vel = rotate2D(Vec2{X: r.Speed, Y: 0}, dir)
		}
		if pos.Magnitude()+r.BallRadius > sim.container.Radius() {
			return fmt.Errorf("eightball: ring radius %g with ball radius %g exceeds container radius %g",
				r.Radius, r.BallRadius, sim.container.Radius())
		}
		sim.AddBall(pos, vel, r.BallRadius)
	}
	return nil
}

// rotate2D rotates v counter-clockwise by theta radians, the 2x2
// specialization of a rotation-about-an-axis matrix.
func rotate2D(v Vec2, theta float64) Vec2 {
	s, c := math.Sincos(theta)
	m := mat.NewDense(2, 2, []float64{c, -s, s, c})
	out := mat.NewVecDense(2, nil)
	out.MulVec(m, mat.NewVecDense(2, []float64{v.X, v.Y}))
	return Vec2{X: out.AtVec(0), Y: out.AtVec(1)}
}
