package eightball

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestTimeToCollisionConcrete(t *testing.T) {
	// Ball at (0,0) moving at (1,0), r=0.1; ball at (1,0) stationary, r=0.1.
	ttc, ok := timeToCollisionBalls(Vec2{0, 0}, Vec2{1, 0}, 0.1, Vec2{1, 0}, Vec2{0, 0}, 0.1)
	if !ok {
		t.Fatal("expected a collision")
	}
	if !floats.EqualWithinULP(ttc, 0.8, 1) {
		t.Fatalf("ttc = %v, want 0.8 within 1 ULP", ttc)
	}
}

func TestTimeToCollisionHeadOn(t *testing.T) {
	d, v, r := 2.0, 1.5, 0.3
	ttc, ok := timeToCollisionBalls(Vec2{-d, 0}, Vec2{v, 0}, r, Vec2{d, 0}, Vec2{-v, 0}, r)
	if !ok {
		t.Fatal("expected a collision")
	}
	want := (2*d - 2*r) / (2 * v)
	if !floats.EqualWithinAbs(ttc, want, 1e-12) {
		t.Fatalf("ttc = %v, want %v", ttc, want)
	}
}

func TestHeadOnSwapsVelocities(t *testing.T) {
	d, v, r := 2.0, 1.5, 0.3
	posA, posB := Vec2{-d, 0}, Vec2{d, 0}
	velA, velB := Vec2{v, 0}, Vec2{-v, 0}
	ttc, _ := timeToCollisionBalls(posA, velA, r, posB, velB, r)
	posA = posA.Add(velA.Scale(ttc))
	posB = posB.Add(velB.Scale(ttc))

	newA, newB, err := resolveBallBall(posA, velA, posB, velB)
	if err != nil {
		t.Fatalf("resolveBallBall: %v", err)
	}
	if !newA.Equal(Vec2{-v, 0}, 4) {
		t.Fatalf("newA = %v, want (%v, 0)", newA, -v)
	}
	if !newB.Equal(Vec2{v, 0}, 4) {
		t.Fatalf("newB = %v, want (%v, 0)", newB, v)
	}
}

func TestGlancingCollision(t *testing.T) {
	r := 0.5
	// Offset strictly less than 2r: finite positive ttc.
	ttc, ok := timeToCollisionBalls(Vec2{-10, 0}, Vec2{1, 0}, r, Vec2{0, 0.9}, Vec2{0, 0}, r)
	if !ok || ttc <= 0 {
		t.Fatalf("expected a finite positive ttc, got %v, %v", ttc, ok)
	}

	// Offset exactly 2r: ttc = distance / |dv| along the closing axis.
	ttcEdge, ok := timeToCollisionBalls(Vec2{-10, 0}, Vec2{1, 0}, r, Vec2{0, 1.0}, Vec2{0, 0}, r)
	if !ok {
		t.Fatal("expected a tangential collision at offset == 2r")
	}
	if !floats.EqualWithinAbs(ttcEdge, 10, 1e-9) {
		t.Fatalf("ttc at tangent = %v, want 10", ttcEdge)
	}

	// Offset greater than 2r: no contact.
	if _, ok := timeToCollisionBalls(Vec2{-10, 0}, Vec2{1, 0}, r, Vec2{0, 1.1}, Vec2{0, 0}, r); ok {
		t.Fatal("expected no collision for offset > 2r")
	}
}

func TestContainerSpecular(t *testing.T) {
	R, r := 1.0, 0.1
	ttc, ok := timeToCollisionContainer(Vec2{0, 0}, Vec2{1, 0}, r, R)
	if !ok {
		t.Fatal("expected a collision")
	}
	if !floats.EqualWithinULP(ttc, 0.9, 1) {
		t.Fatalf("ttc = %v, want 0.9", ttc)
	}

	pos := Vec2{0, 0}.Add(Vec2{1, 0}.Scale(ttc))
	newVel, err := resolveBallContainer(pos, Vec2{1, 0})
	if err != nil {
		t.Fatalf("resolveBallContainer: %v", err)
	}
	if !newVel.Equal(Vec2{-1, 0}, 4) {
		t.Fatalf("newVel = %v, want (-1, 0)", newVel)
	}
}

func TestStationaryBallsDoNotCollide(t *testing.T) {
	// Zero relative velocity gives NaN roots, which are reported as no contact.
	if _, ok := timeToCollisionBalls(Vec2{0, 0}, Vec2{0, 0}, 1, Vec2{3, 0}, Vec2{0, 0}, 1); ok {
		t.Fatal("two stationary balls should never be reported as colliding")
	}
}

func TestDegenerateGeometryReported(t *testing.T) {
	p := Vec2{1, 1}
	if _, _, err := resolveBallBall(p, Vec2{1, 0}, p, Vec2{-1, 0}); !IsKind(err, KindDegenerateGeometry) {
		t.Fatalf("expected KindDegenerateGeometry, got %v", err)
	}
	if _, err := resolveBallContainer(Origin, Vec2{1, 0}); !IsKind(err, KindDegenerateGeometry) {
		t.Fatalf("expected KindDegenerateGeometry for ball at container center, got %v", err)
	}
}

func TestSmallestPositive(t *testing.T) {
	cases := []struct {
		a, b   float64
		want   float64
		wantOK bool
	}{
		{1, 2, 1, true},
		{-1, 2, 2, true},
		{-1, -2, 0, false},
		{0, 5, 5, true},
		{0, 0, 0, false},
	}
	for _, c := range cases {
		got, ok := smallestPositive(c.a, c.b)
		if ok != c.wantOK || (ok && !floats.EqualWithinAbs(got, c.want, 0)) {
			t.Errorf("smallestPositive(%v,%v) = %v,%v; want %v,%v", c.a, c.b, got, ok, c.want, c.wantOK)
		}
	}
}
