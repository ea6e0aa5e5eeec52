package eightball

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -1}
	if got := a.Add(b); got != (Vec2{4, 1}) {
		t.Fatalf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{-2, 3}) {
		t.Fatalf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{2, 4}) {
		t.Fatalf("Scale: got %v", got)
	}
	if got := a.Div(2); got != (Vec2{0.5, 1}) {
		t.Fatalf("Div: got %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Fatalf("Dot: got %v, want 1", got)
	}
}

func TestPerpendicularRoundTrip(t *testing.T) {
	vs := []Vec2{{1, 0}, {0, 1}, {3, -4}, {-2.5, 7.1}}
	for _, v := range vs {
		got := v.Perpendicular().Perpendicular()
		want := Vec2{-v.X, -v.Y}
		if got != want {
			t.Fatalf("perpendicular(perpendicular(%v)) = %v, want %v", v, got, want)
		}
	}
}

func TestCrossSquared(t *testing.T) {
	i := Vec2{1, 0}
	j := Vec2{0, 1}
	if got := i.CrossSquared(j); got != 1 {
		t.Fatalf("CrossSquared(i,j) = %v, want 1", got)
	}
	if got := i.CrossSquared(i); got != 0 {
		t.Fatalf("CrossSquared(i,i) = %v, want 0", got)
	}
}

func TestEqualWithinULP(t *testing.T) {
	a := 1.0
	b := math.Nextafter(a, 2)
	if !EqualWithinULP(a, b, 1) {
		t.Fatal("values one ULP apart should compare equal at tolerance 1")
	}
	c := math.Nextafter(b, 2)
	if EqualWithinULP(a, c, 1) {
		t.Fatal("values two ULP apart should not compare equal at tolerance 1")
	}
}

func TestVec2Equal(t *testing.T) {
	a := Vec2{1, 1}
	b := Vec2{math.Nextafter(1, 2), 1}
	if !a.Equal(b, 1) {
		t.Fatal("components one ULP apart should compare equal at tolerance 1")
	}
}

func TestBitwiseEqual(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{1, 2}
	if !a.BitwiseEqual(b) {
		t.Fatal("identical vectors must be bitwise equal")
	}
	c := Vec2{math.Nextafter(1, 2), 2}
	if a.BitwiseEqual(c) {
		t.Fatal("one-ULP-apart vectors must not be bitwise equal")
	}
}
