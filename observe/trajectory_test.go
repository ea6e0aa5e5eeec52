package observe

import (
	"testing"

	eightball "github.com/whatf0xx/eight-ball"
)

func TestTrajectorySnapshotAndMatrix(t *testing.T) {
	tr := NewTrajectory()
	balls := []eightball.Ball{
		eightball.NewBall(eightball.Vec2{1, 2}, eightball.Vec2{3, 4}, 0.5),
		eightball.NewBall(eightball.Vec2{5, 6}, eightball.Vec2{7, 8}, 0.5),
	}
	tr.Snapshot(0.1, balls)

	m := tr.Matrix()
	rows, cols := m.Dims()
	if rows != 2 || cols != 5 {
		t.Fatalf("Matrix dims = %d x %d, want 2 x 5", rows, cols)
	}
	want := [][]float64{
		{0.1, 1, 2, 3, 4},
		{0.1, 5, 6, 7, 8},
	}
	for i, row := range want {
		for j, v := range row {
			if m.At(i, j) != v {
				t.Fatalf("Matrix[%d][%d] = %v, want %v", i, j, m.At(i, j), v)
			}
		}
	}
}

func TestTrajectoryAccumulatesAcrossSnapshots(t *testing.T) {
	tr := NewTrajectory()
	balls := []eightball.Ball{eightball.NewBall(eightball.Vec2{}, eightball.Vec2{}, 0.1)}
	tr.Snapshot(0, balls)
	tr.Snapshot(1, balls)
	tr.Snapshot(2, balls)

	m := tr.Matrix()
	rows, _ := m.Dims()
	if rows != 3 {
		t.Fatalf("rows = %d, want 3", rows)
	}
}
