package observe

import (
	"gonum.org/v1/gonum/mat"

	eightball "github.com/whatf0xx/eight-ball"
)

// Trajectory accumulates periodic snapshots of every ball's state into a
// row-per-snapshot matrix, suited to handing a contiguous numeric buffer
// to an external plotting or analysis tool. Each snapshot contributes
// len(balls) rows of [time, x, y, vx, vy] to the backing *mat.Dense.
type Trajectory struct {
	cols int
	rows [][]float64
}

// NewTrajectory constructs an empty Trajectory.
func NewTrajectory() *Trajectory {
	return &Trajectory{cols: 5}
}

// Snapshot appends one row per ball describing its state at the given
// simulation time.
func (tr *Trajectory) Snapshot(time float64, balls []eightball.Ball) {
	for _, b := range balls {
		pos, vel := b.Pos(), b.Vel()
		tr.rows = append(tr.rows, []float64{time, pos.X, pos.Y, vel.X, vel.Y})
	}
}

// Matrix returns the accumulated snapshots as a dense matrix with
// columns [time, x, y, vx, vy].
func (tr *Trajectory) Matrix() *mat.Dense {
	m := mat.NewDense(len(tr.rows), tr.cols, nil)
	for i, row := range tr.rows {
		m.SetRow(i, row)
	}
	return m
}
