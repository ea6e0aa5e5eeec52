package observe

import (
	"gonum.org/v1/gonum/floats"

	eightball "github.com/whatf0xx/eight-ball"
)

// sample is one container-collision momentum transfer, timestamped.
type sample struct {
	t      float64
	deltaP float64
}

// PressureWindow estimates container pressure as a sliding-window
// average of momentum transfer per unit time, fed by a stream of
// DataEvent records. Only container collisions contribute; ball-ball
// events are ignored, matching DataEvent.ContainerMomentumTransfer's
// false/ok result.
type PressureWindow struct {
	window  float64
	samples []sample
}

// NewPressureWindow constructs a PressureWindow covering the trailing
// `window` seconds of simulation time.
func NewPressureWindow(window float64) *PressureWindow {
	return &PressureWindow{window: window}
}

// Observe records evt's contribution, if any, and drops samples that
// have aged out of the window.
func (p *PressureWindow) Observe(evt eightball.DataEvent) {
	p.evict(evt.Time)
	deltaP, ok := evt.ContainerMomentumTransfer()
	if !ok {
		return
	}
	p.samples = append(p.samples, sample{t: evt.Time, deltaP: deltaP})
}

func (p *PressureWindow) evict(now float64) {
	cut := 0
	for cut < len(p.samples) && now-p.samples[cut].t > p.window {
		cut++
	}
	p.samples = p.samples[cut:]
}

// Pressure returns the current windowed estimate: total momentum
// transferred within the window, divided by the window duration. It
// returns 0 if no samples have landed in the window yet.
func (p *PressureWindow) Pressure() float64 {
	if len(p.samples) == 0 {
		return 0
	}
	deltas := make([]float64, len(p.samples))
	for i, s := range p.samples {
		deltas[i] = s.deltaP
	}
	return floats.Sum(deltas) / p.window
}

// Drain runs Observe over every DataEvent received from ch until it is
// closed.
func (p *PressureWindow) Drain(ch <-chan eightball.DataEvent) {
	for evt := range ch {
		p.Observe(evt)
	}
}
