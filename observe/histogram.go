// Package observe holds sinks that consume the DataEvent stream a
// Simulator produces. None of these types are imported back by the core
// dynamics engine: they are external collaborators, analogous to a
// dataio-style package that only watches a simulation from outside.
package observe

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Histogram bins a stream of scalar samples into equal-width buckets
// over [left, right), delegating the numeric binning to
// gonum.org/v1/gonum/stat.Histogram rather than hand-rolling it.
type Histogram struct {
	left, right float64
	bins        int
	samples     []float64
}

// NewHistogram constructs an empty Histogram with the given bounds and
// bin count.
func NewHistogram(left, right float64, bins int) *Histogram {
	return &Histogram{left: left, right: right, bins: bins}
}

// Add records a sample. Samples outside [left, right) are dropped:
// gonum's stat.Histogram panics on out-of-range input, so out-of-range
// values are filtered here rather than at bin time.
func (h *Histogram) Add(sample float64) {
	if sample < h.left || sample >= h.right {
		return
	}
	h.samples = append(h.samples, sample)
}

// Drain consumes every pending sample from ch until it is closed, adding
// each to the histogram. It can run in its own goroutine; the channel
// carries scalar samples (for example inter-collision times derived from
// a Simulator's DataEvent stream), not DataEvents themselves.
func (h *Histogram) Drain(ch <-chan float64) {
	for sample := range ch {
		h.Add(sample)
	}
}

// Counts returns the per-bin counts and the bin dividers (len(dividers)
// == len(counts)+1) computed over the samples recorded so far.
func (h *Histogram) Counts() (counts []float64, dividers []float64) {
	dividers = make([]float64, h.bins+1)
	width := (h.right - h.left) / float64(h.bins)
	for i := range dividers {
		dividers[i] = h.left + float64(i)*width
	}
	counts = make([]float64, h.bins)
	sorted := append([]float64(nil), h.samples...)
	sort.Float64s(sorted)
	return stat.Histogram(counts, dividers, sorted, nil), dividers
}

// Centres returns the midpoint of every bin.
func (h *Histogram) Centres() []float64 {
	width := (h.right - h.left) / float64(h.bins)
	centres := make([]float64, h.bins)
	for i := range centres {
		centres[i] = h.left + (float64(i)+0.5)*width
	}
	return centres
}
