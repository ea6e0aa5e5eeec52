package observe

import "testing"

func TestHistogramCounts(t *testing.T) {
	h := NewHistogram(0, 10, 5)
	for _, v := range []float64{0.5, 1.5, 1.9, 9.9, 4.0} {
		h.Add(v)
	}
	counts, dividers := h.Counts()
	if len(dividers) != 6 {
		t.Fatalf("len(dividers) = %d, want 6", len(dividers))
	}
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != 5 {
		t.Fatalf("total count = %v, want 5", total)
	}
	if counts[0] != 3 { // 0.5, 1.5 and 1.9 fall in [0,2)
		t.Fatalf("counts[0] = %v, want 3", counts[0])
	}
}

func TestHistogramDropsOutOfRange(t *testing.T) {
	h := NewHistogram(0, 10, 5)
	h.Add(-1)
	h.Add(10) // right edge is exclusive
	h.Add(5)
	counts, _ := h.Counts()
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != 1 {
		t.Fatalf("total count = %v, want 1 (only the in-range sample)", total)
	}
}

func TestHistogramDrain(t *testing.T) {
	h := NewHistogram(0, 10, 2)
	ch := make(chan float64, 3)
	ch <- 1
	ch <- 2
	ch <- 9
	close(ch)
	h.Drain(ch)
	counts, _ := h.Counts()
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != 3 {
		t.Fatalf("total count after drain = %v, want 3", total)
	}
}

func TestHistogramCentres(t *testing.T) {
	h := NewHistogram(0, 10, 5)
	centres := h.Centres()
	want := []float64{1, 3, 5, 7, 9}
	for i, c := range centres {
		if c != want[i] {
			t.Fatalf("centres[%d] = %v, want %v", i, c, want[i])
		}
	}
}
