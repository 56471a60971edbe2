package tui

import "math"

// sparklineChars maps levels 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// History is a fixed-capacity circular buffer of illumination samples, oldest
// overwritten first.
type History struct {
	data  []float64
	head  int
	count int
}

// NewHistory creates a history holding up to capacity samples.
func NewHistory(capacity int) *History {
	return &History{data: make([]float64, max(capacity, 1))}
}

// Push appends a sample.
func (h *History) Push(v float64) {
	h.data[h.head] = v
	h.head = (h.head + 1) % len(h.data)
	h.count = min(h.count+1, len(h.data))
}

// Len returns the number of samples held.
func (h *History) Len() int { return h.count }

// Cap returns the capacity.
func (h *History) Cap() int { return len(h.data) }

// Last returns the newest sample, or 0 when empty.
func (h *History) Last() float64 {
	if h.count == 0 {
		return 0
	}
	return h.data[(h.head-1+len(h.data))%len(h.data)]
}

// Slice returns the samples oldest first.
func (h *History) Slice() []float64 {
	if h.count == 0 {
		return nil
	}
	out := make([]float64, h.count)
	start := (h.head - h.count + len(h.data)) % len(h.data)
	for i := range out {
		out[i] = h.data[(start+i)%len(h.data)]
	}
	return out
}

// Resize changes the capacity and keeps the newest samples that fit.
func (h *History) Resize(capacity int) {
	capacity = max(capacity, 1)
	if capacity == len(h.data) {
		return
	}
	old := h.Slice()
	if len(old) > capacity {
		old = old[len(old)-capacity:]
	}
	h.data = make([]float64, capacity)
	h.head, h.count = 0, 0
	for _, v := range old {
		h.Push(v)
	}
}

// Reset drops every sample.
func (h *History) Reset() {
	h.head, h.count = 0, 0
}

// RenderSparkline draws fractions in [0, 1] as block characters, one per
// value. Out-of-range and NaN values are clamped.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	runes := make([]rune, len(values))
	last := len(sparklineChars) - 1
	for i, v := range values {
		if math.IsNaN(v) {
			v = 0
		}
		v = min(max(v, 0), 1)
		runes[i] = sparklineChars[min(int(math.Round(v*float64(last))), last)]
	}
	return string(runes)
}
