package terminator

import (
	"math"
	"strconv"
	"strings"
)

// Arc is an elliptical arc segment in SVG terms: from From to To along an
// axis-aligned ellipse with semi-axes RX and RY, never the large arc.
type Arc struct {
	From, To Point
	RX, RY   float64
	Sweep    SweepFlag
}

// Arcs returns the outline as two arcs: the outer semicircle from the top pole
// to the bottom pole, then the terminator back to the top pole.
func (g Geometry) Arcs() [2]Arc {
	top, bottom := g.TopPole(), g.BottomPole()
	// Drawn top to bottom, sweep 1 runs clockwise on screen, through the right.
	outerSweep := SweepFlag(1)
	if g.Outer == Left {
		outerSweep = 0
	}
	return [2]Arc{
		{From: top, To: bottom, RX: g.Radius, RY: g.Radius, Sweep: outerSweep},
		{From: bottom, To: top, RX: g.SemiAxisX, RY: g.Radius, Sweep: g.InnerSweep},
	}
}

// SVGPath returns the closed outline as SVG path data, suitable for a mask or
// clip path. A zero SemiAxisX yields a straight terminator, which SVG draws
// as a line.
func (g Geometry) SVGPath() string {
	arcs := g.Arcs()
	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, arcs[0].From)
	for _, a := range arcs {
		b.WriteString(" A ")
		b.WriteString(formatCoord(a.RX))
		b.WriteByte(' ')
		b.WriteString(formatCoord(a.RY))
		b.WriteString(" 0 0 ")
		b.WriteString(strconv.Itoa(int(a.Sweep)))
		b.WriteByte(' ')
		writePoint(&b, a.To)
	}
	b.WriteString(" Z")
	return b.String()
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(formatCoord(p.X))
	b.WriteByte(',')
	b.WriteString(formatCoord(p.Y))
}

// formatCoord rounds to thousandths and drops trailing zeros.
func formatCoord(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // normalizes -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
