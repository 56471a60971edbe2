package terminator

import "math"

// TerminatorOffset returns the signed horizontal offset of the terminator from
// the center line at vertical offset dy from the center. Positive is right.
// Outside the disk's vertical extent it returns 0.
func (g Geometry) TerminatorOffset(dy float64) float64 {
	t := 1 - (dy*dy)/(g.Radius*g.Radius)
	if t <= 0 {
		return 0
	}
	return g.InnerBulge().sign() * g.SemiAxisX * math.Sqrt(t)
}

// Contains reports whether p lies in the lit region: inside the disk and
// strictly on the lit side of the terminator. At new moon nothing is lit; at
// full moon everything but the boundary is.
func (g Geometry) Contains(p Point) bool {
	dx, dy := p.X-g.Center.X, p.Y-g.Center.Y
	if dx*dx+dy*dy > g.Radius*g.Radius {
		return false
	}
	offset := g.TerminatorOffset(dy)
	if g.Outer == Right {
		return dx > offset
	}
	return dx < offset
}

// DiskArea returns πR².
func (g Geometry) DiskArea() float64 {
	return math.Pi * g.Radius * g.Radius
}

// LitArea returns the area enclosed by the outline: a half disk plus or minus a
// half ellipse, πR²/2 ± πR·rx/2.
func (g Geometry) LitArea() float64 {
	halfDisk := g.DiskArea() / 2
	halfEllipse := math.Pi * g.Radius * g.SemiAxisX / 2
	if g.IsCrescent() {
		return math.Max(0, halfDisk-halfEllipse)
	}
	return halfDisk + halfEllipse
}

// LitFraction returns LitArea as a fraction of the disk. For a geometry built
// from phase φ it equals 0.5·(1 − cos 2πφ).
func (g Geometry) LitFraction() float64 {
	return g.LitArea() / g.DiskArea()
}
