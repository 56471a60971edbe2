// Package render turns terminator geometry into pixels: a luminance raster for
// terminal output and a standalone SVG document for files.
package render

import (
	"math"
	"strings"

	apperrors "github.com/agbru/lunaris/internal/errors"
	"github.com/agbru/lunaris/internal/terminator"
)

// Shading constants shared by the raster and SVG renderers. The lit layer is
// drawn at LitBrightness and the dark side at EarthshineBrightness; the raster
// normalizes both against LitBrightness.
const (
	EarthshineBrightness = 0.3
	LitBrightness        = 1.5
	// LimbStart is the fraction of the radius where limb darkening begins.
	LimbStart = 0.85
	// LimbOpacity is the darkening applied at the very edge of the disk.
	LimbOpacity = 0.5
	// DiskScale trims the disk inside its square so the texture edge never shows.
	DiskScale = 0.82
)

// Options controls rasterization.
type Options struct {
	// Earthshine is the luminance of the unlit side, relative to the lit side.
	Earthshine float64
	// LimbDarkening enables the radial edge shading.
	LimbDarkening bool
	// Supersample is the number of samples per cell along each axis.
	Supersample int
	// CellAspect is a cell's width divided by its height. Terminal glyph
	// cells are about twice as tall as they are wide.
	CellAspect float64
}

// DefaultOptions returns the options used by the terminal renderer.
func DefaultOptions() Options {
	return Options{
		Earthshine:    EarthshineBrightness / LitBrightness,
		LimbDarkening: true,
		Supersample:   3,
		CellAspect:    0.5,
	}
}

// Raster is a row-major grid of luminance values in [0, 1]. Cells outside
// the disk are 0.
type Raster struct {
	Cols, Rows int
	Lum        []float64
}

// At returns the luminance of the cell at (col, row).
func (r *Raster) At(col, row int) float64 {
	return r.Lum[row*r.Cols+col]
}

// Rasterize samples g onto a cols×rows grid. The disk is scaled to fit the
// grid, honoring the cell aspect ratio, and centered in it.
func Rasterize(g terminator.Geometry, cols, rows int, opts Options) (*Raster, error) {
	if cols <= 0 || rows <= 0 {
		return nil, apperrors.NewValidationError("size", "raster must be at least 1×1, got %d×%d", cols, rows)
	}
	if opts.Supersample <= 0 {
		opts.Supersample = 1
	}
	if opts.CellAspect <= 0 || math.IsNaN(opts.CellAspect) || math.IsInf(opts.CellAspect, 0) {
		opts.CellAspect = 1
	}

	diameter := 2 * g.Radius
	cellW := math.Max(diameter/float64(cols), diameter*opts.CellAspect/float64(rows))
	cellH := cellW / opts.CellAspect
	x0 := g.Center.X - float64(cols)*cellW/2
	y0 := g.Center.Y - float64(rows)*cellH/2

	n := opts.Supersample
	weight := 1 / float64(n*n)
	r := &Raster{Cols: cols, Rows: rows, Lum: make([]float64, cols*rows)}
	for row := range rows {
		for col := range cols {
			var sum float64
			for sy := range n {
				for sx := range n {
					p := terminator.Point{
						X: x0 + (float64(col)+(float64(sx)+0.5)/float64(n))*cellW,
						Y: y0 + (float64(row)+(float64(sy)+0.5)/float64(n))*cellH,
					}
					sum += sample(g, p, opts)
				}
			}
			r.Lum[row*cols+col] = sum * weight
		}
	}
	return r, nil
}

// sample returns the luminance at a single point.
func sample(g terminator.Geometry, p terminator.Point, opts Options) float64 {
	dx, dy := p.X-g.Center.X, p.Y-g.Center.Y
	dist := math.Sqrt(dx*dx+dy*dy) / g.Radius
	if dist > 1 {
		return 0
	}
	lum := opts.Earthshine
	if g.Contains(p) {
		lum = 1
	}
	if opts.LimbDarkening && dist > LimbStart {
		lum *= 1 - LimbOpacity*(dist-LimbStart)/(1-LimbStart)
	}
	return lum
}

// shadeRamp runs from empty to full block.
var shadeRamp = []rune{' ', '·', '░', '▒', '▓', '█'}

// Blocks renders the raster as one line of shade characters per row.
func (r *Raster) Blocks() []string {
	lines := make([]string, r.Rows)
	var b strings.Builder
	for row := range r.Rows {
		b.Reset()
		for col := range r.Cols {
			b.WriteRune(shadeFor(r.At(col, row)))
		}
		lines[row] = b.String()
	}
	return lines
}

func shadeFor(lum float64) rune {
	if lum <= 0 {
		return shadeRamp[0]
	}
	idx := int(math.Ceil(lum * float64(len(shadeRamp)-1)))
	return shadeRamp[min(idx, len(shadeRamp)-1)]
}

// brailleDots maps (dot column 0-1, dot row 0-3) to the bit offsets of a
// braille character, which is U+2800 plus the sum of its raised dots.
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Braille renders the raster treating each cell as one braille dot, raised
// when its luminance exceeds threshold. Every character covers a 2×4 block of
// cells, so the output is ⌈Cols/2⌉ wide and ⌈Rows/4⌉ tall.
func (r *Raster) Braille(threshold float64) []string {
	width := (r.Cols + 1) / 2
	height := (r.Rows + 3) / 4
	lines := make([]string, height)
	cells := make([]rune, width)
	for line := range height {
		for c := range cells {
			cells[c] = 0x2800
		}
		for sub := range 4 {
			row := line*4 + sub
			if row >= r.Rows {
				break
			}
			for col := range r.Cols {
				if r.At(col, row) > threshold {
					cells[col/2] |= brailleDots[col%2][sub]
				}
			}
		}
		lines[line] = string(cells)
	}
	return lines
}

// Layout returns the disk center and radius for a square surface of the
// given side length.
func Layout(size float64) (terminator.Point, float64) {
	half := size / 2
	return terminator.Point{X: half, Y: half}, half * DiskScale
}
