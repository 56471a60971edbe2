package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/template"

	apperrors "github.com/agbru/lunaris/internal/errors"
	"github.com/agbru/lunaris/internal/terminator"
)

// SVGOptions controls the SVG document.
type SVGOptions struct {
	// Size is the side of the square canvas; the geometry should have been
	// built for it with Layout.
	Size float64
	// Texture is an optional image href for the lunar surface. Without one,
	// both layers are flat fills.
	Texture string
	// Title becomes the document's <title> when set.
	Title string
}

type svgData struct {
	Size       string
	CX, CY, R  string
	Path       string
	Texture    string
	Title      string
	Earthshine string
	Lit        string
	LimbStart  string
	LimbEdge   string
}

var svgTemplate = template.Must(template.New("moon").Funcs(template.FuncMap{"xml": escapeXML}).Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Size}}" height="{{.Size}}" viewBox="0 0 {{.Size}} {{.Size}}">
{{- if .Title}}
  <title>{{xml .Title}}</title>
{{- end}}
  <defs>
    <clipPath id="moon-clip">
      <circle cx="{{.CX}}" cy="{{.CY}}" r="{{.R}}"/>
    </clipPath>
    <mask id="phase-mask">
      <rect x="0" y="0" width="{{.Size}}" height="{{.Size}}" fill="black"/>
      <path d="{{.Path}}" fill="white"/>
    </mask>
    <radialGradient id="sphere-shading" cx="50%" cy="50%" r="50%">
      <stop offset="{{.LimbStart}}%" stop-color="black" stop-opacity="0"/>
      <stop offset="100%" stop-color="black" stop-opacity="{{.LimbEdge}}"/>
    </radialGradient>
  </defs>
{{- if .Texture}}
  <image href="{{xml .Texture}}" x="0" y="0" width="{{.Size}}" height="{{.Size}}" clip-path="url(#moon-clip)" style="filter: brightness({{.Earthshine}}) contrast(1.2)"/>
  <image href="{{xml .Texture}}" x="0" y="0" width="{{.Size}}" height="{{.Size}}" mask="url(#phase-mask)" clip-path="url(#moon-clip)" style="filter: brightness({{.Lit}}) contrast(1.3) saturate(0.9)"/>
{{- else}}
  <circle cx="{{.CX}}" cy="{{.CY}}" r="{{.R}}" fill="#c8c8c8" style="filter: brightness({{.Earthshine}})"/>
  <rect x="0" y="0" width="{{.Size}}" height="{{.Size}}" fill="#c8c8c8" mask="url(#phase-mask)" clip-path="url(#moon-clip)"/>
{{- end}}
  <circle cx="{{.CX}}" cy="{{.CY}}" r="{{.R}}" fill="url(#sphere-shading)"/>
</svg>
`))

func escapeXML(s string) (string, error) {
	var b bytes.Buffer
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return "", err
	}
	return b.String(), nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteSVG writes a standalone SVG document showing g: an earthshine layer
// clipped to the disk, the lit layer masked by the phase outline, and a radial
// shading overlay.
func WriteSVG(w io.Writer, g terminator.Geometry, opts SVGOptions) error {
	if opts.Size <= 0 {
		return apperrors.NewValidationError("size", "must be positive, got %v", opts.Size)
	}
	data := svgData{
		Size:       num(opts.Size),
		CX:         num(g.Center.X),
		CY:         num(g.Center.Y),
		R:          num(g.Radius),
		Path:       g.SVGPath(),
		Texture:    opts.Texture,
		Title:      opts.Title,
		Earthshine: num(EarthshineBrightness),
		Lit:        num(LitBrightness),
		LimbStart:  num(math.Round(LimbStart * 100)),
		LimbEdge:   num(LimbOpacity),
	}
	if err := svgTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering svg: %w", err)
	}
	return nil
}

// WriteMask lays out a disk on an opts.Size canvas, builds its geometry for
// phase and writes the SVG document.
func WriteMask(w io.Writer, phase float64, opts SVGOptions) (terminator.Geometry, error) {
	center, radius := Layout(opts.Size)
	g, err := terminator.Build(phase, radius, center)
	if err != nil {
		return terminator.Geometry{}, err
	}
	return g, WriteSVG(w, g, opts)
}
