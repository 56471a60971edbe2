// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayPhaseReport], [DisplayCalendar], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//
//   - Write* functions write documents, either to a writer or to files on
//     the filesystem.
//     Examples: [WriteMaskToFile], [WritePhaseJSON].

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agbru/lunaris/internal/render"
	"github.com/agbru/lunaris/internal/terminator"
	"github.com/agbru/lunaris/internal/ui"
)

// OutputConfig holds configuration for mask output.
type OutputConfig struct {
	// OutputFile is the path to save the document (empty for the writer).
	OutputFile string
	// Quiet suppresses the confirmation line.
	Quiet bool
}

// WriteMaskToFile renders the mask for phase into path, creating parent
// directories as needed.
func WriteMaskToFile(path string, phase float64, opts render.SVGOptions) (terminator.Geometry, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return terminator.Geometry{}, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return terminator.Geometry{}, fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	g, err := render.WriteMask(w, phase, opts)
	if err != nil {
		return terminator.Geometry{}, err
	}
	if err := w.Flush(); err != nil {
		return terminator.Geometry{}, err
	}
	return g, file.Close()
}

// DisplayMaskWithConfig writes the mask document to out, or to
// config.OutputFile with a confirmation line on out.
func DisplayMaskWithConfig(out io.Writer, phase float64, opts render.SVGOptions, config OutputConfig) (terminator.Geometry, error) {
	if config.OutputFile == "" {
		return render.WriteMask(out, phase, opts)
	}
	g, err := WriteMaskToFile(config.OutputFile, phase, opts)
	if err != nil {
		return terminator.Geometry{}, err
	}
	if !config.Quiet {
		fmt.Fprintf(out, "%s✓ Mask saved to: %s%s%s\n",
			ui.ColorSuccess(), ui.ColorPrimary(), config.OutputFile, ui.ColorReset())
	}
	return g, nil
}

// DisplayDisk draws a small shaded preview of the disk at phase.
func DisplayDisk(out io.Writer, phase float64, cols, rows int) error {
	center, radius := terminator.Point{X: 1, Y: 1}, 1.0
	g, err := terminator.Build(phase, radius, center)
	if err != nil {
		return err
	}
	raster, err := render.Rasterize(g, cols, rows, render.DefaultOptions())
	if err != nil {
		return err
	}
	for _, line := range raster.Blocks() {
		fmt.Fprintf(out, "  %s%s%s\n", ui.ColorWarning(), line, ui.ColorReset())
	}
	return nil
}
