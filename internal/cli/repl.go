// Package cli provides the command-line presentation of lunaris: phase
// reports, calendars, mask output, export progress and the interactive REPL.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/agbru/lunaris/internal/format"
	"github.com/agbru/lunaris/internal/lunar"
	"github.com/agbru/lunaris/internal/ui"
)

// Size of the disk preview printed by the REPL.
const (
	previewCols = 24
	previewRows = 12
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Location is the time zone dates are read and shown in.
	Location *time.Location
	// Language selects phase labels and date formats.
	Language language.Tag
	// Preview prints a shaded disk after every report.
	Preview bool
}

// REPL is an interactive session that moves a cursor date around and reports
// the phase at it.
type REPL struct {
	config  REPLConfig
	current time.Time
	now     func() time.Time
	in      io.Reader
	out     io.Writer
}

// nextPhaseAliases maps the words accepted by "next" to principal phases.
var nextPhaseAliases = map[string]lunar.PhaseName{
	"new":   lunar.NewMoon,
	"first": lunar.FirstQuarter,
	"full":  lunar.FullMoon,
	"last":  lunar.LastQuarter,
}

// NewREPL creates a new REPL positioned at the current time.
func NewREPL(config REPLConfig) *REPL {
	if config.Location == nil {
		config.Location = time.Local
	}
	r := &REPL{
		config: config,
		now:    time.Now,
		in:     os.Stdin,
		out:    os.Stdout,
	}
	r.current = r.now().In(config.Location)
	return r
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// SetClock replaces the time source and moves the cursor to its now.
func (r *REPL) SetClock(now func() time.Time) {
	r.now = now
	r.current = now().In(r.config.Location)
}

// Current returns the date the session is positioned at.
func (r *REPL) Current() time.Time {
	return r.current
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)
	r.show()

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorSuccess()+"moon> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && strings.TrimSpace(input) != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorError(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════╗%s\n", ui.ColorPrimary(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🌙 lunaris - Interactive Mode%s         %s║%s\n",
		ui.ColorPrimary(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorPrimary(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════╝%s\n\n", ui.ColorPrimary(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %stoday%s          - Jump to the current time\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s+N%s / %s-N%s      - Move N days forward or back\n", ui.ColorWarning(), ui.ColorReset(), ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<date>%s         - Jump to a date (YYYY-MM-DD, \"YYYY-MM-DD HH:MM\", RFC 3339)\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %snext <phase>%s   - Jump to the next new, first, full or last quarter\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sphase <P>%s      - Describe a phase fraction in [0, 1)\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s    - Exit interactive mode\n", ui.ColorWarning(), ui.ColorReset(), ui.ColorWarning(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch {
	case cmd == "today" || cmd == "now" || cmd == "t":
		r.current = r.now().In(r.config.Location)
		r.show()
	case cmd == "next" || cmd == "n":
		r.cmdNext(args)
	case cmd == "phase" || cmd == "p":
		r.cmdPhase(args)
	case cmd == "help" || cmd == "h" || cmd == "?":
		r.printHelp()
	case cmd == "exit" || cmd == "quit" || cmd == "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorSuccess(), ui.ColorReset())
		return false
	case len(parts) == 1 && (strings.HasPrefix(cmd, "+") || strings.HasPrefix(cmd, "-")):
		r.cmdShift(cmd)
	default:
		t, err := ParseDate(input, r.config.Location, r.now())
		if err != nil {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorError(), input, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorWarning(), ui.ColorReset())
			return true
		}
		r.current = t
		r.show()
	}
	return true
}

func (r *REPL) cmdShift(arg string) {
	days, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid day offset: %s%s\n", ui.ColorError(), arg, ui.ColorReset())
		return
	}
	r.current = r.current.AddDate(0, 0, days)
	fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorInfo(), format.FormatSignedDays(days), ui.ColorReset())
	r.show()
}

func (r *REPL) cmdNext(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: next <new|first|full|last>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	name, ok := nextPhaseAliases[strings.ToLower(args[0])]
	if !ok {
		fmt.Fprintf(r.out, "%sUnknown phase: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}
	// Step past the cursor so repeated "next full" walks forward.
	t, err := lunar.NextPhase(r.current.Add(time.Minute), name)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}
	r.current = t.In(r.config.Location)
	r.show()
}

func (r *REPL) cmdPhase(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: phase <fraction>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	p, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}
	res, err := lunar.FromFraction(p)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s %s%s%s\n", PhaseGlyph(res.Name), ui.ColorBold(), res.Name.Localized(r.config.Language), ui.ColorReset())
	fmt.Fprintf(r.out, "  Illumination:    %s%s%s\n", ui.ColorSecondary(), format.FormatPercent(res.Illumination), ui.ColorReset())
	fmt.Fprintf(r.out, "  Age:             %s%s%s\n", ui.ColorSecondary(), format.FormatAge(res.Age), ui.ColorReset())
	r.preview(res.Phase)
	fmt.Fprintln(r.out)
}

// show prints the report for the cursor date.
func (r *REPL) show() {
	report, err := NewPhaseReport(r.current, r.config.Language)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}
	DisplayPhaseReport(r.out, report, r.config.Language)
	r.preview(report.Phase)
	fmt.Fprintln(r.out)
}

func (r *REPL) preview(phase float64) {
	if !r.config.Preview {
		return
	}
	if err := DisplayDisk(r.out, phase, previewCols, previewRows); err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
	}
}
