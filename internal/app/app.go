package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/agbru/lunaris/internal/config"
	apperrors "github.com/agbru/lunaris/internal/errors"
	"github.com/agbru/lunaris/internal/logging"
	"github.com/agbru/lunaris/internal/metrics"
	"github.com/agbru/lunaris/internal/ui"
)

// Application represents the lunaris application instance. It owns the
// command tree and the state the commands share once the configuration has
// been resolved.
type Application struct {
	Config    config.AppConfig
	Out       io.Writer
	ErrWriter io.Writer
	In        io.Reader
	Logger    logging.Logger
	Metrics   *metrics.Recorder

	now     func() time.Time
	flags   *config.Flags
	root    *cobra.Command
	closers []io.Closer
	// resolved is set once the configuration passed validation.
	resolved bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithOutput sets the writers used for command output and errors.
func WithOutput(out, errWriter io.Writer) AppOption {
	return func(a *Application) {
		a.Out = out
		a.ErrWriter = errWriter
	}
}

// WithInput sets the reader the repl command reads from.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// WithClock replaces the source of "now".
func WithClock(now func() time.Time) AppOption {
	return func(a *Application) { a.now = now }
}

// New creates a new Application with its command tree.
func New(opts ...AppOption) *Application {
	a := &Application{
		Out:       os.Stdout,
		ErrWriter: os.Stderr,
		In:        os.Stdin,
		Logger:    logging.Nop(),
		Metrics:   metrics.New(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.root = a.newRootCommand()
	return a
}

// Command returns the root command.
func (a *Application) Command() *cobra.Command {
	return a.root
}

// Run executes the command line args (without the program name) and returns
// the process exit code. SIGINT and SIGTERM cancel the running command.
func (a *Application) Run(ctx context.Context, args []string) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	a.root.SetArgs(args)
	err := a.root.ExecuteContext(ctx)
	a.finish()

	if err != nil {
		fmt.Fprintf(a.ErrWriter, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

func (a *Application) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "lunaris",
		Short: "Moon phase calculator and visualizer",
		Long: `lunaris computes the phase of the Moon for any instant and draws the
lit part of the disk.

It prints phase reports and calendars of principal phases, writes SVG
masks and frame sequences, and animates the Moon in the terminal.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.Out)
	root.SetErr(a.ErrWriter)
	root.SetIn(a.In)
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})

	a.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.newPhaseCommand(),
		a.newMaskCommand(),
		a.newCalendarCommand(),
		a.newExportCommand(),
		a.newWatchCommand(),
		a.newREPLCommand(),
		a.newConfigCommand(),
		newVersionCommand(),
	)
	return root
}

// setup resolves the configuration for the command being run and prepares
// the logger and the color theme.
func (a *Application) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.flags.Resolve(cmd.Flags())
	if err != nil {
		return err
	}
	a.Config = cfg
	a.resolved = true

	ui.InitTheme(cfg.Theme, cfg.NoColor)

	// The watch view owns the terminal, so it only logs to a file.
	logOut := a.ErrWriter
	if cmd.Name() == watchCommandName {
		logOut = io.Discard
	}
	logger, err := a.newLogger(cfg, logOut)
	if err != nil {
		return err
	}
	a.Logger = logger
	a.Logger.Debug("configuration resolved",
		logging.String("command", cmd.Name()),
		logging.String("timezone", cfg.TimeZone),
		logging.String("language", cfg.Language))
	return nil
}

func (a *Application) newLogger(cfg config.AppConfig, fallback io.Writer) (logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}
	if cfg.LogFile == "" {
		if fallback == io.Discard {
			return logging.Nop(), nil
		}
		return logging.NewConsoleLogger(fallback, level), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, apperrors.NewConfigError("opening log file: %v", err)
	}
	a.closers = append(a.closers, f)
	return logging.NewConsoleLogger(f, level), nil
}

// finish writes the metrics file and releases the log file.
func (a *Application) finish() {
	if a.resolved {
		if err := a.Metrics.WriteToTextfile(a.Config.MetricsFile); err != nil {
			a.Logger.Error("writing metrics file", err, logging.String("path", a.Config.MetricsFile))
		}
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

// commandContext returns the command's context, or a background context when
// the command is executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// clockFunc adapts a "now" function to animation.Clock.
type clockFunc func() time.Time

func (f clockFunc) Now() time.Time { return f() }
