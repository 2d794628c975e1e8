package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/flowsample/internal/cli"
	"github.com/agbru/flowsample/internal/config"
	apperrors "github.com/agbru/flowsample/internal/errors"
	"github.com/agbru/flowsample/internal/list"
	"github.com/agbru/flowsample/internal/logging"
	"github.com/agbru/flowsample/internal/metrics"
	"github.com/agbru/flowsample/internal/numeric"
	"github.com/agbru/flowsample/internal/orchestration"
	"github.com/agbru/flowsample/internal/sysmon"
	"github.com/agbru/flowsample/internal/ui"
)

// Application represents the flowsample application instance.
type Application struct {
	Config    config.AppConfig
	Factory   *numeric.Factory
	ErrWriter io.Writer

	logger logging.Logger
	exit   func(code int)
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom strategy factory for the application.
func WithFactory(f *numeric.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the stderr logger selected by -log-format.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.logger = l }
}

// WithExitFunc replaces os.Exit for the fatal allocation path.
func WithExitFunc(fn func(code int)) AppOption {
	return func(a *Application) { a.exit = fn }
}

// New creates a new Application instance by parsing command-line arguments.
// Configuration errors other than a help request are reported on errWriter.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, exit: os.Exit}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = numeric.NewDefaultFactory()
	}
	programName := "flowsample"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		if !IsHelpError(err) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}

	app.Config = cfg
	if app.logger == nil {
		app.logger = logging.NewWithFormat(cfg.LogFormat, errWriter, "flowsample")
	}
	return app, nil
}

// Run executes the demonstrations and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	level := zerolog.WarnLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.Theme, a.Config.NoColor, out)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	recorder := metrics.NewRecorder()
	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	l := list.New(
		list.WithArena(list.NewArena(a.Config.MaxNodes)),
		list.WithObserver(recorder),
		list.WithFatalHandler(a.fatal),
	)

	steps := BuildSteps(a.Config, Deps{
		List:     l,
		Factory:  a.Factory,
		Recorder: recorder,
		Logger:   a.logger,
	})
	runner := orchestration.NewRunner(
		orchestration.WithObserver(recorder),
		orchestration.WithLogger(a.logger),
	)

	a.logger.Debug("starting demonstrations", logging.Int("steps", len(steps)))
	results, err := runner.Run(ctx, steps, out)

	if a.Config.Details {
		var presenter orchestration.ResultPresenter = cli.CLIResultPresenter{}
		presenter.PresentSummary(results, out)
		cli.DisplayMemoryStats(collector.Snapshot().Since(before), out)
		if stats, serr := sysmon.Sample(ctx); serr != nil {
			a.logger.Warn("host usage unavailable", logging.Err(serr))
		} else {
			cli.DisplaySystemStats(stats, out)
		}
	}

	if a.Config.MetricsFile != "" {
		if werr := recorder.WriteToFile(a.Config.MetricsFile); werr != nil {
			a.logger.Error("metrics export failed", werr, logging.String("path", a.Config.MetricsFile))
			err = errors.Join(err, apperrors.WrapError(werr, "writing metrics to %s", a.Config.MetricsFile))
		}
	}

	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	}
	return apperrors.ExitCode(err)
}

// fatal is the list's allocation failure handler. It never returns in
// production because a.exit is os.Exit.
func (a *Application) fatal(err error) {
	a.logger.Error("node allocation failed", err)
	fmt.Fprintln(a.ErrWriter, apperrors.AllocationDiagnostic)
	a.exit(apperrors.ExitErrorAllocation)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
