package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/fibseq/internal/cli"
	"github.com/agbru/fibseq/internal/config"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fibonacci"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/orchestration"
	"github.com/agbru/fibseq/internal/ui"
)

// Application represents the fibseq application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.EvaluatorFactory
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom EvaluatorFactory for the application.
func WithFactory(f fibonacci.EvaluatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument vector (args[0] is the program name).
//   - errWriter: The writer for parse errors and usage output.
//   - opts: Optional construction overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp when -h was requested, or a ConfigError.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}
	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}

	programName := "fibseq"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(errWriter, "%v\n", err)
		}
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
// Mode precedence: membership check, then sequence printing, then
// single-index evaluation.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Check != "" {
		return a.runCheck(out)
	}
	if a.Config.SequenceMode {
		return a.runSequence(out)
	}
	return a.runEvaluate(ctx, out)
}

// runEvaluate evaluates F(n) with the selected strategies and cross-checks
// their agreement.
func (a *Application) runEvaluate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	evaluatorsToRun := orchestration.GetEvaluatorsToRun(a.Config.Algo, a.Factory)
	if len(evaluatorsToRun) == 0 {
		fmt.Fprintf(a.ErrWriter, "no strategy matches %q\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(out, a.Config.N, a.Config.Algo, a.Config.Timeout)
	}

	a.Logger.Debug("starting evaluation",
		logging.Uint64("n", a.Config.N),
		logging.String("algo", a.Config.Algo),
		logging.Int("strategies", len(evaluatorsToRun)))

	sp := cli.StartEvaluationSpinner(a.ErrWriter, fmt.Sprintf("Evaluating F(%d)...", a.Config.N), a.Config.Quiet)
	start := time.Now()
	results := orchestration.ExecuteEvaluations(ctx, evaluatorsToRun, a.Config.N)
	sp.Stop()

	a.Logger.Debug("evaluation finished",
		logging.Uint64("n", a.Config.N),
		logging.String("elapsed", time.Since(start).String()))

	presenter := cli.CLIPresenter{Config: cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		ShowValue:  a.Config.ShowValue,
	}}
	return orchestration.AnalyzeComparisonResults(results, a.Config.N, presenter, out)
}

// runSequence prints the first Count Fibonacci values.
// A non-positive count prints nothing and succeeds, matching the sequence
// builder's contract.
func (a *Application) runSequence(out io.Writer) int {
	seq := fibonacci.Sequence(a.Config.Count)
	cli.DisplaySequence(out, seq, a.Config.Quiet)
	return apperrors.ExitSuccess
}

// runCheck tests the configured candidate for Fibonacci membership.
func (a *Application) runCheck(out io.Writer) int {
	candidate := a.Config.CheckValue()
	if candidate == nil {
		// Validate already rejected malformed candidates; reaching this means
		// check mode was not actually requested.
		return apperrors.ExitErrorConfig
	}
	cli.DisplayMembership(out, candidate, fibonacci.IsFibonacci(candidate), a.Config.Quiet)
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
