package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate defines the animation interval of the terminal spinner.
// 200ms keeps the animation smooth while minimizing terminal writes.
const SpinnerRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This decouples callers from a specific spinner implementation, facilitating
// easier testing and maintenance. It defines the essential controls for a
// spinner: starting, stopping, and updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner is a factory variable so tests can substitute a fake spinner.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// nullSpinner is used in quiet mode or when output is not a terminal.
type nullSpinner struct{}

func (nullSpinner) Start()                   {}
func (nullSpinner) Stop()                    {}
func (nullSpinner) UpdateSuffix(suffix string) {}

// StartEvaluationSpinner starts a spinner announcing an in-flight evaluation
// and returns it for the caller to Stop. In quiet mode a no-op spinner is
// returned so call sites need no branching.
//
// Parameters:
//   - out: The writer the spinner animates on (usually stderr).
//   - message: The text displayed next to the spinner.
//   - quiet: Suppresses the spinner entirely when true.
//
// Returns:
//   - Spinner: The started spinner.
func StartEvaluationSpinner(out io.Writer, message string, quiet bool) Spinner {
	if quiet {
		return nullSpinner{}
	}
	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(" " + message)
	sp.Start()
	return sp
}
