package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate defines the animation frequency of the spinner shown
// while an evaluation is running.
const SpinnerRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of evaluation display from a specific
// spinner implementation, facilitating easier testing and maintenance.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
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
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner constructs the spinner used during evaluations. Declared as a
// variable so tests can substitute a silent implementation.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// RunWithSpinner executes fn while displaying a spinner with the given label.
// When enabled is false, fn runs without any terminal decoration (quiet and
// JSON modes, non-terminal outputs).
//
// Parameters:
//   - enabled: Whether to display the spinner at all.
//   - label: The status text shown next to the spinner.
//   - out: The writer the spinner renders to.
//   - fn: The function to execute.
//
// Returns:
//   - error: The error returned by fn.
func RunWithSpinner(enabled bool, label string, out io.Writer, fn func() error) error {
	if !enabled {
		return fn()
	}
	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(" " + label)
	s.Start()
	defer s.Stop()
	return fn()
}
