package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/orchestration"
)

func TestCLIPresenter_HandleError(t *testing.T) {
	useNoColorTheme(t)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"deadline exceeded", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"wrapped deadline", fmt.Errorf("evaluate: %w", context.DeadlineExceeded), apperrors.ExitErrorTimeout},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"validation", apperrors.ValidationError{Field: "n", Message: "too large"}, apperrors.ExitErrorConfig},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric},
		{"nil", nil, apperrors.ExitErrorGeneric},
	}

	p := CLIPresenter{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if got := p.HandleError(tt.err, &out); got != tt.want {
				t.Errorf("HandleError(%v) = %d, want %d", tt.err, got, tt.want)
			}
			if tt.err != nil && !strings.Contains(out.String(), tt.err.Error()) {
				t.Errorf("output %q does not mention the error", out.String())
			}
		})
	}
}

func TestCLIPresenter_PresentResult(t *testing.T) {
	useNoColorTheme(t)
	result := orchestration.EvaluationResult{
		Name:     "Iterative (O(n), Constant Memory)",
		Result:   big.NewInt(832040),
		Duration: time.Millisecond,
	}

	t.Run("quiet prints the bare value", func(t *testing.T) {
		var out bytes.Buffer
		p := CLIPresenter{Config: OutputConfig{Quiet: true}}
		p.PresentResult(result, 30, &out)
		if out.String() != "832040\n" {
			t.Errorf("quiet output = %q, want %q", out.String(), "832040\n")
		}
	})

	t.Run("show-value prints the labeled form", func(t *testing.T) {
		var out bytes.Buffer
		p := CLIPresenter{Config: OutputConfig{ShowValue: true}}
		p.PresentResult(result, 30, &out)
		if !strings.Contains(out.String(), "F(30) = 832040") {
			t.Errorf("output = %q, want it to contain %q", out.String(), "F(30) = 832040")
		}
	})

	t.Run("default prints nothing", func(t *testing.T) {
		var out bytes.Buffer
		p := CLIPresenter{}
		p.PresentResult(result, 30, &out)
		if out.Len() != 0 {
			t.Errorf("default output = %q, want empty", out.String())
		}
	})
}

func TestCLIPresenter_PresentComparisonTable(t *testing.T) {
	useNoColorTheme(t)
	results := []orchestration.EvaluationResult{
		{Name: "fast", Result: big.NewInt(55), Duration: time.Millisecond},
		{Name: "broken", Err: errors.New("timed out"), Duration: time.Second},
	}

	t.Run("quiet suppresses the table", func(t *testing.T) {
		var out bytes.Buffer
		p := CLIPresenter{Config: OutputConfig{Quiet: true}}
		p.PresentComparisonTable(results, &out)
		if out.Len() != 0 {
			t.Errorf("quiet table output = %q, want empty", out.String())
		}
	})

	t.Run("table lists every strategy with status", func(t *testing.T) {
		var out bytes.Buffer
		p := CLIPresenter{}
		p.PresentComparisonTable(results, &out)
		got := out.String()
		for _, want := range []string{"Strategy", "fast", "OK", "broken", "timed out"} {
			if !strings.Contains(got, want) {
				t.Errorf("table %q is missing %q", got, want)
			}
		}
	})
}

// fakeSpinner records lifecycle calls for spinner wiring tests.
type fakeSpinner struct {
	started bool
	stopped bool
	suffix  string
}

func (f *fakeSpinner) Start()                     { f.started = true }
func (f *fakeSpinner) Stop()                      { f.stopped = true }
func (f *fakeSpinner) UpdateSuffix(suffix string) { f.suffix = suffix }

func TestStartEvaluationSpinner(t *testing.T) {
	t.Run("quiet returns a no-op spinner", func(t *testing.T) {
		var out bytes.Buffer
		sp := StartEvaluationSpinner(&out, "working", true)
		sp.Stop()
		if out.Len() != 0 {
			t.Errorf("quiet spinner wrote %q", out.String())
		}
	})

	t.Run("starts with the given message", func(t *testing.T) {
		fake := &fakeSpinner{}
		orig := newSpinner
		newSpinner = func(options ...spinner.Option) Spinner { return fake }
		defer func() { newSpinner = orig }()

		var out bytes.Buffer
		sp := StartEvaluationSpinner(&out, "Evaluating F(30)...", false)
		if !fake.started {
			t.Error("spinner was not started")
		}
		if !strings.Contains(fake.suffix, "Evaluating F(30)...") {
			t.Errorf("suffix = %q, want the message included", fake.suffix)
		}
		sp.Stop()
		if !fake.stopped {
			t.Error("spinner was not stopped")
		}
	})
}
