package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/logging"
)

// runApp builds and runs the application with the given CLI arguments,
// returning the exit code and the captured standard output.
func runApp(t *testing.T, args ...string) (int, string) {
	t.Helper()
	// Keep output deterministic regardless of the terminal running the tests.
	args = append(args, "-no-color")

	var errOut bytes.Buffer
	application, err := New(append([]string{"fibseq"}, args...), &errOut,
		WithLogger(logging.NewLogger(io.Discard, "test")))
	if err != nil {
		t.Fatalf("New(%v): %v\n%s", args, err, errOut.String())
	}

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	return code, out.String()
}

func TestRun_SequenceMode(t *testing.T) {
	code, out := runApp(t, "-count", "10", "-q")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	want := "0\n1\n1\n2\n3\n5\n8\n13\n21\n34\n"
	if out != want {
		t.Errorf("sequence output = %q, want %q", out, want)
	}
}

func TestRun_SequenceMode_ZeroCount(t *testing.T) {
	code, out := runApp(t, "-count", "0", "-q")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if out != "" {
		t.Errorf("output for an empty sequence = %q, want empty", out)
	}
}

func TestRun_CheckMode(t *testing.T) {
	code, out := runApp(t, "-check", "21", "-q")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if out != "true\n" {
		t.Errorf("membership output for 21 = %q, want %q", out, "true\n")
	}

	code, out = runApp(t, "-check", "35", "-q")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if out != "false\n" {
		t.Errorf("membership output for 35 = %q, want %q", out, "false\n")
	}
}

func TestRun_SingleStrategy(t *testing.T) {
	code, out := runApp(t, "-n", "20", "-algo", "iterative", "-q")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d\noutput: %s", code, apperrors.ExitSuccess, out)
	}
	if !strings.Contains(out, "6765") {
		t.Errorf("output %q does not contain F(20) = 6765", out)
	}
}

func TestRun_AllStrategiesAgree(t *testing.T) {
	code, out := runApp(t, "-n", "25", "-q")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d\noutput: %s", code, apperrors.ExitSuccess, out)
	}
	if !strings.Contains(out, "75025") {
		t.Errorf("output %q does not contain F(25) = 75025", out)
	}
}

func TestRun_ComparisonTable(t *testing.T) {
	code, out := runApp(t, "-n", "25")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d\noutput: %s", code, apperrors.ExitSuccess, out)
	}
	for _, want := range []string{"Evaluating F(25)", "Strategy", "Success"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestRun_RecursiveDomainLimit(t *testing.T) {
	code, out := runApp(t, "-n", "60", "-algo", "recursive", "-q")
	if code != apperrors.ExitErrorConfig {
		t.Fatalf("exit code = %d, want %d\noutput: %s", code, apperrors.ExitErrorConfig, out)
	}
}

func TestRun_Timeout(t *testing.T) {
	code, out := runApp(t, "-n", "45", "-algo", "recursive", "-timeout", "50ms", "-q")
	if code != apperrors.ExitErrorTimeout {
		t.Fatalf("exit code = %d, want %d\noutput: %s", code, apperrors.ExitErrorTimeout, out)
	}
}

func TestNew_InvalidStrategy(t *testing.T) {
	var errOut bytes.Buffer
	_, err := New([]string{"fibseq", "-algo", "closed-form"}, &errOut)
	if err == nil {
		t.Fatal("New accepted an unknown strategy")
	}
	var confErr apperrors.ConfigError
	if !errors.As(err, &confErr) {
		t.Errorf("error type = %T, want ConfigError", err)
	}
	if !strings.Contains(errOut.String(), "closed-form") {
		t.Errorf("error output %q does not name the bad strategy", errOut.String())
	}
}

func TestNew_Help(t *testing.T) {
	var errOut bytes.Buffer
	_, err := New([]string{"fibseq", "-h"}, &errOut)
	if !IsHelpError(err) {
		t.Fatalf("New(-h) error = %v, want a help error", err)
	}
	if !strings.Contains(errOut.String(), "-algo") {
		t.Errorf("usage output %q does not list the flags", errOut.String())
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"-version"}, true},
		{[]string{"-V"}, true},
		{[]string{"-n", "10", "--version"}, true},
		{[]string{"-n", "10"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	got := out.String()
	for _, want := range []string{"fibseq", "Commit:", "Go version:", "OS/Arch:"} {
		if !strings.Contains(got, want) {
			t.Errorf("version output %q is missing %q", got, want)
		}
	}
}
