package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("unexpected EOF")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"new", New(ErrCodeOutOfBounds, "(%d,%d) outside 3x3 grid", 3, 0), "OUT_OF_BOUNDS: (3,0) outside 3x3 grid"},
		{"wrapped", Wrap(ErrCodeInvalidTask, cause, "decode %s", "00d62c1b"), "INVALID_TASK: decode 00d62c1b: unexpected EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidTask, cause, "decode task")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIsAndGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		wantIs   bool
		wantCode Code
	}{
		{"matching", New(ErrCodeNoObjectsFound, "x"), ErrCodeNoObjectsFound, true, ErrCodeNoObjectsFound},
		{"other code", New(ErrCodeNoObjectsFound, "x"), ErrCodeAmbiguousClass, false, ErrCodeNoObjectsFound},
		{"outermost wins", Wrap(ErrCodeInvalidTask, New(ErrCodeInvalidGrid, "inner"), "outer"), ErrCodeInvalidGrid, false, ErrCodeInvalidTask},
		{"through fmt wrap", fmt.Errorf("solve 045e512c: %w", New(ErrCodeNoObjectsFound, "x")), ErrCodeNoObjectsFound, true, ErrCodeNoObjectsFound},
		{"plain error", errors.New("plain"), ErrCodeInternal, false, ""},
		{"nil", nil, ErrCodeInternal, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.wantIs {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.wantIs)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode(%v) = %q, want %q", tt.err, got, tt.wantCode)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeTaskNotFound, "task %s not found", "abc")); got != "task abc not found" {
		t.Errorf("UserMessage() = %q, want message without code", got)
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain error")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("3 of 4 pairs incorrect"), ExitFailure},
		{New(ErrCodeInternal, "x"), ExitFailure},
		{New(ErrCodeInvalidInput, "x"), ExitUsage},
		{New(ErrCodeInvalidTask, "x"), ExitUsage},
		{fmt.Errorf("load: %w", New(ErrCodeTaskNotFound, "x")), ExitNotFound},
		{New(ErrCodeFileNotFound, "x"), ExitNotFound},
		{New(ErrCodeSolutionMissing, "x"), ExitNoSolution},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
