package errors

import (
	"strings"
	"testing"
)

func TestValidateTaskID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"arc hex id", "045e512c", false},
		{"underscore and dash", "my_task-2", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"path separator", "a/b", true},
		{"traversal", "..", true},
		{"extension", "045e512c.json", true},
		{"space", "a b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTaskID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTaskID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidTask) {
				t.Errorf("ValidateTaskID(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeOutOfBounds,
		ErrCodeNoObjectsFound,
		ErrCodeAmbiguousClass,
		ErrCodeInvalidInput,
		ErrCodeInvalidGrid,
		ErrCodeInvalidTask,
		ErrCodeInvalidPath,
		ErrCodeTaskNotFound,
		ErrCodeFileNotFound,
		ErrCodeSolutionMissing,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
