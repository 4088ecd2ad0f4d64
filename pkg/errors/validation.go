package errors

import "regexp"

// taskIDRegex matches task identifiers: the basename of a task file without
// its .json extension (ARC uses 8 hex digits, but any simple name is allowed).
var taskIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateTaskID validates a task identifier for safety and correctness.
// Task IDs are joined onto the tasks directory, so anything that could
// escape it is rejected:
//   - No empty IDs
//   - Maximum length of 128 characters
//   - Only letters, digits, '_' and '-'
func ValidateTaskID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidTask, "task ID cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidTask, "task ID too long (max 128 characters)")
	}

	if !taskIDRegex.MatchString(id) {
		return New(ErrCodeInvalidTask, "invalid task ID: %q", id)
	}

	return nil
}
