package fbexport

import "fmt"

// ExportError represents an error that occurred during an export run
type ExportError struct {
	Operation string
	Cause     error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error during %s: %v", e.Operation, e.Cause)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in field %s: %s", e.Field, e.Message)
}

// LimitError reports a crossed safety ceiling. The run stops immediately
// but the checkpoint saved so far stays valid for resuming.
type LimitError struct {
	Counter string
	Limit   int
	Value   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("safety ceiling reached for %s: %d >= %d", e.Counter, e.Value, e.Limit)
}
