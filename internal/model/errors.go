package model

import "fmt"

// LimitError reports a crossed safety ceiling. It is fatal: the run stops
// immediately after the last checkpoint save, leaving a resumable
// checkpoint behind.
type LimitError struct {
	Counter string
	Limit   int
	Value   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("safety ceiling reached for %s: %d >= %d", e.Counter, e.Value, e.Limit)
}
