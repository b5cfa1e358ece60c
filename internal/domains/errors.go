package domains

import "fmt"

// LookupError describes a failed registration-data lookup.
type LookupError struct {
	Domain  string
	Message string
	Cause   error
}

func (e *LookupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("domain lookup %q: %s: %v", e.Domain, e.Message, e.Cause)
	}
	return fmt.Sprintf("domain lookup %q: %s", e.Domain, e.Message)
}

func (e *LookupError) Unwrap() error {
	return e.Cause
}
