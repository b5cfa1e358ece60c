package lexicon

import "fmt"

// ConfigError represents a malformed lexicon configuration. It is fatal at
// load time: the engine refuses to serve with a partially loaded lexicon.
type ConfigError struct {
	Source  string // file path or "builtin"
	Entry   string // offending phrase or pattern, if known
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("lexicon config error in %s", e.Source)
	if e.Entry != "" {
		msg += fmt.Sprintf(" (entry %q)", e.Entry)
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
