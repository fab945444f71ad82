package diag

import "fmt"

// Severity is the resolved per-rule level: 0 suppressed, 1 warning, 2 fatal.
// Values outside that set pass through unchanged from configuration; they
// still emit, they are just never fatal.
type Severity int

const (
	// SevOff suppresses the rule entirely; no diagnostic is produced.
	SevOff Severity = 0
	// SevWarning is the default for every rule.
	SevWarning Severity = 1
	// SevFatal marks the diagnostic fatal; the run itself is not aborted.
	SevFatal Severity = 2
)

// Emits reports whether a diagnostic is produced at this level.
func (s Severity) Emits() bool {
	return s != SevOff
}

// IsFatal reports whether the fatal flag is set. Only an exact 2 is fatal.
func (s Severity) IsFatal() bool {
	return s == SevFatal
}

func (s Severity) String() string {
	switch s {
	case SevOff:
		return "off"
	case SevWarning:
		return "warning"
	case SevFatal:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}
