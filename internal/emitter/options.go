package emitter

import (
	"htmlint/internal/diag"
)

// Source is the origin tag every assembled diagnostic carries.
const Source = "htmlint"

// Options configures one annotation run over a single document.
type Options struct {
	// Fragment records fragment vs full-document parse mode. The flag is
	// forwarded to consumers (and cache keys) but never interpreted here;
	// parsing mode is the external parser's business.
	Fragment bool

	// Severities is the per-rule policy, keyed by normalized identifiers.
	// Rules absent from the map default to warning.
	Severities SeverityConfig

	// Sink receives each assembled diagnostic. A nil sink suppresses
	// nothing: resolution and rendering still run, output just has
	// nowhere to go.
	Sink diag.Sink

	// SubjectName identifies the document (usually a file path). When
	// set, it prefixes Diagnostic.Name and fills Diagnostic.File.
	SubjectName string
}

// SeverityConfig maps normalized rule identifiers to resolved levels.
type SeverityConfig map[string]diag.Severity

// Resolve returns the configured level for an identifier. Absence always
// means warning; a global "off" default is unreachable through this API.
func (c SeverityConfig) Resolve(id string) diag.Severity {
	if c == nil {
		return diag.SevWarning
	}
	if sev, ok := c[id]; ok {
		return sev
	}
	return diag.SevWarning
}

// CoerceSetting folds a loosely-typed per-rule setting into a Severity
// using the default-then-coerce policy: nil first becomes the default
// true, then numbers pass through unchanged and everything else maps its
// truthiness onto warning/off.
func CoerceSetting(v any) diag.Severity {
	if v == nil {
		v = true
	}
	switch n := v.(type) {
	case diag.Severity:
		return n
	case int:
		return diag.Severity(n)
	case int64:
		return diag.Severity(n)
	case float64:
		return diag.Severity(int(n))
	case bool:
		if n {
			return diag.SevWarning
		}
		return diag.SevOff
	case string:
		if n == "" {
			return diag.SevOff
		}
		return diag.SevWarning
	default:
		return diag.SevWarning
	}
}
