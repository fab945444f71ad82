package catalog

import (
	"fmt"
	"sort"
)

// SpecURLBase prefixes every documentation link. The original hyphen-case
// code is appended verbatim; the standard's anchors use that form, never
// the camel-case key.
const SpecURLBase = "https://html.spec.whatwg.org/multipage/parsing.html#parse-error-"

// Entry describes one rule: message templates plus URL policy.
type Entry struct {
	// Reason is the short message template (becomes Diagnostic.Message).
	Reason string
	// Description is the longer hint template (becomes Diagnostic.Note).
	Description string
	// SuppressURL marks rules with no anchor in the standard.
	SuppressURL bool
}

// codes holds every known rule in wire form, sorted. Built once at init.
var codes []string

func init() {
	codes = make([]string, 0, len(entries))
	for id := range entries {
		code := HyphenID(id)
		// Ключи таблицы обязаны круговым преобразованием возвращаться к
		// себе: опечатка в codes.go ломает и Lookup, и URLFor.
		if got := CamelID(code); got != id {
			panic(fmt.Sprintf("catalog: key %q does not survive normalization round-trip (%q -> %q)", id, code, got))
		}
		codes = append(codes, code)
	}
	sort.Strings(codes)
}

// Lookup returns the entry for a normalized identifier. A miss returns the
// zero Entry and false; callers degrade to empty templates rather than fail.
func Lookup(id string) (Entry, bool) {
	e, ok := entries[id]
	return e, ok
}

// Has reports whether the normalized identifier names a known rule.
func Has(id string) bool {
	_, ok := entries[id]
	return ok
}

// URLFor builds the documentation link for a wire-format code.
func URLFor(code string) string {
	return SpecURLBase + code
}

// Codes returns all known rule codes in wire form, sorted. The slice is
// shared; callers must not mutate it.
func Codes() []string {
	return codes
}

// Len returns the number of rules in the table.
func Len() int {
	return len(entries)
}
