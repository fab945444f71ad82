package catalog

import (
	"strings"
	"unicode"
)

// CamelID converts a wire-format rule code to the catalog key form: each
// hyphen is removed and the character after it upper-cased, so
// "end-tag-with-trailing-solidus" becomes "endTagWithTrailingSolidus".
// Pure and total; malformed input simply misses the table.
func CamelID(code string) string {
	if !strings.ContainsRune(code, '-') {
		return code
	}

	var b strings.Builder
	b.Grow(len(code))
	up := false
	for _, r := range code {
		if r == '-' {
			up = true
			continue
		}
		if up {
			b.WriteRune(unicode.ToUpper(r))
			up = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// HyphenID is the inverse of CamelID over the catalog's key domain: each
// upper-case letter becomes a hyphen plus its lower-case form.
func HyphenID(id string) string {
	var b strings.Builder
	b.Grow(len(id) + 8)
	for _, r := range id {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
