package catalog

import (
	"testing"
)

func TestCamelID(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "multi-word code",
			code: "end-tag-with-trailing-solidus",
			want: "endTagWithTrailingSolidus",
		},
		{
			name: "single word passes through",
			code: "doctype",
			want: "doctype",
		},
		{
			name: "two words",
			code: "missing-doctype",
			want: "missingDoctype",
		},
		{
			name: "empty string",
			code: "",
			want: "",
		},
		{
			name: "trailing hyphen drops",
			code: "eof-",
			want: "eof",
		},
		{
			name: "leading hyphen capitalizes first word",
			code: "-eof",
			want: "Eof",
		},
		{
			name: "double hyphen collapses",
			code: "a--b",
			want: "aB",
		},
		{
			name: "digit after hyphen stays",
			code: "utf-8",
			want: "utf8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CamelID(tt.code); got != tt.want {
				t.Errorf("CamelID(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestHyphenID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "multi-word identifier",
			id:   "endTagWithTrailingSolidus",
			want: "end-tag-with-trailing-solidus",
		},
		{
			name: "single word",
			id:   "doctype",
			want: "doctype",
		},
		{
			name: "empty string",
			id:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HyphenID(tt.id); got != tt.want {
				t.Errorf("HyphenID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

// Каждый код таблицы должен однозначно переходить в ключ и обратно.
func TestNormalizationBijection(t *testing.T) {
	seen := make(map[string]string, len(entries))
	for _, code := range Codes() {
		id := CamelID(code)
		if !Has(id) {
			t.Errorf("CamelID(%q) = %q misses the table", code, id)
			continue
		}
		if prev, dup := seen[id]; dup {
			t.Errorf("codes %q and %q collide on key %q", prev, code, id)
		}
		seen[id] = code

		if back := HyphenID(id); back != code {
			t.Errorf("HyphenID(CamelID(%q)) = %q, want the original", code, back)
		}
	}
	if len(seen) != Len() {
		t.Errorf("round-trip covered %d keys, table has %d", len(seen), Len())
	}
}
