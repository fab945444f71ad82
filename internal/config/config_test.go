package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"htmlint/internal/diag"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[check]
fragment = true

[rules]
missing-doctype = false
abruptClosingOfEmptyComment = 2
eof-in-tag = "off"
duplicate-attribute = "fatal"
cdata-in-html-content = "warn"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Fragment {
		t.Error("Fragment = false, want true")
	}
	if cfg.Root != filepath.Dir(path) {
		t.Errorf("Root = %q", cfg.Root)
	}
	want := map[string]diag.Severity{
		"missingDoctype":              diag.SevOff,
		"abruptClosingOfEmptyComment": diag.SevFatal,
		"eofInTag":                    diag.SevOff,
		"duplicateAttribute":          diag.SevFatal,
		"cdataInHtmlContent":          diag.SevWarning,
	}
	if len(cfg.Severities) != len(want) {
		t.Fatalf("got %d severities, want %d: %v", len(cfg.Severities), len(want), cfg.Severities)
	}
	for id, sev := range want {
		if got := cfg.Severities[id]; got != sev {
			t.Errorf("Severities[%q] = %v, want %v", id, got, sev)
		}
	}
}

func TestLoadClampsIntegers(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[rules]
missing-doctype = 7
eof-in-tag = -3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Severities["missingDoctype"]; got != diag.SevFatal {
		t.Errorf("7 clamped to %v, want fatal", got)
	}
	if got := cfg.Severities["eofInTag"]; got != diag.SevOff {
		t.Errorf("-3 clamped to %v, want off", got)
	}
}

func TestLoadRejectsUnknownRules(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[rules]
missing-doctype = true
zz-not-a-rule = 1
aa-bogus = "off"
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "aa-bogus") || !strings.Contains(msg, "zz-not-a-rule") {
		t.Errorf("error %q must name every unknown rule", msg)
	}
	if strings.Index(msg, "aa-bogus") > strings.Index(msg, "zz-not-a-rule") {
		t.Errorf("offenders not sorted in %q", msg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[check]
fragment = false
verbose = true

[linting]
strict = true
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "check.verbose") || !strings.Contains(err.Error(), "linting.strict") {
		t.Errorf("error %q must list undecoded keys", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown string", "[rules]\nmissing-doctype = \"loud\"\n", `unknown severity "loud"`},
		{"float value", "[rules]\nmissing-doctype = 1.5\n", "unsupported value"},
		{"array value", "[rules]\nmissing-doctype = [1]\n", "unsupported value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsAliasedKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[rules]
missing-doctype = 1
missingDoctype = 2
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for two spellings of one rule")
	}
	if !strings.Contains(err.Error(), "same rule") {
		t.Errorf("error %q", err)
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[rules]\n")
	deep := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(deep)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	if path != filepath.Join(root, FileName) {
		t.Errorf("path = %q", path)
	}
}

func TestFindNothing(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ok {
		t.Error("found a manifest in an empty temp dir")
	}
}

func TestDiscoverDefaults(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty for defaults", cfg.Path)
	}
	if cfg.Severities == nil {
		t.Error("default Severities must be usable for overlays")
	}
	if cfg.Fragment {
		t.Error("Fragment defaults to false")
	}
}

func TestApplyRuleFlag(t *testing.T) {
	tests := []struct {
		spec    string
		id      string
		want    diag.Severity
		wantErr string
	}{
		{spec: "missing-doctype=off", id: "missingDoctype", want: diag.SevOff},
		{spec: "missingDoctype=2", id: "missingDoctype", want: diag.SevFatal},
		{spec: "eof-in-tag=false", id: "eofInTag", want: diag.SevOff},
		{spec: "eof-in-tag=true", id: "eofInTag", want: diag.SevWarning},
		{spec: "duplicate-attribute=fatal", id: "duplicateAttribute", want: diag.SevFatal},
		{spec: "missing-doctype=9", id: "missingDoctype", want: diag.SevFatal},
		{spec: "bogus-rule=1", wantErr: "unknown rule"},
		{spec: "missing-doctype", wantErr: "want code=setting"},
		{spec: "=1", wantErr: "want code=setting"},
		{spec: "missing-doctype=banana", wantErr: "unknown severity"},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			cfg := Default()
			err := cfg.ApplyRuleFlag(tt.spec)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not mention %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyRuleFlag: %v", err)
			}
			if got := cfg.Severities[tt.id]; got != tt.want {
				t.Errorf("Severities[%q] = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestFlagOverridesManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[rules]\nmissing-doctype = \"fatal\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.ApplyRuleFlag("missing-doctype=off"); err != nil {
		t.Fatalf("ApplyRuleFlag: %v", err)
	}
	if got := cfg.Severities["missingDoctype"]; got != diag.SevOff {
		t.Errorf("flag did not win: %v", got)
	}
}

func TestFingerprint(t *testing.T) {
	base := Default()
	same := Default()
	if base.Fingerprint() != same.Fingerprint() {
		t.Error("identical configs must share a fingerprint")
	}

	ruled := Default()
	if err := ruled.ApplyRuleFlag("missing-doctype=off"); err != nil {
		t.Fatal(err)
	}
	if base.Fingerprint() == ruled.Fingerprint() {
		t.Error("severity change must roll the fingerprint")
	}

	frag := Default()
	frag.Fragment = true
	if base.Fingerprint() == frag.Fingerprint() {
		t.Error("fragment flip must roll the fingerprint")
	}
}
