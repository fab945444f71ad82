// Package config loads htmlint.toml and folds CLI rule overrides into the
// severity policy the emitter consumes.
package config

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"htmlint/internal/catalog"
	"htmlint/internal/diag"
	"htmlint/internal/emitter"
)

// tomlFile is the raw on-disk shape before key normalization.
type tomlFile struct {
	Rules map[string]any `toml:"rules"`
	Check checkSection   `toml:"check"`
}

type checkSection struct {
	Fragment bool `toml:"fragment"`
}

// Config is the resolved run configuration.
type Config struct {
	Path       string // manifest location, empty when running on defaults
	Root       string // directory containing the manifest
	Fragment   bool
	Severities emitter.SeverityConfig
}

// Default returns the configuration used when no manifest exists: full
// document mode, every rule at its default level.
func Default() *Config {
	return &Config{Severities: emitter.SeverityConfig{}}
}

// Load parses and validates one manifest. Rule keys may be written in
// hyphen-case or camel-case; they are normalized before the catalog check.
// Every unknown rule name is reported, not just the first.
func Load(path string) (*Config, error) {
	var raw tomlFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg := &Config{
		Path:       path,
		Root:       filepath.Dir(path),
		Fragment:   raw.Check.Fragment,
		Severities: make(emitter.SeverityConfig, len(raw.Rules)),
	}

	keys := make([]string, 0, len(raw.Rules))
	for k := range raw.Rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var unknown []string
	for _, key := range keys {
		if !catalog.Has(catalog.CamelID(key)) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%s: unknown rules: %s", path, strings.Join(unknown, ", "))
	}

	seen := make(map[string]string, len(keys))
	for _, key := range keys {
		id := catalog.CamelID(key)
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("%s: rules %q and %q name the same rule", path, prev, key)
		}
		seen[id] = key
		sev, err := coerceValue(raw.Rules[key])
		if err != nil {
			return nil, fmt.Errorf("%s: rule %q: %w", path, key, err)
		}
		cfg.Severities[id] = sev
	}
	return cfg, nil
}

// coerceValue folds a TOML rule setting into a severity. The manifest layer
// is stricter than the engine policy: integers clamp into 0..2 and only the
// named level strings are accepted.
func coerceValue(v any) (diag.Severity, error) {
	switch n := v.(type) {
	case bool:
		return emitter.CoerceSetting(n), nil
	case int64:
		if n < 0 {
			return diag.SevOff, nil
		}
		if n > 2 {
			return diag.SevFatal, nil
		}
		return diag.Severity(n), nil
	case string:
		switch n {
		case "off":
			return diag.SevOff, nil
		case "warn", "warning":
			return diag.SevWarning, nil
		case "error", "fatal":
			return diag.SevFatal, nil
		default:
			return 0, fmt.Errorf("unknown severity %q (want off, warn, warning, error or fatal)", n)
		}
	default:
		return 0, fmt.Errorf("unsupported value %v (%T); want bool, integer or string", v, v)
	}
}

// ApplyRuleFlag overlays one --rule code=setting pair. Flags win over the
// manifest.
func (c *Config) ApplyRuleFlag(spec string) error {
	key, val, ok := strings.Cut(spec, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("--rule %q: want code=setting", spec)
	}
	id := catalog.CamelID(key)
	if !catalog.Has(id) {
		return fmt.Errorf("--rule %q: unknown rule %q", spec, key)
	}
	sev, err := parseSetting(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("--rule %q: %w", spec, err)
	}
	if c.Severities == nil {
		c.Severities = emitter.SeverityConfig{}
	}
	c.Severities[id] = sev
	return nil
}

// parseSetting reads the flag form of a setting: an integer, a bool
// literal, or a named level.
func parseSetting(s string) (diag.Severity, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return coerceValue(n)
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return coerceValue(b)
	}
	return coerceValue(s)
}

// Fingerprint digests everything that changes diagnostic output, so cache
// keys roll over together with the config.
func (c *Config) Fingerprint() [32]byte {
	h := sha256.New()
	ids := make([]string, 0, len(c.Severities))
	for id := range c.Severities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(h, "%s=%d\n", id, c.Severities[id])
	}
	fmt.Fprintf(h, "fragment=%t\n", c.Fragment)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
