package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the htmlint CLI. Overridable via -ldflags:
//
//	-X htmlint/internal/version.Version=1.2.3
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colorize tints each semver component of v for terminal banners. The
// plain Version string stays machine-readable for JSON and SARIF
// consumers; fatih/color drops the escapes itself outside a terminal.
func Colorize(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return v
	}
	major := color.New(color.FgYellow, color.Bold)
	minor := color.New(color.FgGreen, color.Bold)
	patch := color.New(color.FgBlue, color.Bold)
	return major.Sprint(parts[0]) + "." + minor.Sprint(parts[1]) + "." + patch.Sprint(parts[2])
}
