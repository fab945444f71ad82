package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"htmlint/internal/diag"
	"htmlint/internal/source"
)

type palette struct {
	path *color.Color
	warn *color.Color
	fail *color.Color
	rule *color.Color
	note *color.Color
	dim  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path: color.New(color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		rule: color.New(color.FgCyan),
		note: color.New(color.FgBlue),
		dim:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.path, p.warn, p.fail, p.rule, p.note, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<range>: <SEV> <ruleId>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по диапазону, затем note
// и ссылку на спецификацию. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeDiagnostic(w, d, fs, opts, pal)
	}
}

func writeDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sevColor := pal.warn
	if d.IsFatal() {
		sevColor = pal.fail
	}
	level := strings.ToUpper(d.Level())

	head := headerPath(d, fs, opts)
	msg := d.Message
	if opts.Width > 0 {
		fixed := runewidth.StringWidth(head+": "+level+" "+d.RuleID+": ") + 1
		if avail := int(opts.Width) - fixed; avail > 3 && runewidth.StringWidth(msg) > avail {
			msg = runewidth.Truncate(msg, avail, "…")
		}
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.path.Sprint(head), sevColor.Sprint(level), pal.rule.Sprint(d.RuleID), msg)

	if fs != nil && d.File != "" && d.Line >= 1 {
		if f, ok := fs.GetByPath(d.File); ok {
			writeContext(w, f, d, sevColor, pal)
		}
	}

	if opts.ShowNotes && d.Note != "" {
		note := d.Note
		if opts.Width > 0 {
			if avail := int(opts.Width) - 8; avail > 3 && runewidth.StringWidth(note) > avail {
				note = runewidth.Truncate(note, avail, "…")
			}
		}
		fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), note)
	}
	if opts.ShowURLs && d.URL != nil {
		fmt.Fprintf(w, "  %s %s\n", pal.dim.Sprint("see:"), *d.URL)
	}
}

func headerPath(d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) string {
	rng := d.Position.Range()
	if d.File == "" {
		return rng
	}
	path := d.File
	if fs != nil {
		if f, ok := fs.GetByPath(d.File); ok {
			path = DisplayPath(f, fs, opts.PathMode)
		}
	}
	return path + ":" + rng
}

// DisplayPath renders the file's path per mode; relative resolves against
// the set's base directory.
func DisplayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// writeContext печатает строку исходника и каретку под диапазоном.
// Табы раскрываются в четыре пробела, чтобы подчёркивание не съезжало.
func writeContext(w io.Writer, f *source.File, d *diag.Diagnostic, sevColor *color.Color, pal palette) {
	line := f.GetLine(uint32(d.Line))
	runes := []rune(line)

	startCol := d.Column
	if startCol < 1 {
		startCol = 1
	}
	if startCol > len(runes)+1 {
		startCol = len(runes) + 1
	}

	gutter := fmt.Sprintf("%4d | ", d.Line)
	fmt.Fprintf(w, "%s%s\n", pal.dim.Sprint(gutter), expandTabs(line))

	pad := runewidth.StringWidth(expandTabs(string(runes[:startCol-1])))

	width := 1
	switch {
	case d.Position.End.Line == d.Position.Start.Line:
		endCol := d.Position.End.Column
		if endCol > len(runes)+1 {
			endCol = len(runes) + 1
		}
		if endCol > startCol {
			width = runewidth.StringWidth(expandTabs(string(runes[startCol-1 : endCol-1])))
		}
	case d.Position.End.Line > d.Position.Start.Line:
		// диапазон уходит на следующие строки: подчёркиваем до конца этой
		if len(runes)+1 > startCol {
			width = runewidth.StringWidth(expandTabs(string(runes[startCol-1:])))
		}
	}
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s%s%s\n",
		pal.dim.Sprint("     | "), strings.Repeat(" ", pad), sevColor.Sprint(marker))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
