package diagfmt

import (
	"encoding/json"
	"io"

	"htmlint/internal/diag"
)

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []*diag.Diagnostic `json:"diagnostics"`
	Count       int                `json:"count"`
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	out := DiagnosticsOutput{
		Diagnostics: make([]*diag.Diagnostic, 0, maxItems),
	}
	out.Diagnostics = append(out.Diagnostics, items[:maxItems]...)
	out.Count = len(out.Diagnostics)
	return out
}

// JSON форматирует диагностики одного документа.
// Каждая запись несёт полную vfile-форму включая null-поля.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, opts))
}

// JSONByPath форматирует результат обхода каталога: объект, ключами
// которого служат пути документов. encoding/json сортирует ключи карт,
// так что вывод детерминирован.
func JSONByPath(w io.Writer, bags map[string]*diag.Bag, opts JSONOpts) error {
	out := make(map[string]DiagnosticsOutput, len(bags))
	for path, bag := range bags {
		out[path] = BuildDiagnosticsOutput(bag, opts)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
