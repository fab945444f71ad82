package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"htmlint/internal/checker"
	"htmlint/internal/observ"
	"htmlint/internal/source"
	"htmlint/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

type checkOutcome struct {
	fileSet *source.FileSet
	results []checker.Result
	err     error
}

// runCheckDirWithUI обходит каталог, рисуя прогресс в терминале.
// Диагностики печатает вызывающая сторона после завершения модели.
func runCheckDirWithUI(ctx context.Context, dir string, opts checker.Options, jobs int) (*source.FileSet, []checker.Result, error) {
	files, err := checker.ListHTMLFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan checker.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = checker.ChannelSink{Ch: events}
		fs, results, err := checker.CheckDir(ctx, dir, optsCopy, jobs)
		outcomeCh <- checkOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(fmt.Sprintf("checking %s", dir), files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}

// printTimings печатает фазовый отчёт одной проверки.
func printTimings(out io.Writer, report observ.Report) {
	if len(report.Phases) == 0 {
		return
	}
	fmt.Fprintln(out, "timings:")
	for _, phase := range report.Phases {
		line := fmt.Sprintf("  %-10s %7.2f ms", phase.Name, phase.DurationMS)
		if phase.Note != "" {
			line += "  // " + phase.Note
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "  %-10s %7.2f ms\n", "total", report.TotalMS)
}
