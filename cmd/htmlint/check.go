package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"htmlint/internal/checker"
	"htmlint/internal/config"
	"htmlint/internal/diag"
	"htmlint/internal/diagfmt"
	"htmlint/internal/source"
	"htmlint/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.html|directory>",
	Short: "Resolve recorded parse events into diagnostics",
	Long:  `Check reads the parser error events recorded for an HTML document (or for every *.html file within a directory) and renders them as positioned diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

// init registers CLI flags for the check command used by runCheck.
// It configures the event stream source, output format, severity overrides,
// concurrency and the progress UI.
func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short|sarif)")
	checkCmd.Flags().String("events", "", "explicit event stream (.ndjson|.mp), default is sidecar discovery")
	checkCmd.Flags().Bool("no-sidecar", false, "disable <file>.events.* sidecar discovery")
	checkCmd.Flags().Bool("fragment", false, "treat documents as fragments")
	checkCmd.Flags().StringArray("rule", nil, "override rule severity, e.g. missing-doctype=off (repeatable)")
	checkCmd.Flags().String("config", "", "path to htmlint.toml (default: walk up from the target)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().String("ui", "auto", "progress UI for directory runs (auto|on|off)")
	checkCmd.Flags().Bool("disk-cache", false, "cache per-file results under the user cache dir")
	checkCmd.Flags().Bool("dedup", false, "report each identical diagnostic once")
	checkCmd.Flags().Bool("with-notes", false, "include rule notes in output")
	checkCmd.Flags().Bool("with-urls", false, "include documentation links in pretty output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

// runCheck executes the "check" command: it parses command flags, resolves the
// effective configuration, runs the checker for the provided path (single file
// or directory), formats the results in the chosen output format, and exits
// with a non-zero status when any diagnostic is fatal.
func runCheck(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	eventsPath, err := cmd.Flags().GetString("events")
	if err != nil {
		return fmt.Errorf("failed to get events flag: %w", err)
	}

	noSidecar, err := cmd.Flags().GetBool("no-sidecar")
	if err != nil {
		return fmt.Errorf("failed to get no-sidecar flag: %w", err)
	}

	ruleFlags, err := cmd.Flags().GetStringArray("rule")
	if err != nil {
		return fmt.Errorf("failed to get rule flag: %w", err)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	enableDiskCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}

	dedup, err := cmd.Flags().GetBool("dedup")
	if err != nil {
		return fmt.Errorf("failed to get dedup flag: %w", err)
	}

	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}

	withURLs, err := cmd.Flags().GetBool("with-urls")
	if err != nil {
		return fmt.Errorf("failed to get with-urls flag: %w", err)
	}

	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	st, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() && eventsPath != "" {
		return fmt.Errorf("--events is only supported for single files")
	}

	// Разрешаем конфигурацию: явный путь либо поиск htmlint.toml вверх от цели
	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		startDir := targetPath
		if !st.IsDir() {
			startDir = filepath.Dir(targetPath)
		}
		cfg, err = config.Discover(startDir)
	}
	if err != nil {
		return err
	}

	for _, spec := range ruleFlags {
		if err := cfg.ApplyRuleFlag(spec); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("fragment") {
		fragment, err := cmd.Flags().GetBool("fragment")
		if err != nil {
			return fmt.Errorf("failed to get fragment flag: %w", err)
		}
		cfg.Fragment = fragment
	}

	opts := checker.Options{
		Config:         cfg,
		EventsPath:     eventsPath,
		NoSidecar:      noSidecar,
		MaxDiagnostics: maxDiagnostics,
		Dedup:          dedup,
	}
	if enableDiskCache {
		cache, err := checker.OpenDiskCache("htmlint")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}

	useColor, err := colorEnabled(cmd)
	if err != nil {
		return err
	}
	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor,
		PathMode:  pathMode,
		ShowNotes: withNotes,
		ShowURLs:  withURLs,
	}
	jsonOpts := diagfmt.JSONOpts{}
	meta := diagfmt.SarifRunMeta{
		ToolName:       "htmlint",
		ToolVersion:    version.Version,
		InvocationArgs: os.Args,
	}

	var exitCode int
	var resultErr error

	runFile := func() (int, error) {
		fileSet := source.NewFileSet()
		result, err := checker.CheckFile(cmd.Context(), fileSet, targetPath, opts)
		if err != nil {
			return 0, err
		}

		exit := 0
		if result.Bag.HasFatal() {
			exit = 1
		}

		switch format {
		case "pretty":
			if result.Bag.Len() == 0 {
				if !quiet {
					fmt.Fprintf(os.Stdout, "%s: no problems found\n", displayPath(fileSet, result.Path, pathMode))
				}
				break
			}
			diagfmt.Pretty(os.Stdout, result.Bag, fileSet, prettyOpts)
		case "short":
			output := diag.FormatShort(result.Bag.Items())
			if output != "" {
				fmt.Fprintln(os.Stdout, output)
			}
		case "json":
			if err := diagfmt.JSON(os.Stdout, result.Bag, jsonOpts); err != nil {
				return 0, fmt.Errorf("failed to format diagnostics: %w", err)
			}
		case "sarif":
			if err := diagfmt.Sarif(os.Stdout, result.Bag, meta); err != nil {
				return 0, fmt.Errorf("failed to format diagnostics: %w", err)
			}
		default:
			return 0, fmt.Errorf("unknown format: %s", format)
		}

		if showTimings {
			printTimings(os.Stdout, result.Timing)
		}
		return exit, nil
	}

	runDir := func() (int, error) {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return 0, fmt.Errorf("failed to get jobs flag: %w", err)
		}

		dirStart := time.Now()
		var fileSet *source.FileSet
		var results []checker.Result
		if shouldUseTUI(mode) {
			fileSet, results, err = runCheckDirWithUI(cmd.Context(), targetPath, opts, jobs)
		} else {
			fileSet, results, err = checker.CheckDir(cmd.Context(), targetPath, opts, jobs)
		}
		if err != nil {
			return 0, err
		}

		exit := 0
		for _, r := range results {
			if r.Bag.HasFatal() {
				exit = 1
				break
			}
		}

		switch format {
		case "pretty":
			printed := 0
			for _, r := range results {
				if r.Bag.Len() == 0 && quiet {
					continue
				}
				if printed > 0 {
					fmt.Fprintln(os.Stdout)
				}
				printed++
				fmt.Fprintf(os.Stdout, "== %s ==\n", displayPath(fileSet, r.Path, pathMode))
				if r.Bag.Len() == 0 {
					fmt.Fprintln(os.Stdout, "no problems found")
					continue
				}
				diagfmt.Pretty(os.Stdout, r.Bag, fileSet, prettyOpts)
			}
		case "short":
			all := make([]*diag.Diagnostic, 0, len(results))
			for _, r := range results {
				all = append(all, r.Bag.Items()...)
			}
			output := diag.FormatShort(all)
			if output != "" {
				fmt.Fprintln(os.Stdout, output)
			}
		case "json":
			bags := make(map[string]*diag.Bag, len(results))
			for _, r := range results {
				bags[displayPath(fileSet, r.Path, pathMode)] = r.Bag
			}
			if err := diagfmt.JSONByPath(os.Stdout, bags, jsonOpts); err != nil {
				return 0, fmt.Errorf("failed to format diagnostics: %w", err)
			}
		case "sarif":
			// Один прогон инструмента - один SARIF-документ
			combined := diag.NewBag(checker.DefaultMaxDiagnostics)
			for _, r := range results {
				combined.Merge(r.Bag)
			}
			if err := diagfmt.Sarif(os.Stdout, combined, meta); err != nil {
				return 0, fmt.Errorf("failed to format diagnostics: %w", err)
			}
		default:
			return 0, fmt.Errorf("unknown format: %s", format)
		}

		if showTimings {
			fmt.Fprintf(os.Stdout, "checked %d files in %.1f ms\n",
				len(results), float64(time.Since(dirStart))/float64(time.Millisecond))
		}
		return exit, nil
	}

	if !st.IsDir() {
		exitCode, resultErr = runFile()
	} else {
		exitCode, resultErr = runDir()
	}

	if resultErr != nil {
		return resultErr
	}
	if exitCode != 0 {
		// Suppress cobra usage output on diagnostic errors
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // Silent error - diagnostics already printed
	}
	return nil
}

// displayPath форматирует путь результата для вывода; файлы, не попавшие в
// FileSet (например, из-за ошибки чтения), показываются как есть.
func displayPath(fileSet *source.FileSet, path string, pathMode diagfmt.PathMode) string {
	file, ok := fileSet.GetByPath(path)
	if !ok {
		return path
	}
	return diagfmt.DisplayPath(file, fileSet, pathMode)
}

// colorEnabled решает, красить ли вывод, по флагу --color и терминалу.
func colorEnabled(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)), nil
}
