package checker

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"htmlint/internal/diag"
	"htmlint/internal/source"
)

// ListHTMLFiles возвращает отсортированный список всех *.html и *.htm
// файлов в директории
func ListHTMLFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		lower := strings.ToLower(path)
		if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// fileErrorDiagnostic turns an I/O or stream failure into an ordinary
// diagnostic so one broken file does not abort a directory walk.
func fileErrorDiagnostic(path, msg string) *diag.Diagnostic {
	fatal := true
	return &diag.Diagnostic{
		RuleID:   "file-error",
		Message:  msg,
		Reason:   msg,
		Name:     path,
		Fatal:    &fatal,
		Source:   "htmlint",
		File:     path,
		Severity: diag.SevFatal,
	}
}

// CheckDir проверяет все *.html файлы в директории параллельно.
// Результаты идут в порядке отсортированных путей независимо от того,
// какая горутина закончила первой.
func CheckDir(ctx context.Context, dir string, opts Options, jobs int) (*source.FileSet, []Result, error) {
	// Собираем список файлов
	files, err := ListHTMLFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// Создаём FileSet и предзагружаем все файлы: Add не потокобезопасен,
	// поэтому загрузка идёт до запуска пула.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		opts.emit(Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileID, err := fileSet.Load(path)
		if err != nil {
			// Сохраняем ошибку загрузки для последующей обработки
			loadErrors[path] = err
			opts.emit(Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
			continue
		}
		fileIDs[path] = fileID
		opts.emit(Event{File: path, Stage: StageLoad, Status: StatusDone})
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				// Проверяем ошибку загрузки; событие ушло ещё на предзагрузке
				if loadErr, hadError := loadErrors[path]; hadError {
					bag := diag.NewBag(opts.bagCap())
					bag.Add(fileErrorDiagnostic(path, "failed to load file: "+loadErr.Error()))
					results[i] = Result{Path: path, Bag: bag}
					return nil
				}

				res, err := annotate(gctx, fileSet, fileIDs[path], path, opts, nil)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					// Битый событийный поток не валит весь обход
					bag := diag.NewBag(opts.bagCap())
					bag.Add(fileErrorDiagnostic(path, err.Error()))
					results[i] = Result{Path: path, FileID: fileIDs[path], Bag: bag}
					return nil
				}

				// Сохраняем результат (мьютекс не нужен - индекс i уникален)
				results[i] = *res
				return nil
			}
		}(i, path))
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}
