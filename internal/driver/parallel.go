package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"eslex/internal/diag"
	"eslex/internal/source"
	"eslex/internal/token"
	"eslex/internal/trace"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // путь к файлу
	FileID source.FileID // ID файла в FileSet (пустая запись при ошибке загрузки)
	Tokens []token.Token // токены файла
	Bag    *diag.Bag     // диагностики
}

// sourceExtensions lists the file suffixes picked up by TokenizeDir.
var sourceExtensions = []string{".js", ".mjs"}

// ListSourceFiles возвращает отсортированный список *.js и *.mjs файлов в директории.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range sourceExtensions {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every source file under dir in parallel.
// Results are in ListSourceFiles order. A file that fails to load gets an
// IOLoadFileError diagnostic instead of aborting the walk.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	tracer := trace.FromContext(ctx)
	dirSpan := trace.Begin(tracer, trace.ScopeDriver, "tokenize-dir", trace.CurrentSpan(ctx)).
		WithExtra("files", fmt.Sprint(len(files)))
	ctx = trace.WithSpan(ctx, dirSpan.ID())

	// FileSet не потокобезопасен: загружаем всё до запуска воркеров
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	loadPhase := opts.Timer.Begin("load")
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// пустая запись, чтобы диагностика указывала на путь файла
			loadErrors[path] = err
			fileID = fileSet.Add(path, nil, source.FileVirtual)
		}
		fileIDs[path] = fileID
	}
	opts.Timer.End(loadPhase, fmt.Sprintf("%d files", len(files)))

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))

	lexPhase := opts.Timer.Begin("lex")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bag := diag.NewBag(opts.MaxDiagnostics)
			fileID := fileIDs[path]
			results[i] = TokenizeDirResult{Path: path, FileID: fileID, Bag: bag}

			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: fileID}, "failed to load file: "+loadErr.Error()))
				emit(opts.Progress, Event{File: path, Status: StatusError, Err: loadErr})
				return nil
			}

			emit(opts.Progress, Event{File: path, Status: StatusLexing})
			started := time.Now()
			tokens, err := lexFile(gctx, fileSet.Get(fileID), &opts, bag)
			if err != nil {
				emit(opts.Progress, Event{File: path, Status: StatusError, Err: err, Elapsed: time.Since(started)})
				return err
			}
			results[i].Tokens = tokens

			status := StatusDone
			if bag.HasErrors() {
				status = StatusError
			}
			emit(opts.Progress, Event{File: path, Status: status, Tokens: len(tokens), Elapsed: time.Since(started)})
			return nil
		})
	}

	err = g.Wait()
	opts.Timer.End(lexPhase, fmt.Sprintf("jobs=%d", jobs))
	if err != nil {
		dirSpan.End("cancelled")
		return fileSet, results, err
	}
	dirSpan.End("")
	return fileSet, results, nil
}
