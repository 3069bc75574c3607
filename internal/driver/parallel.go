package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"lacon/internal/diag"
	"lacon/internal/lexer"
	"lacon/internal/observ"
	"lacon/internal/source"
	"lacon/internal/token"
	"lacon/internal/trace"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // путь к файлу
	FileID source.FileID // ID файла в FileSet; невалиден при ошибке загрузки
	Loaded bool
	Tokens []token.Token
	Errors []lexer.Error
	Bag    *diag.Bag
}

// DirResult aggregates a directory run. Files is sorted by path.
type DirResult struct {
	FileSet *source.FileSet
	Files   []TokenizeDirResult
	Timing  observ.Report

	run *diag.Bag // записи уровня всего прогона (тайминги)
}

// Bag merges every per-file bag into one, preserving file order, under a
// single limit of maxDiagnostics. Run-level entries come last and are
// never dropped.
func (r *DirResult) Bag(maxDiagnostics int) *diag.Bag {
	out := diag.NewBag(maxDiagnostics)
	for i := range r.Files {
		out.Merge(r.Files[i].Bag)
	}
	if r.run != nil {
		for _, d := range r.run.Items() {
			out.Force(d)
		}
	}
	return out
}

// HasErrors reports whether any file produced an error diagnostic.
func (r *DirResult) HasErrors() bool {
	for i := range r.Files {
		if r.Files[i].Bag != nil && r.Files[i].Bag.HasErrors() {
			return true
		}
	}
	return false
}

// ListSourceFiles возвращает отсортированный список файлов с подходящими расширениями
func ListSourceFiles(dir string, exts []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(path)
		if slices.Contains(exts, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

// TokenizeDir токенизирует все исходники в директории параллельно.
// Файлы загружаются последовательно (FileSet не потокобезопасен),
// лексеры работают в пуле из opts.Jobs горутин.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*DirResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopePass, "tokenize_dir", dir)
	defer span.End("")

	files, err := ListSourceFiles(dir, opts.extensions())
	if err != nil {
		return nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	timer := observ.NewTimer()
	res := &DirResult{FileSet: fileSet}
	if len(files) == 0 {
		return res, nil
	}

	// Предзагружаем все файлы
	opts.notify(PhaseEvent{Name: "load", Status: PhaseStart})
	started := time.Now()
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			// Сохраняем ошибку загрузки для последующей обработки
			loadErrors[path] = loadErr
			continue
		}
		fileIDs[path] = fileID
	}
	elapsed := time.Since(started)
	timer.Add("load", elapsed, strconv.Itoa(len(files))+" files")
	opts.notify(PhaseEvent{Name: "load", Status: PhaseEnd, Elapsed: elapsed})

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	var shared diag.Reporter
	if opts.Reporter != nil {
		shared = diag.NewSyncReporter(opts.Reporter)
	}
	// Observer и общий таймер не потокобезопасны: горутины их не трогают.
	workerOpts := opts
	workerOpts.Observer = nil

	for _, path := range files {
		opts.progress(FileEvent{Path: path, Status: FileQueued})
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]TokenizeDirResult, len(files))

	opts.notify(PhaseEvent{Name: "lex", Status: PhaseStart})
	started = time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			opts.progress(FileEvent{Path: path, Status: FileLexing})
			bag := diag.NewBag(opts.MaxDiagnostics)
			if loadErr, hadError := loadErrors[path]; hadError {
				// Файл не загрузился: результат без токенов с ошибкой I/O
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				d := diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error())
				bag.Add(d)
				if shared != nil {
					shared.Report(d.Code, d.Severity, d.Primary, d.Message, nil)
				}
				opts.progress(FileEvent{Path: path, Status: FileFailed, Errors: 1})
				return nil
			}

			fileID := fileIDs[path]
			toks, errs := lexFile(gctx, fileSet.Get(fileID), bag, shared, nil, workerOpts)
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Loaded: true,
				Tokens: toks,
				Errors: errs,
				Bag:    bag,
			}
			status := FileDone
			if len(errs) > 0 {
				status = FileFailed
			}
			opts.progress(FileEvent{Path: path, Status: status, Tokens: len(toks), Errors: len(errs)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	elapsed = time.Since(started)
	timer.Add("lex", elapsed, strconv.Itoa(len(files))+" files")
	opts.notify(PhaseEvent{Name: "lex", Status: PhaseEnd, Elapsed: elapsed})

	res.Files = results
	span.AddFiles(len(results))
	for _, r := range results {
		span.AddTokens(len(r.Tokens), len(r.Errors))
	}
	res.Timing = timer.Report()
	if opts.Timings {
		res.run = diag.NewBag(0)
		appendTimingDiagnostic(res.run, timingPayload{
			Kind:    "tokenize_dir",
			Path:    dir,
			Files:   len(files),
			TotalMS: res.Timing.TotalMS,
			Phases:  res.Timing.Phases,
		})
	}
	return res, nil
}
