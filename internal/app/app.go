// # internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gobwas/glob"
	"go.opentelemetry.io/otel/trace"

	"displaylint/internal/config"
	"displaylint/internal/history"
	"displaylint/internal/observability"
	"displaylint/internal/parser"
	"displaylint/internal/react"
	"displaylint/internal/report"
	"displaylint/internal/rules"
	"displaylint/internal/rules/displayname"
	"displaylint/internal/semantic"
	"displaylint/internal/util"
	"displaylint/internal/watcher"
)

// Result is one completed lint pass.
type Result struct {
	Diagnostics []rules.Diagnostic
	Summary     report.Summary
}

type App struct {
	Config   *config.Config
	Parser   *parser.Parser
	Registry *rules.Registry

	settings react.Settings
	store    *history.Store
	limiter  *util.Limiter
	watcher  *watcher.Watcher
	onUpdate func(Result)

	// Cached diagnostics keyed by file path for incremental updates.
	mu                sync.Mutex
	diagnosticsByFile map[string][]rules.Diagnostic
	failedFiles       map[string]bool
}

func New(cfg *config.Config) (*App, error) {
	a := &App{
		Config:            cfg,
		Parser:            parser.NewParser(parser.NewGrammarLoader()),
		Registry:          rules.NewRegistry(displayname.New(cfg.DisplayNameOptions())),
		settings:          cfg.ReactSettings(),
		limiter:           util.NewLimiter(4, 2),
		diagnosticsByFile: make(map[string][]rules.Diagnostic),
		failedFiles:       make(map[string]bool),
	}

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		a.store = store
	}

	return a, nil
}

func (a *App) Close() error {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	return a.store.Close()
}

// OnUpdate registers the callback invoked after every watch-mode pass.
func (a *App) OnUpdate(fn func(Result)) {
	a.onUpdate = fn
}

// InitialScan lints every file under the configured paths.
func (a *App) InitialScan(ctx context.Context) (Result, error) {
	ctx, span := observability.Tracer.Start(ctx, "app.InitialScan", trace.WithAttributes())
	defer span.End()

	start := time.Now()

	files, err := a.ScanDirectories(a.Config.LintPaths, a.Config.Exclude.Dirs, a.Config.Exclude.Files)
	if err != nil {
		return Result{}, err
	}

	for _, filePath := range files {
		if err := a.lintFile(ctx, filePath); err != nil {
			slog.Warn("failed to lint file", "path", filePath, "error", err)
		}
	}

	result := a.collectResult(time.Since(start))
	a.recordRun(result)
	return result, nil
}

// ScanDirectories walks the roots and returns lintable files, honoring the
// exclude globs.
func (a *App) ScanDirectories(paths []string, excludeDirs, excludeFiles []string) ([]string, error) {
	var files []string

	dirGlobs := make([]glob.Glob, 0, len(excludeDirs))
	for _, p := range excludeDirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", p, err)
		}
		dirGlobs = append(dirGlobs, g)
	}

	fileGlobs := make([]glob.Glob, 0, len(excludeFiles))
	for _, p := range excludeFiles {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude file pattern %q: %w", p, err)
		}
		fileGlobs = append(fileGlobs, g)
	}

	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			base := filepath.Base(path)

			if d.IsDir() {
				for _, g := range dirGlobs {
					if g.Match(base) {
						return filepath.SkipDir
					}
				}
				return nil
			}

			if parser.DetectLanguage(path) == "" {
				return nil
			}

			for _, g := range fileGlobs {
				if g.Match(base) {
					return nil
				}
			}

			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func (a *App) lintFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		a.setFileState(path, nil, true)
		return err
	}

	parseStart := time.Now()
	file, err := a.Parser.ParseFile(path, content)
	if err != nil {
		a.setFileState(path, nil, true)
		return err
	}
	defer file.Close()
	observability.ParsingDuration.WithLabelValues(file.Language).Observe(time.Since(parseStart).Seconds())

	info := semantic.Build(file)
	diags := a.Registry.RunFile(info, a.settings)
	a.setFileState(path, diags, false)
	return nil
}

func (a *App) setFileState(path string, diags []rules.Diagnostic, failed bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if failed {
		delete(a.diagnosticsByFile, path)
		a.failedFiles[path] = true
		return
	}
	delete(a.failedFiles, path)
	a.diagnosticsByFile[path] = diags
}

func (a *App) removeFile(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.diagnosticsByFile, path)
	delete(a.failedFiles, path)
}

// HandleChanges relints changed files and pushes the refreshed result to
// the update callback.
func (a *App) HandleChanges(paths []string) {
	if !a.limiter.Allow(1) {
		slog.Debug("relint pass throttled", "changes", len(paths))
		return
	}

	slog.Info("detected changes", "count", len(paths))
	start := time.Now()
	ctx := context.Background()

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			a.removeFile(path)
			continue
		}
		if err := a.lintFile(ctx, path); err != nil {
			slog.Warn("failed to relint file", "path", path, "error", err)
		}
	}

	result := a.collectResult(time.Since(start))
	a.recordRun(result)

	if a.onUpdate != nil {
		a.onUpdate(result)
	}
}

// collectResult flattens the per-file cache into a deterministic order.
func (a *App) collectResult(duration time.Duration) Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	files := make([]string, 0, len(a.diagnosticsByFile))
	for path := range a.diagnosticsByFile {
		files = append(files, path)
	}
	sort.Strings(files)

	diags := make([]rules.Diagnostic, 0)
	for _, path := range files {
		perFile := append([]rules.Diagnostic(nil), a.diagnosticsByFile[path]...)
		sort.SliceStable(perFile, func(i, j int) bool {
			return perFile[i].Span.StartByte < perFile[j].Span.StartByte
		})
		diags = append(diags, perFile...)
	}

	return Result{
		Diagnostics: diags,
		Summary: report.Summary{
			FilesScanned: len(a.diagnosticsByFile) + len(a.failedFiles),
			FilesFailed:  len(a.failedFiles),
			Duration:     duration,
		},
	}
}

func (a *App) recordRun(result Result) {
	observability.LintRunsTotal.Inc()
	observability.LintDuration.Observe(result.Summary.Duration.Seconds())
	observability.FilesScanned.Set(float64(result.Summary.FilesScanned))
	for _, d := range result.Diagnostics {
		observability.DiagnosticsTotal.WithLabelValues(d.Rule).Inc()
	}
	for i := 0; i < result.Summary.FilesFailed; i++ {
		observability.ParseFailuresTotal.Inc()
	}

	if a.store != nil {
		_, err := a.store.SaveRun(history.Run{
			FileCount:     result.Summary.FilesScanned,
			ParseFailures: result.Summary.FilesFailed,
			Findings:      len(result.Diagnostics),
			DurationMS:    result.Summary.Duration.Milliseconds(),
		})
		if err != nil {
			slog.Warn("failed to record lint run", "error", err)
		}
	}
}

// WriteOutputs persists the configured report artifacts.
func (a *App) WriteOutputs(result Result) error {
	if a.Config.Output.SARIF == "" {
		return nil
	}

	root, err := os.Getwd()
	if err != nil {
		root = ""
	}
	data, err := report.GenerateSARIF(root, result.Diagnostics)
	if err != nil {
		return err
	}
	return os.WriteFile(a.Config.Output.SARIF, data, 0644)
}

func (a *App) StartWatcher() error {
	w, err := watcher.NewWatcher(
		a.Config.Watch.Debounce,
		a.Config.Exclude.Dirs,
		a.Config.Exclude.Files,
		a.HandleChanges,
	)
	if err != nil {
		return err
	}
	a.watcher = w
	return w.Watch(a.Config.LintPaths)
}
