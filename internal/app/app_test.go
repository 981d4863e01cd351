// # internal/app/app_test.go
package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"displaylint/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func newTestApp(t *testing.T, dir string) *App {
	t.Helper()
	cfg := config.Default()
	cfg.LintPaths = []string{dir}
	cfg.History.Path = filepath.Join(dir, ".displaylint", "history.db")

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("create app: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestInitialScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "anonymous.jsx"), `module.exports = function() { return <div/>; };`)
	writeFile(t, filepath.Join(dir, "named.jsx"), `function Hello() { return <div>Hello</div>; }`)
	writeFile(t, filepath.Join(dir, "node_modules", "dep.jsx"), `module.exports = function() { return <div/>; };`)
	writeFile(t, filepath.Join(dir, "readme.md"), `not lintable`)

	a := newTestApp(t, dir)
	result, err := a.InitialScan(context.Background())
	if err != nil {
		t.Fatalf("initial scan: %v", err)
	}

	if len(result.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %+v", len(result.Diagnostics), result.Diagnostics)
	}
	if got := result.Diagnostics[0].Span.Start.File; filepath.Base(got) != "anonymous.jsx" {
		t.Errorf("diagnostic attributed to %s", got)
	}
	if result.Summary.FilesScanned != 2 {
		t.Errorf("expected 2 scanned files, got %d", result.Summary.FilesScanned)
	}
}

func TestWriteOutputsSARIF(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "anonymous.jsx"), `export default () => <div/>;`)

	a := newTestApp(t, dir)
	a.Config.Output.SARIF = filepath.Join(dir, "findings.sarif")

	result, err := a.InitialScan(context.Background())
	if err != nil {
		t.Fatalf("initial scan: %v", err)
	}
	if err := a.WriteOutputs(result); err != nil {
		t.Fatalf("write outputs: %v", err)
	}

	data, err := os.ReadFile(a.Config.Output.SARIF)
	if err != nil {
		t.Fatalf("read sarif: %v", err)
	}
	if !strings.Contains(string(data), "DISP001") {
		t.Errorf("sarif output missing rule id:\n%s", data)
	}
}

func TestHandleChanges(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "anonymous.jsx")
	writeFile(t, target, `module.exports = function() { return <div/>; };`)

	a := newTestApp(t, dir)
	if _, err := a.InitialScan(context.Background()); err != nil {
		t.Fatalf("initial scan: %v", err)
	}

	var updated Result
	a.OnUpdate(func(r Result) { updated = r })

	// Fixing the file clears its cached diagnostics.
	writeFile(t, target, `function Hello() { return <div/>; }`)
	a.HandleChanges([]string{target})
	if len(updated.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics after fix, got %+v", updated.Diagnostics)
	}

	// Deleting it drops the file from the result entirely.
	os.Remove(target)
	a.HandleChanges([]string{target})
	if updated.Summary.FilesScanned != 0 {
		t.Errorf("expected 0 scanned files after delete, got %d", updated.Summary.FilesScanned)
	}
}

func TestScanDirectoriesExcludesGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.jsx"), `var x = 1;`)
	writeFile(t, filepath.Join(dir, "bundle.min.js"), `var x=1;`)
	writeFile(t, filepath.Join(dir, "dist", "out.jsx"), `var x = 1;`)

	a := newTestApp(t, dir)
	files, err := a.ScanDirectories([]string{dir}, []string{"dist"}, []string{"*.min.js"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "app.jsx" {
		t.Errorf("unexpected files: %v", files)
	}
}
