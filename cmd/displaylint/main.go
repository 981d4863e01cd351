// # cmd/displaylint/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"displaylint/internal/app"
	"displaylint/internal/config"
	"displaylint/internal/observability"
	"displaylint/internal/report"
	"displaylint/internal/version"
)

var (
	configPath  = flag.String("config", "./displaylint.toml", "Path to config file")
	once        = flag.Bool("once", false, "Run single lint pass and exit")
	ui          = flag.Bool("ui", false, "Enable terminal UI mode")
	sarifPath   = flag.String("sarif", "", "Write a SARIF report to this path")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("displaylint v%s\n", version.Version)
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}

	output := os.Stderr
	if *ui {
		// In UI mode, avoid terminal logs corrupting the TUI.
		logPath := resolveLogPath()
		if err := os.MkdirAll(filepath.Dir(logPath), 0700); err == nil {
			if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); err == nil {
				output = f
			}
		}
	}

	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		if os.IsNotExist(err) && *configPath == "./displaylint.toml" {
			cfg = config.Default()
		} else {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}

	if flag.NArg() > 0 {
		cfg.LintPaths = flag.Args()
	}
	if *sarifPath != "" {
		cfg.Output.SARIF = *sarifPath
	}

	ctx := context.Background()

	shutdownTracing, err := observability.InitTracing(ctx, cfg.Metrics.OTLPEndpoint)
	if err != nil {
		slog.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer shutdownTracing(ctx)

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	result, err := a.InitialScan(ctx)
	if err != nil {
		slog.Error("initial lint pass failed", "error", err)
		os.Exit(1)
	}
	if err := a.WriteOutputs(result); err != nil {
		slog.Error("failed to write outputs", "error", err)
	}

	if !*ui {
		report.WriteConsole(os.Stdout, result.Diagnostics, result.Summary)
	}

	if *once {
		if len(result.Diagnostics) > 0 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Watch mode
	if cfg.Metrics.Addr != "" {
		srv := observability.NewServer(cfg.Metrics.Addr)
		if err := srv.Start(ctx); err != nil {
			slog.Error("failed to start observability server", "error", err)
			os.Exit(1)
		}
		defer srv.Stop(ctx)
	}

	if err := a.StartWatcher(); err != nil {
		slog.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}

	if *ui {
		if err := runUI(a, result); err != nil {
			slog.Error("failed to run UI", "error", err)
			os.Exit(1)
		}
		return
	}

	a.OnUpdate(func(r app.Result) {
		if err := a.WriteOutputs(r); err != nil {
			slog.Error("failed to write outputs", "error", err)
		}
		report.WriteConsole(os.Stdout, r.Diagnostics, r.Summary)
	})

	// Block forever
	select {}
}

func runUI(a *app.App, initial app.Result) error {
	m := initialModel()
	p := tea.NewProgram(m, tea.WithAltScreen())

	a.OnUpdate(func(r app.Result) {
		if err := a.WriteOutputs(r); err != nil {
			slog.Error("failed to write outputs", "error", err)
		}
		p.Send(updateMsg{result: r})
	})

	go p.Send(updateMsg{result: initial})

	_, err := p.Run()
	return err
}

func resolveLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "displaylint", "displaylint.log")
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "displaylint", "displaylint.log")
	}

	return "displaylint.log"
}
