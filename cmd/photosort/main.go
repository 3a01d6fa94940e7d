// Command photosort is the CLI entrypoint for the PhotoSort media organizer.
//
// It parses flags, validates configuration and paths, and either runs
// capability diagnostics (--check) or the organize pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"

	"github.com/backmassage/photosort/internal/check"
	"github.com/backmassage/photosort/internal/config"
	"github.com/backmassage/photosort/internal/convert"
	"github.com/backmassage/photosort/internal/display"
	"github.com/backmassage/photosort/internal/logging"
	"github.com/backmassage/photosort/internal/metadata"
	"github.com/backmassage/photosort/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "photosort: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "photosort: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "photosort: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	var converter convert.Converter = convert.Heif{}

	if cfg.CheckOnly {
		check.RunCheck(converter, log)
		return 0
	}

	// Preflight: source must exist and be a directory, destination is
	// created if needed and must not be inside the source (prevents
	// re-discovering placed files), and conversion must be available when
	// requested. All failures here are fatal before any file is touched.
	fi, err := os.Stat(cfg.SourceDir)
	if err != nil || !fi.IsDir() {
		log.Error("Source directory does not exist: %s", cfg.SourceDir)
		return 1
	}
	sourceAbs, err := absPath(cfg.SourceDir)
	if err != nil {
		log.Error("Cannot resolve source path: %s", cfg.SourceDir)
		return 1
	}
	if err := os.MkdirAll(cfg.DestDir, 0o755); err != nil {
		log.Error("Cannot create destination directory: %s", cfg.DestDir)
		return 1
	}
	destAbs, err := absPath(cfg.DestDir)
	if err != nil {
		log.Error("Cannot resolve destination path: %s", cfg.DestDir)
		return 1
	}
	if err := cfg.ValidatePaths(sourceAbs, destAbs); err != nil {
		log.Error("%v", err)
		log.Error("Choose a destination outside: %s", cfg.SourceDir)
		return 1
	}
	if cfg.ConvertHeic && !converter.Available() {
		log.Error("%v", convert.ErrUnavailable)
		return 1
	}

	log.Info("=== PhotoSort v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.SourceDir)
	log.Info("Out: %s", cfg.DestDir)
	log.Info("")

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline can stop between files without leaving partial output.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Phase 4: Run pipeline (discover → resolve date → place).
	fs := afero.NewOsFs()
	deps := pipeline.Deps{
		Fs:        fs,
		Resolver:  metadata.NewResolver(fs, cfg.VideoDates),
		Converter: converter,
	}
	pipeline.Run(ctx, &cfg, deps, log)

	// Per-file failures were logged and skipped; completing the batch is a
	// normal exit.
	return 0
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of source vs destination directory hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
