// Package pipeline orchestrates file discovery, per-file processing, and
// batch summary reporting.
package pipeline

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/backmassage/photosort/internal/config"
	"github.com/backmassage/photosort/internal/convert"
	"github.com/backmassage/photosort/internal/display"
	"github.com/backmassage/photosort/internal/fsops"
	"github.com/backmassage/photosort/internal/logging"
	"github.com/backmassage/photosort/internal/media"
	"github.com/backmassage/photosort/internal/metadata"
	"github.com/backmassage/photosort/internal/naming"
)

// Deps bundles the injected capabilities the runner operates against:
// the filesystem, the date resolver, and the HEIC converter.
type Deps struct {
	Fs        afero.Fs
	Resolver  *metadata.Resolver
	Converter convert.Converter
}

// Run is the top-level batch entry point. It discovers files, processes each
// sequentially (one file fully placed before the next is considered), and
// returns aggregate stats. Per-file failures are logged and counted, never
// fatal; context cancellation stops between files.
func Run(ctx context.Context, cfg *config.Config, deps Deps, log *logging.Logger) RunStats {
	var stats RunStats

	files, err := Discover(deps.Fs, cfg.SourceDir)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}

	stats.Total = len(files)
	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(cfg, deps, log, path, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one media file: resolve date → compute destination →
// ensure unique → copy/move/convert.
func processFile(cfg *config.Config, deps Deps, log *logging.Logger, path string, stats *RunStats) {
	filename := filepath.Base(path)

	when, source := deps.Resolver.Resolve(path)
	if source == metadata.SourceUnknown {
		log.Error("Cannot stat %s, skipping", path)
		stats.Failed++
		return
	}
	log.Debug(cfg.Verbose, "[%d/%d] %s: %s (%s)",
		stats.Current, stats.Total, filename, when.Format("2006-01-02 15:04:05"), source)

	destPath := naming.DestPath(cfg.DestDir, when, filename, cfg.ConvertHeic)
	if !cfg.DryRun {
		if err := deps.Fs.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			log.Error("Cannot create destination folder for %s: %v", path, err)
			stats.Failed++
			return
		}
	}
	destPath, err := naming.EnsureUnique(deps.Fs, destPath)
	if err != nil {
		log.Error("Cannot probe destination for %s: %v", path, err)
		stats.Failed++
		return
	}

	var size int64
	if fi, err := deps.Fs.Stat(path); err == nil {
		size = fi.Size()
	}

	if cfg.ConvertHeic && media.IsHeic(path) {
		placeConverted(cfg, deps, log, path, destPath, size, stats)
		return
	}
	if cfg.MoveFiles {
		if cfg.DryRun {
			log.Info("[DRY] Would move: %s -> %s", path, destPath)
			stats.Moved++
			return
		}
		if err := fsops.Move(deps.Fs, path, destPath); err != nil {
			log.Error("Failed to move %s: %v", path, err)
			stats.Failed++
			return
		}
		log.Info("Moved: %s -> %s", path, destPath)
		stats.Moved++
		stats.TotalBytes += size
		return
	}
	if cfg.DryRun {
		log.Info("[DRY] Would copy: %s -> %s", path, destPath)
		stats.Copied++
		return
	}
	if err := fsops.Copy(deps.Fs, path, destPath); err != nil {
		log.Error("Failed to copy %s: %v", path, err)
		stats.Failed++
		return
	}
	log.Info("Copied: %s -> %s", path, destPath)
	stats.Copied++
	stats.TotalBytes += size
}

// placeConverted re-encodes a HEIC source as JPEG at destPath. The source is
// deleted only after a successful encode and only when --move was requested;
// a failed conversion leaves the source untouched.
func placeConverted(cfg *config.Config, deps Deps, log *logging.Logger, path, destPath string, size int64, stats *RunStats) {
	if cfg.DryRun {
		log.Info("[DRY] Would convert: %s -> %s", path, destPath)
		stats.Converted++
		return
	}
	if err := deps.Converter.Convert(deps.Fs, path, destPath); err != nil {
		log.Error("Failed to convert %s: %v", path, err)
		stats.Failed++
		return
	}
	log.Info("Converted: %s -> %s", path, destPath)
	stats.Converted++
	stats.TotalBytes += size
	if cfg.MoveFiles {
		if err := fsops.Remove(deps.Fs, path); err != nil {
			log.Warn("Converted but could not remove source %s: %v", path, err)
		}
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d files", stats.Total)

	if cfg.MoveFiles {
		log.Info("Action: move into year/month tree")
	} else {
		log.Info("Action: copy into year/month tree")
	}
	if cfg.ConvertHeic {
		log.Info("HEIC: convert to JPEG stills")
	}
	if cfg.VideoDates {
		log.Info("Video dates: read mvhd creation time from MP4/MOV")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be written")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d copied, %d moved, %d converted, %d failed",
		stats.Copied, stats.Moved, stats.Converted, stats.Failed)
	if cfg.DryRun {
		log.Info("Data processed: n/a (dry run)")
		return
	}
	log.Success("Data processed: %s across %d files",
		display.FormatBytes(stats.TotalBytes), stats.Placed())
}
