// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Behavior defaults match the legacy organise_photos script for parity.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths.
	SourceDir string // Root of files to scan (--source).
	DestDir   string // Root under which year/month subtrees are created (--dest).

	// Behavior flags.
	MoveFiles   bool // Move instead of copy (--move).
	ConvertHeic bool // Convert HEIC files to JPEG (--heic-to-jpeg).
	VideoDates  bool // Read mvhd creation time from MP4/MOV containers (--video-dates).
	DryRun      bool // Preview only; destination untouched.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		MoveFiles:   false,
		ConvertHeic: false,
		VideoDates:  false,
		DryRun:      false,
		Verbose:     false,
		ColorMode:   ColorAuto,
		CheckOnly:   false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that the color mode is valid and, outside CheckOnly mode,
// that both source and destination paths were given.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.SourceDir == "" {
		return errors.New("source directory is required (--source)")
	}
	if c.DestDir == "" {
		return errors.New("destination directory is required (--dest)")
	}
	return nil
}

// ValidatePaths ensures the resolved destination directory is not inside (or
// equal to) the resolved source directory. This prevents the pipeline from
// re-discovering files it just placed. Both arguments must be absolute,
// symlink-resolved paths.
func (c *Config) ValidatePaths(sourceAbs, destAbs string) error {
	sep := string(filepath.Separator)
	if destAbs == sourceAbs || strings.HasPrefix(destAbs+sep, sourceAbs+sep) {
		return errors.New("destination directory must not be inside source directory")
	}
	return nil
}
