package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into paths, behavior, display, and utility.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("photosort", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var util utilityFlags

	definePathFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &util)
	defineUtilityFlags(fs, cfg, &util)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyColorFlags(cfg, &util)

	if util.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if util.showVersion {
		fmt.Fprintln(os.Stdout, "photosort v"+version)
		os.Exit(0)
	}

	cfg.SourceDir = NormalizeDirArg(cfg.SourceDir)
	cfg.DestDir = NormalizeDirArg(cfg.DestDir)
	return nil
}

// utilityFlags holds flags that are applied after Parse: color overrides and
// flags that trigger exit (showHelp, showVersion).
type utilityFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// definePathFlags registers -s/--source and -d/--dest.
func definePathFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.SourceDir, "source", "", "Source directory containing photos and videos")
	fs.StringVar(&cfg.SourceDir, "s", "", "Same as --source")
	fs.StringVar(&cfg.DestDir, "dest", "", "Destination base directory for organized files")
	fs.StringVar(&cfg.DestDir, "d", "", "Same as --dest")
}

// defineBehaviorFlags registers --move, --heic-to-jpeg, --video-dates, --dry-run.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.MoveFiles, "move", false, "Move files instead of copying")
	fs.BoolVar(&cfg.ConvertHeic, "heic-to-jpeg", false, "Convert HEIC files to JPEG stills")
	fs.BoolVar(&cfg.VideoDates, "video-dates", false, "Read creation time from MP4/MOV metadata")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not copy, move or convert")
	fs.BoolVar(&cfg.DryRun, "n", false, "Same as --dry-run")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, u *utilityFlags) {
	fs.BoolVar(&u.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&u.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (date sources, skip reasons)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --check, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, u *utilityFlags) {
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Report metadata/conversion capabilities and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&u.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&u.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&u.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&u.showHelp, "h", false, "Same as --help")
}

// applyColorFlags resolves --color / --no-color into cfg.ColorMode.
func applyColorFlags(cfg *Config, u *utilityFlags) {
	if u.noColor {
		cfg.ColorMode = ColorNever
	} else if u.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "photosort v" + version + " — organize photos and videos by year/month"},
		{"", ""},
		{"  photosort --source <dir> --dest <dir> [OPTIONS]", ""},
		{"", ""},
		{"Paths", ""},
		{"  -s, --source <dir>", "Source directory containing photos and videos"},
		{"  -d, --dest <dir>", "Destination base directory for organized files"},
		{"", ""},
		{"Behavior", ""},
		{"  --move", "Move files instead of copying"},
		{"  --heic-to-jpeg", "Convert HEIC files to JPEG stills"},
		{"  --video-dates", "Read creation time from MP4/MOV metadata"},
		{"  -n, --dry-run", "Preview only; do not copy, move or convert"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (date sources, skip reasons)"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Report metadata/conversion capabilities and exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
