// Package main is the entry point for the painterm terminal paint program.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/painterm/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, showVersion := parseFlags()
	if showVersion {
		fmt.Printf("painterm %s (%s)\n", version, commit)
		return 0
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure the terminal is restored on all exit paths.
	defer application.Shutdown()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "configuration file")
	flag.IntVar(&opts.Width, "width", 0, "canvas width (overrides config)")
	flag.IntVar(&opts.Height, "height", 0, "canvas height (overrides config)")
	flag.BoolVar(&opts.Watch, "watch", true, "reload configuration on change")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	return opts, showVersion
}

// defaultConfigPath returns the user config location, or empty if no config
// directory is available.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "painterm", "painterm.toml")
}
