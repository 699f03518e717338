// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelcube/main.go
// Summary: Renders two rotating cubes as ASCII art in the terminal.
// Usage: Run `texelcube`; interrupt with Ctrl-C. Logs go to ~/.texelcube/texelcube.log.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/framegrace/texelcube/apps/cubes"
	"github.com/framegrace/texelcube/config"
	"github.com/framegrace/texelcube/texel"
	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("texelcube", flag.ContinueOnError)

	backend := fs.String("backend", "", "Output backend: ansi or tcell (default from config)")
	frames := fs.Int("frames", 0, "Stop after this many frames (0 runs until interrupted)")
	logPath := fs.String("log", "", "Log file (default: ~/.texelcube/texelcube.log)")
	configPath := fs.String("config", "", "Config file (default: texelcube/texelcube.json in the user config dir)")
	noConfig := fs.Bool("no-config", false, "Ignore the config file and use built-in defaults")
	color := fs.Bool("color", false, "Color each face (tcell backend only)")
	writeCfg := fs.Bool("write-config", false, "Save the effective backend and color settings to the config file and exit")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	logFile, err := openLog(*logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Println("Texelcube: starting")

	if *configPath != "" {
		config.UsePath(*configPath)
	}
	var cfg config.Config
	if *noConfig {
		cfg = config.Defaults()
	} else {
		cfg = config.System()
		if err := config.Err(); err != nil {
			log.Printf("Texelcube: config problem, continuing with defaults where needed: %v", err)
		}
	}

	opts := cubes.OptionsFromConfig(cfg)
	opts.MaxFrames = *frames

	name := cfg.GetString(config.SectionRender, "backend", "ansi")
	if *backend != "" {
		name = *backend
	}
	useColor := *color || cfg.GetBool(config.SectionRender, "color", false)

	driver, err := newDriver(name, os.Stdout, opts, useColor)
	if err != nil {
		return err
	}
	if *writeCfg {
		path, err := saveConfig(cfg, name, useColor)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
		return nil
	}
	scene, err := cubes.NewScene(opts)
	if err != nil {
		return err
	}

	// The ANSI framing starts every row with a newline, so it needs one spare line.
	if w, h := driver.Size(); w > 0 && (w < opts.Width || h < opts.Height+1) {
		log.Printf("Texelcube: terminal is %dx%d, frames need %dx%d and will wrap", w, h, opts.Width, opts.Height+1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Texelcube: backend=%s canvas=%dx%d delay=%s", name, opts.Width, opts.Height, opts.FrameDelay)
	stats, err := cubes.Run(ctx, driver, scene, opts, cubes.NewFrameLogger(nil, 600))
	fmt.Fprintf(os.Stderr, "Rendered %d frames in %v (%.2f FPS)\n", stats.Frames, stats.Elapsed, stats.FPS())
	log.Printf("Texelcube: stopped after %d frames", stats.Frames)
	return err
}

func openLog(path string) (*os.File, error) {
	if path == "" {
		paths, err := GetPaths()
		if err != nil {
			return nil, fmt.Errorf("resolve paths: %w", err)
		}
		if err := paths.EnsureStateDir(); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
		path = paths.LogPath
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

// saveConfig stores cfg with the chosen backend settings as the system config.
func saveConfig(cfg config.Config, backend string, color bool) (string, error) {
	cfg = config.Clone(cfg)
	cfg.Set(config.SectionRender, "backend", backend)
	cfg.Set(config.SectionRender, "color", color)
	config.SetSystem(cfg)
	if err := config.SaveSystem(); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return config.Path()
}

func newDriver(name string, out io.Writer, opts cubes.Options, color bool) (texel.ScreenDriver, error) {
	switch name {
	case "ansi":
		return texel.NewANSIDriver(out), nil
	case "tcell":
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		var styles map[rune]tcell.Style
		if color {
			styles = texel.FaceStyles(opts.Glyphs)
		}
		return texel.NewTcellScreenDriver(screen, styles), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want ansi or tcell)", name)
	}
}
