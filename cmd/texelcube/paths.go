// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelcube/paths.go
// Summary: Standard paths for texelcube runtime files.

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds standard file paths for texelcube
type Paths struct {
	StateDir string // ~/.texelcube
	LogPath  string // ~/.texelcube/texelcube.log
}

// GetPaths returns the standard paths for texelcube files
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home directory: %w", err)
	}

	stateDir := filepath.Join(home, ".texelcube")

	return &Paths{
		StateDir: stateDir,
		LogPath:  filepath.Join(stateDir, "texelcube.log"),
	}, nil
}

// EnsureStateDir creates the state directory if it doesn't exist
func (p *Paths) EnsureStateDir() error {
	return os.MkdirAll(p.StateDir, 0755)
}
