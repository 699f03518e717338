// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Fills missing keys from the embedded default configuration.

package config

import "log"

// Section names.
const (
	SectionRender     = "render"
	SectionStationary = "stationary"
	SectionMoving     = "moving"
)

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	def, err := embeddedSystemDefaults()
	if err != nil {
		log.Printf("Config: Embedded defaults unavailable: %v", err)
		return
	}
	for name := range def {
		cfg.RegisterDefaults(name, def.Section(name))
	}
}
