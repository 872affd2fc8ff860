// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SuiteConfig is the optional YAML configuration of a suite run, e.g.
//
//	quarantine:
//	  - "TestAJAX*"
//	local:
//	  ajax_delay: 2s
//	  load_delay: 500ms
type SuiteConfig struct {
	// Quarantine lists glob patterns of case names that are skipped.
	Quarantine []string `yaml:"quarantine"`
	// Local tunes the replica server used with --local.
	Local LocalConfig `yaml:"local"`
}

// LocalConfig holds the delays of the local replica server. Zero values
// mean the server's defaults.
type LocalConfig struct {
	AJAXDelay time.Duration `yaml:"ajax_delay"`
	LoadDelay time.Duration `yaml:"load_delay"`
}

// LoadSuiteConfig reads a SuiteConfig from the YAML file at path. An empty
// path yields the zero config.
func LoadSuiteConfig(path string) (*SuiteConfig, error) {
	if path == "" {
		return &SuiteConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite config: %w", err)
	}
	return ParseSuiteConfig(data)
}

// ParseSuiteConfig decodes a SuiteConfig and validates its fields.
func ParseSuiteConfig(data []byte) (*SuiteConfig, error) {
	var cfg SuiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing suite config: %w", err)
	}
	if cfg.Local.AJAXDelay < 0 || cfg.Local.LoadDelay < 0 {
		return nil, fmt.Errorf("negative delay in local config: %+v", cfg.Local)
	}
	if _, err := NewQuarantine(cfg.Quarantine); err != nil {
		return nil, err
	}
	return &cfg, nil
}
