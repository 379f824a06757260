// Package config loads the optional project-level cpbundle.yaml,
// following the same "try several candidate paths, last one wins"
// shape the teacher's tsconfig-style JSON loader used
// (internal/analyzer/config.go in rautio-react-analyzer), re-expressed
// over a single YAML document via gopkg.in/yaml.v3 instead of JSON.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the handful of project-level settings the bundler and
// scaffolding commands consult.
type Config struct {
	// CratesDir is the directory name (relative to the project root)
	// Crate Discovery scans. Defaults to "crates".
	CratesDir string `yaml:"crates_dir"`
	// BundledDir is where bundled output is written. Defaults to
	// "bundled".
	BundledDir string `yaml:"bundled_dir"`
	// ExternalCrate is substituted for {{EXTERNAL_CRATE}} in the
	// scaffold's manifest template.
	ExternalCrate string `yaml:"external_crate"`
	// NoColor disables colored diagnostics regardless of terminal
	// detection, mirroring the teacher's --no-color flag.
	NoColor bool `yaml:"no_color"`
}

// Default returns the configuration used when no cpbundle.yaml is
// found anywhere in the candidate path chain.
func Default() *Config {
	return &Config{
		CratesDir:     "crates",
		BundledDir:    "bundled",
		ExternalCrate: "",
		NoColor:       false,
	}
}

// candidatePaths lists, in priority order, the locations a project
// config may live at relative to root. Later entries win when
// multiple exist, matching the teacher's config-merge idiom.
func candidatePaths(root string) []string {
	return []string{
		filepath.Join(root, ".cpbundle.yaml"),
		filepath.Join(root, "cpbundle.yaml"),
	}
}

// Load merges cpbundle.yaml over the defaults, trying each candidate
// path in order and letting the last one found win. A missing file at
// every candidate path is not an error; a malformed one is.
func Load(root string) (*Config, error) {
	cfg := Default()

	for _, path := range candidatePaths(root) {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
