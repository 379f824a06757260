package bundler

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rautio/cpbundle/internal/manifest"
)

// CrateIndex maps a crate's identifier form (hyphens folded to
// underscores) to its absolute directory.
type CrateIndex map[string]string

// DiscoverCrates scans the immediate subdirectories of crateDir,
// reading each one's manifest and keeping only those with a parsable
// package name. Missing or malformed manifests are skipped silently
// per spec §4.2 — the directory just isn't a crate.
func DiscoverCrates(crateDir string) (CrateIndex, error) {
	entries, err := os.ReadDir(crateDir)
	if err != nil {
		return nil, newError(KindIoError, crateDir, err)
	}

	index := CrateIndex{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(crateDir, entry.Name())
		m, err := manifest.Parse(filepath.Join(dir, "Cargo.toml"))
		if err != nil || !m.HasPackage || m.Name == "" {
			continue
		}
		index[foldHyphens(m.Name)] = dir
	}
	return index, nil
}

func foldHyphens(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// SortedNames returns the crate index's keys in deterministic
// (alphabetical) order, per the Design Note on per-crate ordering.
func (ci CrateIndex) SortedNames() []string {
	names := make([]string, 0, len(ci))
	for name := range ci {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
