package bundler

import (
	"os"
	"path/filepath"
)

// sourceExt and modEntry are the Rust-specific conventions the
// Source-Tree Loader probes: a child module named m resolves either
// to a sibling file m.rs or to a directory m/ whose entry file is
// mod.rs.
const (
	sourceExt = ".rs"
	modEntry  = "mod"
)

// Load resolves a child module name against a base directory,
// probing <base>/<m>.rs first and <base>/<m>/mod.rs second. It
// returns the parent directory of whichever file was chosen (so the
// caller can keep resolving that module's own children) plus the
// file's source text.
func Load(base, name string) (dir string, source []byte, err error) {
	flatPath := filepath.Join(base, name+sourceExt)
	if data, readErr := os.ReadFile(flatPath); readErr == nil {
		return base, data, nil
	} else if !os.IsNotExist(readErr) {
		return "", nil, newError(KindIoError, flatPath, readErr)
	}

	dirPath := filepath.Join(base, name)
	entryPath := filepath.Join(dirPath, modEntry+sourceExt)
	if data, readErr := os.ReadFile(entryPath); readErr == nil {
		return dirPath, data, nil
	} else if !os.IsNotExist(readErr) {
		return "", nil, newError(KindIoError, entryPath, readErr)
	}

	return "", nil, newError(KindPathNotFound, flatPath+" or "+entryPath, nil)
}
