// Package scaffold implements the three CLI subcommands spec.md
// names as out-of-core-scope "thin filesystem and subprocess glue":
// create, add and run. Templates are embedded the way spec §6
// describes the template directory as an external collaborator; the
// only substitution ever performed is the single {{EXTERNAL_CRATE}}
// placeholder, so plain strings.ReplaceAll stands in for a templating
// engine such as text/template.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed templates/*.tmpl
var templates embed.FS

const externalCratePlaceholder = "{{EXTERNAL_CRATE}}"

// CreateProject scaffolds a new contest project rooted at dir: an
// empty crates/ directory, src/bin/, and a root manifest with
// externalCrate substituted into the template.
func CreateProject(dir, externalCrate string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("create project: %s already exists", dir)
	}

	for _, sub := range []string{"crates", "src/bin"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("create project: %w", err)
		}
	}

	manifest, err := renderManifest(externalCrate)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	cfg := "crates_dir: crates\nbundled_dir: bundled\nexternal_crate: \"" + externalCrate + "\"\n"
	if err := os.WriteFile(filepath.Join(dir, "cpbundle.yaml"), []byte(cfg), 0o644); err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// AddProblem scaffolds src/bin/<id>.rs from the embedded problem
// template, erroring if the file already exists.
func AddProblem(root, id string) error {
	path := filepath.Join(root, "src", "bin", id+".rs")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("add %s: %s already exists", id, path)
	}

	data, err := templates.ReadFile("templates/problem.rs.tmpl")
	if err != nil {
		return fmt.Errorf("add %s: %w", id, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("add %s: %w", id, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("add %s: %w", id, err)
	}
	return nil
}

// BundledManifest renders the manifest template for the bundled/
// output directory, with externalCrate substituted in.
func BundledManifest(externalCrate string) (string, error) {
	return renderManifest(externalCrate)
}

func renderManifest(externalCrate string) (string, error) {
	data, err := templates.ReadFile("templates/Cargo.toml.tmpl")
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(data), externalCratePlaceholder, externalCrate), nil
}
