package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateProjectScaffoldsExpectedTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "contest")

	if err := CreateProject(root, "judge_submission"); err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	for _, dir := range []string{"crates", "src/bin"} {
		if info, err := os.Stat(filepath.Join(root, dir)); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s to exist", dir)
		}
	}

	manifest, err := os.ReadFile(filepath.Join(root, "Cargo.toml"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if !strings.Contains(string(manifest), `name = "judge_submission"`) {
		t.Fatalf("expected substituted manifest, got:\n%s", manifest)
	}
}

func TestCreateProjectRefusesExistingDir(t *testing.T) {
	root := t.TempDir()
	if err := CreateProject(root, "x"); err == nil {
		t.Fatalf("expected error scaffolding over an existing directory")
	}
}

func TestAddProblemWritesTemplate(t *testing.T) {
	root := t.TempDir()
	if err := AddProblem(root, "p"); err != nil {
		t.Fatalf("AddProblem() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "src", "bin", "p.rs"))
	if err != nil {
		t.Fatalf("read scaffolded file: %v", err)
	}
	if !strings.Contains(string(data), "fn main()") {
		t.Fatalf("expected a main function, got:\n%s", data)
	}
}

func TestAddProblemRefusesExisting(t *testing.T) {
	root := t.TempDir()
	if err := AddProblem(root, "p"); err != nil {
		t.Fatalf("AddProblem() error: %v", err)
	}
	if err := AddProblem(root, "p"); err == nil {
		t.Fatalf("expected error re-adding an existing problem")
	}
}

func TestBundledManifestSubstitutesPlaceholder(t *testing.T) {
	got, err := BundledManifest("solutions")
	if err != nil {
		t.Fatalf("BundledManifest() error: %v", err)
	}
	if strings.Contains(got, "{{EXTERNAL_CRATE}}") {
		t.Fatalf("expected placeholder substituted, got:\n%s", got)
	}
	if !strings.Contains(got, `name = "solutions"`) {
		t.Fatalf("expected crate name substituted, got:\n%s", got)
	}
}
