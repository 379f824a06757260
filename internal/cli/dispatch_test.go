package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and
// returns everything written to it, mirroring the teacher's
// runner_test.go capture idiom.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		os.Chdir(old)
	})
}

func TestRunCreateScaffoldsProject(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)

	opts := &Options{NoColor: true}
	var code int
	out := captureStdout(t, func() {
		code = Run([]string{"create", "contest"}, opts)
	})

	if code != 0 {
		t.Fatalf("Run(create) exit code = %d, output:\n%s", code, out)
	}
	if !strings.Contains(out, "created project") {
		t.Fatalf("expected success message, got:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(root, "contest", "Cargo.toml")); err != nil {
		t.Fatalf("expected scaffolded manifest: %v", err)
	}
}

func TestRunAddMissingID(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)

	opts := &Options{NoColor: true}
	code := Run([]string{"add"}, opts)
	if code != 2 {
		t.Fatalf("Run(add) with no id: exit code = %d, want 2", code)
	}
}

func TestRunBundleEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"crates/lib_a/Cargo.toml": "[package]\nname = \"lib_a\"\n",
		"crates/lib_a/src/lib.rs": "pub mod m;\n",
		"crates/lib_a/src/m.rs":   "pub fn f() {}\n",
		"src/bin/p.rs":            "use lib_a::m::f;\n\nfn main() {\n    f();\n}\n",
	})
	chdir(t, root)

	opts := &Options{NoColor: true}
	var code int
	out := captureStdout(t, func() {
		code = Run([]string{"bundle", "p"}, opts)
	})
	if code != 0 {
		t.Fatalf("Run(bundle) exit code = %d, output:\n%s", code, out)
	}
	if !strings.Contains(out, "bundled p") {
		t.Fatalf("expected bundled success message, got:\n%s", out)
	}

	bundled, err := os.ReadFile(filepath.Join(root, "bundled", "src", "bin", "p.rs"))
	if err != nil {
		t.Fatalf("read bundled output: %v", err)
	}
	if !strings.Contains(string(bundled), "mod lib_a") {
		t.Fatalf("expected lib_a wrapper in bundled output, got:\n%s", bundled)
	}

	if _, err := os.Stat(filepath.Join(root, "bundled", "Cargo.toml")); err != nil {
		t.Fatalf("expected bundled manifest written: %v", err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)

	opts := &Options{NoColor: true}
	code := Run([]string{"frobnicate"}, opts)
	if code != 2 {
		t.Fatalf("Run(unknown) exit code = %d, want 2", code)
	}
}

// writeTree materialises a map of relative path -> file contents
// under root, creating parent directories as needed.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}
