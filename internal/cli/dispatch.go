// Package cli wires the four cpbundle subcommands (bundle, add,
// create, run) to their internal/bundler and internal/scaffold
// collaborators, in the same command-dispatch shape the teacher's
// internal/cli uses: a flat Options struct, one Run entry point
// returning a process exit code, and plain fmt.Fprintf diagnostics —
// upgraded here from the teacher's raw ANSI escapes to
// github.com/fatih/color, the library two other repos in the
// retrieval pack (fredrikaverpil-pocket, sunholo-data-ailang) reach
// for to do exactly this.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/rautio/cpbundle/internal/bundler"
	"github.com/rautio/cpbundle/internal/config"
	"github.com/rautio/cpbundle/internal/scaffold"
)

// Options carries the global flags parsed in cmd/cpbundle/main.go.
type Options struct {
	NoColor bool
	Release bool
}

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
	bold  = color.New(color.Bold)
)

// Run dispatches one of the four subcommands. args is the command
// line left after the caller's flag.Args() has consumed the global
// flags; args[0] itself is required to be the subcommand.
func Run(args []string, opts *Options) int {
	if len(args) == 0 {
		PrintHelp(os.Stdout)
		return 2
	}

	root, err := os.Getwd()
	if err != nil {
		printError(fmt.Errorf("resolve working directory: %w", err), opts.NoColor)
		return 1
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "create":
		return runCreate(root, rest, opts)
	case "add":
		return runAdd(root, rest, opts)
	case "bundle":
		return runBundle(root, rest, opts)
	case "run":
		return runRun(root, rest, opts)
	case "help", "-h", "--help":
		PrintHelp(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "cpbundle: unknown command %q\n", cmd)
		PrintHelp(os.Stderr)
		return 2
	}
}

func runCreate(root string, args []string, opts *Options) int {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	externalCrate := fs.String("external-crate", "solutions", "crate name substituted into the scaffolded manifest")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		printError(errors.New("create: missing project name"), opts.NoColor)
		return 2
	}
	name := fs.Arg(0)
	dir := filepath.Join(root, name)

	if err := scaffold.CreateProject(dir, *externalCrate); err != nil {
		printError(err, opts.NoColor)
		return 1
	}
	printSuccess(fmt.Sprintf("created project %s", dir), opts.NoColor)
	return 0
}

func runAdd(root string, args []string, opts *Options) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		printError(errors.New("add: missing problem id"), opts.NoColor)
		return 2
	}
	id := fs.Arg(0)

	if err := scaffold.AddProblem(root, id); err != nil {
		printError(err, opts.NoColor)
		return 1
	}
	printSuccess(fmt.Sprintf("added src/bin/%s.rs", id), opts.NoColor)
	return 0
}

func runBundle(root string, args []string, opts *Options) int {
	fs := flag.NewFlagSet("bundle", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		printError(errors.New("bundle: missing problem id"), opts.NoColor)
		return 2
	}
	id := fs.Arg(0)

	cfg, err := config.Load(root)
	if err != nil {
		printError(fmt.Errorf("bundle %s: load config: %w", id, err), opts.NoColor)
		return 1
	}
	if opts.NoColor {
		cfg.NoColor = true
	}

	logger := log.New(os.Stderr, "", 0)
	if cfg.NoColor {
		logger.SetPrefix("")
	}

	crates, err := bundler.DiscoverCrates(filepath.Join(root, cfg.CratesDir))
	if err != nil {
		printError(fmt.Errorf("bundle %s: %w", id, err), cfg.NoColor)
		return 1
	}

	srcPath := filepath.Join(root, "src", "bin", id+".rs")
	destPath := filepath.Join(root, cfg.BundledDir, "src", "bin", id+".rs")

	bctx, err := bundler.NewContext(id, root, srcPath, destPath, crates, logger)
	if err != nil {
		printError(fmt.Errorf("bundle %s: %w", id, err), cfg.NoColor)
		return 1
	}
	defer bctx.Close()

	if err := bundler.NewDriver(bctx).Run(); err != nil {
		printError(fmt.Errorf("bundle %s: %w", id, err), cfg.NoColor)
		return 1
	}

	if err := writeBundledManifest(root, cfg); err != nil {
		printError(fmt.Errorf("bundle %s: %w", id, err), cfg.NoColor)
		return 1
	}

	printSuccess(fmt.Sprintf("bundled %s -> %s", id, destPath), cfg.NoColor)
	return 0
}

// writeBundledManifest materialises the sibling manifest spec §6
// describes: an embedded template with {{EXTERNAL_CRATE}} substituted,
// written alongside the bundled output directory.
func writeBundledManifest(root string, cfg *config.Config) error {
	manifest, err := scaffold.BundledManifest(cfg.ExternalCrate)
	if err != nil {
		return err
	}
	dir := filepath.Join(root, cfg.BundledDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(manifest), 0o644)
}

func runRun(root string, args []string, opts *Options) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	release := fs.Bool("release", opts.Release, "run in release mode")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		printError(errors.New("run: missing problem id"), opts.NoColor)
		return 2
	}
	id := fs.Arg(0)

	var inputPath string
	if fs.NArg() >= 2 {
		inputPath = fs.Arg(1)
	}

	if err := scaffold.RunProblem(context.Background(), root, id, inputPath, *release); err != nil {
		printError(err, opts.NoColor)
		return 1
	}
	return 0
}

// printError formats and prints an error message, matching the
// teacher's printError signature but backed by fatih/color.
func printError(err error, noColor bool) {
	w := os.Stderr
	if noColor {
		fmt.Fprintf(w, "✖ Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s %v\n", red.Sprint("✖ Error:"), err)
}

// printSuccess formats and prints a success message.
func printSuccess(message string, noColor bool) {
	w := io.Writer(os.Stdout)
	if noColor {
		fmt.Fprintf(w, "✓ %s\n", message)
		return
	}
	fmt.Fprintf(w, "%s %s\n", green.Sprint("✓"), bold.Sprint(message))
}
