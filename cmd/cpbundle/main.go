package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rautio/cpbundle/internal/cli"
)

const version = "0.1.0"

func main() {
	showHelp := flag.Bool("help", false, "")
	flag.BoolVar(showHelp, "h", false, "")

	showVersion := flag.Bool("version", false, "")
	flag.BoolVar(showVersion, "v", false, "")

	noColor := flag.Bool("no-color", false, "")
	release := flag.Bool("release", false, "")

	flag.Usage = func() {
		cli.PrintHelp(os.Stdout)
	}

	flag.Parse()

	if *showHelp {
		cli.PrintHelp(os.Stdout)
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("cpbundle %s\n", version)
		os.Exit(0)
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: missing command")
		fmt.Fprintln(os.Stderr, "\nUsage: cpbundle [OPTIONS] <COMMAND> [ARGS]")
		fmt.Fprintln(os.Stderr, "Run 'cpbundle --help' for more information")
		os.Exit(2)
	}

	opts := &cli.Options{
		NoColor: *noColor,
		Release: *release,
	}

	os.Exit(cli.Run(flag.Args(), opts))
}
