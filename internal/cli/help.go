package cli

import (
	"fmt"
	"io"
)

// PrintHelp displays the top-level help message, in the same spirit
// as the teacher's cli.PrintHelp: one literal usage block, no
// generated flag listings.
func PrintHelp(w io.Writer) {
	help := `cpbundle v0.1.0

Scaffold and bundle competitive-programming contest solutions.

USAGE:
    cpbundle [OPTIONS] <COMMAND> [ARGS]

COMMANDS:
    create <name>            Scaffold a new contest project
    add <id>                 Scaffold a new problem entrypoint
    bundle <id>               Bundle a problem and its used library code
                              into bundled/src/bin/<id>.rs
    run <id> [input-file]    Run a problem via cargo, piping input-file
                              to stdin when given

OPTIONS:
    -h, --help        Show this help message
    -v, --version     Show version number
        --no-color    Disable colored output

EXAMPLES:
    cpbundle create my-contest
    cpbundle add a
    cpbundle bundle a
    cpbundle run a sample.txt
    cpbundle run --release a

EXIT CODES:
    0    Success
    1    Command error (scaffolding, bundling or run failure)
    2    Usage error (missing or unknown command, bad arguments)
`
	fmt.Fprint(w, help)
}
