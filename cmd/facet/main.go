package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
)

// Version information - set via ldflags during build
var (
	version   = "0.1.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printHelp(stderr)
		return exitUsage
	}
	switch args[0] {
	case "--version", "-v", "version":
		printVersion(stdout)
		return exitOK
	case "--help", "-h", "help":
		printHelp(stdout)
		return exitOK
	case "render":
		return runCommand(runRenderCommand, args[1:], stdout, stderr)
	case "hit":
		return runCommand(runHitCommand, args[1:], stdout, stderr)
	case "describe":
		return runCommand(runDescribeCommand, args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", args[0])
		printHelp(stderr)
		return exitUsage
	}
}

func runCommand(handler func([]string, io.Writer) error, args []string, stdout, stderr io.Writer) int {
	err := handler(args, stdout)
	if err == nil {
		return exitOK
	}
	if errors.Is(err, errNoHit) {
		fmt.Fprintln(stdout, err)
		return exitNoHit
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitCodeForError(err)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "facet - render one view description through several backends")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "  facet <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "COMMANDS:")
	fmt.Fprintln(w, "  render     Render the showcase (terminal, semantic, spatial or graphical)")
	fmt.Fprintln(w, "  hit        Cast a ray into the spatial projection and report the nearest node")
	fmt.Fprintln(w, "  describe   Print the showcase's semantic description")
	fmt.Fprintln(w, "  version    Print version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'facet <command> -h' for the flags of a command.")
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "facet %s\n", version)
	if commit != "unknown" {
		fmt.Fprintf(w, "  Commit:     %s\n", commit)
	}
	if buildDate != "unknown" {
		fmt.Fprintf(w, "  Built:      %s\n", buildDate)
	}
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
}
