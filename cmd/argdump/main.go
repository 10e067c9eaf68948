package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rickgorman/argparser/internal/cli"
	"github.com/rickgorman/argparser/internal/ui"
	"github.com/rickgorman/argparser/pkg/argparse"
	"github.com/rickgorman/argparser/pkg/hash"
)

const version = "1.0.0"

// Exit codes
const (
	exitOK      = 0
	exitError   = 1
	exitNoValue = 2
)

func main() {
	// Parse arguments
	args, err := cli.Parse(os.Args)
	if err != nil {
		if errors.Is(err, cli.ErrShowHelp) {
			showHelp()
			os.Exit(exitOK)
		}
		if errors.Is(err, cli.ErrShowVersion) {
			fmt.Printf("argdump %s\n", version)
			os.Exit(exitOK)
		}
		ui.Fail("Error parsing options: %v", err)
		ui.Info("Run %s for usage information", ui.Bold("argdump --help"))
		os.Exit(exitError)
	}

	os.Exit(run(args, os.Stdin, newLogger(args.Verbose)))
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// run builds the flag store described by args and prints it. It returns
// the process exit code.
func run(args *cli.Args, stdin io.Reader, logger *slog.Logger) int {
	if args.NoColor {
		ui.DisableColor()
	}

	store := argparse.New()

	if args.Stdin {
		if err := parseLines(store, stdin, logger); err != nil {
			ui.Fail("Failed to read standard input: %v", err)
			return exitError
		}
	}

	logger.Debug("parsing tokens", "count", len(args.Tokens))
	store.Parse(args.Tokens)
	logger.Debug("parsed", "flags", store.NumFlags(), "store", store.String())

	if args.Get != "" {
		return lookup(store, args)
	}

	printTable(store)
	return exitOK
}

// parseLines merges every line of r into store, in order.
func parseLines(store *argparse.Parser, r io.Reader, logger *slog.Logger) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		logger.Debug("parsing line", "line", lineNo, "text", scanner.Text())
		if err := store.ParseLine(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

// resolveFlag returns the stored flag that args.Get refers to, falling back
// to the single-dash form when none is stored.
func resolveFlag(store *argparse.Parser, args *cli.Args) string {
	keys := args.LookupKeys()
	for _, key := range keys {
		if store.HasFlag(key) {
			return key
		}
	}
	return keys[0]
}

func lookup(store *argparse.Parser, args *cli.Args) int {
	flag := resolveFlag(store, args)

	if args.HasDefault {
		if args.Path {
			ui.Value(store.GetPathOr(flag, args.Default))
		} else {
			ui.Value(store.GetStringOr(flag, args.Default))
		}
		return exitOK
	}

	get := store.GetString
	if args.Path {
		get = store.GetPath
	}

	value, ok := get(flag)
	if !ok {
		if store.HasFlag(flag) {
			ui.Warn("%s has no value", ui.Bold(flag))
		} else {
			ui.Warn("%s was not given", ui.Bold(flag))
		}
		return exitNoValue
	}

	ui.Value(value)
	return exitOK
}

func printTable(store *argparse.Parser) {
	ui.Header()

	if store.NumFlags() == 0 {
		ui.Warn("No flags found")
	}
	for i, flag := range store.Flags() {
		value, ok := store.GetString(flag)
		ui.FlagRow(i+1, flag, value, ok)
	}

	ui.Success("%d flag(s) parsed", store.NumFlags())
	ui.DimMsg("fingerprint %s", hash.Fingerprint(store.String()))
	ui.Footer()
}

func showHelp() {
	help := `argdump - show how command-line tokens parse into flags and values

USAGE:
    argdump [TOKENS...]
    argdump [OPTIONS] -- [TOKENS...]

OPTIONS:
    --get NAME             Print the value of flag NAME (given without dashes)
    --default VALUE        Value to print when --get finds none
    --path                 Print the --get value as a platform path
    --stdin                Also parse each line of standard input
    --no-color             Disable colored output
    --verbose              Log parsing steps to stderr
    -h, --help             Show this help message
    --version              Show version information

RULES:
    A flag starts with "-" and is not followed by a digit (-a, --all).
    A value directly after a flag belongs to it; other values are ignored.
    A repeated flag keeps its last value.

EXAMPLES:
    # Show every flag and value
    argdump -threads 8 -verbose input.txt

    # Look up one flag with a fallback
    argdump --get threads --default 1 -- -threads 8

    # Merge flags from a file
    argdump --stdin -- -dry-run < flags.txt

EXIT STATUS:
    0   success
    1   invalid options or unreadable input
    2   --get found no value and no --default was given
`
	fmt.Print(help)
}
