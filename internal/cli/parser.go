// Package cli handles command-line argument parsing for argdump.
package cli

import (
	"errors"
	"fmt"

	"github.com/rickgorman/argparser/pkg/argparse"
)

// Separator ends argdump's own options.
const Separator = "--"

var (
	// ErrShowHelp is returned when -h or --help is given.
	ErrShowHelp = errors.New("show_help")

	// ErrShowVersion is returned when --version is given.
	ErrShowVersion = errors.New("show_version")
)

// Args represents parsed command-line arguments.
type Args struct {
	// Output flags
	NoColor bool
	Verbose bool

	// Also parse lines read from standard input
	Stdin bool

	// Lookup mode. Get is a flag name without its leading dashes.
	Get        string
	Default    string
	HasDefault bool
	Path       bool

	// Tokens handed to argparse
	Tokens []string
}

// Parse parses command-line arguments into an Args struct.
func Parse(osArgs []string) (*Args, error) {
	args := &Args{
		Tokens: []string{},
	}
	if len(osArgs) < 2 {
		return args, nil
	}

	options, tokens := split(osArgs[1:]) // Skip program name
	args.Tokens = tokens

	opts := argparse.NewFromArgs(options)
	for _, flag := range opts.Flags() {
		value, hasValue := opts.GetString(flag)

		switch flag {
		case "-h", "--help":
			return nil, ErrShowHelp

		case "--version":
			return nil, ErrShowVersion

		case "--no-color", "--verbose", "--path", "--stdin":
			if hasValue {
				return nil, fmt.Errorf("%s does not take an argument (got %q)", flag, value)
			}
			switch flag {
			case "--no-color":
				args.NoColor = true
			case "--verbose":
				args.Verbose = true
			case "--path":
				args.Path = true
			case "--stdin":
				args.Stdin = true
			}

		case "--get", "--default":
			if !hasValue {
				return nil, fmt.Errorf("%s requires an argument", flag)
			}
			switch flag {
			case "--get":
				args.Get = value
			case "--default":
				args.Default, args.HasDefault = value, true
			}

		default:
			return nil, fmt.Errorf("unknown option %s", flag)
		}
	}

	if args.Get == "" && (args.HasDefault || args.Path) {
		return nil, errors.New("--default and --path require --get")
	}

	return args, nil
}

// LookupKeys returns the flags a --get name may refer to, in the order
// they should be tried.
func (a *Args) LookupKeys() []string {
	return []string{"-" + a.Get, "--" + a.Get}
}

// split divides arguments at the first separator. Without one, everything
// is a token unless the only argument asks for help or the version.
func split(rest []string) (options, tokens []string) {
	for i, arg := range rest {
		if arg == Separator {
			return rest[:i], rest[i+1:]
		}
	}

	if len(rest) == 1 {
		switch rest[0] {
		case "-h", "--help", "--version":
			return rest, []string{}
		}
	}

	return []string{}, rest
}
