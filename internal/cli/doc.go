// Package cli provides command-line option handling for argdump.
//
// argdump inspects how pkg/argparse splits a list of tokens into flags and
// values, so its own options and the tokens it inspects must be kept
// apart. Options come first and end at a "--" separator; everything after
// the separator is handed to argparse untouched:
//
//	argdump --get threads --default 1 -- -threads 8 -verbose
//
// Without a separator every argument is a token, except that a lone -h,
// --help or --version is still honoured.
//
// The options themselves are parsed with pkg/argparse, then checked here,
// since argparse accepts any flag it sees. An option value cannot start
// with a dash followed by a letter, so --get takes a flag name without its
// dashes ("threads" finds -threads, then --threads). Supported options:
//   - --stdin: also parse each line of standard input, split with shell
//     quoting rules
//   - --get NAME: print the value of flag NAME instead of the full table
//   - --default VALUE: fallback for --get when FLAG has no value
//   - --path: convert the --get result to a platform path
//   - --no-color: disable colored output
//   - --verbose: log parsing steps to stderr
//
// Example usage:
//
//	args, err := cli.Parse(os.Args)
//	if errors.Is(err, cli.ErrShowHelp) {
//	    showHelp()
//	    os.Exit(0)
//	}
package cli
