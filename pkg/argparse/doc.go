// Package argparse provides a small flag/value store for command-line tools.
//
// A Parser turns the raw arguments a program receives into an
// insertion-ordered mapping of flags to optional values. It does not know
// which flags an application accepts; callers query the flags they care
// about and validate them themselves.
//
// Classification rules:
//   - A flag is any argument of at least two characters that starts with
//     "-" and whose second character is not a digit ("-a", "--world",
//     "-hello world", "--1").
//   - Anything else ("hello", "-", "-1", "-42") is a value.
//   - A value directly after a flag belongs to that flag. Values that
//     cannot attach to a flag are dropped.
//   - A repeated flag keeps its first position but takes the value of its
//     last occurrence.
//
// Example usage:
//
//	args := argparse.NewFromArgs(os.Args[1:])
//
//	if args.HasFlag("-verbose") {
//	    // enable verbose output
//	}
//
//	threads := args.GetStringOr("-threads", "5")
//
//	if dir, ok := args.GetPath("-path"); ok {
//	    // walk dir
//	}
//
// A Parser may be fed more than once. Later calls merge into the existing
// store instead of replacing it:
//
//	p := argparse.New()
//	p.Parse([]string{"-a", "42", "-b"})
//	p.Parse([]string{"-b", "bat"})
//	p.String() // {"-a": "42", "-b": "bat"}
//
// A Parser is not safe for concurrent use while it is being parsed into.
package argparse
