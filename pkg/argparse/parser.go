// Package argparse parses command-line arguments into flag/value pairs.
package argparse

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// slot is the value attached to a stored flag. A flag seen without a
// value has set == false.
type slot struct {
	value string
	set   bool
}

// Parser stores the flags and values parsed from one or more argument lists.
// The zero value is not usable; create one with New or NewFromArgs.
type Parser struct {
	flags *orderedmap.OrderedMap[string, slot]
}

// New returns an empty Parser.
func New() *Parser {
	return &Parser{
		flags: orderedmap.New[string, slot](),
	}
}

// NewFromArgs returns a Parser populated from args.
// It panics if args is nil.
func NewFromArgs(args []string) *Parser {
	p := New()
	p.Parse(args)
	return p
}

// IsFlag reports whether arg is a flag: at least two characters long,
// starting with a dash, and not followed by a digit.
func IsFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	return arg[1] < '0' || arg[1] > '9'
}

// Parse adds the flags in args to the store. A flag directly followed by a
// value takes that value; a flag followed by another flag or by the end of
// args has no value. Values with no flag in front of them are ignored.
//
// Flags already in the store keep their position and are overwritten.
// Parse panics if args is nil; an empty slice is fine.
func (p *Parser) Parse(args []string) {
	if args == nil {
		panic("argparse: Parse called with nil args")
	}

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case !IsFlag(arg):
			// Orphan value
			i++

		case i+1 < len(args) && !IsFlag(args[i+1]):
			p.flags.Set(arg, slot{value: args[i+1], set: true})
			i += 2

		default:
			p.flags.Set(arg, slot{})
			i++
		}
	}
}
