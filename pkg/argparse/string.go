package argparse

import (
	"strconv"
	"strings"
)

// Flags returns the stored flags in the order they were first seen.
func (p *Parser) Flags() []string {
	flags := make([]string, 0, p.flags.Len())
	for pair := p.flags.Oldest(); pair != nil; pair = pair.Next() {
		flags = append(flags, pair.Key)
	}
	return flags
}

// String renders the store for debugging, e.g. {"-a": "42", "-d": null}.
func (p *Parser) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for pair := p.flags.Oldest(); pair != nil; pair = pair.Next() {
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(pair.Key))
		b.WriteString(": ")
		if pair.Value.set {
			b.WriteString(strconv.Quote(pair.Value.value))
		} else {
			b.WriteString("null")
		}
	}
	b.WriteByte('}')
	return b.String()
}
