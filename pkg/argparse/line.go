package argparse

import (
	"fmt"

	"github.com/google/shlex"
)

// ParseLine splits line using shell quoting rules and parses the result.
// On a tokenizing error the store is left unchanged.
func (p *Parser) ParseLine(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("splitting argument line: %w", err)
	}
	if args == nil {
		args = []string{}
	}

	p.Parse(args)
	return nil
}
