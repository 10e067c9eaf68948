package argparse

import (
	"path/filepath"
)

// NumFlags returns the number of distinct flags in the store.
func (p *Parser) NumFlags() int {
	return p.flags.Len()
}

// HasFlag reports whether flag was seen, with or without a value.
func (p *Parser) HasFlag(flag string) bool {
	_, ok := p.flags.Get(flag)
	return ok
}

// HasValue reports whether flag was seen and has a value.
func (p *Parser) HasValue(flag string) bool {
	s, ok := p.flags.Get(flag)
	return ok && s.set
}

// GetString returns the value of flag. The boolean is false if the flag is
// missing or was given without a value.
func (p *Parser) GetString(flag string) (string, bool) {
	s, ok := p.flags.Get(flag)
	if !ok || !s.set {
		return "", false
	}
	return s.value, true
}

// GetStringOr returns the value of flag, or def if GetString would report
// no value.
func (p *Parser) GetStringOr(flag, def string) string {
	if value, ok := p.GetString(flag); ok {
		return value
	}
	return def
}

// GetPath returns the value of flag converted to a path using the
// platform's separator. It never touches the filesystem.
func (p *Parser) GetPath(flag string) (string, bool) {
	value, ok := p.GetString(flag)
	if !ok {
		return "", false
	}
	return filepath.FromSlash(value), true
}

// GetPathOr returns GetPath(flag), or def if there is no value.
func (p *Parser) GetPathOr(flag, def string) string {
	if path, ok := p.GetPath(flag); ok {
		return path
	}
	return def
}
