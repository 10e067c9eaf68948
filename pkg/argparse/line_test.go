package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	p := New()
	require.NoError(t, p.ParseLine(`-name "Ada Lovelace" -dry-run -out 'build dir' stray`))

	assert.Equal(t, 3, p.NumFlags())
	assert.Equal(t, "Ada Lovelace", p.GetStringOr("-name", ""))
	assert.False(t, p.HasValue("-dry-run"))
	assert.Equal(t, "build dir", p.GetStringOr("-out", ""))
}

func TestParseLineEmpty(t *testing.T) {
	t.Parallel()

	p := New()
	require.NoError(t, p.ParseLine(""))
	assert.Equal(t, 0, p.NumFlags())
}

func TestParseLineMerges(t *testing.T) {
	t.Parallel()

	p := NewFromArgs([]string{"-a", "1"})
	require.NoError(t, p.ParseLine("-b 2 -a"))

	assert.Equal(t, []string{"-a", "-b"}, p.Flags())
	assert.False(t, p.HasValue("-a"))
}

func TestParseLineUnterminatedQuote(t *testing.T) {
	t.Parallel()

	p := NewFromArgs([]string{"-keep", "me"})
	err := p.ParseLine(`-name "unterminated`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "splitting argument line")
	assert.Equal(t, []string{"-keep"}, p.Flags(), "store is untouched on error")
}
