package paytable

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/reelslot/internal/domain"
)

func TestParse_DefaultRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultDefinition())
	require.NoError(t, err)

	m, err := Parse(data)
	require.NoError(t, err)

	want := MustDefault()
	assert.Equal(t, want.Modes(), m.Modes())
	assert.Equal(t, want.Strip(1).Symbols(), m.Strip(1).Symbols())

	base := m.BaseTable()
	j, ok := base.Jingle(2)
	require.True(t, ok)
	assert.Equal(t, domain.CueJingleBig, j.Cue)
	assert.Equal(t, LineDiagUp, base.Entry(7).Lines[4])
}

func TestParse_SchemaRejectsUnknownSymbol(t *testing.T) {
	data, err := Marshal(DefaultDefinition())
	require.NoError(t, err)

	bad := strings.Replace(string(data), `"seven_red"`, `"seven_green"`, 1)
	_, err = Parse([]byte(bad))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidMachine)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestParse_SchemaRejectsMissingFields(t *testing.T) {
	_, err := Parse([]byte(`{"name": "x"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidMachine)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.json")
	data, err := Marshal(DefaultDefinition())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "standard", m.Name())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
