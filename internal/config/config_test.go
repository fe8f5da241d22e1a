package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-ricrob/gridcover/internal/grid"
	"github.com/go-ricrob/gridcover/internal/logging"
	"github.com/go-ricrob/gridcover/internal/packed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridcover.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	g, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, 55, g.NumFree())
	assert.Equal(t, 25, cfg.Moves)
	assert.True(t, cfg.Pruning)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
rows: 3
cols: 4
moves: 6
blocked:
  - {row: 1, col: 1}
  - {row: 2, col: 3}
log_level: debug
log_json: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Rows)
	assert.Equal(t, 4, cfg.Cols)
	assert.Equal(t, 6, cfg.Moves)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}, {Row: 2, Col: 3}}, cfg.Blocked)
	assert.True(t, cfg.Pruning, "unset keys keep their defaults")

	lc, err := cfg.Logging()
	require.NoError(t, err)
	assert.Equal(t, logging.Config{Level: logging.LevelDebug, JSON: true}, lc)
}

func TestLoad_NoBlockedReplacesDefault(t *testing.T) {
	cfg, err := Load(writeFile(t, "rows: 2\ncols: 2\nmoves: 3\npruning: false\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Blocked)
	assert.False(t, cfg.Pruning)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "rows: [1, 2\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "moves: 0\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeFile(t, "rows: -2\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeFile(t, "log_level: loud\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate_TooLarge(t *testing.T) {
	cfg := Default()
	cfg.Rows, cfg.Cols, cfg.Moves = 4000000000, 4000000000, 2
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, packed.ErrTooLarge)

	// the cells fit but the memo states do not
	cfg.Rows, cfg.Cols, cfg.Moves = 1<<20, 1<<20, 1<<30
	assert.ErrorIs(t, cfg.Validate(), packed.ErrTooLarge)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", DefaultPath)
	require.NoError(t, Write(path, Default()))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
