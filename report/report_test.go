package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hpfold/lattice"
)

func TestWriteTraceCSV(t *testing.T) {
	var sb strings.Builder
	err := WriteTraceCSV(&sb, []int{0, -1, -1}, []int{0, -1, -2})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "step,energy,best_energy", lines[0])
	assert.Equal(t, "1,0,0", lines[1])
	assert.Equal(t, "2,-1,-1", lines[2])
	assert.Equal(t, "3,-1,-2", lines[3])
}

func TestWriteBestFoldJSON(t *testing.T) {
	var sb strings.Builder
	coords := lattice.Conformation{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	err := WriteBestFoldJSON(&sb, -1, coords)
	require.NoError(t, err)

	var got bestFold
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &got))
	assert.Equal(t, -1, got.Energy)
	assert.Equal(t, [][]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, got.Coords)
}

func TestWriteTraceCSVFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.csv")
	require.NoError(t, WriteTraceCSVFile(path, []int{-1}, []int{-1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "step,energy,best_energy")
}

func TestWriteRunConfigYAML(t *testing.T) {
	var sb strings.Builder
	cfg := DefaultRunConfig()
	cfg.Input = "HPHPHP"
	cfg.Seed = 9

	require.NoError(t, WriteRunConfigYAML(&sb, cfg))
	assert.Contains(t, sb.String(), "input: HPHPHP")
	assert.Contains(t, sb.String(), "seed: 9")

	// round-trips through LoadRunConfig's own decoding path.
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, WriteRunConfigYAMLFile(path, cfg))

	got, err := LoadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadRunConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	content := "algo: mc\nseed: 7\nmc_steps: 1000\nmoves: pull\nrho: 0.3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "mc", cfg.Algo)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 1000, cfg.MCSteps)
	assert.Equal(t, "pull", cfg.Moves)
	assert.InDelta(t, 0.3, cfg.Rho, 1e-9)
	// unset fields retain DefaultRunConfig's values.
	assert.Equal(t, DefaultRunConfig().Replicas, cfg.Replicas)
}

func TestParseMode(t *testing.T) {
	_, err := ParseMode("bogus")
	assert.Error(t, err)

	m, err := ParseMode("vshd")
	require.NoError(t, err)
	assert.Equal(t, 0, int(m))
}
