package mc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hpfold/energy"
	"github.com/katalvlaran/hpfold/hpseq"
	"github.com/katalvlaran/hpfold/lattice"
	"github.com/katalvlaran/hpfold/moves"
)

func mustHP(t *testing.T, s string) hpseq.Sequence {
	t.Helper()
	seq, err := hpseq.FromHP(s)
	require.NoError(t, err)

	return seq
}

// TestRun_ZeroSteps is scenario S1 from spec.md §8: steps = 0 succeeds with
// an empty trace and the straight-line chain as both final and best.
func TestRun_ZeroSteps(t *testing.T) {
	seq := mustHP(t, "HHHH")
	opts := DefaultOptions()
	opts.Steps = 0

	res, err := Run(seq, opts)
	require.NoError(t, err)
	assert.Empty(t, res.Energies)
	assert.Empty(t, res.BestEnergies)
	assert.Equal(t, lattice.Conformation{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, res.FinalCoords)
	assert.Equal(t, lattice.Conformation{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, res.BestCoords)
	assert.Equal(t, 0, res.BestEnergy)
}

func TestRun_NegativeSteps(t *testing.T) {
	seq := mustHP(t, "HHHH")
	opts := DefaultOptions()
	opts.Steps = -1

	_, err := Run(seq, opts)
	assert.ErrorIs(t, err, ErrInvalidSteps)
}

func TestRun_InvalidTemperature(t *testing.T) {
	seq := mustHP(t, "HHHH")
	opts := DefaultOptions()
	opts.Temperature = 0

	_, err := Run(seq, opts)
	assert.ErrorIs(t, err, ErrInvalidTemperature)
}

func TestRun_StepsClamped(t *testing.T) {
	seq := mustHP(t, "HPHP")
	opts := DefaultOptions()
	opts.Steps = 50000
	opts.Seed = 1

	res, err := Run(seq, opts)
	require.NoError(t, err)
	assert.Len(t, res.Energies, maxSteps)
}

// TestRun_Invariants checks universal invariants 1-5 over scenario S2's
// parameters ("HPHPHPHP", T=1.0, 200 steps, fixed seed); invariant 6
// (determinism) is checked by TestRun_Deterministic.
func TestRun_Invariants(t *testing.T) {
	seq := mustHP(t, "HPHPHPHP")
	opts := DefaultOptions()
	opts.Steps = 200
	opts.Temperature = 1.0
	opts.Seed = 42

	res, err := Run(seq, opts)
	require.NoError(t, err)

	assert.True(t, lattice.IsSelfAvoiding(res.FinalCoords))
	assert.True(t, lattice.IsSelfAvoiding(res.BestCoords))
	assert.Len(t, res.Energies, 200)
	assert.Equal(t, len(res.Energies), len(res.BestEnergies))
	for i := 1; i < len(res.BestEnergies); i++ {
		assert.LessOrEqual(t, res.BestEnergies[i], res.BestEnergies[i-1])
	}
	assert.Equal(t, res.BestEnergy, res.BestEnergies[len(res.BestEnergies)-1])
	assert.LessOrEqual(t, res.BestEnergy, 0)
	assert.Equal(t, res.BestEnergy, energy.Eval(res.BestCoords, seq))
	assert.Len(t, res.BestCoords, seq.Len())
}

// TestRun_Deterministic checks property 6: same seed + parameters yields
// bitwise-identical traces and best conformation.
func TestRun_Deterministic(t *testing.T) {
	seq := mustHP(t, "HPHPHPHP")
	opts := DefaultOptions()
	opts.Steps = 200
	opts.Seed = 7

	a, err := Run(seq, opts)
	require.NoError(t, err)
	b, err := Run(seq, opts)
	require.NoError(t, err)

	assert.Equal(t, a.Energies, b.Energies)
	assert.Equal(t, a.BestEnergies, b.BestEnergies)
	assert.Equal(t, a.BestCoords, b.BestCoords)
	assert.Equal(t, a.FinalCoords, b.FinalCoords)
}

func TestRun_VSHDMode(t *testing.T) {
	seq := mustHP(t, "HHPP")
	opts := DefaultOptions()
	opts.Mode = moves.VSHD
	opts.Steps = 100
	opts.Seed = 3

	res, err := Run(seq, opts)
	require.NoError(t, err)
	assert.True(t, lattice.IsSelfAvoiding(res.FinalCoords))
}

func TestRun_InvalidRho(t *testing.T) {
	seq := mustHP(t, "HHPP")
	opts := DefaultOptions()
	opts.Rho = 2.0

	_, err := Run(seq, opts)
	assert.ErrorIs(t, err, moves.ErrInvalidRho)
}
