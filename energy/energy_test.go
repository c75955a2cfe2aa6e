package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hpfold/hpseq"
	"github.com/katalvlaran/hpfold/lattice"
)

func mustHP(t *testing.T, s string) hpseq.Sequence {
	t.Helper()
	seq, err := hpseq.FromHP(s)
	require.NoError(t, err)

	return seq
}

// TestEval_Line verifies property 8: E(line, S) == 0 for any S, since no
// two non-consecutive residues on a straight line are ever lattice-adjacent.
func TestEval_Line(t *testing.T) {
	for _, s := range []string{"HH", "HHHH", "HPHPHPHP", "PPPPPP"} {
		c, err := lattice.InitialLine(len(s))
		require.NoError(t, err)
		assert.Equal(t, 0, Eval(c, mustHP(t, s)), "sequence %q", s)
	}
}

// TestEval_UShape is scenario S3 from spec.md §8: the U-shape with S="HHHH"
// has exactly one H-H contact between indices 0 and 3.
func TestEval_UShape(t *testing.T) {
	c := lattice.Conformation{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	require.True(t, lattice.IsSelfAvoiding(c))
	assert.Equal(t, -1, Eval(c, mustHP(t, "HHHH")))
}

// TestEval_TranslationInvariant checks property 9.
func TestEval_TranslationInvariant(t *testing.T) {
	c := lattice.Conformation{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	seq := mustHP(t, "HHHH")
	base := Eval(c, seq)

	shifted := make(lattice.Conformation, len(c))
	for i, p := range c {
		shifted[i] = lattice.Coord{X: p.X + 7, Y: p.Y - 3}
	}
	assert.Equal(t, base, Eval(shifted, seq))
}

func TestEval_ChainBondsNotCounted(t *testing.T) {
	// Chain bonds (adjacent indices) must never be counted as contacts.
	c, err := lattice.InitialLine(3)
	require.NoError(t, err)
	assert.Equal(t, 0, Eval(c, mustHP(t, "HHH")))
}

func TestEval_IgnoresPolar(t *testing.T) {
	c := lattice.Conformation{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	// indices 1,2 are H-H but chain-consecutive: not a topological contact.
	assert.Equal(t, 0, Eval(c, mustHP(t, "PHHP")))
	// indices 0,3 are H-H and lattice-adjacent (U closes the loop), non-consecutive.
	assert.Equal(t, -1, Eval(c, mustHP(t, "HPPH")))
}
