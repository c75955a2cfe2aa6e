// Package energy evaluates the HP-model score of a conformation: the
// negative count of hydrophobic-hydrophobic contacts between lattice
// neighbors that are not chain-consecutive.
package energy

import (
	"github.com/katalvlaran/hpfold/hpseq"
	"github.com/katalvlaran/hpfold/lattice"
)

// Eval computes E(c, seq) = -|{(i,j) : i<j, j>i+1, seq[i]=seq[j]=H,
// manhattan(c[i],c[j])=1}|, per spec.md §4.2. Builds an occupancy map from c
// once, then inspects the four lattice neighbors of every H residue; a
// neighbor occupied by a later H residue with index j (j != i+1, i.e. not a
// chain bond) contributes one contact. The j > i guard in the underlying
// occupancy lookup prevents double counting each contact from both ends.
//
// Eval is a pure function of (c, seq): it does not mutate or retain either
// argument, and is safe to call from table-driven and property-based tests.
//
// Complexity: O(n) expected, via hash-indexed occupancy.
func Eval(c lattice.Conformation, seq hpseq.Sequence) int {
	occ := lattice.Occupancy(c)

	e := 0
	for i, p := range c {
		if seq.Residues[i] != hpseq.H {
			continue
		}
		for _, nb := range lattice.Neighbours4(p) {
			j, ok := occ[nb]
			if !ok {
				continue
			}
			if seq.Residues[j] != hpseq.H {
				continue
			}
			if j == i+1 || j == i-1 {
				continue // chain bond, not a topological contact
			}
			if j > i {
				e--
			}
		}
	}

	return e
}
