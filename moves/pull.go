package moves

import "github.com/katalvlaran/hpfold/lattice"

// attemptPull implements the Lesh-Mitzenmacher-Whitesides 2D pull move
// (spec.md §4.3). Pivots i in [1, n-2] are tried in random order; for each,
// both 90° rotations of the bond (i, i+1) are tried in random order.
//
// Propagation, when required, always runs to full completion (j = i-2
// down to 0) before the final self-avoidance gate — the strictly safer
// resolution of spec.md §9's Open Question on the early-exit heuristic.
func (e *Engine) attemptPull(c lattice.Conformation) (lattice.Conformation, bool) {
	n := len(c)
	if n < 3 {
		return nil, false
	}
	occ0 := lattice.Occupancy(c)

	pivotOrder := shuffleOrder(n-2, e.rng)
	for _, oi := range pivotOrder {
		i := oi + 1
		pi, pip1 := c[i], c[i+1]
		dx, dy := pip1.X-pi.X, pip1.Y-pi.Y

		shifts := [2]lattice.Coord{{X: dy, Y: -dx}, {X: -dy, Y: dx}}
		shiftOrder := shuffleOrder(2, e.rng)

		for _, si := range shiftOrder {
			s := shifts[si]
			l := lattice.Coord{X: pip1.X + s.X, Y: pip1.Y + s.Y}
			ccell := lattice.Coord{X: pi.X + s.X, Y: pi.Y + s.Y}

			if owner, taken := occ0[l]; taken && owner != i {
				continue
			}

			if ccell == c[i-1] {
				newc := lattice.Clone(c)
				newc[i] = l
				if lattice.IsSelfAvoiding(newc) {
					return newc, true
				}
				continue
			}

			if _, taken := occ0[ccell]; taken {
				continue
			}

			if newc, ok := e.propagatePull(c, i, l, ccell); ok {
				return newc, true
			}
		}
	}

	return nil, false
}

// propagatePull applies i -> l, i-1 -> ccell, then shifts residues
// i-2, i-3, ..., 0 each into the position its successor-by-two vacated,
// aborting if any target cell is held by a residue not being displaced.
func (e *Engine) propagatePull(c lattice.Conformation, i int, l, ccell lattice.Coord) (lattice.Conformation, bool) {
	occ := make(map[lattice.Coord]bool, len(c))
	for _, p := range c {
		occ[p] = true
	}

	newc := lattice.Clone(c)
	newc[i] = l
	occ[l] = true
	delete(occ, c[i])

	newc[i-1] = ccell
	occ[ccell] = true
	delete(occ, c[i-1])

	if i-2 < 0 || lattice.Manhattan(newc[i-2], newc[i-1]) == 1 {
		if lattice.IsSelfAvoiding(newc) {
			return newc, true
		}

		return nil, false
	}

	for j := i - 2; j >= 0; j-- {
		target := c[j+2]
		if occ[target] && target != newc[j] {
			return nil, false
		}
		delete(occ, newc[j])
		occ[target] = true
		newc[j] = target
	}

	if lattice.IsSelfAvoiding(newc) {
		return newc, true
	}

	return nil, false
}
