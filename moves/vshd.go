package moves

import "github.com/katalvlaran/hpfold/lattice"

// vshdKind enumerates the three VSHD move kinds tried, in a shuffled order,
// by a single attemptVSHD call.
type vshdKind int

const (
	kindEnd vshdKind = iota
	kindCorner
	kindCrankshaft
)

// attemptVSHD tries {end, corner, crankshaft} in a uniformly random order,
// returning the first successful proposal. Per spec.md §4.3.
func (e *Engine) attemptVSHD(c lattice.Conformation) (lattice.Conformation, bool) {
	kinds := [3]vshdKind{kindEnd, kindCorner, kindCrankshaft}
	order := shuffleOrder(3, e.rng)

	for _, oi := range order {
		var (
			out lattice.Conformation
			ok  bool
		)
		switch kinds[oi] {
		case kindEnd:
			out, ok = e.attemptEnd(c)
		case kindCorner:
			out, ok = e.attemptCorner(c)
		case kindCrankshaft:
			out, ok = e.attemptCrankshaft(c)
		}
		if ok {
			return out, true
		}
	}

	return nil, false
}

// attemptEnd tries relocating one of the two chain ends to a free lattice
// neighbor of its anchor (its sole chain neighbor). Both ends, and all
// candidate cells within an end, are tried in random order.
func (e *Engine) attemptEnd(c lattice.Conformation) (lattice.Conformation, bool) {
	n := len(c)
	occ := lattice.Occupancy(c)

	ends := [2]int{0, n - 1}
	endOrder := shuffleOrder(2, e.rng)

	for _, oi := range endOrder {
		endIdx := ends[oi]
		var anchorIdx int
		if endIdx == 0 {
			anchorIdx = 1
		} else {
			anchorIdx = n - 2
		}
		anchor := c[anchorIdx]
		cur := c[endIdx]

		candidates := make([]lattice.Coord, 0, 4)
		for _, nb := range lattice.Neighbours4(anchor) {
			if nb == cur {
				continue // no-op move
			}
			if owner, taken := occ[nb]; taken && owner != endIdx {
				continue // occupied by some other residue
			}
			candidates = append(candidates, nb)
		}

		candOrder := shuffleOrder(len(candidates), e.rng)
		for _, ci := range candOrder {
			newc := lattice.Clone(c)
			newc[endIdx] = candidates[ci]
			if lattice.IsSelfAvoiding(newc) {
				return newc, true
			}
		}
	}

	return nil, false
}

// attemptCorner tries relocating one interior residue i to the lattice cell
// diagonally opposite it across its two chain neighbors (their common
// neighbor other than c[i] itself), flipping a 90° corner to the other
// side; a residue in a straight segment has no such cell. Since c[i-1] and
// c[i+1] are both chain-adjacent to c[i] in a self-avoiding conformation,
// manhattan(c[i-1], c[i+1]) == 2 always holds; the explicit check below is
// defensive, matching spec.md §4.3's stated precondition.
func (e *Engine) attemptCorner(c lattice.Conformation) (lattice.Conformation, bool) {
	n := len(c)
	if n < 3 {
		return nil, false
	}
	occ := lattice.Occupancy(c)

	order := shuffleOrder(n-2, e.rng)
	for _, oi := range order {
		i := oi + 1
		im1, ip1, cur := c[i-1], c[i+1], c[i]
		if lattice.Manhattan(im1, ip1) != 2 {
			continue
		}

		v1 := lattice.Neighbours4(im1)
		v2set := lattice.Neighbours4(ip1)

		candidates := make([]lattice.Coord, 0, 2)
		for _, a := range v1 {
			for _, b := range v2set {
				if a != b {
					continue
				}
				if a == im1 || a == ip1 || a == cur {
					continue
				}
				if owner, taken := occ[a]; taken && owner != i {
					continue
				}
				candidates = append(candidates, a)
			}
		}

		candOrder := shuffleOrder(len(candidates), e.rng)
		for _, ci := range candOrder {
			newc := lattice.Clone(c)
			newc[i] = candidates[ci]
			if lattice.IsSelfAvoiding(newc) {
				return newc, true
			}
		}
	}

	return nil, false
}

// attemptCrankshaft looks for a "U" of four consecutive residues c[k..k+3]
// whose two ends c[k], c[k+3] are lattice-adjacent (the only geometry a
// 3-bond path can close to: the Manhattan distance between residues 3 bonds
// apart is always odd, so it is always 1 here, never a diagonal 2) and
// rotates the two middle residues 180° about the c[k]-c[k+3] axis to the
// opposite side.
func (e *Engine) attemptCrankshaft(c lattice.Conformation) (lattice.Conformation, bool) {
	n := len(c)
	if n < 4 {
		return nil, false
	}
	occ := lattice.Occupancy(c)

	order := shuffleOrder(n-3, e.rng)
	for _, k := range order {
		p0, p1, p2, p3 := c[k], c[k+1], c[k+2], c[k+3]
		if lattice.Manhattan(p0, p1) != 1 || lattice.Manhattan(p1, p2) != 1 || lattice.Manhattan(p2, p3) != 1 {
			continue
		}
		if lattice.Manhattan(p0, p3) != 1 {
			continue
		}

		dx := p3.X - p0.X
		dy := p3.Y - p0.Y

		var cand1, cand2 lattice.Coord
		switch {
		case dx == 0:
			// p0-p3 bond is vertical: mirror the middle residues' x across p0.X.
			cand1 = lattice.Coord{X: 2*p0.X - p1.X, Y: p1.Y}
			cand2 = lattice.Coord{X: 2*p0.X - p2.X, Y: p2.Y}
		case dy == 0:
			// p0-p3 bond is horizontal: mirror the middle residues' y across p0.Y.
			cand1 = lattice.Coord{X: p1.X, Y: 2*p0.Y - p1.Y}
			cand2 = lattice.Coord{X: p2.X, Y: 2*p0.Y - p2.Y}
		default:
			continue // unreachable given manhattan(p0,p3)==1
		}

		targets := [2]lattice.Coord{cand1, cand2}
		ok := true
		for _, t := range targets {
			owner, taken := occ[t]
			if taken && owner != k+1 && owner != k+2 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		newc := lattice.Clone(c)
		newc[k+1] = targets[0]
		newc[k+2] = targets[1]
		if lattice.IsSelfAvoiding(newc) {
			return newc, true
		}
	}

	return nil, false
}
