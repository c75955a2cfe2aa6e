// Package lattice defines the coordinate arithmetic and self-avoiding-walk
// invariants shared by every component of the HP folding sampler.
//
// A Conformation is an ordered slice of Coord, one per residue. It is valid
// (spec: self-avoiding) when consecutive residues are orthogonal lattice
// neighbors and no two residues share a cell. Every move in package moves
// gates its output through IsSelfAvoiding before returning it.
package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrTooShort indicates a conformation with fewer than 2 residues was requested.
	ErrTooShort = errors.New("lattice: conformation must have at least 2 residues")
)

// Coord is a point on the 2D integer lattice.
type Coord struct {
	X, Y int
}

// Conformation is the ordered sequence of residue coordinates, index i
// corresponding to the i-th residue of the HP sequence.
type Conformation []Coord

// offsets holds the four orthogonal unit steps, in a fixed canonical order
// (East, West, North, South).
var offsets = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Neighbours4 returns the four orthogonal lattice neighbors of p, in the
// fixed canonical order (E, W, N, S).
//
// Complexity: O(1).
func Neighbours4(p Coord) [4]Coord {
	var out [4]Coord
	for i, d := range offsets {
		out[i] = Coord{X: p.X + d.X, Y: p.Y + d.Y}
	}

	return out
}

// Manhattan returns the L1 distance between p and q.
//
// Complexity: O(1).
func Manhattan(p, q Coord) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// IsSelfAvoiding reports whether c satisfies both §3 invariants: all
// coordinates are pairwise distinct, and consecutive residues sit at
// Manhattan distance 1. This is the final gate every move must pass before
// its candidate conformation is returned to a caller.
//
// Complexity: O(n) expected (hash-indexed distinctness check).
func IsSelfAvoiding(c Conformation) bool {
	seen := make(map[Coord]struct{}, len(c))
	for i, p := range c {
		if _, dup := seen[p]; dup {
			return false
		}
		seen[p] = struct{}{}

		if i > 0 && Manhattan(c[i-1], p) != 1 {
			return false
		}
	}

	return true
}

// InitialLine returns the canonical straight-line starting conformation
// C[i] = (i, 0) for i in [0, n). Returns ErrTooShort if n < 2.
//
// Complexity: O(n).
func InitialLine(n int) (Conformation, error) {
	if n < 2 {
		return nil, ErrTooShort
	}

	c := make(Conformation, n)
	for i := range c {
		c[i] = Coord{X: i, Y: 0}
	}

	return c, nil
}

// Clone returns an independent copy of c, so callers may mutate the result
// without aliasing the original conformation.
//
// Complexity: O(n).
func Clone(c Conformation) Conformation {
	out := make(Conformation, len(c))
	copy(out, c)

	return out
}

// Occupancy builds a coordinate -> residue-index map from c. Move
// implementations and the energy evaluator both rely on this shape;
// building it fresh per call keeps each operation pure in (c) for testing,
// per spec.md §9's "occupancy as a side-table" design note.
//
// Complexity: O(n).
func Occupancy(c Conformation) map[Coord]int {
	occ := make(map[Coord]int, len(c))
	for i, p := range c {
		occ[p] = i
	}

	return occ
}
