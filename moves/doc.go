// Package moves implements the local move library that proposes candidate
// conformations for the Metropolis drivers in packages mc and remc.
//
// What: three VSHD moves (end, corner, crankshaft) and one pull move, plus a
// Mode selector (VSHD, Pull, Hybrid) that an Engine uses to decide which
// kind(s) to try on a given step.
//
// Why: a single uniform move generator over-represents easy, low-displacement
// moves and under-explores the conformational space; VSHD+Pull is the
// standard combination for HP-lattice MCMC because pull moves can relocate
// long chain segments in one step while VSHD moves keep local detail balance
// cheap to reason about.
//
// Complexity: every attempt* function is O(n) candidate generation times
// O(n) self-avoidance verification per candidate, so O(n^2) worst case per
// Attempt call; n is the residue count.
package moves
