// Package hpseq converts amino-acid sequences into the HP (hydrophobic /
// polar) alphabet the folding core consumes, and validates raw HP strings.
//
// This package sits outside the sampling core (spec.md §1: "FASTA parsing
// and the strict 20-letter AA→HP mapping" are listed as out-of-scope
// external collaborators); it exists so the repository has a complete,
// runnable front end, the way lvlath ships builder/ alongside its bare
// core/ graph engine.
package hpseq

import "errors"

// Sentinel errors for sequence parsing.
var (
	// ErrSequenceTooShort indicates fewer than 2 residues after conversion.
	ErrSequenceTooShort = errors.New("hpseq: sequence must have at least 2 residues")

	// ErrInvalidAminoAcid indicates a letter outside the strict 20-letter table.
	ErrInvalidAminoAcid = errors.New("hpseq: invalid amino-acid letter")

	// ErrRawHPInput indicates HP-looking input was supplied where an amino-acid
	// sequence was expected; the strict table refuses to guess.
	ErrRawHPInput = errors.New("hpseq: raw HP sequence supplied where an amino-acid sequence was expected")

	// ErrEmptyFASTA indicates a FASTA file contained no sequence records.
	ErrEmptyFASTA = errors.New("hpseq: no sequence records found in FASTA input")
)

// Residue is one letter of the HP alphabet.
type Residue byte

const (
	// H marks a hydrophobic residue.
	H Residue = 'H'
	// P marks a polar residue.
	P Residue = 'P'
)

// Sequence is a validated HP sequence together with the amino-acid source
// string it was derived from (empty if the caller supplied HP directly).
type Sequence struct {
	// Residues is the validated H/P alphabet, length == len(AASource) when
	// AASource is non-empty.
	Residues []Residue
	// AASource is the original amino-acid string, retained for diagnostics.
	AASource string
}

// Len returns the number of residues.
func (s Sequence) Len() int { return len(s.Residues) }

// String renders the sequence as its HP letters, e.g. "HPHPHH".
func (s Sequence) String() string {
	b := make([]byte, len(s.Residues))
	for i, r := range s.Residues {
		b[i] = byte(r)
	}

	return string(b)
}

// hydrophobic is the strict table H = {V,I,F,L,M,C,W}.
var hydrophobic = map[byte]bool{'V': true, 'I': true, 'F': true, 'L': true, 'M': true, 'C': true, 'W': true}

// polar is the strict table P = {D,E,K,R,H,Y,S,T,N,Q,G,A,P}.
var polar = map[byte]bool{'D': true, 'E': true, 'K': true, 'R': true, 'H': true, 'Y': true, 'S': true, 'T': true, 'N': true, 'Q': true, 'G': true, 'A': true, 'P': true}
