package hpseq

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FromHP validates a raw HP string (already {H,P}) and wraps it as a
// Sequence with no amino-acid source. Returns ErrSequenceTooShort if the
// trimmed, upper-cased string has fewer than 2 residues, or
// ErrInvalidAminoAcid if any character is not H or P.
//
// Complexity: O(n).
func FromHP(raw string) (Sequence, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) < 2 {
		return Sequence{}, ErrSequenceTooShort
	}

	residues := make([]Residue, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'H':
			residues[i] = H
		case 'P':
			residues[i] = P
		default:
			return Sequence{}, fmt.Errorf("%w: %q at position %d", ErrInvalidAminoAcid, s[i], i+1)
		}
	}

	return Sequence{Residues: residues}, nil
}

// isHPString reports whether s (already upper-cased, whitespace-stripped)
// consists solely of H/P characters and is non-empty — the same check
// original_source/hp.py uses to refuse HP-looking input in ConvertAAToHP.
func isHPString(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != 'H' && s[i] != 'P' {
			return false
		}
	}

	return true
}

// ConvertAAToHP converts an amino-acid sequence to its HP abstraction using
// the strict table H = {V,I,F,L,M,C,W}, P = {D,E,K,R,H,Y,S,T,N,Q,G,A,P}.
// Refuses any letter outside that table, and refuses HP-looking input
// outright (ErrRawHPInput), mirroring original_source/hp.py:convert_aa_to_hp.
//
// Complexity: O(n).
func ConvertAAToHP(aaSeq string) (Sequence, error) {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(aaSeq), " ", ""))
	if isHPString(s) {
		return Sequence{}, ErrRawHPInput
	}

	residues := make([]Residue, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case hydrophobic[ch]:
			residues[i] = H
		case polar[ch]:
			residues[i] = P
		default:
			return Sequence{}, fmt.Errorf("%w: %q at position %d", ErrInvalidAminoAcid, string(ch), i+1)
		}
	}

	if len(residues) < 2 {
		return Sequence{}, ErrSequenceTooShort
	}

	return Sequence{Residues: residues, AASource: s}, nil
}

// parseFASTA reads minimal single- or multi-record FASTA from f, concatenating
// all records' sequence lines in file order (matching original_source/hp.py's
// "".join(str(rec.seq) for rec in records) behavior for the common
// single-record case).
func parseFASTA(f *os.File) (string, error) {
	var b strings.Builder
	seen := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			seen = true
			continue
		}
		b.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("hpseq: reading FASTA: %w", err)
	}
	if !seen || b.Len() == 0 {
		return "", ErrEmptyFASTA
	}

	return b.String(), nil
}

// Parse accepts either a path to a FASTA file or a raw amino-acid sequence,
// converts it to HP via the strict table, and returns the validated
// Sequence. Mirrors original_source/hp.py:parse_input.
//
// Complexity: O(n) in input size.
func Parse(input string) (Sequence, error) {
	if f, err := os.Open(input); err == nil {
		defer f.Close()

		aaSeq, ferr := parseFASTA(f)
		if ferr != nil {
			return Sequence{}, ferr
		}

		return ConvertAAToHP(aaSeq)
	}

	return ConvertAAToHP(input)
}
