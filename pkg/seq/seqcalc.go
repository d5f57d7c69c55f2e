// 6 Apr 2020
// seqcalc does simple, common calculations on a set of sequences.
// The functions have to live in this package, since they
// need access to the internals of a sequence.

package seq

import (
	"math"

	. "github.com/andrew-torda/alncut/pkg/seq/common"
	"github.com/andrew-torda/matrix"
)

const (
	badMap = math.MaxUint8 // marks a symbol as not seen
)

// SetSymUsed fills out the bool slice which says whether or not a
// symbol was used.
func (seqgrp *SeqGrp) SetSymUsed() {
	for _, ss := range seqgrp.seqs {
		for _, c := range ss.GetSeq() {
			seqgrp.symUsed[c] = true
		}
	}
	seqgrp.usedKnwn = true
}

// GetType looks at a set of sequences and returns its best guess
// as to the type of file.
func (seqgrp *SeqGrp) GetType() SeqType {
	if seqgrp.stype != Unchecked { // If the sequence type has been
		return seqgrp.stype //        set, just return it.
	}

	if seqgrp.usedKnwn != true {
		seqgrp.SetSymUsed()
	}
	protType := []byte{
		'D', 'E', 'F', 'H', 'I', 'K', 'L', 'M',
		'N', 'P', 'Q', 'R', 'S', 'V', 'W', 'Y'}

	used := seqgrp.symUsed
	for _, c := range protType { // If we see an amino acid code,
		if used[c] { //             just return protein type.
			return Protein
		}
	}

	if used['T'] && used['U'] {
		return Ntide
	}
	// If we have ACG, but neither T or U, it is a nucleotide
	// but we cannot tell if it is RNA or DNA
	if used['A'] && used['C'] && used['G'] && !used['T'] && !used['U'] {
		return Ntide
	}
	if used['T'] {
		return DNA
	}
	if used['U'] {
		return RNA
	}

	return Unknown
}

// mapsyms looks at the symbols (characters, bases, residues) used in a
// seqgrp. It then makes a little array for mapping.
func (seqgrp *SeqGrp) mapsyms() {
	if seqgrp.usedKnwn != true {
		seqgrp.SetSymUsed()
	}
	for i := range seqgrp.mapping { // Initialise with bad value, to
		seqgrp.mapping[i] = badMap //   trap errors later
	}

	var n uint8
	for i := range seqgrp.symUsed {
		if seqgrp.symUsed[i] {
			seqgrp.mapping[i] = n
			if n >= badMap {
				panic("program bug")
			}
			seqgrp.revmap = append(seqgrp.revmap, uint8(i))
			n++
		}
	}
}

// UsageSite counts how many of each symbol/character appear at
// each site in the alignment.
// counts.Mat looks like [number_of_types][length_of_seq], so one
// matrix column is the frequency table of one alignment column.
// We store it as float32. The counts are whole numbers, so they are
// exact, and the site classifier reads whole matrix columns anyway.
func (seqgrp *SeqGrp) UsageSite() {
	if len(seqgrp.revmap) == 0 {
		seqgrp.mapsyms()
	}
	nrow := len(seqgrp.revmap)
	ncol := len(seqgrp.seqs[0].GetSeq())
	seqgrp.counts = matrix.NewFMatrix2d(nrow, ncol)
	for _, ss := range seqgrp.seqs {
		for i, c := range ss.GetSeq() {
			cmap := seqgrp.mapping[c]
			seqgrp.counts.Mat[cmap][i] += 1
		}
	}
}

// Counts gives us the per-site tallies, doing the counting on the
// first call.
func (seqgrp *SeqGrp) Counts() *matrix.FMatrix2d {
	if seqgrp.counts == nil {
		seqgrp.UsageSite()
	}
	return seqgrp.counts
}

// GapRow returns the row of the counts matrix which holds the gap
// character, or -1 if there are no gaps at all.
func (seqgrp *SeqGrp) GapRow() int {
	if len(seqgrp.revmap) == 0 {
		seqgrp.mapsyms()
	}
	if !seqgrp.symUsed[GapChar] {
		return -1
	}
	return int(seqgrp.mapping[GapChar])
}

// Site extracts one column of the alignment, the characters at
// position icol in every row. The caller can pass a buffer to avoid
// allocating on every site.
func (seqgrp *SeqGrp) Site(icol int, buf []byte) []byte {
	buf = buf[:0]
	for _, ss := range seqgrp.seqs {
		buf = append(buf, ss.seq[icol])
	}
	return buf
}
