// 10 Aug 2026

// Package sites decides, column by column, which positions of a
// multiple sequence alignment to keep. Every decision is made from the
// frequency table of one column, so the whole thing runs off the
// per-site tallies that pkg/seq already knows how to build.
package sites

import (
	"fmt"
	"math"

	"github.com/andrew-torda/alncut/pkg/seq"
	. "github.com/andrew-torda/alncut/pkg/seq/common"
)

// Kind says which property of a column we are looking for.
type Kind byte

const (
	Invariant Kind = iota // variation up to the cutoff
	GapFree               // gaps up to the cutoff
	AllGap                // nothing but gaps
	ParsInf               // parsimoniously informative
)

// Mode is the complete description of a classification run. It is
// built once from the command line and never changed, except that the
// cutoff is recomputed for each alignment, since it can depend on the
// number of rows.
type Mode struct {
	Cutoff float64 // relative frequency in [0,1)
	Kind   Kind
	Negate bool
}

// UsesCutoff says whether this kind of classification looks at the
// cutoff at all. All-gap and parsimony questions have yes/no answers.
func (k Kind) UsesCutoff() bool { return k == Invariant || k == GapFree }

// Label is the name used when reporting, as in "matched 12 gap-free
// sites".
func (k Kind) Label() string {
	switch k {
	case Invariant:
		return "invariant"
	case GapFree:
		return "gap-free"
	case AllGap:
		return "all-gap"
	case ParsInf:
		return "parsimoniously informative"
	}
	panic("program bug, no such kind")
}

// PickKind turns the three mode flags into one Kind. The flags do not
// exclude each other on the command line. The strongest one wins.
func PickKind(parsinf, allgap, gapfree bool) Kind {
	switch {
	case parsinf:
		return ParsInf
	case allgap:
		return AllGap
	case gapfree:
		return GapFree
	}
	return Invariant
}

// CheckFreq validates the raw frequency argument before any file is
// touched. Valid is zero (unset), an integer of at least one, or a
// fraction strictly between nought and one.
func CheckFreq(f float64) error {
	const femsg = "frequency must be a positive integer or a fraction between 0 and 1, not %g"
	switch {
	case f == 0:
		return nil
	case f < 0:
		return fmt.Errorf(femsg, f)
	case f < 1:
		return nil
	case f != math.Trunc(f):
		return fmt.Errorf(femsg, f)
	}
	return nil
}

// RelCutoff turns the raw frequency argument into a relative cutoff.
// An integer f means "up to f deviating rows", so it is divided by the
// number of rows. A fraction is used as it stands, and zero stays
// zero. Call it again for every alignment, nseq changes between
// records.
func RelCutoff(f float64, nseq int) float64 {
	if f >= 1 {
		return f / float64(nseq)
	}
	return f
}

// decide is the decision for one column given its frequency table.
// max1 and max2 are the largest and second largest character counts,
// gap is the count of gap characters and n the number of rows. Gaps
// count as characters in max1/max2.
func decide(max1, max2, gap, n int, mode Mode) bool {
	var base bool
	switch mode.Kind {
	case ParsInf: // two states, each in at least two rows
		base = max2 >= 2
	case AllGap:
		base = gap == n
	case GapFree:
		base = float64(gap)/float64(n) <= mode.Cutoff
	case Invariant: // minority states no more frequent than the cutoff
		// n-max1 keeps the numerator an exact integer, so a cutoff of
		// f/n from an absolute count f lands exactly on the boundary.
		// 1 - max1/n can round a single ulp past it.
		base = float64(n-max1)/float64(n) <= mode.Cutoff
	}
	if mode.Negate {
		base = !base
	}
	return base
}

// ClassifyCol decides a single column handed over as a slice of
// characters, one per row. Mask is what you want for whole
// alignments. This is the one-off entry point and the reference for
// what a decision means.
func ClassifyCol(col []byte, mode Mode) bool {
	var tally [seq.MaxSym]int
	for _, c := range col {
		tally[c]++
	}
	var max1, max2 int
	for _, cnt := range tally {
		if cnt > max1 {
			max1, max2 = cnt, max1
		} else if cnt > max2 {
			max2 = cnt
		}
	}
	return decide(max1, max2, tally[GapChar], len(col), mode)
}

// Mask classifies every site of an alignment and returns one bool per
// column, true where the site is selected. It walks the counts matrix
// rather than re-tallying each column. Rows must already have been
// checked for equal lengths.
func Mask(seqgrp *seq.SeqGrp, mode Mode) []bool {
	counts := seqgrp.Counts()
	gaprow := seqgrp.GapRow()
	nseq := seqgrp.NSeq()
	ncol := seqgrp.GetLen()

	mask := make([]bool, ncol)
	for j := 0; j < ncol; j++ {
		var max1, max2, gap int
		for i := range counts.Mat {
			cnt := int(counts.Mat[i][j] + 0.5) // counts are whole numbers
			if i == gaprow {
				gap = cnt
			}
			if cnt > max1 {
				max1, max2 = cnt, max1
			} else if cnt > max2 {
				max2 = cnt
			}
		}
		mask[j] = decide(max1, max2, gap, nseq, mode)
	}
	return mask
}

// Squash removes the columns where mask is false, in place. Row order,
// names and comments are untouched, only columns go. The alignment is
// written out straight afterwards, so clobbering the old byte slices
// does not hurt.
func Squash(seqgrp *seq.SeqGrp, mask []bool) {
	seqslc := seqgrp.SeqSlc()
	for i, ss := range seqslc {
		b := ss.GetSeq()[:0]
		for j, c := range ss.GetSeq() {
			if mask[j] {
				b = append(b, c)
			}
		}
		seqslc[i].SetSeq(b)
	}
}
