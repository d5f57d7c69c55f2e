// 20 Dec 2017

// Package seq provides functions for sequences, which usually begin
// their lives in fasta format. Here they are always part of a multiple
// sequence alignment, so the interesting operations are the ones that
// look down columns, not along rows.
package seq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrew-torda/matrix"
)

// seq is one row of an alignment. The comment is stored exactly as it
// appeared in the file, including any space after the ">".
type seq struct {
	cmmt string
	seq  []byte
}

// A marker to say what type of sequence we have, protein, DNA, ...
type SeqType byte

const (
	Unchecked SeqType = iota // Has not been looked at yet
	Unknown                  // Really unknown, not a protein or nucleotide
	Protein                  //
	DNA                      //
	RNA                      //
	Ntide                    // Nucleotide, but could be DNA or RNA
)

// We only read ascii characters, so anything bigger than this is not
// valid in a sequence.
const (
	MaxSym uint8 = 127
)

const cmmtChar byte = '>' // introduces comments in fasta format

// ErrLengthMismatch says the rows of one alignment do not all have the
// same length. Callers decide whether to stop or move to the next file.
var ErrLengthMismatch = errors.New("sequence lengths differ within alignment")

// SeqGrp is a group of sequences, with some additional information
// such as what type (protein, nucleotide) and the number of symbols
// that have been used.
type SeqGrp struct {
	symUsed  [MaxSym]bool  // which symbols are actually used
	mapping  [MaxSym]uint8 // mapping['C'] tells me the index used for C
	revmap   []uint8       // revmap[2] tells me the character in place 2
	seqs     []seq
	counts   *matrix.FMatrix2d
	stype    SeqType
	usedKnwn bool // Do we know which symbols are used ?
}

// GetSeq returns the sequence as the original byte slice
func (s seq) GetSeq() []byte { return s.seq }

// Cmmt returns the comment, without the leading ">"
func (s seq) Cmmt() string { return s.cmmt }

// Len
func (s seq) Len() int { return len(s.seq) }

// SetSeq will replace whatever was the sequence with a new one
func (s *seq) SetSeq(t []byte) { s.seq = t }

// Clear gets rid of the contents of a sequence. If you want to delete
// a sequence, but it is part of an array, you can just clear its
// contents. The writer skips cleared sequences.
func (s *seq) Clear() {
	s.cmmt = ""
	s.seq = nil
}

// Empty returns true if a sequence has been cleared.
func (s seq) Empty() bool { return len(s.seq) == 0 }

// String returns a sequence, with its comment at the start, as a
// single string
func (s seq) String() (t string) {
	if len(s.cmmt) > 0 {
		t = fmt.Sprintf("%c%s\n", cmmtChar, s.cmmt)
	} else {
		t = ">\n"
	}
	t += string(s.GetSeq())
	return
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// NSeq returns the number of sequences (rows)
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// GetLen returns the length of the first sequence. Since we hold an
// alignment, this should be the length of every sequence. Call
// CheckLengths first if you are not sure.
func (seqgrp *SeqGrp) GetLen() int { return len(seqgrp.seqs[0].GetSeq()) }

// SeqSlc returns the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []seq { return seqgrp.seqs }

// SetType overrides whatever we might have guessed about the kind of
// sequences. The command line can force dna/rna/protein.
func (seqgrp *SeqGrp) SetType(st SeqType) { seqgrp.stype = st }

// CheckLengths makes sure every row has the same length as the first.
// The reader does not enforce this, since unaligned input is only
// found out here. The error wraps ErrLengthMismatch.
func (seqgrp *SeqGrp) CheckLengths() error {
	iwant := seqgrp.seqs[0].Len()
	for i := 1; i < len(seqgrp.seqs); i++ {
		if ilen := seqgrp.seqs[i].Len(); ilen != iwant {
			return fmt.Errorf("%w: first row %d sites, row %d (%s) %d sites",
				ErrLengthMismatch, iwant, i,
				trimStr(strings.TrimLeft(seqgrp.seqs[i].Cmmt(), " "), 40), ilen)
		}
	}
	return nil
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "s1", "s2", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	var base string
	seqgrp := new(SeqGrp)
	if prefix == nil {
		base = "s"
	} else {
		base = prefix[0]
	}
	for i, s := range sIn {
		f := seq{cmmt: fmt.Sprint(base, i+1), seq: []byte(s)}
		seqgrp.seqs = append(seqgrp.seqs, f)
	}
	return seqgrp
}
