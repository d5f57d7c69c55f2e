// 7 Aug 2026
// Bridge to the TuftsBCB msa readers and writers, so we are not stuck
// with fasta. Fasta itself goes through our own reader, which is
// happy with mapped buffers and keeps comments byte for byte.

package seq

import (
	"fmt"
	"io"
	"strings"

	"github.com/TuftsBCB/io/msa"
	tseq "github.com/TuftsBCB/seq"
)

type (
	msaReader func(io.Reader) (tseq.MSA, error)
	msaWriter func(io.Writer, tseq.MSA) error
	msaIO     struct {
		r msaReader
		w msaWriter
	}
)

var fmtToIO = map[string]msaIO{
	"stockholm": {msa.ReadStockholm, msa.WriteStockholm},
	"a2m":       {msa.Read, msa.WriteA2M},
	"a3m":       {msa.Read, msa.WriteA3M},
}

// KnownFormat says if we can read and write alignments in this format.
func KnownFormat(format string) bool {
	if format == "fasta" {
		return true
	}
	_, ok := fmtToIO[format]
	return ok
}

// ReadMSA reads an alignment in one of the non-fasta formats into a
// seqgrp. Row names become comments, so the rest of the package does
// not care where an alignment came from.
func ReadMSA(rdr io.Reader, format string, seqgrp *SeqGrp) error {
	mio, ok := fmtToIO[format]
	if !ok {
		return fmt.Errorf("unknown alignment format %q", format)
	}
	m, err := mio.r(rdr)
	if err != nil {
		return fmt.Errorf("parsing %s alignment: %w", format, err)
	}
	for _, e := range m.Entries {
		s := make([]byte, len(e.Residues))
		for i, r := range e.Residues {
			s[i] = byte(r)
		}
		seqgrp.seqs = append(seqgrp.seqs, seq{cmmt: e.Name, seq: s})
	}
	if len(seqgrp.seqs) == 0 {
		return errNoSeqs
	}
	for _, ss := range seqgrp.seqs {
		if err := checkSyms(ss.seq, ss.cmmt); err != nil {
			return err
		}
	}
	return nil
}

// WriteMSA writes the group in one of the non-fasta formats.
func WriteMSA(fp io.Writer, format string, seqgrp *SeqGrp) error {
	mio, ok := fmtToIO[format]
	if !ok {
		return fmt.Errorf("unknown alignment format %q", format)
	}
	m := tseq.NewMSA()
	m.SetLen(seqgrp.GetLen())
	for _, ss := range seqgrp.seqs {
		if ss.Empty() {
			continue
		}
		res := make([]tseq.Residue, len(ss.seq))
		for i, c := range ss.seq {
			res[i] = tseq.Residue(c)
		}
		name := strings.TrimPrefix(ss.cmmt, " ")
		m.Entries = append(m.Entries, tseq.Sequence{Name: name, Residues: res})
	}
	return mio.w(fp, m)
}
