// 12 Aug 2026

// Package alncut filters the columns of multiple sequence alignments.
// Each input file holds one alignment. It is read, its sites are
// classified, the unwanted columns are squeezed out and the result is
// written before the next file is touched.
package alncut

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrew-torda/alncut/pkg/seq"
	. "github.com/andrew-torda/alncut/pkg/seq/common"
	"github.com/andrew-torda/alncut/pkg/sites"
	"github.com/edsrzf/mmap-go"
	"github.com/fatih/color"
)

const tool = "alncut"

// CmdFlag is everything the command line can say. It is filled in
// once, before any alignment is read, and only ever passed around by
// pointer.
type CmdFlag struct {
	GapFree bool    // select sites with gaps up to the cutoff
	AllGap  bool    // select sites that are only gaps
	ParsInf bool    // select parsimoniously informative sites
	Negate  bool    // flip every decision
	Verbose bool    // report matched sites
	Freq    float64 // raw frequency argument, count or fraction
	MolType string  // dna, rna, protein or empty for guessing
	Format  string  // fasta, stockholm, a2m or a3m
	OutFile string  // primary output, stdout if empty
	LogFile string  // verbose report target, stderr if empty
}

var molTypes = map[string]seq.SeqType{
	"dna":     seq.DNA,
	"rna":     seq.RNA,
	"protein": seq.Protein,
}

// checkArgs catches everything that should stop us before any file is
// opened.
func checkArgs(flags *CmdFlag) error {
	if err := sites.CheckFreq(flags.Freq); err != nil {
		return err
	}
	if flags.MolType != "" {
		flags.MolType = strings.ToLower(flags.MolType)
		if _, ok := molTypes[flags.MolType]; !ok {
			return fmt.Errorf("moltype must be dna, rna or protein, not %q", flags.MolType)
		}
	}
	if flags.Format == "" {
		flags.Format = "fasta"
	}
	if !seq.KnownFormat(flags.Format) {
		return fmt.Errorf("unknown alignment format %q", flags.Format)
	}
	return nil
}

// typesAgree says whether a guessed sequence type fits what the
// command line claimed. Ntide means we saw a nucleotide but could not
// tell DNA from RNA.
func typesAgree(got, want seq.SeqType) bool {
	if got == want || got == seq.Unknown {
		return true
	}
	if got == seq.Ntide && (want == seq.DNA || want == seq.RNA) {
		return true
	}
	return false
}

// readFasta gets one fasta file into a seqgrp. Named files are mapped
// rather than read; the parser never writes to the buffer, so a
// read-only mapping is fine. Stdin, and anything mmap refuses (an
// empty file, a pipe), goes the boring way.
func readFasta(fname string, seqgrp *seq.SeqGrp) error {
	if fname == "" || fname == "-" {
		return seq.ReadFasta(os.Stdin, seqgrp)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return seq.ReadFasta(fp, seqgrp)
	}
	defer mm.Unmap()
	return seq.ParseFasta(mm, seqgrp)
}

// readAln reads one alignment in whatever format was asked for.
func readAln(fname string, flags *CmdFlag, seqgrp *seq.SeqGrp) error {
	if flags.Format == "fasta" {
		return readFasta(fname, seqgrp)
	}
	var fp io.ReadCloser = os.Stdin
	if fname != "" && fname != "-" {
		var err error
		if fp, err = os.Open(fname); err != nil {
			return err
		}
		defer fp.Close()
	}
	return seq.ReadMSA(fp, flags.Format, seqgrp)
}

// doFile runs the whole read / classify / squash / write pipeline for
// one alignment record. Errors here are fatal for this record only.
func doFile(fname string, flags *CmdFlag, out, logw io.Writer) error {
	seqgrp := new(seq.SeqGrp)
	if err := readAln(fname, flags, seqgrp); err != nil {
		return err
	}

	if flags.MolType != "" {
		want := molTypes[flags.MolType]
		if got := seqgrp.GetType(); !typesAgree(got, want) {
			fmt.Fprintf(os.Stderr, "%s: %s: sequences do not look like %s\n",
				tool, fname, flags.MolType)
		}
		seqgrp.SetType(want)
	}

	if err := seqgrp.CheckLengths(); err != nil {
		return err
	}

	mode := sites.Mode{
		Kind:   sites.PickKind(flags.ParsInf, flags.AllGap, flags.GapFree),
		Cutoff: sites.RelCutoff(flags.Freq, seqgrp.NSeq()),
		Negate: flags.Negate,
	}
	mask := sites.Mask(seqgrp, mode)

	if flags.Verbose {
		if err := sites.Report(logw, tool, mask, mode, flags.Freq); err != nil {
			return err
		}
	}

	sites.Squash(seqgrp, mask)
	if flags.Format == "fasta" {
		return seq.WriteFasta(out, seqgrp)
	}
	return seq.WriteMSA(out, flags.Format, seqgrp)
}

// outstream opens fname for writing, or hands back the fallback when
// no name was given.
func outstream(fname string, fallback *os.File) (io.Writer, func(), error) {
	if fname == "" || fname == "-" {
		return fallback, func() {}, nil
	}
	fp, err := os.Create(fname)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", fname, err)
	}
	return fp, func() { fp.Close() }, nil
}

// Mymain is the top level main, after parsing the command line.
// Configuration trouble stops everything. Trouble with one input file
// is worth a warning and a sad exit status, but the remaining files
// are still processed.
func Mymain(flags *CmdFlag, fnames []string) int {
	warn := color.New(color.FgYellow)
	if err := checkArgs(flags); err != nil {
		fmt.Fprintln(os.Stderr, tool+":", err)
		return ExitUsageError
	}

	out, closeOut, err := outstream(flags.OutFile, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, tool+":", err)
		return ExitFailure
	}
	defer closeOut()
	logw, closeLog, err := outstream(flags.LogFile, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, tool+":", err)
		return ExitFailure
	}
	defer closeLog()

	if len(fnames) == 0 {
		fnames = []string{""} // read from stdin
	}
	ret := ExitSuccess
	for _, fname := range fnames {
		if err := doFile(fname, flags, out, logw); err != nil {
			name := fname
			if name == "" {
				name = "stdin"
			}
			warn.Fprintf(os.Stderr, "%s: %s: %v, skipping\n", tool, name, err)
			ret = ExitFailure
		}
	}
	return ret
}
