// 5 Aug 2026

package seq

import (
	"fmt"
	"io"
)

const cPerLine = 60

// cmmtOut is the comment as it should appear on output. Comments are
// stored exactly as read, and people often write "> name". On output
// there must be nothing between the ">" and the identifier, so we take
// away exactly one leading blank if there is one. Two blanks means
// somebody really wanted a blank, which is their problem.
func cmmtOut(cmmt string) string {
	if len(cmmt) > 0 && cmmt[0] == ' ' {
		return cmmt[1:]
	}
	return cmmt
}

// WriteFasta writes the group to fp in fasta format, 60 characters to
// a line. Sequences that have been cleared are skipped.
func WriteFasta(fp io.Writer, seqgrp *SeqGrp) error {
	for _, ss := range seqgrp.seqs {
		if ss.Empty() {
			continue
		}
		if _, err := fmt.Fprintf(fp, "%c%s\n", cmmtChar, cmmtOut(ss.cmmt)); err != nil {
			return fmt.Errorf("writing sequences: %w", err)
		}
		s := ss.GetSeq()
		for ; len(s) > cPerLine; s = s[cPerLine:] {
			fmt.Fprint(fp, string(s[:cPerLine]), "\n")
		}
		fmt.Fprint(fp, string(s), "\n")
	}
	return nil
}
