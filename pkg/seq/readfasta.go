// Reader for fasta format files.
// An earlier version read in small pieces and fed a little state
// machine through a channel. Now that input files arrive via mmap we
// have the whole buffer anyway, so we walk it line by line and only
// allocate for the cleaned-up sequences.

package seq

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andrew-torda/alncut/pkg/white"
)

const NL = '\n'

var errNoSeqs = errors.New("no sequences found")

// nextLine peels one line off buf. The returned line has no trailing
// newline or carriage return.
func nextLine(buf []byte) (line, rest []byte) {
	if n := bytes.IndexByte(buf, NL); n >= 0 {
		line, rest = buf[:n], buf[n+1:]
	} else {
		line, rest = buf, nil
	}
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	return
}

// checkSyms makes sure a sequence only uses bytes we can later put in
// our tally tables. Anything from 127 up is junk, not biology.
func checkSyms(s []byte, cmmt string) error {
	const symerr = "bad symbol %q at position %d in sequence starting \"%s\""
	for i, c := range s {
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(cmmt, 40))
		}
	}
	return nil
}

// ParseFasta parses a whole buffer of fasta text. The buffer is not
// written to, so it can sit in a read-only mapping. Comments keep
// their leading white space, though trailing blanks are dropped.
// White space within sequences is thrown away.
func ParseFasta(buf []byte, seqgrp *SeqGrp) error {
	ndx := -1 // index of the sequence we are collecting
	for nline := 1; len(buf) > 0; nline++ {
		var line []byte
		line, buf = nextLine(buf)
		if len(line) == 0 {
			continue
		}
		if line[0] == cmmtChar {
			s := seq{cmmt: string(bytes.TrimRight(line[1:], " \t"))}
			seqgrp.seqs = append(seqgrp.seqs, s)
			ndx++
			continue
		}
		if ndx < 0 {
			return fmt.Errorf("line %d: sequence data before first \"%c\" line", nline, cmmtChar)
		}
		seqgrp.seqs[ndx].seq = white.Append(seqgrp.seqs[ndx].seq, line)
	}

	if len(seqgrp.seqs) == 0 {
		return errNoSeqs
	}
	for _, ss := range seqgrp.seqs {
		if ss.Empty() {
			return fmt.Errorf("zero length sequence after \"%s\"", trimStr(ss.cmmt, 40))
		}
		if err := checkSyms(ss.seq, ss.cmmt); err != nil {
			return err
		}
	}
	return nil
}

// ReadFasta reads fasta formatted text from rdr. It slurps the lot and
// hands it to ParseFasta.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp) error {
	buf, err := io.ReadAll(rdr)
	if err != nil {
		return err
	}
	return ParseFasta(buf, seqgrp)
}
