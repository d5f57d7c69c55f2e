// 14 Aug 2026

package alncut_test

import (
	"os"
	"testing"

	. "github.com/andrew-torda/alncut/pkg/alncut"
	"github.com/andrew-torda/alncut/pkg/seq/common"
)

// One alignment, four rows. Sites 0, 1, 3 and 5 are invariant, site 2
// and 4 carry gaps, site 4 is the only parsimoniously informative one.
var alnString = `>s1
ACCA-T
> s2
AC-AAT
>s3
ACCAAT
>s4
ACGA-T`

// run sends output and the verbose report to temp files, runs Mymain
// and hands back what arrived.
func run(t *testing.T, flags *CmdFlag, fnames ...string) (out, lg string, ret int) {
	t.Helper()
	mkTemp := func() string {
		fp, err := os.CreateTemp("", "_del_me_testing")
		if err != nil {
			t.Fatal("cannot make temp file", err)
		}
		fp.Close()
		return fp.Name()
	}
	flags.OutFile = mkTemp()
	flags.LogFile = mkTemp()
	defer os.Remove(flags.OutFile)
	defer os.Remove(flags.LogFile)

	ret = Mymain(flags, fnames)
	outB, err := os.ReadFile(flags.OutFile)
	if err != nil {
		t.Fatal("reading output file", err)
	}
	logB, err := os.ReadFile(flags.LogFile)
	if err != nil {
		t.Fatal("reading log file", err)
	}
	return string(outB), string(logB), ret
}

// quietly redirects stderr while we provoke warnings
func quietly(t *testing.T, f func()) {
	t.Helper()
	old := os.Stderr
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal("fail opening", os.DevNull)
	}
	os.Stderr = devnull
	f()
	os.Stderr = old
	devnull.Close()
}

func wrtAln(t *testing.T, s string) string {
	t.Helper()
	fname, err := common.WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestInvariantDefault(t *testing.T) {
	fname := wrtAln(t, alnString)
	defer os.Remove(fname)
	out, _, ret := run(t, &CmdFlag{}, fname)
	if ret != common.ExitSuccess {
		t.Fatal("broke running alncut main")
	}
	want := ">s1\nACAT\n>s2\nACAT\n>s3\nACAT\n>s4\nACAT\n"
	if out != want {
		t.Fatalf("got %q wanted %q", out, want)
	}
}

// TestFreqEquivalence checks that a count of 2 out of 4 rows behaves
// exactly like the fraction 0.5, and that a loose cutoff keeps every
// site of the test alignment.
func TestFreqEquivalence(t *testing.T) {
	fname := wrtAln(t, alnString)
	defer os.Remove(fname)
	outCount, _, ret := run(t, &CmdFlag{Freq: 2}, fname)
	if ret != common.ExitSuccess {
		t.Fatal("broke running alncut main")
	}
	outFrac, _, ret := run(t, &CmdFlag{Freq: 0.5}, fname)
	if ret != common.ExitSuccess {
		t.Fatal("broke running alncut main")
	}
	if outCount != outFrac {
		t.Fatalf("count cutoff gave %q, fraction gave %q", outCount, outFrac)
	}
	want := ">s1\nACCA-T\n>s2\nAC-AAT\n>s3\nACCAAT\n>s4\nACGA-T\n"
	if outCount != want {
		t.Fatalf("got %q wanted %q", outCount, want)
	}
}

func TestGapFreeNegate(t *testing.T) {
	fname := wrtAln(t, alnString)
	defer os.Remove(fname)
	out, _, ret := run(t, &CmdFlag{GapFree: true, Negate: true}, fname)
	if ret != common.ExitSuccess {
		t.Fatal("broke running alncut main")
	}
	want := ">s1\nC-\n>s2\n-A\n>s3\nCA\n>s4\nG-\n"
	if out != want {
		t.Fatalf("got %q wanted %q", out, want)
	}
}

func TestAllGapColumns(t *testing.T) {
	fname := wrtAln(t, ">a\nA-C\n>b\nG-T")
	defer os.Remove(fname)
	out, _, ret := run(t, &CmdFlag{AllGap: true}, fname)
	if ret != common.ExitSuccess {
		t.Fatal("broke running alncut main")
	}
	if want := ">a\n-\n>b\n-\n"; out != want {
		t.Fatalf("got %q wanted %q", out, want)
	}
	out, _, ret = run(t, &CmdFlag{AllGap: true, Negate: true}, fname)
	if ret != common.ExitSuccess {
		t.Fatal("broke running alncut main")
	}
	if want := ">a\nAC\n>b\nGT\n"; out != want {
		t.Fatalf("got %q wanted %q", out, want)
	}
}

// TestNothingSelected pins what happens when no site at all matches:
// every row squashes to nothing and the writer suppresses empty rows,
// so the record disappears from the output. The verbose report still
// says what happened.
func TestNothingSelected(t *testing.T) {
	fname := wrtAln(t, ">a\nACGT\n>b\nAGGT") // no all-gap column
	defer os.Remove(fname)
	out, lg, ret := run(t, &CmdFlag{AllGap: true, Verbose: true}, fname)
	if ret != common.ExitSuccess {
		t.Fatal("broke running alncut main")
	}
	if out != "" {
		t.Fatalf("expected no output for an empty selection, got %q", out)
	}
	want := "# alncut matched 0 all-gap sites.\n" +
		"# Matching indices (zero-based):\n\n"
	if lg != want {
		t.Fatalf("got %q wanted %q", lg, want)
	}
}

func TestVerboseReport(t *testing.T) {
	fname := wrtAln(t, alnString)
	defer os.Remove(fname)
	_, lg, ret := run(t, &CmdFlag{ParsInf: true, Verbose: true}, fname)
	if ret != common.ExitSuccess {
		t.Fatal("broke running alncut main")
	}
	want := "# alncut matched 1 parsimoniously informative sites.\n" +
		"# Matching indices (zero-based):\n4\n"
	if lg != want {
		t.Fatalf("got %q wanted %q", lg, want)
	}

	_, lg, ret = run(t, &CmdFlag{GapFree: true, Verbose: true, Freq: 1}, fname)
	if ret != common.ExitSuccess {
		t.Fatal("broke running alncut main")
	}
	want = "# alncut matched 5 gap-free sites.\n" +
		"# A relative frequency cutoff of 0.2500 gaps or variants was allowed.\n" +
		"# Matching indices (zero-based):\n0,1,2,3,5\n"
	if lg != want {
		t.Fatalf("got %q wanted %q", lg, want)
	}
}

// TestMissingFile checks a file we cannot open is only worth a
// warning. The other files still get processed.
func TestMissingFile(t *testing.T) {
	fname := wrtAln(t, alnString)
	defer os.Remove(fname)
	var out string
	var ret int
	quietly(t, func() {
		out, _, ret = run(t, &CmdFlag{}, "no_such_file_anywhere", fname)
	})
	if ret != common.ExitFailure {
		t.Fatal("missing file should give a failing exit status")
	}
	want := ">s1\nACAT\n>s2\nACAT\n>s3\nACAT\n>s4\nACAT\n"
	if out != want {
		t.Fatalf("second file was not processed, got %q", out)
	}
}

// TestRaggedSkipped checks that an alignment whose rows have unequal
// lengths is skipped, not fatal for the whole run.
func TestRaggedSkipped(t *testing.T) {
	ragged := wrtAln(t, ">r1\nACGT\n>r2\nACG")
	defer os.Remove(ragged)
	good := wrtAln(t, alnString)
	defer os.Remove(good)
	var out string
	var ret int
	quietly(t, func() {
		out, _, ret = run(t, &CmdFlag{}, ragged, good)
	})
	if ret != common.ExitFailure {
		t.Fatal("ragged alignment should give a failing exit status")
	}
	want := ">s1\nACAT\n>s2\nACAT\n>s3\nACAT\n>s4\nACAT\n"
	if out != want {
		t.Fatalf("good file was not processed, got %q", out)
	}
}

// TestBadConfig checks the errors that must stop us before any file
// is read.
func TestBadConfig(t *testing.T) {
	fname := wrtAln(t, alnString)
	defer os.Remove(fname)
	bads := []CmdFlag{
		{Freq: 1.5},
		{Freq: -1},
		{MolType: "xna"},
		{Format: "phylip"},
	}
	for _, bad := range bads {
		quietly(t, func() {
			if _, _, ret := run(t, &bad, fname); ret != common.ExitUsageError {
				t.Fatalf("flags %+v should have been refused", bad)
			}
		})
	}
}

func TestMolType(t *testing.T) {
	fname := wrtAln(t, alnString)
	defer os.Remove(fname)
	if _, _, ret := run(t, &CmdFlag{MolType: "dna"}, fname); ret != common.ExitSuccess {
		t.Fatal("broke running alncut main with moltype dna")
	}
	// the claim disagrees with the sequences, which is only a warning
	var ret int
	quietly(t, func() {
		_, _, ret = run(t, &CmdFlag{MolType: "protein"}, fname)
	})
	if ret != common.ExitSuccess {
		t.Fatal("a moltype disagreement should only warn")
	}
}
