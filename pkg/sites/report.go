// 11 Aug 2026

package sites

import (
	"fmt"
	"io"
	"strconv"
)

// Report writes the selection summary for one alignment record to the
// diagnostic stream. The format is a contract. People grep for these
// lines, so do not fiddle with them:
//
//	# alncut matched 3 non-gap-free sites.
//	# A relative frequency cutoff of 0.2000 gaps or variants was allowed.
//	# Matching indices (zero-based):
//	0,4,7
//
// The cutoff line only appears when the mode consults a cutoff and a
// frequency argument was actually given. The index list is ascending,
// zero-based and comma separated, on a single line.
func Report(fp io.Writer, tool string, mask []bool, mode Mode, rawFreq float64) error {
	nsel := 0
	for _, m := range mask {
		if m {
			nsel++
		}
	}
	label := mode.Kind.Label()
	if mode.Negate {
		label = "non-" + label
	}
	if _, err := fmt.Fprintf(fp, "# %s matched %d %s sites.\n", tool, nsel, label); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if mode.Kind.UsesCutoff() && rawFreq != 0 {
		fmt.Fprintf(fp, "# A relative frequency cutoff of %.4f gaps or variants was allowed.\n",
			mode.Cutoff)
	}
	fmt.Fprintln(fp, "# Matching indices (zero-based):")

	b := make([]byte, 0, 12*nsel)
	for j, m := range mask {
		if !m {
			continue
		}
		if len(b) > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(j), 10)
	}
	b = append(b, '\n')
	if _, err := fp.Write(b); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
