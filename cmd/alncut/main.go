// 12 Aug 2026

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/alncut/pkg/alncut"
	. "github.com/andrew-torda/alncut/pkg/seq/common"
)

var flags alncut.CmdFlag

var rootCmd = &cobra.Command{
	Use:   "alncut [flags] [alignment ...]",
	Short: "Keep or remove alignment columns by variation and gap content",
	Long: `alncut reads multiple sequence alignments and writes them back with
only the selected columns. Without a mode flag it selects invariant
sites. With no file arguments it reads from stdin.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(alncut.Mymain(&flags, args))
	},
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&flags.GapFree, "gapfree", "g", false, "select sites with no more gaps than the cutoff allows")
	f.BoolVarP(&flags.AllGap, "allgap", "a", false, "select sites that are nothing but gaps")
	f.BoolVarP(&flags.ParsInf, "parsinf", "p", false, "select parsimoniously informative sites")
	f.BoolVarP(&flags.Negate, "negate", "v", false, "invert the decision at every site")
	f.Float64VarP(&flags.Freq, "frequency", "f", 0, "cutoff, a count (integer) or a fraction in (0,1)")
	f.BoolVarP(&flags.Verbose, "verbose", "V", false, "report the matched sites on the diagnostic stream")
	f.StringVarP(&flags.MolType, "moltype", "m", "", "molecule type: dna, rna or protein")
	f.StringVarP(&flags.Format, "format", "F", "fasta", "alignment format: fasta, stockholm, a2m or a3m")
	f.StringVarP(&flags.OutFile, "outfile", "o", "", "write the filtered alignment here instead of stdout")
	f.StringVarP(&flags.LogFile, "logfile", "l", "", "write the verbose report here instead of stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsageError)
	}
}
