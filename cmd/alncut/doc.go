// 12 Aug 2026

/*
Alncut keeps or removes columns of a multiple sequence alignment.

Each input file holds one alignment, fasta by default. For every
column (site) a yes/no decision is made and the output alignment
contains exactly the columns that were selected, with the rows in
their original order and names untouched.

Usage:

	alncut [flags] [alignment ...]

The modes, strongest first, since they do not exclude each other on
the command line:

	-p, --parsinf   sites where at least two characters each turn up
	                in at least two rows. These are the sites that
	                carry signal for building trees.
	-a, --allgap    sites that consist of nothing but "-".
	-g, --gapfree   sites with no gaps, or with a gap fraction up to
	                the cutoff.
	(default)       invariant sites. One character dominates and the
	                rest stay within the cutoff.

The cutoff comes from -f / --frequency. An integer n of one or more
means up to n deviating rows are tolerated, so it is divided by the
number of rows of each alignment. A fraction between 0 and 1 is used
directly. Anything else is refused before any file is read. Without
-f the invariant and gap-free modes are strict.

-v / --negate inverts every decision, so --gapfree --negate selects
exactly the sites with too many gaps. -V / --verbose writes a small
report per alignment to stderr (or the --logfile target): how many
sites matched, the cutoff if one was in play, and the zero-based
indices of the matching sites.

A file that cannot be read, parsed, or whose rows do not have equal
lengths only costs a warning and a failing exit status. The remaining
files are still processed. Sequence identifiers are written with
nothing between the ">" and the name, whatever the input looked like.
*/
package main
