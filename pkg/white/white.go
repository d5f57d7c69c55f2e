// 3 Aug 2026

// Package white strips ascii white space from byte slices. The fasta
// reader calls it on every piece of sequence it collects.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Append copies src onto the end of dst, leaving out white space.
// dst grows the way append always grows. The source is never written
// to, so it can live in a read-only mapping.
func Append(dst, src []byte) []byte {
	for _, c := range src {
		if !asciiSpace[c] {
			dst = append(dst, c)
		}
	}
	return dst
}
