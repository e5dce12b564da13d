// internal/emit/text.go
package emit

import (
	"bufio"
	"io"
	"strconv"

	"eratos-core/sieve"
)

// WriteText streams the primes of a finalized table to w in ascending
// order, each followed by a single space, with one newline after the
// last value.
func WriteText(w io.Writer, t *sieve.Table) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 21)
	for n := uint64(2); n <= t.Bound(); n++ {
		if !t.IsPrime(n) {
			continue
		}
		buf = strconv.AppendUint(buf[:0], n, 10)
		buf = append(buf, ' ')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
