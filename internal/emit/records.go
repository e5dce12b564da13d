// internal/emit/records.go
package emit

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"eratos-core/sieve"
)

// WriteRecords writes the primes of a finalized table to path as one
// comma-separated line with a trailing newline, truncating any existing
// file. No separator appears before the first or after the last value.
// Failures wrap the underlying path error; the table is never modified.
func WriteRecords(path string, t *sieve.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open listing: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close listing: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	buf := make([]byte, 0, 22)
	first := true
	for n := uint64(2); n <= t.Bound(); n++ {
		if !t.IsPrime(n) {
			continue
		}
		buf = buf[:0]
		if !first {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, n, 10)
		first = false
		if _, werr := bw.Write(buf); werr != nil {
			return fmt.Errorf("write listing: %w", werr)
		}
	}
	if werr := bw.WriteByte('\n'); werr != nil {
		return fmt.Errorf("write listing: %w", werr)
	}
	if werr := bw.Flush(); werr != nil {
		return fmt.Errorf("write listing: %w", werr)
	}
	return nil
}
