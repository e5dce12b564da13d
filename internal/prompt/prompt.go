// internal/prompt/prompt.go
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"eratos-core/sieve"
)

// Bound asks for an upper limit on w and reads one line from r. The
// answer must parse as a whole number in [2, sieve.MaxBound].
func Bound(r *bufio.Reader, w io.Writer) (uint64, error) {
	fmt.Fprintf(w, "Enter an upper limit for prime generation (2..%d): ", sieve.MaxBound)
	line, err := readLine(r)
	if err != nil {
		return 0, fmt.Errorf("read limit: %w", err)
	}
	n, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("limit %q is not a whole number", line)
	}
	if n < 2 || n > sieve.MaxBound {
		return 0, fmt.Errorf("limit must be between 2 and %d", sieve.MaxBound)
	}
	return n, nil
}

// Destination asks for an output filename on w and reads one line from
// r. An empty answer selects the screen listing.
func Destination(r *bufio.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter an output filename (*.csv) or press enter to print to screen: ")
	line, err := readLine(r)
	if err != nil {
		return "", fmt.Errorf("read filename: %w", err)
	}
	return line, nil
}

// readLine accepts a final line without a trailing newline.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
