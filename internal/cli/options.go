// internal/cli/options.go
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"eratos-core/sieve"
	"eratos/internal/version"
)

// Options holds all CLI flags. Limit 0 and an unchanged --file mean
// "not supplied"; the app fills those from environment defaults and
// then from interactive prompts.
type Options struct {
	Limit uint64
	File  string

	Quiet   bool
	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError. pflag's own
// error/usage printing is discarded; the app decides where help goes.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.Uint64VarP(&opt.Limit, "limit", "n", 0, "upper limit for prime generation (0 = ask)")
	fs.StringVarP(&opt.File, "file", "f", "", "output file for the comma-separated listing (empty = screen print)")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress diagnostic logging")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}
	if args := fs.Args(); len(args) > 0 {
		return opt, fmt.Errorf("unexpected argument %q", args[0])
	}
	if fs.Changed("limit") {
		if err := ValidateLimit(opt.Limit); err != nil {
			return opt, err
		}
	}
	return opt, nil
}

// ValidateLimit checks a user-supplied limit against the core's input
// contract. The adapter never forwards a value this rejects.
func ValidateLimit(n uint64) error {
	if n < 2 || n > sieve.MaxBound {
		return fmt.Errorf("limit must be between 2 and %d", sieve.MaxBound)
	}
	return nil
}

// Usage writes the full help text to w.
func Usage(w io.Writer, fs *pflag.FlagSet, name string) {
	fmt.Fprintf(w, `%s: Sieve of Eratosthenes prime listing

Version: %s

Usage: %s [--limit N] [--file PATH]

`, name, version.Version, name)
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintf(w, `
Example: %s --limit 100 --file output.csv

A limit omitted on the command line falls back to ERATOS_LIMIT, then to
an interactive prompt. Without an output file the listing is printed to
standard output; ERATOS_OUTPUT supplies a default file.
`, name)
}
