// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"eratos-core/sieve"
	"eratos/internal/cli"
	"eratos/internal/config"
	"eratos/internal/emit"
	"eratos/internal/prompt"
	"eratos/internal/version"
)

const (
	exitOK     = 0
	exitFatal  = 1
	exitUsage  = 2
	exitIO     = 3
	exitCancel = 130
)

// RunContext is the boundary adapter for one run: it resolves a bound
// and an optional destination from flags, environment defaults and
// interactive prompts, hands the bound to the sieve, and routes the
// finished table into exactly one emitter. Listing bytes go to stdout
// only; everything else goes to stderr.
func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("eratos")
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			cli.Usage(stdout, fs, "eratos")
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		cli.Usage(stderr, fs, "eratos")
		return exitUsage
	}
	if opts.Version {
		fmt.Fprintf(stdout, "eratos version %s\n", version.Version)
		return exitOK
	}

	logger := cli.NewLogger(stderr, opts.Quiet)

	envDefaults, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	bound := opts.Limit
	dest := opts.File
	destSet := fs.Changed("file")

	if bound == 0 && envDefaults.Limit != 0 {
		if err := cli.ValidateLimit(envDefaults.Limit); err != nil {
			fmt.Fprintf(stderr, "ERATOS_LIMIT: %v\n", err)
			return exitUsage
		}
		bound = envDefaults.Limit
	}
	if !destSet && envDefaults.Output != "" {
		dest = envDefaults.Output
		destSet = true
	}

	// Interactive fallbacks, only on a real terminal. A pipeline that
	// supplies no limit is a usage error, not a hung read.
	if bound == 0 || !destSet {
		in := bufio.NewReader(stdin)
		interactive := stdinIsTerminal(stdin)
		if bound == 0 {
			if !interactive {
				fmt.Fprintln(stderr, "no limit supplied and stdin is not a terminal (use --limit)")
				return exitUsage
			}
			bound, err = prompt.Bound(in, stderr)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return exitUsage
			}
		}
		if !destSet && interactive {
			dest, err = prompt.Destination(in, stderr)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return exitUsage
			}
		}
	}

	// The extension is advisory: warn, then write to the path as given.
	if dest != "" && filepath.Ext(dest) != ".csv" {
		warn := lipgloss.NewRenderer(stderr).NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
		fmt.Fprintf(stderr, "%s output filename %q does not end in .csv, writing to it anyway\n",
			warn.Render("Warning:"), dest)
	}

	start := time.Now()
	table, err := sieve.New(bound)
	if err != nil {
		var alloc *sieve.AllocationError
		if errors.As(err, &alloc) {
			logger.Error("flag table allocation failed", "bound", alloc.Bound)
		} else {
			logger.Error("flag table construction failed", "error", err)
		}
		return exitFatal
	}
	table.EliminateComposites()

	if ctx.Err() != nil {
		return exitCancel
	}

	if dest != "" {
		if err := emit.WriteRecords(dest, table); err != nil {
			logger.Error("record listing failed", "path", dest, "error", err)
			return exitIO
		}
		logger.Info("sieve written", "path", dest, "bound", bound,
			"primes", table.Count(), "elapsed", time.Since(start))
		return exitOK
	}

	if err := emit.WriteText(stdout, table); err != nil {
		if emit.IsBrokenPipe(err) {
			return exitOK
		}
		logger.Error("text listing failed", "error", err)
		return exitIO
	}
	logger.Info("primes listed", "bound", bound,
		"primes", table.Count(), "elapsed", time.Since(start))
	return exitOK
}

// Run is RunContext without cancellation, for tests and simple callers.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

func stdinIsTerminal(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
