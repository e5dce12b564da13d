// internal/cli/options_test.go
package cli

import (
	"strings"
	"testing"

	"eratos-core/sieve"
)

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(NewFlagSet("test"), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestLimitAndFileOK(t *testing.T) {
	o := mustParse(t, "--limit", "100", "--file", "out.csv")
	if o.Limit != 100 || o.File != "out.csv" {
		t.Errorf("bad parse %+v", o)
	}
}

// Short aliases mirror the long names.
func TestShortAliases(t *testing.T) {
	o := mustParse(t, "-n", "50", "-f", "p.csv", "-q")
	if o.Limit != 50 || o.File != "p.csv" || !o.Quiet {
		t.Errorf("bad alias parse %+v", o)
	}
}

// Nothing supplied is legal; the app prompts later.
func TestNoFlagsOK(t *testing.T) {
	o := mustParse(t)
	if o.Limit != 0 || o.File != "" {
		t.Errorf("expected zero values, got %+v", o)
	}
}

func TestErrorLimitTooSmall(t *testing.T) {
	for _, v := range []string{"0", "1"} {
		if _, err := ParseArgs(NewFlagSet("test"), []string{"--limit", v}); err == nil {
			t.Errorf("expected error for --limit %s", v)
		}
	}
}

func TestErrorUnknownFlag(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("test"), []string{"--bogus"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestErrorPositionalRejected(t *testing.T) {
	_, err := ParseArgs(NewFlagSet("test"), []string{"-n", "10", "stray"})
	if err == nil || !strings.Contains(err.Error(), "stray") {
		t.Fatalf("expected positional rejection, got %v", err)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o := mustParse(t, "--version")
	if !o.Version {
		t.Fatal("version flag not set")
	}
}

func TestValidateLimitRange(t *testing.T) {
	if err := ValidateLimit(2); err != nil {
		t.Errorf("2 should be valid: %v", err)
	}
	if err := ValidateLimit(sieve.MaxBound); err != nil {
		t.Errorf("MaxBound should be valid: %v", err)
	}
	if ValidateLimit(1) == nil {
		t.Error("1 should be rejected")
	}
}

func TestUsageMentionsFlags(t *testing.T) {
	fs := NewFlagSet("eratos")
	_, _ = ParseArgs(fs, nil)
	var sb strings.Builder
	Usage(&sb, fs, "eratos")
	for _, want := range []string{"--limit", "--file", "ERATOS_LIMIT"} {
		if !strings.Contains(sb.String(), want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
