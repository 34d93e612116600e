package cmd

import (
	"bytes"
	"strings"
	"testing"
)

// executeCommand runs the root command with the given args and captures its
// output streams.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")

	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	if !strings.Contains(out, "delayspottr 1.2.3") {
		t.Errorf("version output = %q, want version string", out)
	}
}

func TestFetchRejectsBadDate(t *testing.T) {
	_, err := executeCommand(t, "fetch", "--flight-date", "01.01.2024")
	if err == nil {
		t.Fatal("fetch with malformed date succeeded, want error")
	}

	if !strings.Contains(err.Error(), "invalid date format") {
		t.Errorf("fetch error = %v, want invalid date format", err)
	}
}

func TestFetchRequiresFlightDate(t *testing.T) {
	if _, err := executeCommand(t, "fetch"); err == nil {
		t.Fatal("fetch without --flight-date succeeded, want error")
	}
}

func TestParseRequiresFileArgument(t *testing.T) {
	if _, err := executeCommand(t, "parse"); err == nil {
		t.Fatal("parse without file argument succeeded, want error")
	}
}
