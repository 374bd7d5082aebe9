package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandIncludesRequiredSubcommands(t *testing.T) {
	buf := &bytes.Buffer{}
	root := NewRootCommand(buf, buf)

	names := map[string]bool{}
	for _, command := range root.Commands() {
		names[command.Name()] = true
	}
	for _, required := range []string{"sum", "verify", "version"} {
		if !names[required] {
			t.Fatalf("expected root command to include %q subcommand", required)
		}
	}
}

func TestRootCommandHelpReturnsZero(t *testing.T) {
	buf := &bytes.Buffer{}
	root := NewRootCommand(buf, buf)
	root.SetArgs([]string{"--help"})

	if err := root.Execute(); err != nil {
		t.Fatalf("expected help command to succeed, got error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "sum") || !strings.Contains(out, "verify") || !strings.Contains(out, "version") {
		t.Fatalf("expected command names in help output, got: %q", out)
	}
}

func TestSumHelpIncludesRequiredFlags(t *testing.T) {
	buf := &bytes.Buffer{}
	root := NewRootCommand(buf, buf)
	root.SetArgs([]string{"sum", "--help"})
	if err := root.Execute(); err != nil {
		t.Fatalf("expected sum --help to succeed, got error: %v", err)
	}
	out := buf.String()
	for _, token := range []string{"--variant", "--progress"} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected token %q in help output: %q", token, out)
		}
	}
}
