package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestReporterThrottlesEarlyUpdates(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewReporter(buf, "file.bin", 100)

	r.Update(10)
	if buf.Len() != 0 {
		t.Fatalf("expected throttled update to print nothing, got %q", buf.String())
	}
}

func TestReporterPrintsFinalUpdate(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewReporter(buf, "file.bin", 100)

	r.Update(100)
	out := buf.String()
	if !strings.Contains(out, "file.bin") || !strings.Contains(out, "100.0B/100.0B") {
		t.Fatalf("expected completed progress line, got %q", out)
	}
}

func TestReporterDoneSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewReporter(buf, "file.bin", 0)

	r.Done(2048)
	out := buf.String()
	if !strings.Contains(out, "file.bin hashed 2.0KB") {
		t.Fatalf("expected summary line, got %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected summary to end the progress line, got %q", out)
	}
}

func TestHumanBytesUnits(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0.0B"},
		{1023, "1023.0B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{1 << 20, "1.0MB"},
		{1 << 30, "1.0GB"},
	}
	for _, tt := range tests {
		if got := humanBytes(tt.in); got != tt.want {
			t.Fatalf("humanBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
