package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	SetLevel(Warning)
	defer SetLevel(Notice)

	logger := New("filter-test")
	logger.Info("info message")
	logger.Noticef("notice %d", 1)
	logger.Warningf("warning %d", 2)
	logger.Error("error message")

	out := buf.String()
	for _, exp := range []string{"warning 2", "error message", "[filter-test]"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected output to contain %q; got %q", exp, out)
		}
	}
	for _, unexp := range []string{"info message", "notice 1"} {
		if strings.Contains(out, unexp) {
			t.Fatalf("expected output not to contain %q; got %q", unexp, out)
		}
	}
}

func TestSetSinkPreservesLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	SetLevel(Debug)
	defer SetLevel(Notice)

	var other bytes.Buffer
	SetSink(&other)
	defer SetSink(os.Stdout)

	New("sink-test").Debug("still visible")
	if !strings.Contains(other.String(), "still visible") {
		t.Fatalf("expected debug message to survive sink change; got %q", other.String())
	}
	if buf.Len() != 0 {
		t.Fatalf("expected old sink to stay empty; got %q", buf.String())
	}
}
