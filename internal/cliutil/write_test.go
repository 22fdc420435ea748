package cliutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "converted %d entries to %s\n", 3, "openapi.yaml")
	want := "converted 3 entries to openapi.yaml\n"
	if got := buf.String(); got != want {
		t.Errorf("Writef() wrote %q, want %q", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestWritefFailedWriter(t *testing.T) {
	// A broken writer must not panic; the error goes to stderr.
	Writef(failingWriter{}, "unreachable output")
}
