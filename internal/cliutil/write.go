// Package cliutil holds small helpers shared by the command-line frontend.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef prints formatted command output to w. A failed write is reported
// on stderr rather than returned, since CLI callers have nowhere useful to
// propagate it.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
