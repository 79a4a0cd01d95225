// Package logging provides the debug channel used by the detector and
// simulator to report diagnostics to a host-provided sink.
package logging

import (
	"fmt"
	"io"
	"os"
)

// writer is the destination for log output. Defaults to stderr so a host
// that never calls SetWriter still sees diagnostics.
var writer io.Writer = os.Stderr

// SetWriter sets the log output destination. Passing nil restores stderr.
func SetWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	writer = w
}

// Logf writes a formatted diagnostic message to the debug channel.
func Logf(format string, args ...interface{}) {
	fmt.Fprintln(writer, fmt.Sprintf(format, args...))
}
