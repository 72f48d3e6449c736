// internal/writer/writer.go
package writer

import (
	"fmt"
	"io"

	"github.com/knikolaus-pice/omron-load-display/internal/poller"
)

// FormatValue renders a reading the way the sink stores it: fixed
// six fractional digits.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

// stdoutWriter prints each reading as a diagnostic line. Errored
// results are skipped; the orchestrator logs those.
type stdoutWriter struct {
	out io.Writer
}

// NewStdout creates a writer that prints readings to out.
func NewStdout(out io.Writer) Writer {
	return &stdoutWriter{out: out}
}

func (w *stdoutWriter) Write(res poller.PollResult) error {
	if res.Err != nil {
		return nil
	}
	_, err := fmt.Fprintf(w.out, "DISPLAY: %v\n", res.Value)
	return err
}
