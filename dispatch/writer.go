// Package dispatch provides camera.Dispatcher implementations: a plain
// writer sink for one-shot CLI runs and a TCP client for a host script
// command port.
package dispatch

import (
	"fmt"
	"io"

	"github.com/jonntd/anima/camera"
)

// Writer renders executed commands to an io.Writer, one per line.
type Writer struct {
	w io.Writer
}

// NewWriter creates a dispatcher writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Execute renders the command to the underlying writer.
func (d *Writer) Execute(cmd camera.Command) error {
	if _, err := fmt.Fprintln(d.w, cmd.String()); err != nil {
		return fmt.Errorf("write %s command: %w", cmd.Name, err)
	}
	return nil
}
