package model

import (
	"bufio"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer draws snapshots as text
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the snapshot, one line per row
func (r *TerminalRenderer) Display(s Snapshot) error {
	w := bufio.NewWriter(r.Out)
	for row := range s.Rows {
		for col := range s.Cols {
			if s.Alive(row, col) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write grid")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	return errors.Wrap(cmd.Run(), "[Clear] failed to clear terminal")
}
