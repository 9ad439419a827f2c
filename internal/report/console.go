package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"voxpitch/internal/model"
)

// Printer writes the human-readable summary of an evaluation run.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter creates a printer that styles its output when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styled: shouldStyle(w)}
}

// NewPlainPrinter creates a printer that never emits styling.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintSummary writes the aggregate counts with their rates and the elapsed
// wall-clock time.
func (p *Printer) PrintSummary(s model.Summary) {
	lines := []string{
		fmt.Sprintf("Total files:   %d", s.Total),
		fmt.Sprintf("Correct:       %d (%.2f%%)", s.Correct, s.CorrectRate()*100),
		fmt.Sprintf("Incorrect:     %d (%.2f%%)", s.Incorrect, s.IncorrectRate()*100),
		fmt.Sprintf("Unclassified:  %d (%.2f%%)", s.Unclassified, s.UnclassifiedRate()*100),
		fmt.Sprintf("Elapsed:       %.2fs", s.Elapsed.Seconds()),
	}
	content := strings.Join(lines, "\n")

	if p.styled {
		fmt.Fprintln(p.w, RenderBox("Evaluation Summary", content))
		return
	}
	fmt.Fprintln(p.w, "Evaluation Summary")
	fmt.Fprintln(p.w, content)
}

// shouldStyle reports whether w is an interactive terminal.
func shouldStyle(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
