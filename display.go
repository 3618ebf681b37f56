package timesurvey

import (
	"fmt"
	"os"
)

// Display receives the survey rows, redrawn from a clear screen every
// iteration.
type Display interface {
	Clear()
	Printf(format string, args ...any)
}

// Screen is a Display writing to a terminal, clearing it with ANSI escapes
// before each redraw.
type Screen struct {
	sink *os.File
}

// NewScreen prepares the terminal for survey output. Failure to write the
// setup sequence is the one fatal error of the program; the caller responds
// with a pause and a restart.
func NewScreen(sink *os.File) (*Screen, error) {
	// Hide the cursor; failure here means the sink takes no output at all
	if _, err := fmt.Fprint(sink, "\033[?25l"); err != nil {
		return nil, err
	}
	return &Screen{sink: sink}, nil
}

func (s *Screen) Clear() {
	fmt.Fprint(s.sink, "\033[2J\033[H")
}

func (s *Screen) Printf(format string, args ...any) {
	fmt.Fprintf(s.sink, format, args...)
}

// Close restores the terminal state on teardown.
func (s *Screen) Close() {
	fmt.Fprint(s.sink, "\033[?25h")
}
