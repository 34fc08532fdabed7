package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// maxLineSize bounds a single line read by ScannerReader.
const maxLineSize = 1024 * 1024

// LineReader reads one line of input per call, showing prompt first.
// ReadLine returns io.EOF when input ends and readline.ErrInterrupt when the
// user interrupts the line.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader picks a readline based reader when in is a terminal, and a
// plain scanner otherwise.
func NewLineReader(in io.Reader, out io.Writer, historyFile string) (LineReader, error) {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return NewReadlineReader(f, out, historyFile)
	}
	return NewScannerReader(in, out), nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ScannerReader reads lines with a bufio.Scanner and writes the prompt to out.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScannerReader creates a ScannerReader.
func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &ScannerReader{
		scanner: scanner,
		out:     out,
	}
}

// ReadLine writes prompt and blocks until a full line is available. The line
// terminator is removed; nothing else is.
func (r *ScannerReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// Close is a no-op; the scanner does not own its input.
func (r *ScannerReader) Close() error {
	return nil
}

// ReadlineReader reads lines from a terminal with editing and history.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader creates a ReadlineReader on the terminal in. An empty
// historyFile disables persistent history.
func NewReadlineReader(in *os.File, out io.Writer, historyFile string) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           in,
		Stdout:          out,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine shows prompt and reads one edited line.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

// Close restores the terminal.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
