package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader delivers one input line at a time, io.EOF at end of input
type LineReader interface {
	ReadLine() (string, error)
	SetPrompt(prompt string)
	Close() error
}

type scannerReader struct {
	reader *bufio.Reader
}

// NewScannerReader reads plain lines from r, for pipes and tests. Lines
// have no length limit.
func NewScannerReader(r io.Reader) LineReader {
	return &scannerReader{reader: bufio.NewReader(r)}
}

func (s *scannerReader) ReadLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	// last line without a terminator still counts
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *scannerReader) SetPrompt(string) {}

func (s *scannerReader) Close() error {
	return nil
}

type readlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader reads from the terminal with line editing and optional
// history file
func NewReadlineReader(prompt, historyFile string) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "q",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		// ^C on an empty line leaves, otherwise it drops the line
		if line == "" {
			return "", io.EOF
		}
		return "", nil
	}
	return line, err
}

func (r *readlineReader) SetPrompt(prompt string) {
	r.rl.SetPrompt(prompt)
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}
