// Package prompt asks the user line-oriented questions on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Asker asks one question and returns the trimmed answer.
type Asker interface {
	Ask(question string) (string, error)
}

// AskerFunc adapts a function to the Asker interface.
type AskerFunc func(question string) (string, error)

// Ask calls f.
func (f AskerFunc) Ask(question string) (string, error) {
	return f(question)
}

// LineAsker reads answers one line at a time.
type LineAsker struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineAsker creates a LineAsker reading from in and writing questions to out.
func NewLineAsker(in io.Reader, out io.Writer) *LineAsker {
	return &LineAsker{reader: bufio.NewReader(in), out: out}
}

// Ask writes "question: " and reads a line. A final line without a
// newline is accepted; EOF before any input is an error.
func (a *LineAsker) Ask(question string) (string, error) {
	if _, err := fmt.Fprintf(a.out, "%s: ", question); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := a.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("reading answer to %q: %w", question, err)
	}
	return strings.TrimSpace(line), nil
}

// Scripted answers questions from a fixed map, recording what was asked.
// Unknown questions get an empty answer.
type Scripted struct {
	Answers map[string]string
	Asked   []string
}

// Ask returns the scripted answer for question.
func (s *Scripted) Ask(question string) (string, error) {
	s.Asked = append(s.Asked, question)
	return s.Answers[question], nil
}
