package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLineAsker_Ask(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single answer", "My Blog\n", []string{"My Blog"}},
		{"trims whitespace", "  spaced  \r\n", []string{"spaced"}},
		{"empty answer", "\n", []string{""}},
		{"sequential answers", "one\ntwo\n", []string{"one", "two"}},
		{"last line without newline", "one\ntwo", []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			asker := NewLineAsker(strings.NewReader(tt.input), &out)
			for i, want := range tt.want {
				got, err := asker.Ask("Q")
				if err != nil {
					t.Fatalf("Ask() #%d error = %v", i, err)
				}
				if got != want {
					t.Errorf("Ask() #%d = %q, want %q", i, got, want)
				}
			}
			if wantOut := strings.Repeat("Q: ", len(tt.want)); out.String() != wantOut {
				t.Errorf("prompt output = %q, want %q", out.String(), wantOut)
			}
		})
	}
}

func TestLineAsker_EOF(t *testing.T) {
	asker := NewLineAsker(strings.NewReader(""), io.Discard)
	_, err := asker.Ask("Blog Name")
	if !errors.Is(err, io.EOF) {
		t.Errorf("Ask() error = %v, want io.EOF", err)
	}
}

func TestScripted(t *testing.T) {
	s := &Scripted{Answers: map[string]string{"Author": "Ada"}}

	if got, _ := s.Ask("Author"); got != "Ada" {
		t.Errorf("Ask(Author) = %q, want %q", got, "Ada")
	}
	if got, _ := s.Ask("Git Remote"); got != "" {
		t.Errorf("Ask(Git Remote) = %q, want empty", got)
	}
	if len(s.Asked) != 2 || s.Asked[1] != "Git Remote" {
		t.Errorf("Asked = %q", s.Asked)
	}
}
