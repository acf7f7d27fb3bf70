package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	if err := printer.Success(map[string]any{"status": "ok", "pages": 3}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["status"] != "ok" {
		t.Errorf("status = %v, want %q", result["status"], "ok")
	}
	if result["pages"] != float64(3) {
		t.Errorf("pages = %v, want 3", result["pages"])
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewConfigError("tiny.json not found", nil))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["error"] != "tiny.json not found" {
		t.Errorf("error = %v, want %q", result["error"], "tiny.json not found")
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitConfig {
		t.Errorf("code = %v, want %d", result["code"], ExitConfig)
	}
}

func TestPrinter_Human_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	if err := printer.Success(map[string]any{"message": "Published 2 pages"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if got := buf.String(); got != "Published 2 pages\n" {
		t.Errorf("output = %q, want %q", got, "Published 2 pages\n")
	}
}

func TestPrinter_Human_ErrorGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Error(NewSystemErrorWithCause("write index.html", errors.New("disk full")))

	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	want := "Error: write index.html: disk full\n"
	if errOut.String() != want {
		t.Errorf("stderr = %q, want %q", errOut.String(), want)
	}
}

func TestPrinter_Human_PlainError(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Error(errors.New("something broke"))

	if got := buf.String(); got != "Error: something broke\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPrinter_Warn(t *testing.T) {
	t.Run("human", func(t *testing.T) {
		var out, errOut bytes.Buffer
		printer := NewPrinter(&out, false, false).WithStderr(&errOut)
		printer.Warn("git push failed: %s", "rejected")

		if errOut.String() != "Warning: git push failed: rejected\n" {
			t.Errorf("stderr = %q", errOut.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewPrinter(&buf, true, false)
		printer.Warn("editor exited with %d", 1)

		var result map[string]any
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("Failed to parse JSON: %v", err)
		}
		if result["warning"] != "editor exited with 1" {
			t.Errorf("warning = %v", result["warning"])
		}
	})
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table(
		[]string{"TITLE", "FILE", "DATE"},
		[][]string{
			{"First Post", "First-Post", "2024-01-02"},
			{"B", "B", "2024-02-03"},
		},
	)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "TITLE       FILE        DATE" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "B           B           2024-02-03" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestPrinter_TableNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Table(nil, [][]string{{"x"}})
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).KeyValue("Blog", "B")
	if buf.String() != "Blog: B\n" {
		t.Errorf("output = %q", buf.String())
	}
}
