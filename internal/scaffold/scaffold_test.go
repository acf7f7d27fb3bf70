package scaffold

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNames(t *testing.T) {
	want := []string{"footer.html", "header.html", "index.html", "post.html", "style.css"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}
}

func TestDefaultIndex(t *testing.T) {
	index, err := DefaultIndex()
	if err != nil {
		t.Fatalf("DefaultIndex() error = %v", err)
	}
	for _, marker := range []string{"%%TINY_ITER_BEGIN%%", "%%TINY_ITER_END%%", "%%TINY_ITER_HREF%%"} {
		if !strings.Contains(index, marker) {
			t.Errorf("DefaultIndex() missing %s", marker)
		}
	}
}

func TestFile_Unknown(t *testing.T) {
	if _, err := File("missing.html"); err == nil {
		t.Error("File(missing.html) should fail")
	}
}

func TestWriteDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "includes")

	written, err := WriteDefaults(dir)
	if err != nil {
		t.Fatalf("WriteDefaults() error = %v", err)
	}
	if !reflect.DeepEqual(written, Names()) {
		t.Errorf("written = %q, want %q", written, Names())
	}

	header, err := os.ReadFile(filepath.Join(dir, "header.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(header), "%%TINY_INCLUDES%%") {
		t.Errorf("header.html should reference %s", "%%TINY_INCLUDES%%")
	}
}

func TestWriteDefaults_KeepsExisting(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "style.css")
	if err := os.WriteFile(custom, []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	written, err := WriteDefaults(dir)
	if err != nil {
		t.Fatalf("WriteDefaults() error = %v", err)
	}
	for _, name := range written {
		if name == "style.css" {
			t.Error("style.css should not be rewritten")
		}
	}
	data, _ := os.ReadFile(custom)
	if string(data) != "body{}" {
		t.Errorf("style.css = %q, want it untouched", data)
	}
}
