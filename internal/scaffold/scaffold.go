// Package scaffold holds the default templates written into a new blog's
// includes directory.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed templates/*
var templatesFS embed.FS

// IndexName is the default index template's file name.
const IndexName = "index.html"

// Names lists the embedded template file names in directory order.
func Names() []string {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}

// File returns the contents of an embedded template.
func File(name string) (string, error) {
	data, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("reading default template %s: %w", name, err)
	}
	return string(data), nil
}

// DefaultIndex returns the post listing used when a descriptor has no
// index template of its own.
func DefaultIndex() (string, error) {
	return File(IndexName)
}

// WriteDefaults copies every embedded template into dir, creating it if
// needed. Files that already exist are left untouched. It returns the
// names that were written.
func WriteDefaults(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	var written []string
	for _, name := range Names() {
		dst := filepath.Join(dir, name)
		if _, err := os.Stat(dst); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return written, fmt.Errorf("checking %s: %w", dst, err)
		}

		text, err := File(name)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(dst, []byte(text), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", dst, err)
		}
		written = append(written, name)
	}
	return written, nil
}
