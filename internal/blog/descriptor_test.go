package blog

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorewood/tiny/internal/content"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DescriptorName)
	created := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	cfg := New("B", "A", "git@example.com:a/b.git", created)
	cfg.Posts = append(cfg.Posts,
		NewPost("First Post", "", time.Date(2020, 2, 1, 10, 0, 0, 0, time.UTC)),
		NewPost("Second Post", "with a subtitle", time.Date(2021, 3, 1, 11, 30, 0, 123000000, time.UTC)),
	)
	cfg.Raws = append(cfg.Raws, json.RawMessage(`{"type":"include","path":"robots.txt"}`))

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.BlogName != "B" || got.BlogAuthor != "A" || got.GitRemote != cfg.GitRemote {
		t.Errorf("settings = %+v", got)
	}
	if !got.CreationDate.Equal(created) {
		t.Errorf("CreationDate = %v, want %v", got.CreationDate, created)
	}
	if len(got.Posts) != len(cfg.Posts) {
		t.Fatalf("Posts len = %d, want %d", len(got.Posts), len(cfg.Posts))
	}
	for i, want := range cfg.Posts {
		p := got.Posts[i]
		if p.Title != want.Title || p.FileID != want.FileID || p.Subtitle != want.Subtitle || p.Content != want.Content {
			t.Errorf("Posts[%d] = %+v, want %+v", i, p, want)
		}
		if !p.Date.Equal(want.Date) {
			t.Errorf("Posts[%d].Date = %v, want %v", i, p.Date, want.Date)
		}
	}
	if len(got.Raws) != 1 {
		t.Fatalf("Raws = %s", got.Raws)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, got.Raws[0]); err != nil {
		t.Fatal(err)
	}
	if compact.String() != `{"type":"include","path":"robots.txt"}` {
		t.Errorf("Raws[0] = %s", compact.String())
	}
}

func TestLoad_OriginalDescriptor(t *testing.T) {
	// Shape written by the JavaScript version of tiny.
	raw := `{"blogName":"B","blogAuthor":"A","gitRemote":"","creationDate":"2020-06-01T12:00:00.000Z",` +
		`"header":{"type":"include","path":"header.html"},"footer":{"type":"include","path":"footer.html"},` +
		`"post":{"type":"include","path":"post.html"},"style":"includes/style.css",` +
		`"posts":[{"title":"First Post","fileId":"First-Post","content":{"type":"include","path":"First-Post.md"},` +
		`"date":"2020-06-02T08:00:00.000Z"}],"raws":[]}`
	path := filepath.Join(t.TempDir(), DescriptorName)
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Index.IsZero() {
		t.Errorf("Index should be unset, got %v", cfg.Index)
	}
	if cfg.CreationDate.Year() != 2020 {
		t.Errorf("CreationDate = %v", cfg.CreationDate)
	}
	if len(cfg.Posts) != 1 || cfg.Posts[0].Content != content.Include("First-Post.md") {
		t.Errorf("Posts = %+v", cfg.Posts)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, ErrConfigMissing) {
		t.Errorf("missing file error = %v, want ErrConfigMissing", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"blogName":`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrConfigParse) {
		t.Errorf("malformed file error = %v, want ErrConfigParse", err)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Save(filepath.Join(dir, DescriptorName), New("B", "A", "", time.Now())); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != DescriptorName {
		t.Errorf("directory contents = %v", entries)
	}
	if !Exists(filepath.Join(dir, DescriptorName)) {
		t.Error("Exists() = false after Save")
	}
}
