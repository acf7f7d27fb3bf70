package preview

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gorewood/tiny/internal/blog"
)

func testPosts() []blog.Post {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return []blog.Post{
		blog.NewPost("Hello World", "", date),
		blog.NewPost("Road Trip Notes", "", date.AddDate(0, 0, 1)),
		blog.NewPost("Gardening in July", "", date.AddDate(0, 0, 2)),
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"empty query picks latest", "", "Gardening in July"},
		{"exact title", "Hello World", "Hello World"},
		{"fuzzy title", "rdtrp", "Road Trip Notes"},
		{"file id", "Gardening-in", "Gardening in July"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find(testPosts(), tt.query)
			if err != nil {
				t.Fatalf("Find(%q) error = %v", tt.query, err)
			}
			if got.Title != tt.want {
				t.Errorf("Find(%q) = %q, want %q", tt.query, got.Title, tt.want)
			}
		})
	}
}

func TestFind_Errors(t *testing.T) {
	if _, err := Find(nil, ""); !errors.Is(err, ErrNoPosts) {
		t.Errorf("Find(nil) error = %v, want ErrNoPosts", err)
	}
	if _, err := Find(testPosts(), "zzzzqqq"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Find(zzzzqqq) error = %v, want ErrNoMatch", err)
	}
}

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer(false, 0)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	out, err := r.Render("---\nsubtitle: hidden\n---\n# Day one\n\nWe left early.\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, want := range []string{"Day one", "We left early."} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "subtitle") {
		t.Errorf("front matter should be stripped:\n%s", out)
	}
}
