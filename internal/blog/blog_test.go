package blog

import (
	"errors"
	"testing"
	"time"

	"github.com/gorewood/tiny/internal/content"
)

func TestNew_Defaults(t *testing.T) {
	created := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	cfg := New("B", "A", "  ", created)

	if cfg.HasRemote() {
		t.Error("blank remote should mean no git integration")
	}
	if cfg.Header != content.Include("header.html") {
		t.Errorf("Header = %v", cfg.Header)
	}
	if cfg.Index != content.Include("index.html") {
		t.Errorf("Index = %v", cfg.Index)
	}
	if cfg.Style != "includes/style.css" {
		t.Errorf("Style = %q", cfg.Style)
	}
	if cfg.Posts == nil || len(cfg.Posts) != 0 {
		t.Errorf("Posts = %v, want empty non-nil", cfg.Posts)
	}
}

func TestNewPost(t *testing.T) {
	date := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	p := NewPost(" First Post ", "a subtitle", date)

	if p.Title != "First Post" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.FileID != "First-Post" {
		t.Errorf("FileID = %q", p.FileID)
	}
	if p.Content != content.Include("First-Post.md") {
		t.Errorf("Content = %v", p.Content)
	}
	if !p.Date.Equal(date) {
		t.Errorf("Date = %v", p.Date)
	}
}

func TestAddPost(t *testing.T) {
	cfg := New("B", "A", "", time.Now())
	now := time.Now()

	if err := cfg.AddPost(NewPost("One", "", now)); err != nil {
		t.Fatal(err)
	}
	if err := cfg.AddPost(NewPost("Two", "", now)); err != nil {
		t.Fatal(err)
	}
	err := cfg.AddPost(NewPost("One", "again", now))
	if !errors.Is(err, ErrDuplicatePost) {
		t.Fatalf("AddPost() duplicate error = %v, want ErrDuplicatePost", err)
	}

	if len(cfg.Posts) != 2 || cfg.Posts[0].FileID != "One" || cfg.Posts[1].FileID != "Two" {
		t.Errorf("Posts = %+v", cfg.Posts)
	}
	if cfg.FindPost("Two") != 1 || cfg.FindPost("Three") != -1 {
		t.Error("FindPost returned wrong index")
	}
}
