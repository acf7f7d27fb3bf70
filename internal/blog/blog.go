// Package blog holds the blog descriptor: the blog's settings, its template
// references, and the ordered registry of posts.
package blog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gorewood/tiny/internal/content"
)

// DescriptorName is the descriptor file name in the blog's working directory.
const DescriptorName = "tiny.json"

// IncludesDir is the directory holding templates and post sources.
const IncludesDir = "includes"

// ErrDuplicatePost is returned when a post's file id is already registered.
var ErrDuplicatePost = errors.New("post already exists")

// Config is the blog descriptor.
type Config struct {
	BlogName     string      `json:"blogName"`
	BlogAuthor   string      `json:"blogAuthor"`
	GitRemote    string      `json:"gitRemote"`
	CreationDate time.Time   `json:"creationDate"`
	Header       content.Ref `json:"header"`
	Footer       content.Ref `json:"footer"`
	Index        content.Ref `json:"index"`
	Post         content.Ref `json:"post"`
	Style        string      `json:"style"`
	Posts        []Post      `json:"posts"`
	// Raws are auxiliary file references kept verbatim.
	Raws []json.RawMessage `json:"raws"`
}

// Post is one registry entry. Posts are appended by the drafting step and
// not mutated afterwards.
type Post struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle,omitempty"`
	FileID   string      `json:"fileId"`
	Content  content.Ref `json:"content"`
	Date     time.Time   `json:"date"`
}

// New returns a descriptor with the default template layout.
func New(name, author, remote string, created time.Time) *Config {
	return &Config{
		BlogName:     name,
		BlogAuthor:   author,
		GitRemote:    strings.TrimSpace(remote),
		CreationDate: created,
		Header:       content.Include("header.html"),
		Footer:       content.Include("footer.html"),
		Index:        content.Include("index.html"),
		Post:         content.Include("post.html"),
		Style:        IncludesDir + "/style.css",
		Posts:        []Post{},
		Raws:         []json.RawMessage{},
	}
}

// NewPost builds a post whose source is includes/<fileId>.md.
func NewPost(title, subtitle string, date time.Time) Post {
	id := FileID(title)
	return Post{
		Title:    strings.TrimSpace(title),
		Subtitle: strings.TrimSpace(subtitle),
		FileID:   id,
		Content:  content.Include(id + ".md"),
		Date:     date,
	}
}

// OutputName returns the HTML file name the post renders to.
func (p Post) OutputName() string {
	return SanitizeFileID(p.FileID) + ".html"
}

// HasRemote reports whether git integration is configured.
func (c *Config) HasRemote() bool {
	return strings.TrimSpace(c.GitRemote) != ""
}

// FindPost returns the index of the post with the given file id, or -1.
func (c *Config) FindPost(fileID string) int {
	for i, p := range c.Posts {
		if p.FileID == fileID {
			return i
		}
	}
	return -1
}

// AddPost appends a post to the registry.
func (c *Config) AddPost(p Post) error {
	if c.FindPost(p.FileID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicatePost, p.FileID)
	}
	c.Posts = append(c.Posts, p)
	return nil
}
