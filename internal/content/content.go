// Package content resolves the content references stored in a blog
// descriptor: literal text embedded in the descriptor, or named files in the
// includes directory.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind tags the variant held by a Ref.
type Kind string

const (
	// KindEmbed is literal text carried in the descriptor.
	KindEmbed Kind = "embed"
	// KindInclude is a file read from the includes directory.
	KindInclude Kind = "include"
)

var (
	// ErrResourceNotFound is returned when an include target does not exist.
	ErrResourceNotFound = errors.New("include not found")
	// ErrUnknownKind is returned when resolving a ref with an unrecognized tag.
	ErrUnknownKind = errors.New("unknown content kind")
	// ErrInvalidName is returned for include names that leave the includes dir.
	ErrInvalidName = errors.New("invalid include name")
	// ErrIO is returned for include reads that fail for reasons other than
	// a missing file.
	ErrIO = errors.New("include read failed")
)

// Ref is a reference to page content.
//
// The JSON form matches the descriptor written by earlier versions of tiny:
//
//	{"type": "include", "path": "header.html"}
//	{"type": "embed", "content": "<p>hi</p>"}
type Ref struct {
	Kind Kind
	// Name is the include file name, relative to the includes directory.
	Name string
	// Text is the literal content of an embed.
	Text string
}

// Include returns a ref to a file in the includes directory.
func Include(name string) Ref {
	return Ref{Kind: KindInclude, Name: name}
}

// Embed returns a ref carrying literal text.
func Embed(text string) Ref {
	return Ref{Kind: KindEmbed, Text: text}
}

// IsZero reports whether the ref is unset.
func (r Ref) IsZero() bool {
	return r.Kind == "" && r.Name == "" && r.Text == ""
}

// String describes the ref for messages.
func (r Ref) String() string {
	switch r.Kind {
	case KindInclude:
		return "include:" + r.Name
	case KindEmbed:
		return fmt.Sprintf("embed(%d bytes)", len(r.Text))
	default:
		return "unknown:" + string(r.Kind)
	}
}

type refJSON struct {
	Type    Kind   `json:"type"`
	Path    string `json:"path,omitempty"`
	Content string `json:"content,omitempty"`
}

// embedJSON keeps the content key of an empty embed.
type embedJSON struct {
	Type    Kind   `json:"type"`
	Content string `json:"content"`
}

// MarshalJSON implements json.Marshaler. A zero ref encodes as null.
func (r Ref) MarshalJSON() ([]byte, error) {
	switch {
	case r.IsZero():
		return []byte("null"), nil
	case r.Kind == KindEmbed:
		return json.Marshal(embedJSON{Type: r.Kind, Content: r.Text})
	default:
		return json.Marshal(refJSON{Type: r.Kind, Path: r.Name, Content: r.Text})
	}
}

// UnmarshalJSON implements json.Unmarshaler. Unknown type tags decode
// without error so the descriptor still loads; resolving them fails.
func (r *Ref) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ref{}
		return nil
	}
	var wire refJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decoding content ref: %w", err)
	}
	*r = Ref{Kind: wire.Type, Name: wire.Path, Text: wire.Content}
	return nil
}

// Resolver maps refs to their text. It performs no caching; resolving an
// unchanged ref twice yields identical text.
type Resolver struct {
	// Dir is the includes directory.
	Dir string
}

// NewResolver returns a Resolver reading includes from dir.
func NewResolver(dir string) *Resolver {
	return &Resolver{Dir: dir}
}

// Resolve returns the text a ref points at.
func (r *Resolver) Resolve(ref Ref) (string, error) {
	switch ref.Kind {
	case KindEmbed:
		return ref.Text, nil
	case KindInclude:
		return r.readInclude(ref.Name)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, ref.Kind)
	}
}

// Path returns the filesystem path of an include name.
func (r *Resolver) Path(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if name == "" || filepath.IsAbs(clean) || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(r.Dir, clean), nil
}

func (r *Resolver) readInclude(name string) (string, error) {
	path, err := r.Path(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrResourceNotFound, path)
		}
		return "", fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}
	return string(data), nil
}
