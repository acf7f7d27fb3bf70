package render

import (
	"fmt"
	"time"

	"github.com/gorewood/tiny/internal/blog"
	"github.com/gorewood/tiny/internal/content"
)

// Resolver maps content refs to text.
type Resolver interface {
	Resolve(ref content.Ref) (string, error)
}

// Assembler composes pages as header + content + footer and renders them.
type Assembler struct {
	resolver Resolver
	now      func() time.Time
}

// NewAssembler creates an Assembler. If now is nil, time.Now is used.
func NewAssembler(resolver Resolver, now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{resolver: resolver, now: now}
}

// Assemble resolves the header, body and footer of a page, joins them, and
// renders the result against cfg: built-in tokens, the extra tokens, and the
// repeated block over cfg.Posts. The first resolve failure is returned.
func (a *Assembler) Assemble(cfg *blog.Config, body content.Ref, extra map[string]string) (string, error) {
	header, err := a.resolver.Resolve(cfg.Header)
	if err != nil {
		return "", fmt.Errorf("resolving header: %w", err)
	}
	main, err := a.resolver.Resolve(body)
	if err != nil {
		return "", fmt.Errorf("resolving page content: %w", err)
	}
	footer, err := a.resolver.Resolve(cfg.Footer)
	if err != nil {
		return "", fmt.Errorf("resolving footer: %w", err)
	}

	global := chain(FixedFor(cfg, a.now()).lookup, extraLookup(extra))
	return renderPage(header+main+footer, global, cfg.Posts), nil
}
