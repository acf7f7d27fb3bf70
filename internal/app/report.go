package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorewood/tiny/internal/blog"
	"github.com/gorewood/tiny/internal/git"
	"github.com/gorewood/tiny/internal/publish"
)

func (a *App) reportInit(res *InitResult) error {
	msg := fmt.Sprintf("Created %s for %q", blog.DescriptorName, res.Config.BlogName)
	if res.Git {
		msg += " with remote " + res.Config.GitRemote
	}
	if err := a.Printer.Success(map[string]any{
		"status":    "ok",
		"message":   msg,
		"blogName":  res.Config.BlogName,
		"templates": res.Templates,
		"git":       res.Git,
	}); err != nil {
		return err
	}

	if !a.Printer.IsJSON() && len(res.Templates) > 0 {
		a.Printer.KeyValue("Templates", strings.Join(res.Templates, ", "))
	}
	return nil
}

func (a *App) reportBlog(post *blog.Post) error {
	source := filepath.ToSlash(filepath.Join(blog.IncludesDir, post.Content.Name))
	return a.Printer.Success(map[string]any{
		"status":  "ok",
		"message": fmt.Sprintf("Added %q (%s)", post.Title, source),
		"fileId":  post.FileID,
		"source":  source,
	})
}

func (a *App) reportPublish(res *publish.Result) error {
	msg := fmt.Sprintf("Published %d pages", len(res.Written))
	if res.Pushed {
		msg += " and pushed to " + git.DefaultRemote
	} else if res.Committed {
		msg += " and committed"
	}
	if err := a.Printer.Success(map[string]any{
		"status":    "ok",
		"message":   msg,
		"written":   res.Written,
		"committed": res.Committed,
		"pushed":    res.Pushed,
	}); err != nil {
		return err
	}

	if !a.Printer.IsJSON() {
		for _, path := range res.Written {
			a.Printer.Print("  %s\n", a.Printer.Styles().Dim.Render(path))
		}
	}
	return nil
}

func (a *App) reportList(posts []blog.Post) error {
	if a.Printer.IsJSON() {
		return a.Printer.WriteJSON(map[string]any{"posts": posts})
	}
	if len(posts) == 0 {
		a.Printer.Println("No posts yet.")
		return nil
	}

	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{p.Title, p.OutputName(), p.Date.Format(time.DateOnly)})
	}
	a.Printer.Table([]string{"Title", "Page", "Date"}, rows)
	return nil
}
