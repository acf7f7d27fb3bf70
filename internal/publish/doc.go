// Package publish renders every page of a blog and writes it to disk.
//
// A publish run has three phases:
//
//  1. Build one PageSpec for the index and one per post. Post sources are
//     resolved, stripped of front matter and converted to HTML here.
//  2. Render every spec in memory. A failure in this phase leaves the
//     working directory untouched.
//  3. Write the pages in order. The first write failure stops the run.
//
// When the descriptor names a git remote, the written pages and the
// descriptor are then committed and pushed. That step only warns on
// failure.
package publish
