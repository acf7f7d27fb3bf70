// Package git provides the git operations tiny needs to version a blog:
// repository creation, remote registration, staging, committing and
// pushing.
//
// Commands go through an injected process.Runner:
//
//	client := git.New(process.NewExecRunner(), ".")
//	if err := client.Add(ctx, "index.html", "tiny.json"); err != nil {
//	    return err
//	}
//	err := client.Commit(ctx, "publish")
//
// Failures are returned as *output.ExitError with ExitSystem. Whether a
// failure aborts the surrounding action is up to the caller; publish and
// init treat them as warnings.
package git
