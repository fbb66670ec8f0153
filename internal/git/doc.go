// Package git runs the git executable for the desigit CLI.
//
// desigit never interprets what git does. It builds an argument vector, hands
// it to a Runner and relays whatever comes back.
//
// # Running Git
//
// Exec is the dispatch path. It captures both streams and treats a non-zero
// exit as an ordinary Result:
//
//	r := git.NewRunner()
//	res, err := r.Exec(ctx, []string{"clean", "-fd", "--dry-run"})
//	if errors.Is(err, git.ErrNotFound) {
//	    return output.NewToolMissingError(err)
//	}
//	os.Exit(res.ExitCode)
//
// For internal queries where a failure is an error, use RunContext, which
// returns trimmed stdout or an *output.ExitError:
//
//	version, err := r.Version(ctx)
//	top, err := r.RunContext(ctx, "rev-parse", "--show-toplevel")
//
// # Repository Inspection
//
// OpenRepo uses go-git to find the enclosing repository and its current
// branch without spawning anything:
//
//	info, err := git.OpenRepo(".")
//	if errors.Is(err, git.ErrNotRepo) { ... }
package git
