package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/desigit/internal/alias"
	"github.com/gorewood/desigit/internal/dispatch"
	"github.com/gorewood/desigit/internal/git"
)

// newRunCmd creates the run command.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run a git command by its Hinglish name",
		Long: `Run a git command by its Hinglish name.

The first argument is the alias; everything after it goes to git exactly as
typed, after the alias's own fixed arguments. git's output, exit code and
stdin pass straight through.

Pass --help or -h after the alias to see what it does instead of running it.
Use -- to send a literal --help on to git.

Examples:
  desigit run haalat                 # git status
  desigit run zimma -m "fix typo"    # git commit -m "fix typo"
  desigit run sab-saaf --dry-run     # git clean -fd --dry-run
  desigit run ped --help             # help for ped`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlias(cmd, args)
		},
	}

	// Stop flag parsing at the alias so git gets -m, --amend and friends.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// runAlias dispatches args and hands back the outcome's error, which already
// carries git's exit code.
func runAlias(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	runner := &git.Runner{
		Binary: gitBinary(cmd),
		Stdin:  cmd.InOrStdin(),
	}
	d := dispatch.New(alias.Default(), runner,
		dispatch.WithOutput(stdout, cmd.ErrOrStderr()),
		dispatch.WithColor(useColor(cmd, stdout)),
	)
	outcome := d.Dispatch(cmd.Context(), args)
	return outcome.Err
}
