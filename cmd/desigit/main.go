// Package main provides the entry point for the desigit CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/desigit/internal/ctxlog"
	"github.com/gorewood/desigit/internal/git"
	"github.com/gorewood/desigit/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	a := newApp()
	defer a.close()
	return runWith(a.rootCommand(), os.Stderr)
}

// runWith executes root and returns the process exit code. A panic anywhere
// below is reported as an internal fault on stderr with exit code 1.
func runWith(root *cobra.Command, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", r)
			code = output.ExitFailure
		}
	}()

	root.SetErr(stderr)
	err := fang.Execute(context.Background(), root,
		fang.WithoutVersion(),
		fang.WithErrorHandler(errorHandler(root)),
	)
	return output.GetExitCode(err)
}

// errorHandler returns the single place a failure is printed. Errors that
// were already rendered (a relayed git failure, the unknown-alias report)
// stay silent and only set the exit code. With --json the error is written
// to stdout as {"error": ..., "code": N}.
func errorHandler(root *cobra.Command) fang.ErrorHandler {
	return func(w io.Writer, _ fang.Styles, err error) {
		printer := output.NewPrinter(root.OutOrStdout(), isJSONMode(root), false).WithStderr(w)
		printer.Error(err)
	}
}

// app owns what outlives a single command: the log sink opened by the
// --log-* flags.
type app struct {
	logCloser io.Closer
}

func newApp() *app {
	return &app{}
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
		a.logCloser = nil
	}
}

// rootFlags holds the root-only informational flags.
type rootFlags struct {
	version  bool
	list     bool
	examples bool
}

// newRootCmd creates the root command for the desigit CLI.
func newRootCmd() *cobra.Command {
	return newApp().rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "desigit",
		Short: "Git with Hinglish commands",
		Long: `Desigit - Git with Hinglish commands.

Use Hindi-English (Hinglish) words to run git commands:

  desigit run ped              # git init
  desigit run jodo .           # git add .
  desigit run zimma -m "msg"   # git commit -m "msg"

Everything after the command name is handed to git untouched, and git's
output and exit code come back unchanged. Mistyped names get suggestions.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case flags.version:
				return runVersion(cmd)
			case flags.list:
				return runList(cmd)
			case flags.examples:
				return runExamples(cmd)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd)
	}

	cmd.Flags().BoolVar(&flags.version, "version", false, "Show version information")
	cmd.Flags().BoolVar(&flags.list, "list", false, "List all available commands")
	cmd.Flags().BoolVar(&flags.examples, "examples", false, "Show usage examples")

	// Persistent flags (available to all subcommands)
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().String("git", git.DefaultBinary, "git executable to run")
	cmd.PersistentFlags().String("log-level", "", "Log to stderr at this level: debug, info, warn, error")
	cmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (rotated)")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// setup validates the persistent flags and installs the logger in the
// command's context.
func (a *app) setup(cmd *cobra.Command) error {
	switch mode := flagValue(cmd, "color"); mode {
	case "auto", "always", "never":
	default:
		return output.NewUserError(fmt.Sprintf("invalid --color %q (want auto, always or never)", mode))
	}

	logger, closer, err := ctxlog.Open(ctxlog.Config{
		Level:  flagValue(cmd, "log-level"),
		File:   flagValue(cmd, "log-file"),
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return output.NewUserError(err.Error())
	}
	a.close()
	a.logCloser = closer

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxlog.New(ctx, logger.With("version", version))
	cmd.SetContext(ctx)
	ctxlog.Debug(ctx, "command", "name", cmd.Name())
	return nil
}

// flagValue reads a persistent flag from the command hierarchy.
func flagValue(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// isJSONMode reads the --json persistent flag.
func isJSONMode(cmd *cobra.Command) bool {
	return flagValue(cmd, "json") == "true"
}

// useColor applies --color to w's terminal status.
func useColor(cmd *cobra.Command, w io.Writer) bool {
	return output.ResolveColorMode(flagValue(cmd, "color"), output.IsTTY(w))
}

// gitBinary returns the --git override.
func gitBinary(cmd *cobra.Command) string {
	if b := flagValue(cmd, "git"); b != "" {
		return b
	}
	return git.DefaultBinary
}

// newPrinter builds a printer for cmd's stdout honouring --json and --color.
func newPrinter(cmd *cobra.Command) *output.Printer {
	w := cmd.OutOrStdout()
	return output.NewPrinter(w, isJSONMode(cmd), useColor(cmd, w)).WithStderr(cmd.ErrOrStderr())
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newRunCmd(), "core")

	addGroupedCommand(cmd, newDoctorCmd(), "admin")
	addGroupedCommand(cmd, newServeCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
