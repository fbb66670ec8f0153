package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/desigit/internal/alias"
	"github.com/gorewood/desigit/internal/ctxlog"
	"github.com/gorewood/desigit/internal/git"
	"github.com/gorewood/desigit/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results.
type doctorResult struct {
	Version string        `json:"version"`
	Checks  []checkResult `json:"checks"`
	Summary doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that git is available and where you are",
		Long: `Check that desigit can do its job here.

Checks:
  git         - the git executable runs (fails when it is missing)
  repository  - the current directory is inside a repository (warns if not)
  aliases     - the built-in alias table loaded

Exits 1 only when git cannot be run.

Examples:
  desigit doctor                   # Run all checks
  desigit doctor --json            # Output results as JSON
  desigit doctor --git /opt/git    # Check a specific git executable`,
		Args: cobra.NoArgs,
		RunE: runDoctor,
	}
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)
	runner := &git.Runner{Binary: gitBinary(cmd)}

	result := gatherDoctorChecks(cmd.Context(), runner, ".")
	ctxlog.Debug(cmd.Context(), "doctor finished",
		"passed", result.Summary.Passed,
		"warnings", result.Summary.Warnings,
		"failed", result.Summary.Failed,
	)

	if printer.IsJSON() {
		if err := printer.WriteJSON(result); err != nil {
			return err
		}
	} else {
		outputDoctorHuman(printer, result)
	}

	if result.Summary.Failed > 0 {
		return output.NewReportedError(output.ExitFailure)
	}
	return nil
}

// gatherDoctorChecks runs all health checks and returns results.
func gatherDoctorChecks(ctx context.Context, runner *git.Runner, dir string) *doctorResult {
	result := &doctorResult{
		Version: buildVersion(),
		Checks: []checkResult{
			checkGit(ctx, runner),
			checkRepository(dir),
			checkAliases(alias.Default()),
		},
	}

	for _, check := range result.Checks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}
	return result
}

func checkGit(ctx context.Context, runner *git.Runner) checkResult {
	check := checkResult{Name: "git"}
	v, err := runner.Version(ctx)
	switch {
	case errors.Is(err, git.ErrNotFound):
		check.Status = checkFail
		check.Message = output.ToolMissingMessage
		check.Hint = "install git, or point --git at the executable"
	case err != nil:
		check.Status = checkFail
		check.Message = err.Error()
	default:
		check.Status = checkPass
		check.Message = v
	}
	return check
}

func checkRepository(dir string) checkResult {
	check := checkResult{Name: "repository"}
	info, err := git.OpenRepo(dir)
	switch {
	case errors.Is(err, git.ErrNotRepo):
		check.Status = checkWarn
		check.Message = "not inside a git repository"
		check.Hint = "most commands need one; 'desigit run ped' creates it"
		return check
	case err != nil:
		check.Status = checkWarn
		check.Message = err.Error()
		return check
	}

	check.Status = checkPass
	switch {
	case info.Bare:
		check.Message = info.Root + " (bare)"
	case info.Detached:
		check.Message = info.Root + " (detached HEAD)"
	default:
		check.Message = fmt.Sprintf("%s (branch %s)", info.Root, info.Branch)
	}
	return check
}

func checkAliases(table *alias.Table) checkResult {
	return checkResult{
		Name:    "aliases",
		Status:  checkPass,
		Message: fmt.Sprintf("%d aliases in %d categories", table.Len(), len(table.Categories())),
	}
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult) {
	printer.Println()
	printer.Print("desigit doctor %s\n", result.Version)
	printer.Println()

	for _, check := range result.Checks {
		printer.Check(string(check.Status), check.Name, check.Message, check.Hint)
	}

	printer.Println()
	printer.Print("%d passed, %d warnings, %d failed\n",
		result.Summary.Passed, result.Summary.Warnings, result.Summary.Failed)
}
