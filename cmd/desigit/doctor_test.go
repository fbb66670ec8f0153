package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorewood/desigit/internal/git"
	"github.com/gorewood/desigit/internal/output"
)

func findCheck(t *testing.T, checks []checkResult, name string) checkResult {
	t.Helper()
	for _, c := range checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no %q check in %+v", name, checks)
	return checkResult{}
}

func TestGatherDoctorChecks(t *testing.T) {
	repo := initRepo(t)

	tests := []struct {
		name         string
		dir          string
		wantRepo     checkStatus
		wantRepoText string
	}{
		{name: "inside a repository", dir: repo, wantRepo: checkPass, wantRepoText: "(branch main)"},
		{name: "outside a repository", dir: t.TempDir(), wantRepo: checkWarn, wantRepoText: "not inside a git repository"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := gatherDoctorChecks(context.Background(), &git.Runner{Binary: missingGit}, tt.dir)

			gitCheck := findCheck(t, result.Checks, "git")
			if gitCheck.Status != checkFail || gitCheck.Message != output.ToolMissingMessage {
				t.Errorf("git check = %+v, want fail with tool-missing message", gitCheck)
			}

			repoCheck := findCheck(t, result.Checks, "repository")
			if repoCheck.Status != tt.wantRepo {
				t.Errorf("repository status = %s, want %s", repoCheck.Status, tt.wantRepo)
			}
			if !strings.Contains(repoCheck.Message, tt.wantRepoText) {
				t.Errorf("repository message = %q, want it to contain %q", repoCheck.Message, tt.wantRepoText)
			}

			aliasCheck := findCheck(t, result.Checks, "aliases")
			if aliasCheck.Status != checkPass || !strings.HasPrefix(aliasCheck.Message, "87 aliases") {
				t.Errorf("aliases check = %+v", aliasCheck)
			}

			if result.Summary.Failed != 1 {
				t.Errorf("failed = %d, want 1", result.Summary.Failed)
			}
		})
	}
}

func TestDoctorCommand_MissingGitJSON(t *testing.T) {
	t.Chdir(initRepo(t))

	stdout, _, err := execute(t, "--git", missingGit, "doctor", "--json")
	if code := output.GetExitCode(err); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !output.IsReported(err) {
		t.Error("doctor renders its own failure")
	}

	var result doctorResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\n%s", err, stdout)
	}
	if len(result.Checks) != 3 {
		t.Fatalf("got %d checks, want 3", len(result.Checks))
	}
	if result.Checks[0].Hint == "" {
		t.Error("a missing git should come with a hint")
	}
	if result.Summary.Passed != 2 || result.Summary.Failed != 1 {
		t.Errorf("summary = %+v", result.Summary)
	}
}

func TestDoctorCommand_Healthy(t *testing.T) {
	requireGit(t)
	t.Chdir(initRepo(t))

	stdout, _, err := execute(t, "doctor")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"desigit doctor", "✓ git: git version", "✓ repository:", "✓ aliases:", "3 passed, 0 warnings, 0 failed"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("doctor output should contain %q: %q", want, stdout)
		}
	}
}

func TestDoctorCommand_WarnOnlyExitsZero(t *testing.T) {
	requireGit(t)
	t.Chdir(t.TempDir())

	stdout, _, err := execute(t, "doctor")
	if err != nil {
		t.Fatalf("a warning alone should not fail doctor: %v", err)
	}
	if !strings.Contains(stdout, "! repository: not inside a git repository") {
		t.Errorf("doctor should warn outside a repository: %q", stdout)
	}
}
