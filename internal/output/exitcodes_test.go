package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitFailure", ExitFailure, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name         string
		err          *ExitError
		wantCode     int
		wantErrorStr string
		wantReported bool
	}{
		{
			name:         "user error",
			err:          NewUserError("missing command"),
			wantCode:     ExitFailure,
			wantErrorStr: "missing command",
		},
		{
			name:         "tool missing",
			err:          NewToolMissingError(nil),
			wantCode:     ExitFailure,
			wantErrorStr: "git is not installed or not in PATH",
		},
		{
			name:         "internal error",
			err:          NewInternalError("dispatch failed", errors.New("boom")),
			wantCode:     ExitFailure,
			wantErrorStr: "dispatch failed",
		},
		{
			name:         "reported pass-through code",
			err:          NewReportedError(128),
			wantCode:     128,
			wantErrorStr: "exit status 128",
			wantReported: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantErrorStr {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantErrorStr)
			}
			if tt.err.Reported != tt.wantReported {
				t.Errorf("Reported = %v, want %v", tt.err.Reported, tt.wantReported)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("exec: \"git\": executable file not found in $PATH")
	err := NewToolMissingError(underlying)

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}

	wrapped := fmt.Errorf("running ped: %w", err)
	if GetExitCode(wrapped) != ExitFailure {
		t.Errorf("GetExitCode(wrapped) = %d, want %d", GetExitCode(wrapped), ExitFailure)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "user error", err: NewUserError("bad input"), expected: ExitFailure},
		{name: "reported child code", err: NewReportedError(3), expected: 3},
		{name: "wrapped reported code", err: fmt.Errorf("ctx: %w", NewReportedError(129)), expected: 129},
		{name: "regular error defaults to failure", err: errors.New("some error"), expected: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetExitCode(tt.err)
			if got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestIsReported(t *testing.T) {
	if IsReported(nil) {
		t.Error("IsReported(nil) should be false")
	}
	if IsReported(NewUserError("x")) {
		t.Error("IsReported(user error) should be false")
	}
	if !IsReported(fmt.Errorf("wrap: %w", NewReportedError(1))) {
		t.Error("IsReported(wrapped reported) should be true")
	}
}
