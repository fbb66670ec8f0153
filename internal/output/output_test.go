package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrinter_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	err := printer.WriteJSON(map[string]any{"alias": "ped", "target": "init"})
	if err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["alias"] != "ped" {
		t.Errorf("alias = %v, want %q", result["alias"], "ped")
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewToolMissingError(nil))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["error"] != ToolMissingMessage {
		t.Errorf("error = %v, want %q", result["error"], ToolMissingMessage)
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitFailure {
		t.Errorf("code = %v, want %d", result["code"], ExitFailure)
	}
}

func TestPrinter_Human_Error(t *testing.T) {
	var stdout, stderr bytes.Buffer
	printer := NewPrinter(&stdout, false, false).WithStderr(&stderr)

	printer.Error(errors.New("something broke"))

	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	if stderr.String() != "Error: something broke\n" {
		t.Errorf("stderr = %q, want %q", stderr.String(), "Error: something broke\n")
	}
}

func TestPrinter_Error_ReportedIsSilent(t *testing.T) {
	var buf bytes.Buffer
	for _, jsonMode := range []bool{false, true} {
		printer := NewPrinter(&buf, jsonMode, false)
		printer.Error(NewReportedError(128))
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty for reported errors", buf.String())
	}
}

func TestPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Print("Hello, %s!", "world")

	if buf.String() != "Hello, world!" {
		t.Errorf("output = %q, want %q", buf.String(), "Hello, world!")
	}
}

func TestPrinter_Println(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Println("Hello")

	if buf.String() != "Hello\n" {
		t.Errorf("output = %q, want %q", buf.String(), "Hello\n")
	}
}

func TestPrinter_IsJSON(t *testing.T) {
	var buf bytes.Buffer

	if !NewPrinter(&buf, true, false).IsJSON() {
		t.Error("IsJSON() should return true for JSON printer")
	}
	if NewPrinter(&buf, false, false).IsJSON() {
		t.Error("IsJSON() should return false for human printer")
	}
}

func TestPrinter_SectionAndMapping(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Section("Basic Snapshotting")
	printer.Mapping("haalat", "git status", 15)

	want := "\nBasic Snapshotting:\n  haalat          -> git status\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.KeyValue("Initialize", "desigit run ped", 20)

	want := "  Initialize           : desigit run ped\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_Check(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Check("fail", "git", "not found", "install git")
	printer.Check("pass", "repository", "/tmp/repo", "")

	out := buf.String()
	if !strings.Contains(out, "✗ git: not found\n      install git\n") {
		t.Errorf("output = %q, missing fail line with hint", out)
	}
	if !strings.Contains(out, "✓ repository: /tmp/repo\n") {
		t.Errorf("output = %q, missing pass line", out)
	}
}

func TestErrorJSON_Format(t *testing.T) {
	result := ErrorJSON("test error", ExitFailure)

	var parsed struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("Failed to parse ErrorJSON output: %v", err)
	}
	if parsed.Error != "test error" {
		t.Errorf("error = %q, want %q", parsed.Error, "test error")
	}
	if parsed.Code != ExitFailure {
		t.Errorf("code = %d, want %d", parsed.Code, ExitFailure)
	}
}

func TestMustWrite_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mustWrite should panic on write error")
		}
	}()
	mustWrite(0, errors.New("broken pipe"))
}
