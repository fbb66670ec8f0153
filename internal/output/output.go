package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer handles formatted output to a writer.
// It supports both JSON and human-readable output modes.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Bold     lipgloss.Style
	Dim      lipgloss.Style
	Title    lipgloss.Style
	Key      lipgloss.Style
	Alias    lipgloss.Style
	Target   lipgloss.Style
	Category lipgloss.Style
}

// NewPrinter creates a new Printer.
// If json is true, output will be JSON formatted.
// If isTTY is true, colors will be enabled for human output regardless of
// what the writer itself is, so --color always works through a pipe.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	r := lipgloss.NewRenderer(writer)
	if isTTY {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	styles := &Styles{
		Error:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success:  r.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning:  r.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:     r.NewStyle().Bold(true),
		Dim:      r.NewStyle().Foreground(lipgloss.Color("8")),
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // Blue
		Key:      r.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Alias:    r.NewStyle().Foreground(lipgloss.Color("2")),
		Target:   r.NewStyle().Foreground(lipgloss.Color("3")),
		Category: r.NewStyle().Foreground(lipgloss.Color("4")),
	}

	if !isTTY {
		plain := r.NewStyle()
		styles = &Styles{
			Error: plain, Success: plain, Warning: plain, Bold: plain, Dim: plain,
			Title: plain, Key: plain, Alias: plain, Target: plain, Category: plain,
		}
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors and warnings in human mode.
// In JSON mode, errors still go to the main writer (structured protocol).
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// Styles returns the styles in effect. They are plain when colors are off.
func (p *Printer) Styles() *Styles {
	return p.styles
}

// Error outputs an error.
// Reported errors print nothing; their output has already been written.
// For JSON mode, outputs {"error": "...", "code": N} to stdout.
// For human mode, outputs "Error: <message>" to stderr (if set).
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	if exitErr.Reported {
		return
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Error(), exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Error()))
}

// Stderr writes a message to the error writer.
// No-op in JSON mode.
func (p *Printer) Stderr(format string, args ...any) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintf(p.errW, format, args...))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteJSON encodes any data as JSON and writes it.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N}
func ErrorJSON(message string, code int) []byte {
	data := map[string]any{
		"error": message,
		"code":  code,
	}
	result, _ := json.Marshal(data)
	return result
}

// mustWrite panics if a write operation fails.
// Writes go to stdout/stderr or buffers and are not expected to fail; the
// CLI boundary recovers the panic into an internal error.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

// Section renders a category header: a blank line then "Title:".
func (p *Printer) Section(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Title.Render(title+":")))
}

// Mapping renders "  <from> -> <to>" with from padded to width.
func (p *Printer) Mapping(from, to string, width int) {
	mustWrite(fmt.Fprintf(p.w, "  %s -> %s\n",
		p.styles.Alias.Render(padRight(from, width)), p.styles.Target.Render(to)))
}

// KeyValue renders "  <key> : <value>" with key padded to width.
func (p *Printer) KeyValue(key, value string, width int) {
	mustWrite(fmt.Fprintf(p.w, "  %s : %s\n", p.styles.Key.Render(padRight(key, width)), value))
}

// Check renders one doctor-style status line.
// status is "pass", "warn" or "fail"; hint is printed indented when set.
func (p *Printer) Check(status, name, message, hint string) {
	var icon string
	switch status {
	case "pass":
		icon = p.styles.Success.Render("✓")
	case "warn":
		icon = p.styles.Warning.Render("!")
	default:
		icon = p.styles.Error.Render("✗")
	}
	mustWrite(fmt.Fprintf(p.w, "  %s %s: %s\n", icon, p.styles.Bold.Render(name), message))
	if hint != "" {
		mustWrite(fmt.Fprintf(p.w, "      %s\n", p.styles.Dim.Render(hint)))
	}
}

// padRight pads a string with spaces to reach the target width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
