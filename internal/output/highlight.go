package output

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Tone is the colour class of one relayed line.
type Tone int

// Tones, in the order ClassifyLine tests for them.
const (
	TonePlain    Tone = iota
	ToneAdded         // line starts with "+"
	ToneRemoved       // line starts with "-"
	ToneModified      // line starts with "modified:"
	ToneBranch        // line mentions "branch", any case
	ToneError         // any line on stderr
)

// Stream identifies which child stream a chunk of text came from.
type Stream int

// Streams.
const (
	Stdout Stream = iota
	Stderr
)

// ClassifyLine picks the tone for a stdout line. The first matching rule
// wins; a line with no match stays plain.
func ClassifyLine(line string) Tone {
	switch {
	case strings.HasPrefix(line, "+"):
		return ToneAdded
	case strings.HasPrefix(line, "-"):
		return ToneRemoved
	case strings.HasPrefix(line, "modified:"):
		return ToneModified
	case strings.Contains(strings.ToLower(line), "branch"):
		return ToneBranch
	default:
		return TonePlain
	}
}

var toneColors = map[Tone]string{
	ToneAdded:    "2",
	ToneRemoved:  "1",
	ToneModified: "3",
	ToneBranch:   "12",
	ToneError:    "1",
}

// Highlighter relays git output line by line, wrapping each classified line
// in SGR sequences. The bytes of the output itself are never changed, and
// with the Ascii profile the relay is byte-identical to the input.
type Highlighter struct {
	profile termenv.Profile
}

// NewHighlighter returns a Highlighter that colours when enabled is true.
func NewHighlighter(enabled bool) *Highlighter {
	if enabled {
		return &Highlighter{profile: termenv.ANSI}
	}
	return &Highlighter{profile: termenv.Ascii}
}

// NewHighlighterWithProfile is NewHighlighter with an explicit profile.
func NewHighlighterWithProfile(profile termenv.Profile) *Highlighter {
	return &Highlighter{profile: profile}
}

// Enabled reports whether lines will be coloured.
func (h *Highlighter) Enabled() bool {
	return h.profile != termenv.Ascii
}

// Write relays text to w. Line terminators stay outside the escapes so a
// trailing newline, or the lack of one, is preserved exactly.
func (h *Highlighter) Write(w io.Writer, text string, stream Stream) error {
	if text == "" {
		return nil
	}
	if !h.Enabled() {
		_, err := io.WriteString(w, text)
		return err
	}

	var b strings.Builder
	b.Grow(len(text) + 16)
	for line := range strings.SplitAfterSeq(text, "\n") {
		body, nl := strings.CutSuffix(line, "\n")
		tone := ToneError
		if stream == Stdout {
			tone = ClassifyLine(body)
		}
		b.WriteString(h.Paint(body, tone))
		if nl {
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Paint wraps s in the escape for tone. Plain text and empty strings are
// returned as is.
func (h *Highlighter) Paint(s string, tone Tone) string {
	code, ok := toneColors[tone]
	if !ok || s == "" {
		return s
	}
	return h.profile.String(s).Foreground(h.profile.Color(code)).String()
}
