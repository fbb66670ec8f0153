package output

import (
	"io"

	"github.com/mattn/go-isatty"
)

// ResolveColorMode determines the effective isTTY value based on the --color
// flag and actual TTY detection. The colorMode parameter accepts "never",
// "always", or "auto":
//   - "never":  always disable colors (returns false)
//   - "always": always enable colors (returns true)
//   - "auto":   use the detected isTTY value (default behavior)
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// fdWriter is satisfied by *os.File and anything else backed by a descriptor.
type fdWriter interface {
	Fd() uintptr
}

// IsTTY checks if a writer is a terminal, including Cygwin/MSYS ptys.
func IsTTY(writer io.Writer) bool {
	f, ok := writer.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
