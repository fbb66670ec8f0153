package dispatch

import "slices"

// Request is one parsed invocation: the alias and everything after it.
type Request struct {
	Alias string `json:"alias"`
	// ExtraArgs are forwarded to git untouched.
	ExtraArgs []string `json:"extra_args,omitempty"`
	// WantHelp is set when -h or --help appears before a literal "--".
	WantHelp bool `json:"want_help,omitempty"`
}

// ParseRequest splits argv into alias and trailing arguments. It reports
// false for empty input.
func ParseRequest(argv []string) (Request, bool) {
	if len(argv) == 0 {
		return Request{}, false
	}
	return Request{
		Alias:     argv[0],
		ExtraArgs: slices.Clone(argv[1:]),
		WantHelp:  hasHelpFlag(argv),
	}, true
}

// IsHelpFlag reports whether arg asks for help.
func IsHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help"
}

func hasHelpFlag(argv []string) bool {
	for _, arg := range argv {
		if arg == "--" {
			return false
		}
		if IsHelpFlag(arg) {
			return true
		}
	}
	return false
}
