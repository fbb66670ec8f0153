package dispatch

import (
	"github.com/gorewood/desigit/internal/output"
	"github.com/gorewood/desigit/internal/suggest"
)

// help renders per-alias help. Nothing is executed.
func (d *Dispatcher) help(req Request) Outcome {
	p := d.printer()
	entry, ok := d.table.Lookup(req.Alias)
	if !ok {
		p.Stderr("No help available for unknown command: %s\n", req.Alias)
		return Outcome{
			Kind:     Help,
			ExitCode: output.ExitFailure,
			Err:      output.NewReportedError(output.ExitFailure),
		}
	}

	s := p.Styles()
	p.Println()
	p.Print("%s (%s)\n", s.Alias.Render(entry.Alias), s.Target.Render("git "+entry.Target))
	p.Print("Category: %s\n", s.Category.Render(string(entry.Category)))
	p.Println()
	p.Println(d.table.HelpText(entry.Alias))
	for _, ex := range d.table.ExamplesFor(entry.Alias) {
		p.Println()
		p.Print("Example: %s\n", ex.Invocation)
	}
	return Outcome{Kind: Help}
}

// unknown renders the not-found message with suggestions on stderr.
func (d *Dispatcher) unknown(req Request) Outcome {
	p := d.printer()
	ranked := suggest.Rank(d.table, req.Alias, d.maxSuggestions)

	p.Stderr("Unknown command: %s\n", req.Alias)
	if len(ranked) > 0 {
		s := p.Styles()
		p.Stderr("\nDid you mean one of these?\n")
		for _, c := range ranked {
			p.Stderr("  %s (%s)\n", s.Alias.Render(c.Alias), s.Target.Render("git "+c.Target))
		}
	}
	p.Stderr("\nUse --list to see all available commands.\n")

	return Outcome{
		Kind:        UnknownAlias,
		ExitCode:    output.ExitFailure,
		Suggestions: ranked,
		Err:         output.NewReportedError(output.ExitFailure),
	}
}
