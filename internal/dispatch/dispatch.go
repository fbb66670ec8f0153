// Package dispatch turns a command line into a git invocation.
//
// A dispatch moves through Idle and Resolving, then Executing or
// Suggesting, and ends in Done. A help request goes from Idle straight to
// Help without resolving the alias. Every branch renders its own output
// and reports an Outcome whose Err is ready to hand back to cobra.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gorewood/desigit/internal/alias"
	"github.com/gorewood/desigit/internal/ctxlog"
	"github.com/gorewood/desigit/internal/git"
	"github.com/gorewood/desigit/internal/output"
	"github.com/gorewood/desigit/internal/suggest"
)

// Usage is printed when run is given nothing to do.
const Usage = "Usage: desigit run <command> [args...]"

// Runner executes git. *git.Runner is the production implementation.
type Runner interface {
	Exec(ctx context.Context, args []string) (git.Result, error)
}

// Kind is the branch a dispatch ended in.
type Kind int

// Dispatch outcomes.
const (
	Noop Kind = iota
	Help
	Executed
	UnknownAlias
	ToolMissing
	Fault
)

var kindNames = [...]string{"noop", "help", "executed", "unknown_alias", "tool_missing", "fault"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// State is a step of the dispatch state machine.
type State string

// States, in the order a dispatch can visit them.
const (
	StateIdle       State = "idle"
	StateResolving  State = "resolving"
	StateExecuting  State = "executing"
	StateSuggesting State = "suggesting"
	StateHelp       State = "help"
	StateDone       State = "done"
)

// Outcome is what one dispatch produced.
type Outcome struct {
	Kind     Kind
	ExitCode int
	Request  Request
	// Argv is the argument vector given to git, when one was built.
	Argv        []string
	Result      *git.Result
	Suggestions []suggest.Candidate
	// Err is nil on exit code 0. Otherwise it is an *output.ExitError that is
	// either already reported or still needs its message printed.
	Err   error
	Trace []State
}

// Dispatcher runs invocations against one alias table.
type Dispatcher struct {
	table          *alias.Table
	runner         Runner
	stdout         io.Writer
	stderr         io.Writer
	color          bool
	maxSuggestions int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOutput sets where relayed and rendered output goes.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(d *Dispatcher) {
		d.stdout = stdout
		d.stderr = stderr
	}
}

// WithColor turns line colouring and styled help on or off.
func WithColor(enabled bool) Option {
	return func(d *Dispatcher) { d.color = enabled }
}

// WithMaxSuggestions caps the suggestion list for unknown aliases.
func WithMaxSuggestions(n int) Option {
	return func(d *Dispatcher) { d.maxSuggestions = n }
}

// New returns a Dispatcher writing to os.Stdout and os.Stderr without colour.
func New(table *alias.Table, runner Runner, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		table:          table,
		runner:         runner,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		maxSuggestions: suggest.DefaultMax,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch handles one invocation. argv[0] is the alias; the rest is
// forwarded. It blocks until git exits.
func (d *Dispatcher) Dispatch(ctx context.Context, argv []string) Outcome {
	run := &dispatchRun{ctx: ctx}
	run.enter(StateIdle)

	req, ok := ParseRequest(argv)
	if !ok {
		d.printer().Println(Usage)
		return run.finish(Outcome{Kind: Noop})
	}
	run.out.Request = req

	if req.WantHelp {
		run.enter(StateHelp)
		return run.finish(d.help(req))
	}

	run.enter(StateResolving)
	if !d.table.IsValid(req.Alias) {
		run.enter(StateSuggesting)
		return run.finish(d.unknown(req))
	}

	argvOut := d.table.Expand(req.Alias, req.ExtraArgs)
	ctxlog.Debug(ctx, "resolved alias", "alias", req.Alias, "argv", argvOut)

	run.enter(StateExecuting)
	return run.finish(d.execute(ctx, req, argvOut))
}

func (d *Dispatcher) execute(ctx context.Context, req Request, argv []string) Outcome {
	out := Outcome{Request: req, Argv: argv}

	res, err := d.runner.Exec(ctx, argv)
	switch {
	case errors.Is(err, git.ErrNotFound):
		out.Kind = ToolMissing
		out.ExitCode = output.ExitFailure
		out.Err = output.NewToolMissingError(err)
		return out
	case err != nil:
		out.Kind = Fault
		out.ExitCode = output.ExitFailure
		out.Err = output.NewInternalError(err.Error(), err)
		return out
	}

	out.Kind = Executed
	out.Result = &res
	out.ExitCode = res.ExitCode

	h := output.NewHighlighter(d.color)
	if err := h.Write(d.stdout, res.Stdout, output.Stdout); err != nil {
		return relayFault(out, err)
	}
	if err := h.Write(d.stderr, res.Stderr, output.Stderr); err != nil {
		return relayFault(out, err)
	}

	if res.ExitCode != output.ExitSuccess {
		out.Err = output.NewReportedError(res.ExitCode)
	}
	return out
}

func relayFault(out Outcome, err error) Outcome {
	out.Kind = Fault
	out.ExitCode = output.ExitFailure
	out.Err = output.NewInternalError("relaying git output: "+err.Error(), err)
	return out
}

func (d *Dispatcher) printer() *output.Printer {
	return output.NewPrinter(d.stdout, false, d.color).WithStderr(d.stderr)
}

// dispatchRun records the states one dispatch passes through.
type dispatchRun struct {
	ctx context.Context
	out Outcome
}

func (r *dispatchRun) enter(s State) {
	r.out.Trace = append(r.out.Trace, s)
	ctxlog.Debug(r.ctx, "dispatch state", "state", string(s))
}

func (r *dispatchRun) finish(o Outcome) Outcome {
	o.Request = r.out.Request
	r.enter(StateDone)
	o.Trace = r.out.Trace
	ctxlog.Debug(r.ctx, "dispatch finished",
		"kind", o.Kind.String(), "exit_code", o.ExitCode, "alias", o.Request.Alias)
	return o
}
