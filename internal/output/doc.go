// Package output provides structured output handling for the desigit CLI.
//
// # Printer
//
// The Printer is used for everything desigit itself has to say: listings,
// per-alias help, doctor checks and errors. It switches between JSON and
// human output with the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, useColor).WithStderr(cmd.ErrOrStderr())
//	printer.Section("Basic Snapshotting")
//	printer.Mapping("haalat", "git status", 15)
//	printer.Error(err)
//
// Colors are forced on or off by the isTTY argument rather than detected from
// the writer, so ResolveColorMode decides once for the whole process.
//
// # Highlighter
//
// Output relayed from git goes through a Highlighter instead. It tags whole
// lines with SGR sequences and never rewrites the bytes in between:
//
//	h := output.NewHighlighter(useColor)
//	h.Write(os.Stdout, result.Stdout, output.Stdout)
//	h.Write(os.Stderr, result.Stderr, output.Stderr)
//
// # Exit Codes
//
//	output.ExitSuccess // 0: success, no-op, informational
//	output.ExitFailure // 1: unknown alias, git missing, internal fault
//
// Any other code is git's own and is passed through. NewReportedError carries
// such a code once its output has been relayed, so the top-level handler
// exits with it without printing anything more.
package output
