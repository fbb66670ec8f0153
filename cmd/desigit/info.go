package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/desigit/internal/alias"
	"github.com/gorewood/desigit/internal/git"
)

// Column widths for --list and --examples.
const (
	listAliasWidth     = 15
	examplesTitleWidth = 20
)

// runVersion prints desigit's version and, when git can be run, git's.
func runVersion(cmd *cobra.Command) error {
	printer := newPrinter(cmd)
	runner := &git.Runner{Binary: gitBinary(cmd)}
	gitVersion, err := runner.Version(cmd.Context())
	if err != nil {
		gitVersion = ""
	}

	if printer.IsJSON() {
		data := map[string]any{"version": buildVersion()}
		if gitVersion != "" {
			data["git"] = gitVersion
		}
		return printer.WriteJSON(data)
	}

	printer.Print("desigit version %s\n", buildVersion())
	if gitVersion != "" {
		printer.Println(gitVersion)
	}
	return nil
}

// listCategory is one --list --json group.
type listCategory struct {
	Category string      `json:"category"`
	Title    string      `json:"title"`
	Aliases  []listAlias `json:"aliases"`
}

type listAlias struct {
	Alias  string `json:"alias"`
	Target string `json:"target"`
}

// runList prints every category in display order with its aliases.
func runList(cmd *cobra.Command) error {
	printer := newPrinter(cmd)
	groups := groupAliases(alias.Default())

	if printer.IsJSON() {
		return printer.WriteJSON(groups)
	}

	printer.Print("\nAvailable Command Categories:\n")
	for _, group := range groups {
		printer.Section(group.Title)
		for _, a := range group.Aliases {
			printer.Mapping(a.Alias, "git "+a.Target, listAliasWidth)
		}
	}
	return nil
}

// groupAliases buckets the table by category, skipping empty categories.
func groupAliases(table *alias.Table) []listCategory {
	groups := make([]listCategory, 0, len(table.Categories()))
	for _, info := range table.Categories() {
		entries := table.ByCategory(info.Tag)
		if len(entries) == 0 {
			continue
		}
		group := listCategory{
			Category: string(info.Tag),
			Title:    info.Title,
			Aliases:  make([]listAlias, 0, len(entries)),
		}
		for _, e := range entries {
			group.Aliases = append(group.Aliases, listAlias{Alias: e.Alias, Target: e.Target})
		}
		groups = append(groups, group)
	}
	return groups
}

// runExamples prints the curated example table.
func runExamples(cmd *cobra.Command) error {
	printer := newPrinter(cmd)
	examples := alias.Default().Examples()

	if printer.IsJSON() {
		return printer.WriteJSON(examples)
	}

	printer.Print("\nCommon Usage Examples:\n")
	for _, ex := range examples {
		printer.KeyValue(ex.Title, ex.Invocation, examplesTitleWidth)
	}
	return nil
}
