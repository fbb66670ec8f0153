package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/desigit/internal/alias"
	"github.com/gorewood/desigit/internal/suggest"
)

// maxSuggestLimit caps suggest_aliases so one call cannot dump the table.
const maxSuggestLimit = 10

// --- Shared types ---

// AliasInfo is one alias table entry.
type AliasInfo struct {
	Alias    string `json:"alias"          jsonschema:"Hinglish alias name"`
	Target   string `json:"target"         jsonschema:"git command it runs, without the leading 'git'"`
	Category string `json:"category"       jsonschema:"category tag"`
	Help     string `json:"help,omitempty" jsonschema:"curated help text, when there is one"`
}

// SuggestionInfo is a ranked close match.
type SuggestionInfo struct {
	Alias  string  `json:"alias"  jsonschema:"suggested alias"`
	Target string  `json:"target" jsonschema:"git command the suggestion runs"`
	Score  float64 `json:"score"  jsonschema:"similarity ratio between 0.6 and 1"`
}

func toAliasInfo(e alias.Entry) AliasInfo {
	return AliasInfo{Alias: e.Alias, Target: e.Target, Category: string(e.Category), Help: e.Help}
}

func toSuggestionInfos(ranked []suggest.Candidate) []SuggestionInfo {
	out := make([]SuggestionInfo, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, SuggestionInfo{Alias: c.Alias, Target: c.Target, Score: c.Score})
	}
	return out
}

// --- list_aliases ---

// ListAliasesInput is the input for the list_aliases tool.
type ListAliasesInput struct {
	Category string `json:"category,omitempty" jsonschema:"only list aliases in this category"`
}

// ListAliasesOutput is the output for the list_aliases tool.
type ListAliasesOutput struct {
	Count   int         `json:"count"   jsonschema:"number of aliases returned"`
	Aliases []AliasInfo `json:"aliases" jsonschema:"aliases in table order"`
}

func handleListAliases(table *alias.Table) mcp.ToolHandlerFor[ListAliasesInput, ListAliasesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListAliasesInput) (*mcp.CallToolResult, ListAliasesOutput, error) {
		entries := table.All()
		if input.Category != "" {
			category := alias.Category(strings.ToLower(strings.TrimSpace(input.Category)))
			if !hasCategory(table, category) {
				return nil, ListAliasesOutput{}, fmt.Errorf("unknown category %q (valid: %s)",
					input.Category, strings.Join(categoryTags(table), ", "))
			}
			entries = table.ByCategory(category)
		}

		out := ListAliasesOutput{Aliases: make([]AliasInfo, 0, len(entries))}
		for _, e := range entries {
			out.Aliases = append(out.Aliases, toAliasInfo(e))
		}
		out.Count = len(out.Aliases)
		return nil, out, nil
	}
}

func hasCategory(table *alias.Table, category alias.Category) bool {
	for _, info := range table.Categories() {
		if info.Tag == category {
			return true
		}
	}
	return false
}

func categoryTags(table *alias.Table) []string {
	var tags []string
	for _, info := range table.Categories() {
		tags = append(tags, string(info.Tag))
	}
	return tags
}

// --- resolve_alias ---

// ResolveAliasInput is the input for the resolve_alias tool.
type ResolveAliasInput struct {
	Alias string   `json:"alias"          jsonschema:"alias to resolve"`
	Args  []string `json:"args,omitempty" jsonschema:"extra arguments appended after the alias's fixed tokens"`
}

// ResolveAliasOutput is the output for the resolve_alias tool.
type ResolveAliasOutput struct {
	Alias       string           `json:"alias"                 jsonschema:"the alias as given"`
	Valid       bool             `json:"valid"                 jsonschema:"whether the alias exists"`
	Target      string           `json:"target,omitempty"      jsonschema:"git command the alias runs"`
	Category    string           `json:"category,omitempty"    jsonschema:"category tag"`
	Help        string           `json:"help,omitempty"        jsonschema:"help text"`
	Argv        []string         `json:"argv,omitempty"        jsonschema:"arguments desigit would pass to git"`
	Command     string           `json:"command,omitempty"     jsonschema:"equivalent desigit invocation, shell-quoted"`
	Examples    []string         `json:"examples,omitempty"    jsonschema:"curated example invocations"`
	Suggestions []SuggestionInfo `json:"suggestions,omitempty" jsonschema:"close matches when the alias is unknown"`
}

func handleResolveAlias(table *alias.Table) mcp.ToolHandlerFor[ResolveAliasInput, ResolveAliasOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ResolveAliasInput) (*mcp.CallToolResult, ResolveAliasOutput, error) {
		name := strings.TrimSpace(input.Alias)
		if name == "" {
			return nil, ResolveAliasOutput{}, errors.New("alias is required")
		}

		out := ResolveAliasOutput{Alias: name}
		entry, ok := table.Lookup(name)
		if !ok {
			out.Suggestions = toSuggestionInfos(suggest.Rank(table, name, suggest.DefaultMax))
			return nil, out, nil
		}

		out.Valid = true
		out.Target = entry.Target
		out.Category = string(entry.Category)
		out.Help = table.HelpText(name)
		out.Argv = table.Expand(name, input.Args)
		out.Command = shellquote.Join(append([]string{"desigit", "run", name}, input.Args...)...)
		for _, ex := range table.ExamplesFor(name) {
			out.Examples = append(out.Examples, ex.Invocation)
		}
		return nil, out, nil
	}
}

// --- suggest_aliases ---

// SuggestAliasesInput is the input for the suggest_aliases tool.
type SuggestAliasesInput struct {
	Input string `json:"input"         jsonschema:"possibly misspelt alias or git command name"`
	Max   int    `json:"max,omitempty" jsonschema:"maximum suggestions (default 3, at most 10)"`
}

// SuggestAliasesOutput is the output for the suggest_aliases tool.
type SuggestAliasesOutput struct {
	Exact       bool             `json:"exact"       jsonschema:"input is already a valid alias"`
	Suggestions []SuggestionInfo `json:"suggestions" jsonschema:"matches, best first"`
}

func handleSuggestAliases(table *alias.Table) mcp.ToolHandlerFor[SuggestAliasesInput, SuggestAliasesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SuggestAliasesInput) (*mcp.CallToolResult, SuggestAliasesOutput, error) {
		limit := input.Max
		if limit <= 0 {
			limit = suggest.DefaultMax
		}
		limit = min(limit, maxSuggestLimit)

		name := strings.TrimSpace(input.Input)
		return nil, SuggestAliasesOutput{
			Exact:       table.IsValid(name),
			Suggestions: toSuggestionInfos(suggest.Rank(table, name, limit)),
		}, nil
	}
}
