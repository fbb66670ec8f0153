// Package alias holds the static table that maps Hinglish command names to git
// commands.
//
// The table is read-only once built. Lookups never fail: an unknown name
// resolves to itself, and validity is a separate question answered by IsValid.
package alias

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category groups aliases for listing and help output.
type Category string

// CategoryOther is returned for names that carry no category, including
// names that are not in the table at all.
const CategoryOther Category = "other"

// otherTitle is the listing title used for uncategorised aliases.
const otherTitle = "Other Commands"

// Entry is one alias and the git command it expands to.
// Target may hold several tokens; the first is the git subcommand and the rest
// are fixed leading arguments.
type Entry struct {
	Alias    string   `yaml:"alias"              json:"alias"`
	Target   string   `yaml:"target"             json:"target"`
	Category Category `yaml:"category,omitempty" json:"category"`
	Help     string   `yaml:"help,omitempty"     json:"help,omitempty"`
}

// Command returns the git subcommand, i.e. the first token of the target.
func (e Entry) Command() string {
	fields := strings.Fields(e.Target)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// CategoryInfo is a category tag with its display title.
type CategoryInfo struct {
	Tag   Category `yaml:"tag"   json:"tag"`
	Title string   `yaml:"title" json:"title"`
}

// Example is a curated invocation shown by --examples and per-alias help.
type Example struct {
	Title      string `yaml:"title"      json:"title"`
	Alias      string `yaml:"alias"      json:"alias"`
	Invocation string `yaml:"invocation" json:"invocation"`
}

// catalog is the on-disk shape of the alias catalogue.
type catalog struct {
	Categories []CategoryInfo `yaml:"categories"`
	Aliases    []Entry        `yaml:"aliases"`
	Examples   []Example      `yaml:"examples"`
}

// Table is an immutable alias table. The zero value is not usable; build one
// with Parse or use Default.
type Table struct {
	entries    []Entry
	index      map[string]int
	reverse    map[string]string
	categories []CategoryInfo
	examples   []Example
}

// Errors returned by Parse.
var (
	ErrEmptyAlias       = errors.New("alias name is empty")
	ErrEmptyTarget      = errors.New("alias target is empty")
	ErrDuplicateAlias   = errors.New("duplicate alias")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownReference = errors.New("example references unknown alias")
)

// Parse builds a Table from a YAML catalogue.
// Aliases keep the order they appear in; that order drives listings and is
// the final tie-break for suggestions.
func Parse(data []byte) (*Table, error) {
	var cat catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("decoding alias catalogue: %w", err)
	}

	declared := make(map[Category]bool, len(cat.Categories))
	for _, info := range cat.Categories {
		declared[info.Tag] = true
	}

	table := &Table{
		entries:    make([]Entry, 0, len(cat.Aliases)),
		index:      make(map[string]int, len(cat.Aliases)),
		reverse:    make(map[string]string, len(cat.Aliases)*2),
		categories: slices.Clone(cat.Categories),
		examples:   slices.Clone(cat.Examples),
	}

	hasOther := false
	for _, entry := range cat.Aliases {
		entry.Alias = strings.TrimSpace(entry.Alias)
		entry.Target = strings.TrimSpace(entry.Target)
		if entry.Alias == "" {
			return nil, fmt.Errorf("entry %d: %w", len(table.entries), ErrEmptyAlias)
		}
		if entry.Target == "" {
			return nil, fmt.Errorf("%s: %w", entry.Alias, ErrEmptyTarget)
		}
		if _, dup := table.index[entry.Alias]; dup {
			return nil, fmt.Errorf("%s: %w", entry.Alias, ErrDuplicateAlias)
		}
		if entry.Category == "" {
			entry.Category = CategoryOther
		}
		if entry.Category == CategoryOther {
			hasOther = true
		} else if !declared[entry.Category] {
			return nil, fmt.Errorf("%s: %w %q", entry.Alias, ErrUnknownCategory, entry.Category)
		}

		table.index[entry.Alias] = len(table.entries)
		table.entries = append(table.entries, entry)
	}

	for _, ex := range table.examples {
		if _, ok := table.index[ex.Alias]; !ok {
			return nil, fmt.Errorf("%s: %w %q", ex.Title, ErrUnknownReference, ex.Alias)
		}
	}

	if hasOther && !declared[CategoryOther] {
		table.categories = append(table.categories, CategoryInfo{Tag: CategoryOther, Title: otherTitle})
	}

	table.buildReverse()
	return table, nil
}

// buildReverse fills the display-only reverse map. Full targets are indexed
// before bare commands so that "clean -fd" finds sab-saaf while "clean" finds
// saaf. The first alias in table order wins; later ones sharing a target are
// dropped, which is acceptable because the map is never used for resolution.
func (t *Table) buildReverse() {
	for _, entry := range t.entries {
		if _, ok := t.reverse[entry.Target]; !ok {
			t.reverse[entry.Target] = entry.Alias
		}
	}
	for _, entry := range t.entries {
		cmd := entry.Command()
		if _, ok := t.reverse[cmd]; !ok {
			t.reverse[cmd] = entry.Alias
		}
	}
}

// Resolve returns the target for alias, or alias itself when it is unknown.
func (t *Table) Resolve(alias string) string {
	if i, ok := t.index[alias]; ok {
		return t.entries[i].Target
	}
	return alias
}

// IsValid reports whether alias is a key in the table.
func (t *Table) IsValid(alias string) bool {
	_, ok := t.index[alias]
	return ok
}

// Lookup returns the entry for alias.
func (t *Table) Lookup(alias string) (Entry, bool) {
	i, ok := t.index[alias]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// ReverseResolve returns an alias that runs target, or target itself when
// none does. It is lossy when several aliases share a target and must only
// be used for display.
func (t *Table) ReverseResolve(target string) string {
	target = strings.TrimSpace(target)
	if alias, ok := t.reverse[target]; ok {
		return alias
	}
	if fields := strings.Fields(target); len(fields) > 0 {
		if alias, ok := t.reverse[fields[0]]; ok {
			return alias
		}
	}
	return target
}

// Category returns the category of alias, or CategoryOther.
func (t *Table) Category(alias string) Category {
	if i, ok := t.index[alias]; ok {
		return t.entries[i].Category
	}
	return CategoryOther
}

// HelpText returns the curated help for alias, or a generic message when
// there is none.
func (t *Table) HelpText(alias string) string {
	if i, ok := t.index[alias]; ok && t.entries[i].Help != "" {
		return t.entries[i].Help
	}
	return "No help available for " + alias
}

// Expand turns alias plus user arguments into the argument vector for git.
// Target tokens come first and extra arguments follow unchanged. An unknown
// alias expands to itself.
func (t *Table) Expand(alias string, extra []string) []string {
	return slices.Concat(strings.Fields(t.Resolve(alias)), extra)
}

// All returns every entry in table order.
func (t *Table) All() []Entry {
	return slices.Clone(t.entries)
}

// Keys returns every alias name in table order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, entry := range t.entries {
		keys[i] = entry.Alias
	}
	return keys
}

// Len returns the number of aliases.
func (t *Table) Len() int {
	return len(t.entries)
}

// Categories returns the categories in display order. CategoryOther is last
// when any alias is uncategorised.
func (t *Table) Categories() []CategoryInfo {
	return slices.Clone(t.categories)
}

// ByCategory returns the entries of one category in table order.
func (t *Table) ByCategory(category Category) []Entry {
	var out []Entry
	for _, entry := range t.entries {
		if entry.Category == category {
			out = append(out, entry)
		}
	}
	return out
}

// Examples returns the curated usage examples.
func (t *Table) Examples() []Example {
	return slices.Clone(t.examples)
}

// ExamplesFor returns the curated examples that use alias.
func (t *Table) ExamplesFor(alias string) []Example {
	var out []Example
	for _, ex := range t.examples {
		if ex.Alias == alias {
			out = append(out, ex)
		}
	}
	return out
}
