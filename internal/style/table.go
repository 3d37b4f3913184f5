package style

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// Row holds the token entries of one variant, keyed by category.
// Every row must contain a Default entry; missing categories fall back to it.
type Row map[Category]Tokens

// Table maps each variant of a component family to its row.
type Table[V comparable] map[V]Row

// Lookup returns the entry for (variant, category), falling back to the
// variant's Default entry. Unknown variants yield zero Tokens, which fail
// at palette lookup.
func (t Table[V]) Lookup(variant V, category Category) Tokens {
	row := t[variant]
	if entry, ok := row[category]; ok {
		return entry
	}
	return row[Default]
}

// Names returns every token name the table references, sorted and de-duplicated.
func (t Table[V]) Names() []token.Name {
	seen := make(map[token.Name]struct{})
	for _, row := range t {
		for _, entry := range row {
			for _, name := range entry.names() {
				if name.Valid() {
					seen[name] = struct{}{}
				}
			}
		}
	}

	names := make([]token.Name, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Validate checks that each listed variant has a Default entry and that
// no entry leaves a field unset.
func (t Table[V]) Validate(variants []V) error {
	for _, variant := range variants {
		row, ok := t[variant]
		if !ok {
			return fmt.Errorf("variant %v has no row", variant)
		}
		if _, ok := row[Default]; !ok {
			return fmt.Errorf("variant %v has no default entry", variant)
		}
		for _, category := range Categories() {
			entry, ok := row[category]
			if ok && !entry.complete() {
				return fmt.Errorf("variant %v %s entry has unset fields", variant, category)
			}
		}
	}
	return nil
}

// Resolve is the shared precedence engine: it selects the table entry for
// (variant, category) and reads each field from palette for scheme.
func Resolve[V comparable](palette *token.Palette, table Table[V], variant V, category Category, scheme token.Scheme) Resolved {
	return ResolveTokens(palette, table.Lookup(variant, category), scheme)
}

// ResolveTokens reads every field of entry from palette for scheme.
func ResolveTokens(palette *token.Palette, entry Tokens, scheme token.Scheme) Resolved {
	return Resolved{
		Background:  ResolveRef(palette, entry.Background, scheme),
		Border:      ResolveRef(palette, entry.Border, scheme),
		BorderWidth: ResolveRef(palette, entry.BorderWidth, scheme),
		Text:        ResolveRef(palette, entry.Text, scheme),
		Icon:        ResolveRef(palette, entry.Icon, scheme),
	}
}
