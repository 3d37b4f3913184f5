package components

import (
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// FormatContext carries the locale inputs of derived display data.
// Resolution never reads the process locale or environment.
type FormatContext struct {
	Language language.Tag
	Symbol   string
}

// DefaultFormat formats prices as US dollars.
func DefaultFormat() FormatContext {
	return FormatContext{Language: language.AmericanEnglish, Symbol: "$"}
}

// Resolver resolves component descriptors against one palette.
// It holds only immutable data and is safe for concurrent use.
type Resolver struct {
	palette *token.Palette
	format  FormatContext
}

// NewResolver creates a resolver over palette. A nil palette selects token.Default().
func NewResolver(palette *token.Palette) *Resolver {
	if palette == nil {
		palette = token.Default()
	}
	return &Resolver{palette: palette, format: DefaultFormat()}
}

// WithFormat returns a copy of the resolver using format for derived text.
func (r *Resolver) WithFormat(format FormatContext) *Resolver {
	if format.Symbol == "" {
		format.Symbol = DefaultFormat().Symbol
	}
	copied := *r
	copied.format = format
	return &copied
}

// Palette returns the palette the resolver reads.
func (r *Resolver) Palette() *token.Palette {
	return r.palette
}

// Format returns the resolver's format context.
func (r *Resolver) Format() FormatContext {
	return r.format
}

func (r *Resolver) ref(name token.Name, scheme token.Scheme) style.Ref {
	return style.ResolveRef(r.palette, name, scheme)
}
