package style

import (
	"strings"

	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// Tokens names the token used for each state-dependent output field.
type Tokens struct {
	Background  token.Name
	Border      token.Name
	BorderWidth token.Name
	Text        token.Name
	Icon        token.Name
}

func (t Tokens) names() []token.Name {
	return []token.Name{t.Background, t.Border, t.BorderWidth, t.Text, t.Icon}
}

func (t Tokens) complete() bool {
	for _, name := range t.names() {
		if !name.Valid() {
			return false
		}
	}
	return true
}

// Ref pairs a token name with the value it resolved to.
type Ref struct {
	Token token.Name
	Value token.Value
}

// ResolveRef looks name up in palette, panicking on a missing token.
func ResolveRef(palette *token.Palette, name token.Name, scheme token.Scheme) Ref {
	return Ref{Token: name, Value: palette.MustLookup(name, scheme)}
}

// Resolved is the renderer-independent output of a resolution.
// It is comparable with ==; every field is populated.
type Resolved struct {
	Background  Ref
	Border      Ref
	BorderWidth Ref
	Text        Ref
	Icon        Ref
}

// Tokens strips the values, leaving the token names.
func (r Resolved) Tokens() Tokens {
	return Tokens{
		Background:  r.Background.Token,
		Border:      r.Border.Token,
		BorderWidth: r.BorderWidth.Token,
		Text:        r.Text.Token,
		Icon:        r.Icon.Token,
	}
}

// Field is one named output of a resolved style, flattened for display and snapshots.
// Token is empty for derived fields that do not come from the palette.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
	Value string `json:"value" yaml:"value"`
}

// RefField flattens a Ref under the given field name.
func RefField(name string, ref Ref) Field {
	return Field{Name: name, Token: ref.Token.String(), Value: ref.Value.String()}
}

// ValueField builds a derived field.
func ValueField(name, value string) Field {
	return Field{Name: name, Value: value}
}

// Describe flattens the common fields in a fixed order.
func (r Resolved) Describe() []Field {
	return []Field{
		RefField("background", r.Background),
		RefField("border", r.Border),
		RefField("borderWidth", r.BorderWidth),
		RefField("text", r.Text),
		RefField("icon", r.Icon),
	}
}

// DescribeAs flattens the common fields with each name prefixed, for
// styles that carry more than one Resolved.
func (r Resolved) DescribeAs(prefix string) []Field {
	fields := r.Describe()
	for i := range fields {
		fields[i].Name = prefix + strings.ToUpper(fields[i].Name[:1]) + fields[i].Name[1:]
	}
	return fields
}
