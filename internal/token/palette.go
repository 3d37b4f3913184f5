package token

import (
	"fmt"
	"sort"
	"strings"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// Palette maps token names to values for each color scheme.
// A Palette is immutable once constructed and safe for concurrent reads.
type Palette struct {
	name    string
	schemes [2]map[Name]Value
}

// NewPalette copies the supplied partitions into a new Palette.
func NewPalette(name string, light, dark map[Name]Value) *Palette {
	return &Palette{
		name:    name,
		schemes: [2]map[Name]Value{copyValues(light), copyValues(dark)},
	}
}

func copyValues(src map[Name]Value) map[Name]Value {
	dst := make(map[Name]Value, len(src))
	for name, value := range src {
		dst[name] = value
	}
	return dst
}

// Name returns the palette's display name.
func (p *Palette) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

// Lookup returns the value of name in the given scheme, or an
// *errors.UnknownTokenError when the palette does not define it.
func (p *Palette) Lookup(name Name, scheme Scheme) (Value, error) {
	if p != nil && (scheme == Light || scheme == Dark) {
		if value, ok := p.schemes[scheme][name]; ok && name.Valid() {
			return value, nil
		}
	}
	return Value{}, swatcherrors.NewUnknownTokenError(p.Name(), name.String(), scheme.String())
}

// MustLookup is Lookup that panics on a missing token. Resolvers use it
// because a missing name is a packaging defect, not a runtime condition.
func (p *Palette) MustLookup(name Name, scheme Scheme) Value {
	value, err := p.Lookup(name, scheme)
	if err != nil {
		panic(err)
	}
	return value
}

// Defines reports whether name exists in both schemes.
func (p *Palette) Defines(name Name) bool {
	for _, scheme := range Schemes() {
		if _, err := p.Lookup(name, scheme); err != nil {
			return false
		}
	}
	return true
}

// Missing returns, per scheme, the names from names the palette lacks.
func (p *Palette) Missing(names []Name) map[Scheme][]Name {
	missing := make(map[Scheme][]Name)
	for _, scheme := range Schemes() {
		for _, name := range names {
			if _, err := p.Lookup(name, scheme); err != nil {
				missing[scheme] = append(missing[scheme], name)
			}
		}
	}
	return missing
}

// Validate returns an error listing every name absent from either scheme.
func (p *Palette) Validate(names []Name) error {
	missing := p.Missing(names)
	if len(missing) == 0 {
		return nil
	}

	var parts []string
	for _, scheme := range Schemes() {
		if len(missing[scheme]) == 0 {
			continue
		}
		labels := make([]string, 0, len(missing[scheme]))
		for _, name := range missing[scheme] {
			labels = append(labels, name.String())
		}
		sort.Strings(labels)
		parts = append(parts, fmt.Sprintf("%s: %s", scheme, strings.Join(labels, ", ")))
	}

	return swatcherrors.NewValidationError("tokens", "missing tokens ("+strings.Join(parts, "; ")+")", nil)
}

// Entries returns the defined names of a scheme in declaration order.
func (p *Palette) Entries(scheme Scheme) []Name {
	if p == nil || (scheme != Light && scheme != Dark) {
		return nil
	}
	names := make([]Name, 0, len(p.schemes[scheme]))
	for name := range p.schemes[scheme] {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Merge returns a new palette with override's values layered over p.
func (p *Palette) Merge(name string, override *Palette) *Palette {
	merged := NewPalette(name, p.schemes[Light], p.schemes[Dark])
	if override == nil {
		return merged
	}
	for _, scheme := range Schemes() {
		for key, value := range override.schemes[scheme] {
			merged.schemes[scheme][key] = value
		}
	}
	return merged
}
