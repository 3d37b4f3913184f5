// Package catalog enumerates the full descriptor space of every component
// family and flattens each resolution into comparable entries.
package catalog

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

// Family names accepted by Enumerate and the CLI.
const (
	FamilyButton          = "button"
	FamilyPill            = "pill"
	FamilyTile            = "tile"
	FamilyAccordion       = "accordion"
	FamilyCallout         = "callout"
	FamilyContentCard     = "contentCard"
	FamilyGallery         = "gallery"
	FamilyMiniProductCard = "miniProductCard"
	FamilyTextField       = "textField"
)

// Families lists every family in catalog order.
func Families() []string {
	return []string{
		FamilyButton,
		FamilyPill,
		FamilyTile,
		FamilyAccordion,
		FamilyCallout,
		FamilyContentCard,
		FamilyGallery,
		FamilyMiniProductCard,
		FamilyTextField,
	}
}

// Entry is one resolved (family, variant, state, aux, scheme) combination.
type Entry struct {
	Family  string        `json:"family" yaml:"family"`
	Variant string        `json:"variant" yaml:"variant"`
	State   string        `json:"state" yaml:"state"`
	Aux     string        `json:"aux,omitempty" yaml:"aux,omitempty"`
	Scheme  string        `json:"scheme" yaml:"scheme"`
	Fields  []style.Field `json:"fields" yaml:"fields"`

	resolved style.Resolved
	disabled bool
	contrast bool
}

// Key identifies the entry within a catalog.
func (e Entry) Key() string {
	key := e.Family + "/" + e.Variant + "/" + e.State
	if e.Aux != "" {
		key += "/" + e.Aux
	}
	return key + "@" + e.Scheme
}

// Resolved returns the common resolved fields of the entry.
func (e Entry) Resolved() style.Resolved {
	return e.resolved
}

// UnknownFamilyError reports a family name outside Families.
type UnknownFamilyError struct {
	Family string
}

func (e *UnknownFamilyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("unknown family %q", e.Family)
}

type describer interface {
	Describe() []style.Field
}

type builder struct {
	family  string
	scheme  token.Scheme
	entries []Entry
}

func (b *builder) add(variant, state, aux string, resolved style.Resolved, s describer, disabled, contrast bool) {
	b.entries = append(b.entries, Entry{
		Family:   b.family,
		Variant:  variant,
		State:    state,
		Aux:      aux,
		Scheme:   b.scheme.String(),
		Fields:   s.Describe(),
		resolved: resolved,
		disabled: disabled,
		contrast: contrast,
	})
}

// Enumerate resolves every combination of family for both schemes.
func Enumerate(r *components.Resolver, family string) ([]Entry, error) {
	enumerate, ok := enumerators[family]
	if !ok {
		return nil, &UnknownFamilyError{Family: family}
	}

	var entries []Entry
	for _, scheme := range token.Schemes() {
		b := &builder{family: family, scheme: scheme}
		enumerate(r, b)
		entries = append(entries, b.entries...)
	}
	return entries, nil
}

// All enumerates every family in catalog order.
func All(r *components.Resolver) []Entry {
	var entries []Entry
	for _, family := range Families() {
		familyEntries, _ := Enumerate(r, family)
		entries = append(entries, familyEntries...)
	}
	return entries
}

// Snapshot renders the full catalog as YAML. Equal palettes produce
// byte-identical snapshots.
func Snapshot(r *components.Resolver) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	doc := struct {
		Palette string  `yaml:"palette"`
		Entries []Entry `yaml:"entries"`
	}{
		Palette: r.Palette().Name(),
		Entries: All(r),
	}

	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

var enumerators = map[string]func(*components.Resolver, *builder){
	FamilyButton:          enumerateButtons,
	FamilyPill:            enumeratePills,
	FamilyTile:            enumerateTiles,
	FamilyAccordion:       enumerateAccordions,
	FamilyCallout:         enumerateCallouts,
	FamilyContentCard:     enumerateContentCards,
	FamilyGallery:         enumerateGalleries,
	FamilyMiniProductCard: enumerateMiniProductCards,
	FamilyTextField:       enumerateTextFields,
}

func enumerateButtons(r *components.Resolver, b *builder) {
	for _, variant := range components.ButtonVariants() {
		for _, state := range components.ButtonStates() {
			for _, size := range components.ButtonSizes() {
				s := r.Button(components.ButtonDescriptor{Variant: variant, State: state, Size: size}, b.scheme)
				// Only default buttons show a label on their background.
				b.add(variant.String(), state.String(), "size="+size.String(), s.Resolved, s,
					state == components.ButtonDisabled, state == components.ButtonDefault)
			}
		}
	}
}

func enumeratePills(r *components.Resolver, b *builder) {
	for _, variant := range components.PillVariants() {
		for _, state := range components.SelectionStates() {
			for _, hasBackground := range []bool{false, true} {
				if hasBackground && variant != components.PillOutlined {
					continue
				}
				aux := ""
				if hasBackground {
					aux = "background"
				}
				s := r.Pill(components.PillDescriptor{Variant: variant, State: state, HasBackground: hasBackground}, b.scheme)
				b.add(variant.String(), state.String(), aux, s.Resolved, s, state == components.SelectionDisabled, true)
			}
		}
	}
}

func enumerateTiles(r *components.Resolver, b *builder) {
	for _, variant := range components.TileVariants() {
		for _, state := range components.SelectionStates() {
			s := r.Tile(components.TileDescriptor{Variant: variant, State: state}, b.scheme)
			b.add(variant.String(), state.String(), "", s.Resolved, s, state == components.SelectionDisabled, true)
		}
	}
}

func enumerateAccordions(r *components.Resolver, b *builder) {
	for _, variant := range components.AccordionVariants() {
		for _, state := range components.AccordionStates() {
			s := r.Accordion(components.AccordionDescriptor{Variant: variant, State: state}, b.scheme)
			b.add(variant.String(), state.String(), "", s.Resolved, s, state == components.AccordionDisabled, true)
		}
	}
}

func enumerateCallouts(r *components.Resolver, b *builder) {
	for _, variant := range components.CalloutVariants() {
		for _, state := range components.CalloutStates() {
			s := r.Callout(components.CalloutDescriptor{Variant: variant, State: state}, b.scheme)
			b.add(variant.String(), state.String(), "", s.Resolved, s, false, true)
		}
	}
}

func enumerateContentCards(r *components.Resolver, b *builder) {
	for _, variant := range components.ContentCardVariants() {
		for _, state := range components.SelectionStates() {
			d := components.ContentCardDescriptor{Variant: variant, State: state, Badge: components.NewBadge()}
			s := r.ContentCard(d, b.scheme)
			b.add(variant.String(), state.String(), "badge="+d.Badge.String(), s.Resolved, s, state == components.SelectionDisabled, true)
		}
	}
}

// Galleries are enumerated with three pages; their dots carry no text,
// so they are exempt from contrast checks.
func enumerateGalleries(r *components.Resolver, b *builder) {
	const pages = 3
	for _, variant := range components.GalleryVariants() {
		for index := 0; index < pages; index++ {
			s := r.Gallery(components.GalleryDescriptor{Variant: variant, PageCount: pages, SelectedIndex: index}, b.scheme)
			b.add(variant.String(), "index="+strconv.Itoa(index), "pages="+strconv.Itoa(pages), s.ActiveIndicator, s, false, false)
		}
	}
}

func enumerateMiniProductCards(r *components.Resolver, b *builder) {
	prices := []struct {
		label string
		price components.Price
		badge components.Badge
	}{
		{label: "standard", price: components.StandardPrice(149, 99), badge: components.NoBadge()},
		{label: "sale", price: components.SalePrice(129, 0, 179, 99), badge: components.SaleBadge(28)},
	}

	for _, variant := range components.MiniProductCardVariants() {
		for _, state := range components.SelectionStates() {
			for _, p := range prices {
				d := components.MiniProductCardDescriptor{Variant: variant, State: state, Price: p.price, Badge: p.badge}
				s := r.MiniProductCard(d, b.scheme)
				b.add(variant.String(), state.String(), "price="+p.label, s.Resolved, s, state == components.SelectionDisabled, true)
			}
		}
	}
}

func enumerateTextFields(r *components.Resolver, b *builder) {
	for _, variant := range components.TextFieldVariants() {
		for _, state := range components.TextFieldStates() {
			if state.Category() == style.Error {
				state = components.TextFieldError("Invalid value")
			}
			d := components.TextFieldDescriptor{Variant: variant, State: state, Hint: "Helper text"}
			s := r.TextField(d, b.scheme)
			b.add(variant.String(), state.String(), "", s.Resolved, s, state.Category() == style.Disabled, true)
		}
	}
}
