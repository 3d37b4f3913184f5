package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/catalog"
	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

type resolveOptions struct {
	variant string

	disabled     bool
	loading      bool
	selected     bool
	focused      bool
	success      bool
	errorMessage string
	hasError     bool

	size          string
	fullWidth     bool
	hasBackground bool
	tone          string
	emphasis      string
	badge         string
	price         string
	originalPrice string
	pages         int
	index         int
	hint          string

	format string
}

func (o *resolveOptions) stateFlags() style.Flags {
	return style.Flags{
		Disabled: o.disabled,
		Loading:  o.loading,
		Selected: o.selected,
		Error:    o.hasError,
		Success:  o.success,
		Focused:  o.focused,
	}
}

type describer interface {
	Describe() []style.Field
}

// resolution is one resolved descriptor ready for output.
type resolution struct {
	Family  string        `json:"family" yaml:"family"`
	Variant string        `json:"variant" yaml:"variant"`
	State   string        `json:"state" yaml:"state"`
	Scheme  string        `json:"scheme" yaml:"scheme"`
	Fields  []style.Field `json:"fields" yaml:"fields"`
}

type familyResolver func(r *components.Resolver, opts *resolveOptions, scheme token.Scheme) (resolution, error)

var familyResolvers = map[string]familyResolver{
	catalog.FamilyButton:          resolveButton,
	catalog.FamilyPill:            resolvePill,
	catalog.FamilyTile:            resolveTile,
	catalog.FamilyAccordion:       resolveAccordion,
	catalog.FamilyCallout:         resolveCallout,
	catalog.FamilyContentCard:     resolveContentCard,
	catalog.FamilyGallery:         resolveGallery,
	catalog.FamilyMiniProductCard: resolveMiniProductCard,
	catalog.FamilyTextField:       resolveTextField,
}

func newResolveCmd(app *appContext) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <family>",
		Short: "Resolve one component descriptor against the palette",
		Long: "Resolve one component descriptor against the palette.\n\nFamilies: " +
			strings.Join(catalog.Families(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: catalog.Families(),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.hasError = cmd.Flags().Changed("error")
			return runResolve(cmd, app, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.variant, "variant", "", "Variant name (default: the family's first variant)")
	flags.BoolVar(&opts.disabled, "disabled", false, "Resolve the disabled state")
	flags.BoolVar(&opts.loading, "loading", false, "Resolve the loading state")
	flags.BoolVar(&opts.selected, "selected", false, "Resolve the selected state")
	flags.BoolVar(&opts.focused, "focused", false, "Resolve the focused state")
	flags.BoolVar(&opts.success, "success", false, "Resolve the success state")
	flags.StringVar(&opts.errorMessage, "error", "", "Resolve the error state with this message")
	flags.StringVar(&opts.size, "size", "", "Button size: small, medium or large")
	flags.BoolVar(&opts.fullWidth, "full-width", false, "Stretch the button to its container")
	flags.BoolVar(&opts.hasBackground, "has-background", false, "Outlined pill sits on a colored background")
	flags.StringVar(&opts.tone, "tone", "", "Callout tone: neutral, info, success, warning or error")
	flags.StringVar(&opts.emphasis, "emphasis", "", "Callout emphasis: subtle or bold")
	flags.StringVar(&opts.badge, "badge", "", "Card badge: none, new, sale, sale:<percent> or custom:<text>")
	flags.StringVar(&opts.price, "price", "", "Product price, e.g. 149.99")
	flags.StringVar(&opts.originalPrice, "original-price", "", "Price before discount; marks the product on sale")
	flags.IntVar(&opts.pages, "pages", 3, "Gallery page count")
	flags.IntVar(&opts.index, "index", 0, "Selected gallery page")
	flags.StringVar(&opts.hint, "hint", "", "Text field helper text")
	flags.StringVar(&opts.format, "format", "", "Output format: table, json or yaml (default from settings)")

	return cmd
}

func runResolve(cmd *cobra.Command, app *appContext, family string, opts *resolveOptions) error {
	resolve, ok := familyResolvers[family]
	if !ok {
		return newCommandError("resolve", fmt.Sprintf("unknown family %q", family), &catalog.UnknownFamilyError{Family: family},
			"Use one of: "+strings.Join(catalog.Families(), ", ")+".")
	}

	format, err := outputFormat(opts.format, app.settings.Format)
	if err != nil {
		return err
	}

	res, err := resolve(app.resolver(), opts, app.scheme)
	if err != nil {
		return newCommandError("resolve "+family, "parsing descriptor flags", err, "Run 'swatch resolve --help' for accepted values.")
	}
	res.Family = family
	res.Scheme = app.scheme.String()

	app.logger.With("family", family).Debug("resolved " + res.Variant + "/" + res.State)

	switch format {
	case formatJSON:
		return writeJSON(cmd.OutOrStdout(), res)
	case formatYAML:
		return writeYAML(cmd.OutOrStdout(), res)
	default:
		return renderResolution(cmd.OutOrStdout(), res)
	}
}

func renderResolution(out io.Writer, res resolution) error {
	heading := color.New(color.Bold).Sprintf("%s %s/%s @ %s", res.Family, res.Variant, res.State, res.Scheme)
	fmt.Fprintln(out, heading)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "FIELD\tTOKEN\tVALUE")
	for _, field := range res.Fields {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", field.Name, valueOrFallback(field.Token, "-"), valueOrFallback(field.Value, "-"))
	}
	return writer.Flush()
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

// parseEnum matches value against all, returning fallback when value is empty.
func parseEnum[V fmt.Stringer](flag, value string, all []V, fallback V) (V, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	if v, ok := style.Parse(value, all); ok {
		return v, nil
	}
	return fallback, fmt.Errorf("%w: --%s %q (expected one of: %s)", errInvalidFlag, flag, value, strings.Join(style.Labels(all), ", "))
}

func parseBadge(value string) (components.Badge, error) {
	if strings.TrimSpace(value) == "" {
		return components.NoBadge(), nil
	}
	badge, ok := components.ParseBadge(value)
	if !ok {
		return components.NoBadge(), fmt.Errorf("%w: --badge %q", errInvalidFlag, value)
	}
	return badge, nil
}

func parsePrice(amount, original string) (components.Price, error) {
	if strings.TrimSpace(amount) == "" {
		amount = "0"
	}
	current, err := components.ParseMoney(amount)
	if err != nil {
		return components.Price{}, fmt.Errorf("--price: %w", err)
	}
	if strings.TrimSpace(original) == "" {
		return components.StandardPrice(current.Dollars, current.Cents), nil
	}
	before, err := components.ParseMoney(original)
	if err != nil {
		return components.Price{}, fmt.Errorf("--original-price: %w", err)
	}
	return components.SalePrice(current.Dollars, current.Cents, before.Dollars, before.Cents), nil
}

func described(variant, state fmt.Stringer, s describer) resolution {
	return resolution{Variant: variant.String(), State: state.String(), Fields: s.Describe()}
}

func resolveButton(r *components.Resolver, opts *resolveOptions, scheme token.Scheme) (resolution, error) {
	variant, err := parseEnum("variant", opts.variant, components.ButtonVariants(), components.ButtonOrangeFilled)
	if err != nil {
		return resolution{}, err
	}
	size, err := parseEnum("size", opts.size, components.ButtonSizes(), components.ButtonSizeMedium)
	if err != nil {
		return resolution{}, err
	}
	d := components.ButtonDescriptor{
		Variant:   variant,
		State:     components.ButtonStateFromFlags(opts.stateFlags()),
		Size:      size,
		FullWidth: opts.fullWidth,
	}
	return described(d.Variant, d.State, r.Button(d, scheme)), nil
}

func resolvePill(r *components.Resolver, opts *resolveOptions, scheme token.Scheme) (resolution, error) {
	variant, err := parseEnum("variant", opts.variant, components.PillVariants(), components.PillVariants()[0])
	if err != nil {
		return resolution{}, err
	}
	d := components.PillDescriptor{
		Variant:       variant,
		State:         components.SelectionStateFromFlags(opts.stateFlags()),
		HasBackground: opts.hasBackground,
	}
	return described(d.Variant, d.State, r.Pill(d, scheme)), nil
}

func resolveTile(r *components.Resolver, opts *resolveOptions, scheme token.Scheme) (resolution, error) {
	variant, err := parseEnum("variant", opts.variant, components.TileVariants(), components.TileVariants()[0])
	if err != nil {
		return resolution{}, err
	}
	d := components.TileDescriptor{Variant: variant, State: components.SelectionStateFromFlags(opts.stateFlags())}
	return described(d.Variant, d.State, r.Tile(d, scheme)), nil
}

func resolveAccordion(r *components.Resolver, opts *resolveOptions, scheme token.Scheme) (resolution, error) {
	variant, err := parseEnum("variant", opts.variant, components.AccordionVariants(), components.AccordionVariants()[0])
	if err != nil {
		return resolution{}, err
	}
	d := components.AccordionDescriptor{Variant: variant, State: components.AccordionStateFromFlags(opts.stateFlags())}
	return described(d.Variant, d.State, r.Accordion(d, scheme)), nil
}

// resolveCallout accepts --variant as "tone/emphasis"; --tone and
// --emphasis override either half.
func resolveCallout(r *components.Resolver, opts *resolveOptions, scheme token.Scheme) (resolution, error) {
	variant, err := parseEnum("variant", opts.variant, components.CalloutVariants(), components.CalloutVariant{})
	if err != nil {
		return resolution{}, err
	}
	if variant.Tone, err = parseEnum("tone", opts.tone, components.CalloutTones(), variant.Tone); err != nil {
		return resolution{}, err
	}
	if variant.Emphasis, err = parseEnum("emphasis", opts.emphasis, components.CalloutEmphases(), variant.Emphasis); err != nil {
		return resolution{}, err
	}
	d := components.CalloutDescriptor{Variant: variant, State: components.CalloutStateFromFlags(opts.stateFlags())}
	return described(d.Variant, d.State, r.Callout(d, scheme)), nil
}

func resolveContentCard(r *components.Resolver, opts *resolveOptions, scheme token.Scheme) (resolution, error) {
	variant, err := parseEnum("variant", opts.variant, components.ContentCardVariants(), components.ContentCardVariants()[0])
	if err != nil {
		return resolution{}, err
	}
	badge, err := parseBadge(opts.badge)
	if err != nil {
		return resolution{}, err
	}
	d := components.ContentCardDescriptor{Variant: variant, State: components.SelectionStateFromFlags(opts.stateFlags()), Badge: badge}
	return described(d.Variant, d.State, r.ContentCard(d, scheme)), nil
}

func resolveGallery(r *components.Resolver, opts *resolveOptions, scheme token.Scheme) (resolution, error) {
	variant, err := parseEnum("variant", opts.variant, components.GalleryVariants(), components.GalleryVariants()[0])
	if err != nil {
		return resolution{}, err
	}
	d := components.GalleryDescriptor{Variant: variant, PageCount: opts.pages, SelectedIndex: opts.index}
	s := r.Gallery(d, scheme)
	return resolution{
		Variant: variant.String(),
		State:   fmt.Sprintf("index=%d", s.SelectedIndex),
		Fields:  s.Describe(),
	}, nil
}

func resolveMiniProductCard(r *components.Resolver, opts *resolveOptions, scheme token.Scheme) (resolution, error) {
	variant, err := parseEnum("variant", opts.variant, components.MiniProductCardVariants(), components.MiniProductCardVariants()[0])
	if err != nil {
		return resolution{}, err
	}
	badge, err := parseBadge(opts.badge)
	if err != nil {
		return resolution{}, err
	}
	price, err := parsePrice(opts.price, opts.originalPrice)
	if err != nil {
		return resolution{}, err
	}
	d := components.MiniProductCardDescriptor{
		Variant: variant,
		State:   components.SelectionStateFromFlags(opts.stateFlags()),
		Price:   price,
		Badge:   badge,
	}
	return described(d.Variant, d.State, r.MiniProductCard(d, scheme)), nil
}

func resolveTextField(r *components.Resolver, opts *resolveOptions, scheme token.Scheme) (resolution, error) {
	variant, err := parseEnum("variant", opts.variant, components.TextFieldVariants(), components.TextFieldVariants()[0])
	if err != nil {
		return resolution{}, err
	}
	d := components.TextFieldDescriptor{
		Variant: variant,
		State:   components.TextFieldStateFromFlags(opts.stateFlags(), opts.errorMessage),
		Hint:    opts.hint,
	}
	return described(d.Variant, d.State, r.TextField(d, scheme)), nil
}
