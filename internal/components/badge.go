package components

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/alexisbeaulieu97/swatch/internal/style"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

const maxBadgeRunes = 14

// BadgeKind discriminates the badge union.
type BadgeKind int

const (
	BadgeNone BadgeKind = iota
	BadgeNew
	BadgeSale
	BadgeCustom
)

func (k BadgeKind) String() string {
	switch k {
	case BadgeNew:
		return "new"
	case BadgeSale:
		return "sale"
	case BadgeCustom:
		return "custom"
	default:
		return "none"
	}
}

// Badge is the corner label of a card. Build it with NoBadge, NewBadge,
// SaleBadge or CustomBadge.
type Badge struct {
	kind    BadgeKind
	percent int
	text    string
}

// NoBadge hides the badge.
func NoBadge() Badge { return Badge{kind: BadgeNone} }

// NewBadge marks a new item.
func NewBadge() Badge { return Badge{kind: BadgeNew} }

// SaleBadge shows a discount; a non-positive percent shows a plain sale label.
func SaleBadge(percent int) Badge { return Badge{kind: BadgeSale, percent: percent} }

// CustomBadge shows arbitrary text.
func CustomBadge(text string) Badge { return Badge{kind: BadgeCustom, text: text} }

// Kind reports which badge this is.
func (b Badge) Kind() BadgeKind { return b.kind }

func (b Badge) String() string {
	switch b.kind {
	case BadgeSale:
		return "sale:" + strconv.Itoa(b.percent)
	case BadgeCustom:
		return "custom:" + b.text
	default:
		return b.kind.String()
	}
}

// ParseBadge reads "none", "new", "sale", "sale:<percent>" or "custom:<text>".
func ParseBadge(value string) (Badge, bool) {
	kind, arg, hasArg := strings.Cut(strings.TrimSpace(value), ":")
	switch strings.ToLower(kind) {
	case "", "none":
		return NoBadge(), !hasArg
	case "new":
		return NewBadge(), !hasArg
	case "sale":
		if !hasArg {
			return SaleBadge(0), true
		}
		percent, err := strconv.Atoi(arg)
		if err != nil {
			return Badge{}, false
		}
		return SaleBadge(percent), true
	case "custom":
		return CustomBadge(arg), hasArg
	default:
		return Badge{}, false
	}
}

// BadgeStyle is the resolved badge of a card.
type BadgeStyle struct {
	Visible    bool
	Text       string
	Background style.Ref
	Foreground style.Ref
}

func (s BadgeStyle) describe() []style.Field {
	return []style.Field{
		style.ValueField("badgeText", s.Text),
		style.RefField("badgeBackground", s.Background),
		style.RefField("badgeForeground", s.Foreground),
	}
}

func badgeEntry(background, text token.Name) style.Tokens {
	return entry(background, token.Clear, token.BorderWidthNone, text, text)
}

var (
	hiddenBadge   = entry(token.Clear, token.Clear, token.BorderWidthNone, token.Clear, token.Clear)
	disabledBadge = badgeEntry(token.SurfaceColorDisabled, token.TextOnSurfaceColorDisabled)
)

var badgeTable = style.Table[BadgeKind]{
	BadgeNone: {
		style.Default: hiddenBadge,
	},
	BadgeNew: {
		style.Default:  badgeEntry(token.SurfaceColorBrand, token.TextOnSurfaceColorInverse),
		style.Disabled: disabledBadge,
	},
	BadgeSale: {
		style.Default:  badgeEntry(token.TextOnSurfaceColorError, token.TextOnSurfaceColorInverse),
		style.Disabled: disabledBadge,
	},
	BadgeCustom: {
		style.Default:  badgeEntry(token.SurfaceColorInverse, token.TextOnSurfaceColorInverse),
		style.Disabled: disabledBadge,
	},
}

// badgeText derives the display text of b. Custom text is trimmed,
// uppercased for the format language and truncated with an ellipsis.
func badgeText(b Badge, format FormatContext) string {
	switch b.kind {
	case BadgeNew:
		return "NEW"
	case BadgeSale:
		if b.percent <= 0 {
			return "SALE"
		}
		return "-" + strconv.Itoa(min(b.percent, 99)) + "%"
	case BadgeCustom:
		text := cases.Upper(format.Language).String(strings.TrimSpace(b.text))
		if utf8.RuneCountInString(text) > maxBadgeRunes {
			runes := []rune(text)
			text = string(runes[:maxBadgeRunes-1]) + "…"
		}
		return text
	default:
		return ""
	}
}

func (r *Resolver) badge(b Badge, category style.Category, scheme token.Scheme) BadgeStyle {
	if category != style.Disabled {
		category = style.Default
	}
	resolved := style.Resolve(r.palette, badgeTable, b.kind, category, scheme)
	text := badgeText(b, r.format)

	return BadgeStyle{
		Visible:    text != "",
		Text:       text,
		Background: resolved.Background,
		Foreground: resolved.Text,
	}
}
