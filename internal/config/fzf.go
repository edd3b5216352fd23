package config

import "strings"

// Layout is an fzf --layout value
type Layout string

const (
	LayoutDefault     Layout = "default"
	LayoutReverse     Layout = "reverse"
	LayoutReverseList Layout = "reverse-list"
)

// Border is an fzf --border style
type Border string

const (
	BorderNone       Border = "none"
	BorderRounded    Border = "rounded"
	BorderSharp      Border = "sharp"
	BorderBold       Border = "bold"
	BorderBlock      Border = "block"
	BorderThinBlock  Border = "thinblock"
	BorderDouble     Border = "double"
	BorderHorizontal Border = "horizontal"
	BorderVertical   Border = "vertical"
	BorderTop        Border = "top"
	BorderBottom     Border = "bottom"
	BorderLeft       Border = "left"
	BorderRight      Border = "right"
)

const (
	DefaultBorderLabel  = ""
	DefaultDeletePrompt = "Delete: "
	DefaultOpenPrompt   = "Open: "
)

var validLayouts = []Layout{LayoutDefault, LayoutReverse, LayoutReverseList}

var validBorders = []Border{
	BorderNone, BorderRounded, BorderSharp, BorderBold, BorderBlock, BorderThinBlock, BorderDouble,
	BorderHorizontal, BorderVertical, BorderTop, BorderBottom, BorderLeft, BorderRight,
}

// FzfConfig holds the [fzf] section.
// Raw fields keep whatever the user wrote; unknown layout or border names
// resolve to the default instead of failing.
type FzfConfig struct {
	Border       *string `toml:"border,omitempty"`
	BorderLabel  *string `toml:"border_label,omitempty"`
	DeletePrompt *string `toml:"delete_prompt,omitempty"`
	Layout       *string `toml:"layout,omitempty"`
	OpenPrompt   *string `toml:"open_prompt,omitempty"`
}

// ResolvedLayout returns the layout fzf should use. Default: default
func (f FzfConfig) ResolvedLayout() Layout {
	if f.Layout == nil {
		return LayoutDefault
	}
	return parseLayout(*f.Layout)
}

// ResolvedBorder returns the border fzf should use. Default: none
func (f FzfConfig) ResolvedBorder() Border {
	if f.Border == nil {
		return BorderNone
	}
	return parseBorder(*f.Border)
}

// ResolvedBorderLabel returns the label shown in the border, requires a border other than none.
// Default: ""
func (f FzfConfig) ResolvedBorderLabel() string {
	return stringOr(f.BorderLabel, DefaultBorderLabel)
}

// ResolvedOpenPrompt returns the prompt shown when opening a project. Default: "Open: "
func (f FzfConfig) ResolvedOpenPrompt() string {
	return stringOr(f.OpenPrompt, DefaultOpenPrompt)
}

// ResolvedDeletePrompt returns the prompt shown in delete mode. Default: "Delete: "
func (f FzfConfig) ResolvedDeletePrompt() string {
	return stringOr(f.DeletePrompt, DefaultDeletePrompt)
}

func parseLayout(s string) Layout {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range validLayouts {
		if string(l) == s {
			return l
		}
	}
	return LayoutDefault
}

func parseBorder(s string) Border {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, b := range validBorders {
		if string(b) == s {
			return b
		}
	}
	return BorderNone
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
