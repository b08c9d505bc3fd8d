package treefmt

import (
	"fmt"
	"strings"
)

const (
	defaultContinuation = "│   "
	defaultTerminal     = "    "
	defaultBranch       = "├── "
	defaultLeaf         = "└── "
)

// ContextFormat holds the glyphs an open ancestor level contributes to the
// indentation of deeper lines.
type ContextFormat struct {
	// Continuation is drawn while the ancestor still has siblings pending.
	Continuation string
	// Terminal is drawn once the ancestor's last sibling has been written.
	Terminal string
}

// NewContextFormat returns a ContextFormat. The argument order follows
// Context: the glyph for true comes first.
func NewContextFormat(terminal, continuation string) ContextFormat {
	return ContextFormat{Continuation: continuation, Terminal: terminal}
}

// DefaultContextFormat returns the "│   " / "    " pair.
func DefaultContextFormat() ContextFormat {
	return ContextFormat{Continuation: defaultContinuation, Terminal: defaultTerminal}
}

// Context returns Terminal when isLastInAncestry is true, else Continuation.
func (c ContextFormat) Context(isLastInAncestry bool) string {
	if isLastInAncestry {
		return c.Terminal
	}
	return c.Continuation
}

// PrefixFormat holds the glyphs written immediately before an item's label.
type PrefixFormat struct {
	Branch string
	Leaf   string
}

// NewPrefixFormat returns a PrefixFormat.
func NewPrefixFormat(branch, leaf string) PrefixFormat {
	return PrefixFormat{Branch: branch, Leaf: leaf}
}

// DefaultPrefixFormat returns the "├── " / "└── " pair.
func DefaultPrefixFormat() PrefixFormat {
	return PrefixFormat{Branch: defaultBranch, Leaf: defaultLeaf}
}

// Prefix returns Leaf when isLast is true, else Branch.
func (p PrefixFormat) Prefix(isLast bool) string {
	if isLast {
		return p.Leaf
	}
	return p.Branch
}

// --- Styles ---

// Style names a predefined pair of context and prefix formats.
type Style int

const (
	StyleUnicode Style = iota // │ ├── └──
	StyleASCII                // | |-- `--
	StyleRounded              // │ ├── ╰──
	StyleHeavy                // ┃ ┣━━ ┗━━
	StyleDouble               // ║ ╠══ ╚══
)

type glyphSet struct {
	name    string
	context ContextFormat
	prefix  PrefixFormat
}

var styleSets = map[Style]glyphSet{
	StyleUnicode: {
		name:    "unicode",
		context: DefaultContextFormat(),
		prefix:  DefaultPrefixFormat(),
	},
	StyleASCII: {
		name:    "ascii",
		context: ContextFormat{Continuation: "|   ", Terminal: "    "},
		prefix:  PrefixFormat{Branch: "|-- ", Leaf: "`-- "},
	},
	StyleRounded: {
		name:    "rounded",
		context: DefaultContextFormat(),
		prefix:  PrefixFormat{Branch: "├── ", Leaf: "╰── "},
	},
	StyleHeavy: {
		name:    "heavy",
		context: ContextFormat{Continuation: "┃   ", Terminal: "    "},
		prefix:  PrefixFormat{Branch: "┣━━ ", Leaf: "┗━━ "},
	},
	StyleDouble: {
		name:    "double",
		context: ContextFormat{Continuation: "║   ", Terminal: "    "},
		prefix:  PrefixFormat{Branch: "╠══ ", Leaf: "╚══ "},
	},
}

var styles = []Style{StyleUnicode, StyleASCII, StyleRounded, StyleHeavy, StyleDouble}

// String returns the style name.
func (s Style) String() string {
	if set, ok := styleSets[s]; ok {
		return set.name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Formats returns the glyph pairs of s. Unknown styles fall back to
// StyleUnicode.
func (s Style) Formats() (ContextFormat, PrefixFormat) {
	set, ok := styleSets[s]
	if !ok {
		set = styleSets[StyleUnicode]
	}
	return set.context, set.prefix
}

// Styles returns all predefined styles.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle parses a style name, ignoring case.
func ParseStyle(s string) (Style, error) {
	for _, st := range styles {
		if strings.EqualFold(styleSets[st].name, s) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedStyle, s)
}
