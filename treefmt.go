package treefmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrWrite            = errors.New("write failure")
	ErrUnbalanced       = errors.New("unbalanced levels")
	ErrUnsupportedStyle = errors.New("unsupported style")
	ErrEmptyDocument    = errors.New("empty document")
	ErrAliasExpansion   = errors.New("document has excessive aliasing")
)

// --- Core Interfaces ---

// Renderer draws itself into a [Formatter]: its own items and any
// sub-levels below them. Required by [Formatter.Render], [Fprint] and
// [Marshal].
type Renderer interface {
	RenderTree(f *Formatter) error
}

// RendererFunc adapts an ordinary function to [Renderer].
type RendererFunc func(f *Formatter) error

// RenderTree calls fn(f).
func (fn RendererFunc) RenderTree(f *Formatter) error { return fn(f) }

// --- Optional Interfaces ---

// Styled selects the glyph style used by [Fprint] and [Marshal].
// Default: StyleUnicode.
type Styled interface {
	Style() Style
}

// Contexted provides a leading context repeated at the start of every line
// written by [Fprint] and [Marshal].
// Default: no leading context.
type Contexted interface {
	LeadingContext() string
}

// Fprint renders r under title and writes the tree to w. The render fails
// with [ErrUnbalanced] when r leaves levels open or closes more than it
// opened.
func Fprint(w io.Writer, title any, r Renderer) error {
	var leading string
	if c, ok := r.(Contexted); ok {
		leading = c.LeadingContext()
	}
	f, err := NewWithContext(title, w, leading)
	if err != nil {
		return err
	}
	if s, ok := r.(Styled); ok {
		f.SetStyle(s.Style())
	}
	if err := f.Render(r); err != nil {
		return err
	}
	return f.Close()
}

// Marshal renders r under title and returns the bytes.
func Marshal(title any, r Renderer) ([]byte, error) {
	var buf bytes.Buffer
	if err := Fprint(&buf, title, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrWrite, err)
}
