package treefmt

import (
	"fmt"
	"io"
)

const defaultLevelCapacity = 3

// Formatter writes tree art line by line. It tracks how deep the current
// line is and, for every open level beyond the first, the glyph that level
// contributes to the indentation of deeper lines.
//
// A Formatter is bound to one writer for its whole lifetime and is not safe
// for concurrent use.
type Formatter struct {
	w io.Writer

	depth   int
	context []byte
	// offsets[i] is where the contribution of level i+2 starts in context.
	offsets []int

	contextFormat ContextFormat
	prefixFormat  PrefixFormat
}

// New writes title as the root line and returns a Formatter for its
// descendants.
func New(title any, w io.Writer) (*Formatter, error) {
	return NewWithContext(title, w, "")
}

// NewWithContext is like [New] but starts every line, the root included,
// with leading. The leading context is written verbatim and takes no part
// in indentation.
func NewWithContext(title any, w io.Writer, leading string) (*Formatter, error) {
	if _, err := fmt.Fprintf(w, "%s%s\n", leading, label(title)); err != nil {
		return nil, writeFailure(err)
	}
	context := make([]byte, 0, len(leading)+defaultLevelCapacity*len(defaultContinuation))
	return &Formatter{
		w:             w,
		context:       append(context, leading...),
		offsets:       make([]int, 0, defaultLevelCapacity),
		contextFormat: DefaultContextFormat(),
		prefixFormat:  DefaultPrefixFormat(),
	}, nil
}

// SetContextFormat replaces the context glyphs used by later writes.
func (f *Formatter) SetContextFormat(c ContextFormat) *Formatter {
	f.contextFormat = c
	return f
}

// SetPrefixFormat replaces the prefix glyphs used by later writes.
func (f *Formatter) SetPrefixFormat(p PrefixFormat) *Formatter {
	f.prefixFormat = p
	return f
}

// SetStyle replaces both glyph pairs with those of s.
func (f *Formatter) SetStyle(s Style) *Formatter {
	c, p := s.Formats()
	return f.SetContextFormat(c).SetPrefixFormat(p)
}

// Depth returns the number of open levels.
func (f *Formatter) Depth() int { return f.depth }

// BeginLevel opens a level for the children of the item just written.
// isLastBranch reports whether that item was the last of its siblings; it
// decides whether lines below the new level draw a continuation glyph or
// blank space for it. The root's children add nothing to the context.
func (f *Formatter) BeginLevel(isLastBranch bool) {
	f.depth++
	if f.depth > 1 {
		f.offsets = append(f.offsets, len(f.context))
		f.context = append(f.context, f.contextFormat.Context(isLastBranch)...)
	}
}

// EndLevel closes the innermost level and drops its context contribution.
// Calls are not checked for balance; see [Formatter.Close].
func (f *Formatter) EndLevel() {
	f.depth--
	if n := len(f.offsets); n > 0 {
		f.context = f.context[:f.offsets[n-1]]
		f.offsets = f.offsets[:n-1]
	}
}

// Write writes one item at the current depth. isLast selects the leaf
// prefix instead of the branch prefix.
func (f *Formatter) Write(isLast bool, item any) error {
	if _, err := fmt.Fprintf(f.w, "%s%s%s\n", f.context, f.prefixFormat.Prefix(isLast), label(item)); err != nil {
		return writeFailure(err)
	}
	// Only reachable when the offset stack runs ahead of depth.
	if n := len(f.offsets); isLast && n > 0 && n > f.depth-1 {
		f.context = append(f.context[:f.offsets[n-1]], f.contextFormat.Context(true)...)
	}
	return nil
}

// WriteLevel opens a level, writes items into it marking only the final one
// as last, and closes the level. No items means no lines.
func (f *Formatter) WriteLevel(isLastBranch bool, items ...any) error {
	f.BeginLevel(isLastBranch)
	for i, item := range items {
		if err := f.Write(i == len(items)-1, item); err != nil {
			return err
		}
	}
	f.EndLevel()
	return nil
}

// Render lets r draw itself into f.
func (f *Formatter) Render(r Renderer) error {
	return r.RenderTree(f)
}

// Close reports [ErrUnbalanced] when levels were left open or closed more
// often than opened. It does not close the underlying writer.
func (f *Formatter) Close() error {
	if f.depth != 0 {
		return fmt.Errorf("%w: depth %d after render", ErrUnbalanced, f.depth)
	}
	return nil
}

func label(item any) string {
	return fmt.Sprint(item)
}
