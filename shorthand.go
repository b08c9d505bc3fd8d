package treefmt

import "fmt"

// WriteItem writes item as a non-last sibling.
func (f *Formatter) WriteItem(item any) error { return f.Write(false, item) }

// WriteLast writes item as the last sibling.
func (f *Formatter) WriteLast(item any) error { return f.Write(true, item) }

// Writef writes a formatted label as a non-last sibling.
func (f *Formatter) Writef(format string, args ...any) error {
	return f.Write(false, fmt.Sprintf(format, args...))
}

// WriteLastf writes a formatted label as the last sibling.
func (f *Formatter) WriteLastf(format string, args ...any) error {
	return f.Write(true, fmt.Sprintf(format, args...))
}

// Indent opens a level below a non-last item.
func (f *Formatter) Indent() { f.BeginLevel(false) }

// IndentLast opens a level below the last item.
func (f *Formatter) IndentLast() { f.BeginLevel(true) }

// Unindent closes the innermost level.
func (f *Formatter) Unindent() { f.EndLevel() }
