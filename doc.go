// Package treefmt renders nested data as tree art, the style produced by
// directory listing tools:
//
//	Root
//	├── A
//	│   ├── X
//	│   └── Y
//	└── B
//
// The central type is [Formatter]. It writes a title line on creation and
// then one line per item, prefixing each with the glyphs of every open
// ancestor level followed by a branch or leaf glyph.
//
// # Levels
//
// Children are written inside a level. [Formatter.BeginLevel] opens one,
// [Formatter.EndLevel] closes it. The boolean passed to BeginLevel tells the
// formatter whether the item owning the level was the last of its siblings:
// if it was, lines further down draw blank space under it instead of a
// vertical line.
//
//	f, err := treefmt.New("Root", os.Stdout)
//	f.BeginLevel(true)
//	f.Write(false, "A")
//	f.BeginLevel(false)
//	f.Write(false, "X")
//	f.Write(true, "Y")
//	f.EndLevel()
//	f.Write(true, "B")
//	f.EndLevel()
//
// [Formatter.WriteLevel] and [WriteLevelSeq] write a whole level at once and
// mark the final element as last. The shorthand methods ([Formatter.WriteItem],
// [Formatter.WriteLast], [Formatter.Indent], [Formatter.IndentLast],
// [Formatter.Unindent]) are aliases for the common cases.
//
// # Glyphs
//
// [ContextFormat] selects what an ancestor level contributes, [PrefixFormat]
// the glyph before an item's label. Both can be replaced at any time and
// apply to later lines only. [Style] names predefined pairs:
//
//	f.SetStyle(treefmt.StyleASCII)
//
// Glyphs are concatenated verbatim; no width measurement or padding is done.
//
// # Recursive Rendering
//
// Any type implementing [Renderer] can draw itself, including its own
// sub-levels, through [Formatter.Render]. [Node] is a ready-made
// implementation, and [DecodeYAML] builds one from a YAML or JSON document.
// [Fprint] and [Marshal] cover the create-render-check cycle:
//
//	out, err := treefmt.Marshal("config", node)
//
// # Errors
//
// Writer failures are returned wrapped in [ErrWrite]. The render should be
// abandoned on the first error.
package treefmt
