// internal/render/render.go

// Package render converts markdown AST nodes into styled terminal
// lines. Rendering is a pure function of the node tree, the source
// bytes, the theme and the inherited style: it never fails, and node
// kinds it does not recognize fall back to transparent recursion over
// their children.
package render

import (
	"fmt"
	"strings"

	"github.com/bethropolis/deck/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/yuin/goldmark/ast"
)

// Span is a run of text sharing one resolved style.
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is an ordered sequence of spans for one terminal row. A span
// may carry an embedded "\n" (hard or soft line break); Flatten splits
// those into real rows before display.
type Line struct {
	Spans []Span
}

// Text concatenates the line's span texts.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

const (
	bulletMarker = "• "
	quotePrefix  = "> "
	fenceMarker  = "```"
	ruleGlyph    = "─"
	ruleWidth    = 40
)

// Renderer renders nodes against one theme and source buffer.
type Renderer struct {
	theme  *theme.Theme
	source []byte
}

// New creates a renderer for a parsed document's source bytes.
func New(th *theme.Theme, source []byte) *Renderer {
	return &Renderer{theme: th, source: source}
}

// Render converts a sequence of block nodes into lines under the
// inherited style.
func (r *Renderer) Render(nodes []ast.Node, inherited tcell.Style) []Line {
	var out []Line
	for _, n := range nodes {
		out = append(out, r.renderBlock(n, inherited)...)
	}
	return out
}

// renderBlock dispatches one block node. Styles flow down by value:
// merging a role style onto the inherited one never mutates the
// caller's copy.
func (r *Renderer) renderBlock(n ast.Node, inherited tcell.Style) []Line {
	switch b := n.(type) {
	case *ast.Heading:
		style := theme.Merge(inherited, r.theme.GetStyle("heading"))
		spans := []Span{{Text: strings.Repeat("#", b.Level) + " ", Style: style}}
		spans = r.collectInline(b, style, spans)
		return []Line{{Spans: spans}, {}}

	case *ast.Paragraph:
		spans := r.collectInline(b, inherited, nil)
		return []Line{{Spans: spans}, {}}

	case *ast.List:
		var out []Line
		i := 0
		for item := b.FirstChild(); item != nil; item = item.NextSibling() {
			marker := bulletMarker
			if b.IsOrdered() {
				marker = fmt.Sprintf("%d. ", i+1)
			}
			spans := []Span{{Text: marker, Style: inherited}}
			spans = r.collectInline(item, inherited, spans)
			out = append(out, Line{Spans: spans})
			i++
		}
		// One blank after the whole list, never per item.
		return append(out, Line{})

	case *ast.FencedCodeBlock:
		return r.renderCode(b, string(b.Language(r.source)))

	case *ast.CodeBlock:
		return r.renderCode(b, "")

	case *ast.Blockquote:
		style := theme.Merge(inherited, r.theme.GetStyle("quote"))
		var inner []Line
		for c := b.FirstChild(); c != nil; c = c.NextSibling() {
			inner = append(inner, r.renderBlock(c, style)...)
		}
		// Every produced line gets the prefix, blank ones included.
		// The quote adds no trailing blank of its own.
		out := make([]Line, 0, len(inner))
		for _, line := range inner {
			spans := append([]Span{{Text: quotePrefix, Style: style}}, line.Spans...)
			out = append(out, Line{Spans: spans})
		}
		return out

	case *ast.ThematicBreak:
		style := theme.Merge(inherited, r.theme.GetStyle("rule"))
		return []Line{
			{Spans: []Span{{Text: strings.Repeat(ruleGlyph, ruleWidth), Style: style}}},
			{},
		}

	default:
		if !n.HasChildren() {
			return nil
		}
		var out []Line
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			out = append(out, r.renderBlock(c, inherited)...)
		}
		return out
	}
}

// renderCode emits a fenced block verbatim. Code is never parsed for
// markup and keeps the fixed code style regardless of what surrounds
// it.
func (r *Renderer) renderCode(n ast.Node, lang string) []Line {
	style := r.theme.GetStyle("code.block")

	out := []Line{{Spans: []Span{{Text: fenceMarker + lang, Style: style}}}}
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		text := strings.TrimRight(string(seg.Value(r.source)), "\r\n")
		out = append(out, Line{Spans: []Span{{Text: text, Style: style}}})
	}
	out = append(out, Line{Spans: []Span{{Text: fenceMarker, Style: style}}})
	return append(out, Line{})
}

// collectInline appends the inline spans of n's children to spans.
func (r *Renderer) collectInline(n ast.Node, style tcell.Style, spans []Span) []Span {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		spans = r.inlineSpans(c, style, spans)
	}
	return spans
}

// inlineSpans appends the spans for one inline node. Line breaks are
// emitted as a "\n" span of their own; the display layer honors them.
func (r *Renderer) inlineSpans(n ast.Node, style tcell.Style, spans []Span) []Span {
	switch in := n.(type) {
	case *ast.Text:
		if t := string(in.Segment.Value(r.source)); t != "" {
			spans = append(spans, Span{Text: t, Style: style})
		}
		if in.SoftLineBreak() || in.HardLineBreak() {
			spans = append(spans, Span{Text: "\n", Style: style})
		}
		return spans

	case *ast.String:
		if len(in.Value) > 0 {
			spans = append(spans, Span{Text: string(in.Value), Style: style})
		}
		return spans

	case *ast.CodeSpan:
		return append(spans, Span{Text: codeSpanText(in, r.source), Style: r.theme.GetStyle("code.inline")})

	case *ast.Emphasis:
		next := style.Italic(true)
		if in.Level == 2 {
			next = style.Bold(true)
		}
		return r.collectInline(in, next, spans)

	case *ast.Link:
		// The destination URL is not rendered, only the link text.
		return r.collectInline(in, theme.Merge(style, r.theme.GetStyle("link")), spans)

	case *ast.AutoLink:
		return append(spans, Span{Text: string(in.URL(r.source)), Style: theme.Merge(style, r.theme.GetStyle("link"))})

	default:
		return r.collectInline(n, style, spans)
	}
}

// codeSpanText gathers the literal text of a code span's children.
func codeSpanText(n *ast.CodeSpan, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
	}
	return b.String()
}

// Flatten splits spans containing "\n" so every returned Line is
// exactly one terminal row. Scroll arithmetic and painting work on
// flattened rows.
func Flatten(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		cur := Line{}
		for _, span := range line.Spans {
			if !strings.Contains(span.Text, "\n") {
				cur.Spans = append(cur.Spans, span)
				continue
			}
			parts := strings.Split(span.Text, "\n")
			for j, part := range parts {
				if j > 0 {
					out = append(out, cur)
					cur = Line{}
				}
				if part != "" {
					cur.Spans = append(cur.Spans, Span{Text: part, Style: span.Style})
				}
			}
		}
		out = append(out, cur)
	}
	return out
}

// PlainText joins lines into a newline-separated string, styles
// dropped. Used for the clipboard yank.
func PlainText(lines []Line) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line.Text())
	}
	return b.String()
}
