// internal/deck/segment.go
package deck

import "github.com/yuin/goldmark/ast"

// segment folds the document's top-level nodes into slides. A heading
// of level 1 or 2 flushes the accumulated nodes first, unless the
// accumulator is empty, so a heading opening the document does not
// leave a spurious empty slide in front of it. Level 3 and deeper
// headings are ordinary in-slide content. The final flush is
// unconditional: an empty document still yields one empty slide.
func segment(root ast.Node) []Slide {
	var out []Slide
	var acc []ast.Node

	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		if h, ok := child.(*ast.Heading); ok && h.Level <= 2 && len(acc) > 0 {
			out = append(out, Slide{Nodes: acc})
			acc = nil
		}
		acc = append(acc, child)
	}

	return append(out, Slide{Nodes: acc})
}
