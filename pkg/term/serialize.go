package term

import "strings"

const xmlDeclaration = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

// Serialize renders a fully-resolved tree to indented textual markup with a
// fixed document declaration prefix. Fragments are transparent (only their
// children appear) and any leftover import nodes are suppressed.
func Serialize(root *Node) string {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	writeNode(&b, root, 0)
	return b.String()
}

// writeNode emits one element. Layout rule: children go on their own
// indented lines only when the element has more than one effective child and
// at least one of them is not a plain text leaf; a lone child, or siblings
// that are all text leaves, render inline without added whitespace.
func writeNode(b *strings.Builder, n *Node, depth int) {
	b.WriteString("<")
	b.WriteString(string(n.Tag))
	for _, name := range n.AttrNames() {
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString("=\"")
		b.WriteString(escapeAttr(n.Attributes[name]))
		b.WriteString("\"")
	}

	kids := effectiveChildren(n)
	if len(kids) == 0 && n.Text == "" {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")

	if len(kids) == 0 {
		b.WriteString(escapeText(n.Text))
	} else if len(kids) > 1 && !allTextLeaves(kids) {
		for _, c := range kids {
			b.WriteString("\n")
			b.WriteString(strings.Repeat("  ", depth+1))
			writeNode(b, c, depth+1)
		}
		b.WriteString("\n")
		b.WriteString(strings.Repeat("  ", depth))
	} else {
		for _, c := range kids {
			writeNode(b, c, depth)
		}
	}

	b.WriteString("</")
	b.WriteString(string(n.Tag))
	b.WriteString(">")
}

// effectiveChildren flattens transparent fragments and drops imports, so
// layout decisions see the children that will actually be emitted.
func effectiveChildren(n *Node) []*Node {
	var out []*Node
	for _, c := range n.Children {
		switch c.Tag {
		case TagImport:
		case TagFragment:
			out = append(out, effectiveChildren(c)...)
		default:
			out = append(out, c)
		}
	}
	return out
}

func allTextLeaves(nodes []*Node) bool {
	for _, n := range nodes {
		if n.Tag != TagText || len(effectiveChildren(n)) > 0 {
			return false
		}
	}
	return true
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	return strings.ReplaceAll(s, "\"", "&quot;")
}
