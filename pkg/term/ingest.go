package term

import (
	"strings"

	"github.com/beevik/etree"
)

// ParseDocument parses raw page markup and converts it into a Node tree.
// Parsing itself is delegated to etree; this file only adapts its generic
// element shape (tag, attributes, ordered children, character data) into the
// engine's Node.
//
// A document with no root element or more than one root element is a
// structural error, reported in-band without partial output. Malformed
// markup is a document error from the parsing layer.
func ParseDocument(source []byte, path string) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(source); err != nil {
		return nil, NewDocumentError("parse", path, err)
	}

	var roots []*etree.Element
	for _, tok := range doc.Child {
		if el, ok := tok.(*etree.Element); ok {
			roots = append(roots, el)
		}
	}
	switch {
	case len(roots) == 0:
		return nil, NewStructuralError("document has no root element")
	case len(roots) > 1:
		return nil, NewStructuralError("document has more than one root element")
	}

	return ingestElement(roots[0], nil), nil
}

// ingestElement recursively converts one parsed element. Character data
// between child elements becomes synthetic text nodes; an element whose
// children are character data only keeps it as its own text content, so
// self-closing and text-bearing leaves round-trip through the serializer.
func ingestElement(el *etree.Element, parent *Node) *Node {
	n := NewNode(Tag(el.Tag))
	n.Parent = parent
	for _, attr := range el.Attr {
		n.Attributes[attr.Key] = attr.Value
	}

	hasChildElements := false
	for _, tok := range el.Child {
		if _, ok := tok.(*etree.Element); ok {
			hasChildElements = true
			break
		}
	}

	if !hasChildElements {
		var text strings.Builder
		for _, tok := range el.Child {
			if cd, ok := tok.(*etree.CharData); ok {
				text.WriteString(cd.Data)
			}
		}
		n.Text = strings.TrimSpace(text.String())
		return n
	}

	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			n.Children = append(n.Children, ingestElement(t, n))
		case *etree.CharData:
			content := strings.TrimSpace(t.Data)
			if content == "" {
				continue
			}
			text := NewNode(TagText)
			text.Text = content
			text.Parent = n
			n.Children = append(n.Children, text)
		}
	}
	return n
}
