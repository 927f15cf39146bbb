package term

import "sort"

// Tag identifies the kind of a node. The built-in vocabulary is closed; any
// other tag name is a component reference resolved through the component
// cache.
type Tag string

const (
	TagRoot      Tag = "root"
	TagImport    Tag = "import"
	TagList      Tag = "list"
	TagIf        Tag = "if"
	TagFragment  Tag = "fragment"
	TagAction    Tag = "action"
	TagContainer Tag = "container"
	TagInput     Tag = "input"
	TagText      Tag = "text"
	TagLink      Tag = "link"
	TagBr        Tag = "br"
)

var builtinTags = map[Tag]bool{
	TagRoot:      true,
	TagImport:    true,
	TagList:      true,
	TagIf:        true,
	TagFragment:  true,
	TagAction:    true,
	TagContainer: true,
	TagInput:     true,
	TagText:      true,
	TagLink:      true,
	TagBr:        true,
}

// NodeKind classifies a node's tag once, so the rest of the pipeline never
// decides built-in-versus-component by "not in a known list".
type NodeKind int

const (
	KindBuiltin NodeKind = iota
	KindComponentRef
)

// Node is a single element in the document tree. Children are exclusively
// owned by their parent; Parent is a non-owning back-reference used only for
// in-place tree surgery.
type Node struct {
	Tag        Tag
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node

	// Props holds the call-site attributes of an expanded component. It is
	// attached only to fragment nodes created by the component expander and
	// is evaluated in the caller's scope.
	Props map[string]string

	// ListItem and ListIndex carry the current iteration's data for nodes
	// cloned during list expansion. Looped reports whether they are set.
	ListItem  any
	ListIndex int
	Looped    bool

	// Imported marks an import node whose target has already been cached.
	// FromOrigin is the absolute path of the file that introduced this
	// import, used to resolve nested relative import paths.
	Imported   bool
	FromOrigin string
}

// NewNode returns a node with the given tag and an empty attribute map.
func NewNode(tag Tag) *Node {
	return &Node{
		Tag:        tag,
		Attributes: make(map[string]string),
	}
}

// Kind classifies the node. fragment and if are built-ins even though they
// never reach the serializer as authored tags.
func (n *Node) Kind() NodeKind {
	if builtinTags[n.Tag] {
		return KindBuiltin
	}
	return KindComponentRef
}

// Attr returns the attribute value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	v, ok := n.Attributes[name]
	return v, ok
}

// AttrNames returns the attribute names in sorted order. Attribute maps are
// order-irrelevant; sorting keeps serialization and logging deterministic.
func (n *Node) AttrNames() []string {
	names := make([]string, 0, len(n.Attributes))
	for name := range n.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AppendChild adds c to the end of n's children and re-parents it.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// IndexIn returns n's position in parent's children, or -1.
func (n *Node) IndexIn(parent *Node) int {
	if parent == nil {
		return -1
	}
	for i, c := range parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}

// ReplaceWith splices replacement into n's place in its parent's children.
// The replacement keeps n's index; n is detached.
func (n *Node) ReplaceWith(replacement *Node) bool {
	idx := n.IndexIn(n.Parent)
	if idx < 0 {
		return false
	}
	replacement.Parent = n.Parent
	n.Parent.Children[idx] = replacement
	n.Parent = nil
	return true
}

// SpliceWith replaces n in its parent's children with the given nodes,
// preserving order. An empty slice deletes n.
func (n *Node) SpliceWith(nodes []*Node) bool {
	parent := n.Parent
	idx := n.IndexIn(parent)
	if idx < 0 {
		return false
	}
	for _, node := range nodes {
		node.Parent = parent
	}
	children := make([]*Node, 0, len(parent.Children)+len(nodes)-1)
	children = append(children, parent.Children[:idx]...)
	children = append(children, nodes...)
	children = append(children, parent.Children[idx+1:]...)
	parent.Children = children
	n.Parent = nil
	return true
}

// Remove deletes n (and its subtree) from its parent's children.
func (n *Node) Remove() bool {
	return n.SpliceWith(nil)
}

// Clone deep-copies the subtree rooted at n, breaking all sharing with the
// original. The clone's Parent is nil; callers re-parent it on insertion.
func (n *Node) Clone() *Node {
	clone := &Node{
		Tag:        n.Tag,
		Text:       n.Text,
		ListItem:   n.ListItem,
		ListIndex:  n.ListIndex,
		Looped:     n.Looped,
		Imported:   n.Imported,
		FromOrigin: n.FromOrigin,
	}
	if n.Attributes != nil {
		clone.Attributes = make(map[string]string, len(n.Attributes))
		for k, v := range n.Attributes {
			clone.Attributes[k] = v
		}
	}
	if n.Props != nil {
		clone.Props = make(map[string]string, len(n.Props))
		for k, v := range n.Props {
			clone.Props[k] = v
		}
	}
	if len(n.Children) > 0 {
		clone.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cc := c.Clone()
			cc.Parent = clone
			clone.Children[i] = cc
		}
	}
	return clone
}

// CloneForest deep-copies a forest of sibling nodes.
func CloneForest(nodes []*Node) []*Node {
	clones := make([]*Node, len(nodes))
	for i, n := range nodes {
		clones[i] = n.Clone()
	}
	return clones
}

// Walk visits n and every descendant in depth-first document order. The
// visitor must not detach the node it is currently visiting; passes that
// rewrite the tree collect their targets first and splice afterwards.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Find collects every descendant (including n) matching the predicate.
func (n *Node) Find(match func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(node *Node) {
		if match(node) {
			out = append(out, node)
		}
	})
	return out
}

// EnclosingFragment returns the nearest ancestor fragment, or nil when n is
// unscoped. Used for @item / @props / @index resolution.
func (n *Node) EnclosingFragment() *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Tag == TagFragment {
			return p
		}
	}
	return nil
}
