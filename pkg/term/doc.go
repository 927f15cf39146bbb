// Package term compiles terminal-site page markup into rendered documents.
//
// A page is an XML document using a small tag vocabulary (root, container,
// text, link, input, action, br) plus directives: import loads a component
// file into the renderer's cache, any unknown tag instantiates a cached
// component, list unrolls its children over a context collection, and if
// keeps or prunes a subtree by an evaluated condition. Values interpolate
// ${...} references against the render context and the loop/prop scope
// chain, and whole-value parenthesized expressions run through an embedded
// expression engine.
//
// The pipeline rewrites a single mutable tree in place: import resolution
// and component expansion iterate to a fixpoint, then lists unroll, then
// expressions fill, then conditionals resolve, then the tree serializes to
// indented markup. Fixpoint loops are bounded; a cyclic component graph
// fails with a non-termination error instead of hanging.
//
// Typical use:
//
//	r := term.NewRenderer()
//	out, err := r.Render("pages/index.xml", term.Context{"search": "cats"})
package term
