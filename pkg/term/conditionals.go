package term

// resolveConditionals prunes or keeps every conditional subtree. A true
// condition turns the if node into a transparent fragment so its children
// flow into the parent's layout; a false condition removes the node and its
// subtree. Children of surviving conditionals are resolved recursively, so
// nested conditionals only run when their enclosing branch is kept.
func (r *Renderer) resolveConditionals(n *Node, ctx Context) {
	children := make([]*Node, len(n.Children))
	copy(children, n.Children)

	for _, c := range children {
		if c.Tag != TagIf {
			r.resolveConditionals(c, ctx)
			continue
		}
		raw, _ := c.Attr("condition")
		if r.coerceBool(raw, c, ctx) {
			c.Tag = TagFragment
			delete(c.Attributes, "condition")
			r.resolveConditionals(c, ctx)
		} else {
			c.Remove()
		}
	}
}

// coerceBool evaluates a raw condition value to a boolean. Interpolation runs
// first in the node's own scope; the filled value then goes through the
// expression engine with loose truthiness. A value the engine cannot parse,
// or that resolves to nothing (a bare word is an unbound variable to the
// engine), falls back to plain non-empty-string truthiness, so conditions
// like condition="${flag}" behave sensibly for any context value.
func (r *Renderer) coerceBool(raw string, n *Node, ctx Context) bool {
	filled := r.evaluateString(raw, n, ctx)
	value, err := r.eval.Evaluate(filled)
	if err != nil || value == nil {
		if err != nil {
			r.logger.Debug("condition %q not evaluable, using string truthiness: %v", filled, err)
		}
		return filled != ""
	}
	return isTruthy(value)
}
