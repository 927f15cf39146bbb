package term

// expandComponents replaces every component reference whose alias is cached
// with a fresh clone of the cached forest, wrapped in a fragment. The
// fragment carries the reference's attributes as props; children of the
// reference itself are discarded, matching the call-site semantics of a
// component tag.
//
// References whose alias is not cached yet are left in place and counted as
// pending: an import elsewhere in the tree may still provide them on a later
// iteration of the fixpoint driver.
func (r *Renderer) expandComponents(root *Node) (expanded, pending int) {
	refs := root.Find(func(n *Node) bool { return n.Kind() == KindComponentRef })
	for _, ref := range refs {
		if ref.Parent == nil && ref != root {
			// Detached by an earlier replacement in this pass.
			continue
		}
		forest, ok := r.cache.Lookup(string(ref.Tag))
		if !ok {
			pending++
			continue
		}

		frag := NewNode(TagFragment)
		frag.Props = make(map[string]string, len(ref.Attributes))
		for k, v := range ref.Attributes {
			frag.Props[k] = v
		}
		for _, c := range CloneForest(forest) {
			frag.AppendChild(c)
		}

		if ref.ReplaceWith(frag) {
			expanded++
			r.logger.Debug("expanded component <%s>", ref.Tag)
		}
	}
	return expanded, pending
}

// expandTemplates drives import resolution and component expansion to a
// fixpoint. Each iteration resolves every reachable import and expands every
// reference the cache can satisfy; newly expanded components can introduce
// further imports and references, so the loop runs until an iteration makes
// no progress.
//
// A no-progress iteration with references still pending means the page uses
// a component no import provides: fatal. Hitting the iteration ceiling means
// the template graph never converges (a component that expands to a
// reference to itself): also fatal.
func (r *Renderer) expandTemplates(root *Node, basePath string) error {
	max := r.config.MaxExpandIterations
	for i := 0; i < max; i++ {
		aliases, resolved, err := r.resolveImports(root, basePath)
		if err != nil {
			return err
		}
		expanded, pending := r.expandComponents(root)

		if len(aliases) == 0 && resolved == 0 && expanded == 0 {
			if pending > 0 {
				first := root.Find(func(n *Node) bool { return n.Kind() == KindComponentRef })
				return NewUnresolvedComponentError(first[0].Tag)
			}
			return r.checkImportDirectives(root, basePath)
		}
	}
	return NewNonTerminationError("template", max)
}
