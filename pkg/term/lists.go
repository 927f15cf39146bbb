package term

import "reflect"

// expandLists unrolls every list node against the render context. A list
// with K children bound to a collection of N items becomes N*K siblings in
// item-major order; a list whose collection is missing, empty, or not a
// collection disappears along with its children.
//
// Unrolling runs to a fixpoint because a list's body may contain further
// lists over the same context; nested lists unroll outer-first, so the inner
// pass sees already-cloned bodies and produces row-major order.
func (r *Renderer) expandLists(root *Node, ctx Context) error {
	max := r.config.MaxExpandIterations
	for i := 0; i < max; i++ {
		changed := 0
		for _, list := range root.Find(func(n *Node) bool { return n.Tag == TagList }) {
			if list.Parent == nil {
				// Detached when an enclosing list was removed this pass.
				continue
			}
			if r.unrollList(list, ctx) {
				changed++
			}
		}
		if changed == 0 {
			return nil
		}
	}
	return NewNonTerminationError("list", max)
}

// unrollList replaces one list node with its expansion. Reports whether the
// tree changed.
func (r *Renderer) unrollList(list *Node, ctx Context) bool {
	key, _ := list.Attr("items")
	items, ok := collectionFor(ctx, key)
	if !ok || len(items) == 0 {
		return list.Remove()
	}

	out := make([]*Node, 0, len(items)*len(list.Children))
	for idx, item := range items {
		for _, c := range list.Children {
			clone := c.Clone()
			attachLoopData(clone, item, idx)
			out = append(out, clone)
		}
	}
	r.logger.Debug("unrolled list %q into %d nodes", key, len(out))
	return list.SpliceWith(out)
}

// collectionFor looks up a context value by key and normalizes it to a slice.
func collectionFor(ctx Context, key string) ([]any, bool) {
	if key == "" {
		return nil, false
	}
	value, ok := ctx[key]
	if !ok || value == nil {
		return nil, false
	}
	if items, ok := value.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// attachLoopData stamps the iteration's item and index onto every node of a
// cloned subtree. Stamping the whole subtree (not just the top) lets @item
// and @index resolve from any depth, and an inner loop restamps its own
// subtree so the nearest loop wins.
func attachLoopData(n *Node, item any, index int) {
	n.Walk(func(node *Node) {
		node.ListItem = item
		node.ListIndex = index
		node.Looped = true
	})
}
