package term

import (
	"path/filepath"
)

// resolveImports loads the target of every unresolved import node into the
// component cache and returns the newly cached aliases along with the number
// of import nodes marked resolved.
//
// Import paths resolve relative to the file that introduced the import: the
// node's fromOrigin when set, else the top-level page. The cached forest is
// the imported document root's first child's children; nested imports inside
// it are tagged with the resolved path so their own relative paths resolve
// against the right directory.
//
// An import missing its key or from attribute is skipped, not failed,
// unless strict imports are configured. Skipped imports are inert: they
// never count as pending.
func (r *Renderer) resolveImports(root *Node, basePath string) ([]string, int, error) {
	var newAliases []string
	resolved := 0

	for _, imp := range root.Find(isPendingImport) {
		alias, from := importDirective(imp)

		origin := imp.FromOrigin
		if origin == "" {
			origin = basePath
		}
		path := filepath.Join(filepath.Dir(origin), from)

		if r.cache.Contains(alias) {
			imp.Imported = true
			resolved++
			continue
		}

		data, err := r.source.ReadFile(path)
		if err != nil {
			return nil, resolved, NewDocumentError("read", path, err)
		}
		doc, err := ParseDocument(data, path)
		if err != nil {
			return nil, resolved, err
		}

		var forest []*Node
		if len(doc.Children) > 0 {
			forest = doc.Children[0].Children
		}
		for _, n := range forest {
			n.Parent = nil
			n.Walk(func(node *Node) {
				if node.Tag == TagImport && node.FromOrigin == "" {
					node.FromOrigin = path
				}
			})
		}

		r.cache.Store(alias, forest)
		imp.Imported = true
		resolved++
		newAliases = append(newAliases, alias)
		r.logger.Debug("cached component %q from %s", alias, path)
	}

	return newAliases, resolved, nil
}

// checkImportDirectives reports malformed imports when strict imports are
// enabled; the lenient default only logs them.
func (r *Renderer) checkImportDirectives(root *Node, basePath string) error {
	for _, imp := range root.Find(func(n *Node) bool { return n.Tag == TagImport && !n.Imported }) {
		if isPendingImport(imp) {
			continue
		}
		if r.config.StrictImports {
			return NewImportError(basePath, "import requires both key and from attributes")
		}
		r.logger.Debug("skipping malformed import in %s", basePath)
	}
	return nil
}

// isPendingImport reports whether a node is an import that still needs
// resolution. Already-resolved and malformed imports are inert.
func isPendingImport(n *Node) bool {
	if n.Tag != TagImport || n.Imported {
		return false
	}
	alias, from := importDirective(n)
	return alias != "" && from != ""
}

func importDirective(n *Node) (alias, from string) {
	alias, _ = n.Attr("key")
	from, _ = n.Attr("from")
	return alias, from
}
