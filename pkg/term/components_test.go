package term

import (
	"testing"
)

func TestExpandComponentsWrapsInFragment(t *testing.T) {
	r := testRenderer(nil)
	r.cache.Store("button", []*Node{func() *Node {
		n := NewNode(TagText)
		n.Text = "click"
		return n
	}()})
	root := mustParse(t, `<root><button label="go"/></root>`)

	expanded, pending := r.expandComponents(root)
	if expanded != 1 || pending != 0 {
		t.Fatalf("expanded=%d pending=%d, want 1, 0", expanded, pending)
	}

	frag := root.Children[0]
	if frag.Tag != TagFragment {
		t.Fatalf("replacement tag = %q, want fragment", frag.Tag)
	}
	if frag.Props["label"] != "go" {
		t.Errorf("props = %v, want call-site attributes", frag.Props)
	}
	if len(frag.Children) != 1 || frag.Children[0].Text != "click" {
		t.Errorf("fragment children = %+v", frag.Children)
	}
}

func TestExpandComponentsClonesCache(t *testing.T) {
	r := testRenderer(nil)
	cached := NewNode(TagText)
	cached.Text = "original"
	r.cache.Store("thing", []*Node{cached})
	root := mustParse(t, `<root><thing/><thing/></root>`)

	r.expandComponents(root)

	first := root.Children[0].Children[0]
	second := root.Children[1].Children[0]
	if first == cached || second == cached || first == second {
		t.Fatal("expansion shared nodes instead of cloning")
	}
	first.Text = "mutated"
	if cached.Text != "original" || second.Text != "original" {
		t.Error("mutating one expansion leaked into cache or sibling")
	}
}

func TestExpandComponentsUncachedIsPending(t *testing.T) {
	r := testRenderer(nil)
	root := mustParse(t, `<root><unknown/></root>`)

	expanded, pending := r.expandComponents(root)
	if expanded != 0 || pending != 1 {
		t.Errorf("expanded=%d pending=%d, want 0, 1", expanded, pending)
	}
	if root.Children[0].Tag != Tag("unknown") {
		t.Error("pending reference should stay in place")
	}
}

func TestExpandTemplatesUnresolvedComponent(t *testing.T) {
	r := testRenderer(map[string]string{
		"index.xml": `<root><nothing-imports-this/></root>`,
	})

	_, err := r.Render("index.xml", Context{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsUnresolvedComponentError(err) {
		t.Errorf("error = %v, want unresolved component error", err)
	}
}

func TestExpandTemplatesTransitiveImports(t *testing.T) {
	// page imports a component whose body imports another component.
	r := testRenderer(map[string]string{
		"index.xml": `<root><import key="outer" from="outer.xml"/><outer/></root>`,
		"outer.xml": `<root><component><import key="inner" from="inner.xml"/><container><inner/></container></component></root>`,
		"inner.xml": `<root><component><text>deep</text></component></root>`,
	})

	out, err := r.Render("index.xml", Context{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := xmlDeclaration + `<root><container><text>deep</text></container></root>`
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExpandTemplatesCyclicComponent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxExpandIterations = 10
	r := testRenderer(map[string]string{
		"index.xml": `<root><import key="loop" from="loop.xml"/><loop/></root>`,
		"loop.xml":  `<root><component><container><loop/></container></component></root>`,
	}, WithConfig(cfg))

	_, err := r.Render("index.xml", Context{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsNonTerminationError(err) {
		t.Errorf("error = %v, want non-termination error", err)
	}
}

func TestExpandTemplatesComponentReuse(t *testing.T) {
	r := testRenderer(map[string]string{
		"index.xml":  `<root><import key="badge" from="badge.xml"/><badge/><badge/><badge/></root>`,
		"badge.xml":  `<root><component><text>b</text></component></root>`,
		"second.xml": `<root><badge/></root>`,
	})

	if _, err := r.Render("index.xml", Context{}); err != nil {
		t.Fatalf("Render index: %v", err)
	}

	// The cache persists across renders of the same renderer, so a page
	// using the component without importing it again still resolves.
	out, err := r.Render("second.xml", Context{})
	if err != nil {
		t.Fatalf("Render second: %v", err)
	}
	want := xmlDeclaration + `<root><text>b</text></root>`
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}
