package term

import (
	"sync"
	"testing"
)

func TestComponentCacheStoreAndLookup(t *testing.T) {
	c := NewComponentCache()

	if _, ok := c.Lookup("button"); ok {
		t.Error("empty cache should miss")
	}

	forest := []*Node{NewNode(TagText)}
	if !c.Store("button", forest) {
		t.Error("first store should succeed")
	}
	got, ok := c.Lookup("button")
	if !ok || len(got) != 1 {
		t.Fatalf("lookup = (%v, %v)", got, ok)
	}
	if !c.Contains("button") || c.Size() != 1 {
		t.Error("cache state inconsistent after store")
	}
}

func TestComponentCacheFirstWins(t *testing.T) {
	c := NewComponentCache()
	first := []*Node{NewNode(TagText)}
	second := []*Node{NewNode(TagBr)}

	c.Store("x", first)
	if c.Store("x", second) {
		t.Error("second store under same alias should be a no-op")
	}
	got, _ := c.Lookup("x")
	if got[0].Tag != TagText {
		t.Error("later store overwrote the cached forest")
	}
}

func TestComponentCacheClear(t *testing.T) {
	c := NewComponentCache()
	c.Store("a", nil)
	c.Store("b", nil)
	c.Clear()
	if c.Size() != 0 || c.Contains("a") {
		t.Error("clear left entries behind")
	}
}

func TestComponentCacheConcurrentAccess(t *testing.T) {
	c := NewComponentCache()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Store("shared", []*Node{NewNode(TagText)})
			c.Lookup("shared")
			c.Contains("shared")
			c.Size()
		}()
	}
	wg.Wait()

	if c.Size() != 1 {
		t.Errorf("size = %d, want 1", c.Size())
	}
}

func TestRenderersDoNotShareCaches(t *testing.T) {
	a := testRenderer(map[string]string{
		"c.xml": `<root><component><text>a</text></component></root>`,
	})
	b := testRenderer(nil)

	root := mustParse(t, `<root><import key="c" from="c.xml"/></root>`)
	if _, _, err := a.resolveImports(root, "index.xml"); err != nil {
		t.Fatal(err)
	}

	if b.cache.Contains("c") {
		t.Error("renderer caches must be independent")
	}
}
