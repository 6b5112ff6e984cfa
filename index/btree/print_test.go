package btree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTreePrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "basefs.btree")
	defer teardown()
	//
	tree := newTree(t, nil, 1, 2, 3, 4, 5, 6, 7)
	var buf bytes.Buffer
	if err := tree.Print(&buf); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	out := buf.String()
	t.Logf("tree =\n%s", out)
	for _, expected := range []string{
		"Tree(order=4 depth=2 len=7)",
		"inner ⟨2 4⟩",
		"leaf ⟨1⟩",
		"leaf ⟨3⟩",
		"leaf ⟨5 6 7⟩",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected output to contain %q, doesn't", expected)
		}
	}
	if strings.Index(out, "⟨1⟩") > strings.Index(out, "⟨5 6 7⟩") {
		t.Error("expected children to be printed in ascending order")
	}
}

func TestTreePrintEmptyAndDestroyed(t *testing.T) {
	tree := newTree(t, nil)
	if out := tree.String(); !strings.Contains(out, "leaf ⟨⟩") {
		t.Errorf("expected empty tree to print an empty leaf, is\n%s", out)
	}
	tree.Destroy()
	if out := tree.String(); !strings.Contains(out, "(destroyed)") {
		t.Errorf("expected destroyed tree to say so, is\n%s", out)
	}
}
