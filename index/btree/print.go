package btree

import (
	"fmt"
	"io"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Print writes a diagnostic rendering of the tree to w. Nodes are listed depth-first,
// each one with its kind and keys, children in ascending order below their parent.
// The format is meant for humans and may change.
func (tree *Tree) Print(w io.Writer) error {
	header := fmt.Sprintf("Tree(order=%d depth=%d len=%d)\n", tree.order, tree.depth, tree.count)
	if tree.root == nil {
		_, err := io.WriteString(w, header+"(destroyed)\n")
		return err
	}
	p := tp.New()
	ppt(p, tree.root)
	_, err := io.WriteString(w, header+p.String())
	return err
}

// String returns the output of Print as a string.
func (tree *Tree) String() string {
	var sb strings.Builder
	_ = tree.Print(&sb) // strings.Builder does not fail
	return sb.String()
}

func ppt(p tp.Tree, node *xnode) {
	if node.isLeaf() {
		p.AddNode("leaf " + node.String())
		return
	}
	branch := p.AddBranch("inner " + node.String())
	for _, ch := range node.children {
		ppt(branch, ch)
	}
}
