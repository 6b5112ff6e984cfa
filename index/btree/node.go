package btree

import (
	"sort"
	"strconv"
	"strings"
)

// Key is the type of the keys a tree stores.
type Key = uint64

// xnode is a node of the tree. Leaf nodes hold keys only, inner nodes hold keys as
// separators together with len(keys)+1 children.
//
// Slices are allocated once, with the capacity the tree's order allows for, and never
// grow beyond it: cap(keys) is the maximum number of keys of a node.
type xnode struct {
	leaf     bool
	keys     []Key
	children []*xnode
}

func makeNode(order int, leaf bool) *xnode {
	node := &xnode{
		leaf: leaf,
		keys: make([]Key, 0, order-1),
	}
	if !leaf {
		node.children = make([]*xnode, 0, order)
	}
	return node
}

func (node *xnode) isLeaf() bool {
	return node.leaf
}

func (node *xnode) full() bool {
	return len(node.keys) == cap(node.keys)
}

// findSlot returns the position of the first key ≥ key, and whether it is an exact match.
// For inner nodes the position is also the index of the child to descend into.
func (node *xnode) findSlot(key Key) (bool, int) {
	keys, keycnt := node.keys, len(node.keys)
	slotinx := sort.Search(keycnt, func(i int) bool {
		return keys[i] >= key // sort.Search will find the smallest i for which this is true
	})
	return slotinx < keycnt && keys[slotinx] == key, slotinx
}

func (node *xnode) insertKeyAt(at int, key Key) {
	assertThat(at <= len(node.keys), "key index out of range: %d > %d", at, len(node.keys))
	assertThat(!node.full(), "attempt to insert key %d into full node %s", key, node)
	node.keys = append(node.keys, 0)
	copy(node.keys[at+1:], node.keys[at:])
	node.keys[at] = key
}

func (node *xnode) insertChildAt(at int, child *xnode) {
	assertThat(!node.leaf, "attempt to link a child to a leaf")
	assertThat(at <= len(node.children), "child index out of range: %d > %d", at, len(node.children))
	assertThat(len(node.children) < cap(node.children), "no room for another child in %s", node)
	node.children = append(node.children, nil)
	copy(node.children[at+1:], node.children[at:])
	node.children[at] = child
}

func (node *xnode) String() string {
	if node == nil {
		return "⟨nil⟩"
	}
	var sb strings.Builder
	sb.WriteRune('⟨')
	for i, key := range node.keys {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(strconv.FormatUint(key, 10))
	}
	sb.WriteRune('⟩')
	return sb.String()
}
