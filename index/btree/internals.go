package btree

import (
	"errors"
	"fmt"
)

func (tree *Tree) findKeyAndPath(key Key, pathBuf slotPath) (found bool, path slotPath) {
	path = pathBuf[:0] // we track the path to the key's slot
	if tree.root == nil {
		return
	}
	var index int
	var node *xnode = tree.root // walking nodes, start search at the top
	for !node.isLeaf() {
		found, index = node.findSlot(key)
		path = append(path, slot{node: node, index: index})
		if found {
			return // we have an exact match
		}
		node = node.children[index]
	}
	found, index = node.findSlot(key)
	path = append(path, slot{node: node, index: index})
	tracer().Debugf("slot path for key=%d -> %s", key, path)
	return
}

// reserve obtains memory for n nodes, to be created with newNode.
func (tree *Tree) reserve(n int) error {
	if n == 0 {
		return nil
	}
	if err := tree.alloc.Reserve(n); err != nil {
		tracer().Errorf("allocator refused memory for %d nodes: %v", n, err)
		if !errors.Is(err, ErrAllocation) {
			err = fmt.Errorf("%w: %w", ErrAllocation, err)
		}
		return err
	}
	tree.reserved += n
	return nil
}

// newNode creates a node from memory reserved beforehand.
func (tree *Tree) newNode(leaf bool) *xnode {
	assertThat(tree.reserved > 0, "internal inconsistency: node creation without reservation")
	tree.reserved--
	return makeNode(tree.order, leaf)
}

// release hands back the memory of a subtree to the allocator, children first.
// It returns the number of nodes released.
func (tree *Tree) release(node *xnode) (n int) {
	if !node.isLeaf() {
		for i, child := range node.children {
			n += tree.release(child)
			node.children[i] = nil
		}
		node.children = nil
	}
	node.keys = nil
	tree.alloc.Release(1)
	return n + 1
}

// grow puts a new root on top of a full root and splits the old one.
// It returns the new root, which is the only path to change tree.root.
func (tree *Tree) grow() *xnode {
	old := tree.root
	root := tree.newNode(false)
	root.children = append(root.children, old)
	root.splitChild(0, tree.newNode(old.isLeaf()))
	tree.root = root
	tree.depth++
	tracer().Debugf("tree grows to depth %d, new root = %s", tree.depth, root)
	return root
}

// insertNonFull inserts key into the subtree starting at node, which must not be full.
// Full children are split before descending into them.
func (tree *Tree) insertNonFull(node *xnode, key Key) {
	assertThat(!node.full(), "attempt to descend into full node %s", node)
	for !node.isLeaf() {
		_, index := node.findSlot(key)
		if child := node.children[index]; child.full() {
			tracer().Debugf("child %d of %s is full: %s", index, node, child)
			node.splitChild(index, tree.newNode(child.isLeaf()))
			if key > node.keys[index] {
				index++
			}
		}
		node = node.children[index]
	}
	_, at := node.findSlot(key)
	node.insertKeyAt(at, key)
	tracer().Debugf("inserted key %d into leaf %s", key, node)
}

// splitChild splits the full child at position index of node, with sibling as
// an empty node to receive the upper half of the child's keys and children.
// The median key of the child moves up into node at position index, and the
// sibling is linked into node at position index+1.
//
// node must not be full.
func (node *xnode) splitChild(index int, sibling *xnode) {
	child := node.children[index]
	assertThat(child.full(), "attempt to split non-full child %s", child)
	assertThat(!node.full(), "attempt to split a child into full parent %s", node)
	assertThat(sibling.isLeaf() == child.isLeaf(), "sibling must be of same kind as child")
	mid := cap(child.keys) / 2
	median := child.keys[mid]
	sibling.keys = append(sibling.keys, child.keys[mid+1:]...)
	if !child.isLeaf() {
		sibling.children = append(sibling.children, child.children[mid+1:]...)
		clear(child.children[mid+1:])
		child.children = child.children[:mid+1]
	}
	child.keys = child.keys[:mid]
	node.insertChildAt(index+1, sibling)
	node.insertKeyAt(index, median)
	tracer().Debugf("split: %s ← %d → %s", child, median, sibling)
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("btree: "+msg, msgargs...)
		panic(msg)
	}
}
