package btree

import (
	"errors"
	"fmt"
)

// DefaultOrder is the maximum number of children of a node, if not configured
// otherwise. A node of a tree of order n holds at most n-1 keys.
const DefaultOrder = 4

// minOrder is the lowest order accepted. With order 3 a split would leave the new
// sibling without any key.
const minOrder = 4

// ErrAllocation is returned if node memory cannot be obtained from the allocator.
var ErrAllocation = errors.New("btree: cannot allocate node")

// ErrDestroyed is returned for operations on a tree after Destroy has been called.
var ErrDestroyed = errors.New("btree: tree has been destroyed")

// Tree is an in-memory B-tree holding a set of keys. Create one with New.
//
// Trees are mutable and not safe for concurrent use.
type Tree struct {
	root     *xnode
	order    int       // maximum number of children of a node
	depth    int       // number of levels, including the leaf level
	count    int       // number of keys stored
	alloc    Allocator // source of node memory
	reserved int       // nodes reserved but not yet created
}

// New creates an empty tree, configured by options, if you need any.
// Use it like this:
//
//     tree, err := btree.New(btree.Order(16))
//     ...
//     tree.Insert(42)
//     found := tree.Search(42)   // returns true
//
// The root of a new tree is an empty leaf. If the allocator cannot supply memory for
// it, no tree is created and an error wrapping ErrAllocation is returned.
func New(opts ...Option) (*Tree, error) {
	tree := Tree{
		order: DefaultOrder,
		alloc: heap{},
	}
	for _, option := range opts {
		tree = option(tree)
	}
	if err := tree.reserve(1); err != nil {
		return nil, err
	}
	tree.root = tree.newNode(true)
	tree.depth = 1
	tracer().Debugf("created tree of order %d", tree.order)
	return &tree, nil
}

// Option is a type to help initializing B-trees at creation time.
type Option func(Tree) Tree

// Order is an option to set the maximum number of children a node in the tree owns.
// The lower bound for the order is 4.
//
// Use it like this:
//
//     tree, err := btree.New(btree.Order(16))
//
func Order(n int) Option {
	return func(tree Tree) Tree {
		if n < minOrder {
			n = minOrder
		}
		tree.order = n
		return tree
	}
}

// WithAllocator is an option to draw node memory from a. Passing nil keeps the
// default allocator, which never fails.
func WithAllocator(a Allocator) Option {
	return func(tree Tree) Tree {
		if a != nil {
			tree.alloc = a
		}
		return tree
	}
}

// --- API -------------------------------------------------------------------

// Search reports whether key is present in the tree.
// For a destroyed tree Search returns false.
func (tree *Tree) Search(key Key) bool {
	node := tree.root
	for node != nil {
		found, index := node.findSlot(key)
		if found {
			return true
		}
		if node.isLeaf() {
			break
		}
		node = node.children[index]
	}
	return false
}

// Insert adds key to the tree. It returns true if the key has been inserted and false
// if it has already been present, in which case the tree is left unchanged.
//
// An insertion may need memory for new nodes. Insert reserves all of it from the
// allocator before modifying the tree. If the allocator refuses, the tree is left
// unchanged and an error wrapping ErrAllocation is returned.
func (tree *Tree) Insert(key Key) (bool, error) {
	if tree.root == nil {
		return false, ErrDestroyed
	}
	found, path := tree.findKeyAndPath(key, make(slotPath, 0, tree.depth))
	if found {
		tracer().Debugf("insert: key %d already present at %s", key, path.last())
		return false, nil
	}
	if err := tree.reserve(path.nodesNeeded()); err != nil {
		return false, fmt.Errorf("insert of key %d: %w", key, err)
	}
	node := tree.root
	if node.full() {
		node = tree.grow()
	}
	tree.insertNonFull(node, key)
	assertThat(tree.reserved == 0, "internal inconsistency: %d reserved nodes left over", tree.reserved)
	tree.count++
	return true, nil
}

// Destroy releases every node of the tree to the allocator, children before their
// parents. Afterwards the tree is empty and must not be used any more: Search will
// report false and Insert will return ErrDestroyed. Calling Destroy again does nothing.
func (tree *Tree) Destroy() {
	if tree.root == nil {
		return
	}
	n := tree.release(tree.root)
	tracer().Infof("destroyed tree of depth %d, released %d nodes", tree.depth, n)
	tree.root = nil
	tree.depth = 0
	tree.count = 0
}

// Len returns the number of keys in the tree.
func (tree *Tree) Len() int {
	return tree.count
}

// Depth returns the number of levels of the tree. A tree consisting of a single leaf
// has depth 1, a destroyed tree has depth 0.
func (tree *Tree) Depth() int {
	return tree.depth
}

// Order returns the maximum number of children of a node.
func (tree *Tree) Order() int {
	return tree.order
}
