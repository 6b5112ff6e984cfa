/*
Package btree implements an in-memory B-tree holding a set of 64-bit keys.

The tree supports membership search and insertion. Insertion splits full nodes on the
way down (preemptive splitting), so an overflow never has to travel back up to an
ancestor which has already been visited. Consequently the root is the only node which
may cause the tree to grow in height.

Node memory is drawn from an Allocator. Insert figures out how many nodes an insertion
will need before it touches the tree and reserves them in one step; if the allocator
refuses, the tree is left exactly as it was.

    tree, err := btree.New()
    ...
    inserted, err := tree.Insert(42)
    found := tree.Search(42)   // true
    tree.Destroy()

A good introduction to B-trees and their algorithms may be found at
https://algorithmtutor.com/Data-Structures/Tree/B-Trees/.

Trees are not safe for concurrent use. Clients sharing a tree between goroutines
have to serialize access themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'basefs.btree'.
func tracer() tracing.Trace {
	return tracing.Select("basefs.btree")
}
