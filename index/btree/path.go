package btree

import (
	"fmt"
	"strconv"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path.
type slot struct {
	node  *xnode
	index int
}

func (s slot) String() string {
	return strconv.Itoa(s.index) + "@" + s.node.String()
}

// --- Path ------------------------------------------------------------------

type slotPath []slot

func (path slotPath) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath) last() slot {
	if len(path) == 0 {
		return slot{}
	}
	return path[len(path)-1]
}

// nodesNeeded counts the nodes an insertion along path will allocate: one sibling for
// every full node on the path, plus a new root if the root is full.
func (path slotPath) nodesNeeded() (n int) {
	for _, s := range path {
		if s.node.full() {
			n++
		}
	}
	if len(path) > 0 && path[0].node.full() {
		n++
	}
	return
}
