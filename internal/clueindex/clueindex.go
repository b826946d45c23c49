// Package clueindex accumulates discovered clues in a binary search tree
// ordered by clue text. The tree never rebalances: clue counts are
// human-scale, so worst-case depth tracking insertion order is accepted.
package clueindex

import "iter"

type node struct {
	text  string
	left  *node
	right *node
}

// Index is a set of clue texts readable in sorted order.
type Index struct {
	root *node
	size int
}

func New() *Index {
	return &Index{}
}

// Insert adds a clue by recursive descent on ordinal string comparison.
// Re-inserting text already present, or inserting empty text, changes
// nothing; the return value reports whether the clue was new.
func (ix *Index) Insert(text string) bool {
	if text == "" {
		return false
	}
	root, added := insert(ix.root, text)
	ix.root = root
	if added {
		ix.size++
	}
	return added
}

func insert(n *node, text string) (*node, bool) {
	if n == nil {
		return &node{text: text}, true
	}
	switch {
	case text < n.text:
		child, added := insert(n.left, text)
		n.left = child
		return n, added
	case text > n.text:
		child, added := insert(n.right, text)
		n.right = child
		return n, added
	default:
		return n, false
	}
}

// Len reports the number of distinct clues held.
func (ix *Index) Len() int {
	return ix.size
}

// All returns the clues in ascending order as a lazy sequence. The sequence
// is restartable: ranging over it again after further inserts reflects the
// updated tree. Iteration never mutates the index.
func (ix *Index) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		inOrder(ix.root, yield)
	}
}

func inOrder(n *node, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	if !inOrder(n.left, yield) {
		return false
	}
	if !yield(n.text) {
		return false
	}
	return inOrder(n.right, yield)
}

// Teardown releases the tree post-order, children before parent. The index
// is empty and reusable afterwards.
func (ix *Index) Teardown() {
	release(ix.root)
	ix.root = nil
	ix.size = 0
}

func release(n *node) {
	if n == nil {
		return
	}
	release(n.left)
	release(n.right)
	n.left = nil
	n.right = nil
}
