package qptrie

import (
	"fmt"
	"strings"

	"github.com/aglyzov/go-qptrie/internal/sparse"
)

// KV represents a key-value pair
type KV[K Key, V any] struct {
	Key K
	Val V
}

// twig is a uniform element of a QP-Trie: either a leaf or a branch.
//
//   - leaf:   key and val are set, twigs is empty;
//   - branch: index is the nibble index children are selected by,
//     twigs holds two or more children.
type twig[K Key, V any] struct {
	leaf  bool
	index int
	key   K
	val   V
	twigs sparse.Array[twig[K, V]]
}

func newLeaf[K Key, V any](key K, val V) twig[K, V] {
	return twig[K, V]{
		leaf: true,
		key:  key,
		val:  val,
	}
}

// newBranch makes a branch at the index with two children in the given slots.
func newBranch[K Key, V any](index int, slot1 uint, twig1 twig[K, V], slot2 uint, twig2 twig[K, V]) twig[K, V] {
	if slot1 == slot2 {
		panic(fmt.Sprintf("qptrie: both children of a new branch [idx:%d] map to slot %d", index, slot1))
	}

	branch := twig[K, V]{index: index}

	branch.twigs.Set(slot1, twig1)
	branch.twigs.Set(slot2, twig2)

	return branch
}

// mustBeBranch guards traversals against a twig that is neither a leaf nor
// a valid branch.
func (tw *twig[K, V]) mustBeBranch() {
	if tw.twigs.Len() < 2 {
		panic(fmt.Sprintf("qptrie: corrupted branch %v", tw))
	}
}

// child returns the child selected by the key or nil.
func (tw *twig[K, V]) child(key K) *twig[K, V] {
	tw.mustBeBranch()

	return tw.twigs.Ref(nibble(key, tw.index))
}

// closest returns the child selected by the key or the first child.
func (tw *twig[K, V]) closest(key K) *twig[K, V] {
	tw.mustBeBranch()

	return tw.twigs.RefOrHead(nibble(key, tw.index))
}

// findClosest walks along the key nibbles down to a leaf. When a nibble is
// missing it takes the first child instead, so a leaf is always found.
//
// The leaf shares with the key all the nibbles before their split index.
func findClosest[K Key, V any](cur *twig[K, V], key K) *twig[K, V] {
	for !cur.leaf {
		cur = cur.closest(key)
	}

	return cur
}

// findExact walks along the key nibbles and returns a leaf holding the key or nil.
func findExact[K Key, V any](cur *twig[K, V], key K) *twig[K, V] {
	for cur != nil && !cur.leaf {
		cur = cur.child(key)
	}

	if cur == nil || !keyEqual(cur.key, key) {
		return nil
	}

	return cur
}

// leftmost returns the leaf with the smallest key under the twig.
func leftmost[K Key, V any](cur *twig[K, V]) *twig[K, V] {
	for !cur.leaf {
		cur.mustBeBranch()
		cur = &cur.twigs.Items()[0]
	}

	return cur
}

func (tw *twig[K, V]) String() string {
	var b strings.Builder

	b.WriteString("<qptrie|")

	if tw.leaf {
		b.WriteString("Leaf")
		b.WriteString(fmt.Sprintf("|%q", tw.key))
	} else {
		b.WriteString("Branch")
		b.WriteString(fmt.Sprintf("|idx:%d", tw.index))
		b.WriteString(fmt.Sprintf("|bmp:%0*b", slotSize, tw.twigs.Bitmap()))
	}

	b.WriteByte('>')

	return b.String()
}
