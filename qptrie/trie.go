package qptrie

// Trie is an ordered map of byte-string keys to values.
//
// The zero value is an empty trie with no height limit.
type Trie[K Key, V any] struct {
	root *twig[K, V]
	size int
	opts options
}

type options struct {
	maxHeight int
	limited   bool
}

// Option configures a Trie.
type Option func(*options)

// WithMaxHeight limits the number of branch levels to n, so Height never
// exceeds it. An Insert that would make the trie deeper is refused.
func WithMaxHeight(n int) Option {
	return func(o *options) {
		o.maxHeight = n
		o.limited = true
	}
}

// New returns a new empty Trie.
func New[K Key, V any](opts ...Option) *Trie[K, V] {
	qp := &Trie[K, V]{}

	for _, opt := range opts {
		opt(&qp.opts)
	}

	return qp
}

// Len returns the number of keys in the trie.
func (qp *Trie[K, V]) Len() int {
	return qp.size
}

// IsEmpty reports whether the trie has no keys.
func (qp *Trie[K, V]) IsEmpty() bool {
	return qp.root == nil
}

// Clear removes all the keys keeping the options.
func (qp *Trie[K, V]) Clear() {
	qp.root = nil
	qp.size = 0
}

// Get returns a value associated with the given key.
func (qp *Trie[K, V]) Get(key K) (V, bool) {
	if leaf := findExact(qp.root, key); leaf != nil {
		return leaf.val, true
	}

	var zero V

	return zero, false
}

// GetPtr returns a pointer to the value associated with the given key or nil.
//
// The pointer stays valid until the trie is modified by Insert or Remove.
func (qp *Trie[K, V]) GetPtr(key K) *V {
	if leaf := findExact(qp.root, key); leaf != nil {
		return &leaf.val
	}

	return nil
}

// Insert assigns a value to a key. It returns true if the key is new and false
// if either an existing value was replaced or the insert was refused due to
// the height limit (the trie is not modified then).
//
// The trie takes ownership of the key: a []byte key must not be modified
// after it was inserted.
//
// Insert panics on an empty key.
func (qp *Trie[K, V]) Insert(key K, val V) bool {
	if len(key) == 0 {
		panic("qptrie: empty key")
	}

	if qp.root == nil {
		leaf := newLeaf(key, val)
		qp.root = &leaf
		qp.size = 1

		return true
	}

	// -- find a leaf sharing the longest prefix with the key --

	closest := findClosest(qp.root, key)

	split, ok := splitIndex(key, closest.key)
	if !ok {
		// matched exactly - replace the value
		closest.val = val

		return false
	}

	closestKey := closest.key

	// -- walk down to the split index --

	var (
		cur   = qp.root
		depth int
	)

	for !cur.leaf && cur.index <= split {
		cur.mustBeBranch()

		slot := nibble(key, cur.index)
		next := cur.twigs.Ref(slot)

		if next == nil {
			// the branch doesn't have the nibble yet - add a leaf
			cur.twigs.Set(slot, newLeaf(key, val))
			qp.size++

			return true
		}

		cur = next
		depth++
	}

	// -- put a new branch in place of cur --

	// the subtree at cur moves one level down under the new branch
	if qp.opts.limited && depth+1+height(cur) > qp.opts.maxHeight {
		return false
	}

	*cur = newBranch(split,
		nibble(closestKey, split), *cur,
		nibble(key, split), newLeaf(key, val),
	)
	qp.size++

	return true
}

// Remove deletes the key. It returns false if the key was not found.
func (qp *Trie[K, V]) Remove(key K) bool {
	_, ok := qp.Delete(key)

	return ok
}

// Delete removes the key and returns its value (if any).
func (qp *Trie[K, V]) Delete(key K) (V, bool) {
	var (
		zero   V
		parent *twig[K, V]
		slot   uint
		cur    = qp.root
	)

	if cur == nil {
		return zero, false
	}

	for !cur.leaf {
		cur.mustBeBranch()

		nib := nibble(key, cur.index)
		next := cur.twigs.Ref(nib)

		if next == nil {
			return zero, false
		}

		parent, slot, cur = cur, nib, next
	}

	if !keyEqual(cur.key, key) {
		return zero, false
	}

	val := cur.val
	qp.size--

	if parent == nil {
		// the root leaf
		qp.root = nil

		return val, true
	}

	parent.twigs.Remove(slot)

	if parent.twigs.Len() == 1 {
		// collapse the branch into its only child
		*parent = parent.twigs.Pop()
	}

	return val, true
}

// Height returns the number of branch levels along the deepest path.
func (qp *Trie[K, V]) Height() int {
	if qp.root == nil {
		return 0
	}

	return height(qp.root)
}

func height[K Key, V any](cur *twig[K, V]) int {
	if cur.leaf {
		return 0
	}

	var (
		items = cur.twigs.Items()
		sub   int
	)

	for i := range items {
		sub = max(sub, height(&items[i]))
	}

	return sub + 1
}
