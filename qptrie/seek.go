package qptrie

// NextGE returns the smallest key greater than or equal to the given one.
func (qp *Trie[K, V]) NextGE(key K) (K, V, bool) {
	return qp.seek(key, false)
}

// NextGT returns the smallest key strictly greater than the given one.
func (qp *Trie[K, V]) NextGT(key K) (K, V, bool) {
	return qp.seek(key, true)
}

func (qp *Trie[K, V]) seek(key K, strict bool) (K, V, bool) {
	if qp.root != nil {
		if leaf := seekCeil(qp.root, key, strict, 0); leaf != nil {
			return leaf.key, leaf.val, true
		}
	}

	var (
		zeroKey K
		zeroVal V
	)

	return zeroKey, zeroVal, false
}

// seekCeil returns the leftmost leaf under cur which key is above the given one
// (or equal, unless strict).
//
// The key is known to match cur's keys on all the nibbles before the index from.
func seekCeil[K Key, V any](cur *twig[K, V], key K, strict bool, from int) *twig[K, V] {
	if cur.leaf {
		cmp := compareKeys(cur.key, key)
		if cmp > 0 || cmp == 0 && !strict {
			return cur
		}

		return nil
	}

	cur.mustBeBranch()

	// all the keys under a branch share the nibbles before its index,
	// compare the key with any of them
	first := leftmost(cur)

	for i := from; i < cur.index; i++ {
		a, b := nibble(first.key, i), nibble(key, i)

		switch {
		case a > b:
			return first // the whole branch is above the key
		case a < b:
			return nil // the whole branch is below the key
		}
	}

	var (
		nib   = nibble(key, cur.index)
		items = cur.twigs.Items()
		idx   int
	)

	for slot := range cur.twigs.Slots() {
		next := &items[idx]
		idx++

		switch {
		case slot < nib:
			continue
		case slot > nib:
			return leftmost(next)
		}

		if leaf := seekCeil(next, key, strict, cur.index+1); leaf != nil {
			return leaf
		}
	}

	return nil
}
