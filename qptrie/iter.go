package qptrie

import "iter"

// PrefixIterator walks the keys sharing a prefix in ascending order.
//
// An iterator reads the trie it was created from, so the trie must not be
// modified until the iterator is done. It is single-pass: to start over make
// a new one.
type PrefixIterator[K Key, V any] struct {
	prefix        K
	todo          []*twig[K, V]
	includePrefix bool
}

// PrefixIter returns an iterator over the keys starting with the prefix.
// A key equal to the prefix itself is skipped unless IncludePrefix is called.
func (qp *Trie[K, V]) PrefixIter(prefix K) *PrefixIterator[K, V] {
	it := &PrefixIterator[K, V]{prefix: prefix}

	if qp.root != nil {
		it.todo = append(it.todo, qp.root)
	}

	return it
}

// IncludePrefix makes the iterator yield a key equal to the prefix as well.
func (it *PrefixIterator[K, V]) IncludePrefix() *PrefixIterator[K, V] {
	it.includePrefix = true

	return it
}

// Next returns the next key-value pair. The last value is false when the
// iterator is exhausted.
func (it *PrefixIterator[K, V]) Next() (K, V, bool) {
	for len(it.todo) != 0 {
		last := len(it.todo) - 1
		cur := it.todo[last]
		it.todo = it.todo[:last]

		if cur.leaf {
			if !hasPrefix(cur.key, it.prefix) {
				continue
			}

			if len(cur.key) == len(it.prefix) && !it.includePrefix {
				continue
			}

			// the prefix key goes first, no need to check it anymore
			it.includePrefix = false

			return cur.key, cur.val, true
		}

		cur.mustBeBranch()

		if cur.index>>1 < len(it.prefix) {
			// the branch splits inside the prefix - only one child can match
			if next := cur.twigs.Ref(nibble(it.prefix, cur.index)); next != nil {
				it.todo = append(it.todo, next)
			}

			continue
		}

		// push the children in reverse so that the smallest pops first
		items := cur.twigs.Items()
		for i := len(items) - 1; i >= 0; i-- {
			it.todo = append(it.todo, &items[i])
		}
	}

	var (
		key K
		val V
	)

	return key, val, false
}

// All returns the rest of the iterator as a sequence.
func (it *PrefixIterator[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			key, val, ok := it.Next()
			if !ok || !yield(key, val) {
				return
			}
		}
	}
}

// All yields all the key-value pairs in ascending key order.
func (qp *Trie[K, V]) All() iter.Seq2[K, V] {
	var empty K

	return qp.PrefixIter(empty).All()
}

// Keys returns all the keys in ascending order.
func (qp *Trie[K, V]) Keys() []K {
	keys := make([]K, 0, qp.size)

	for key := range qp.All() {
		keys = append(keys, key)
	}

	return keys
}

// Items returns all the key-value pairs in ascending key order.
func (qp *Trie[K, V]) Items() []KV[K, V] {
	items := make([]KV[K, V], 0, qp.size)

	for key, val := range qp.All() {
		items = append(items, KV[K, V]{key, val})
	}

	return items
}
