package qptrie

import "fmt"

// Verify walks the whole trie and checks its structure. It returns an error
// describing the first violation found.
//
// It checks that:
//
//   - every branch has at least two children and a consistent bitmap;
//   - branch indexes strictly grow from the root down;
//   - every leaf is found by its own key;
//   - keys go in ascending order;
//   - the number of leaves matches Len.
func (qp *Trie[K, V]) Verify() error {
	if qp.root == nil {
		if qp.size != 0 {
			return fmt.Errorf("qptrie: empty trie reports %d keys", qp.size)
		}

		return nil
	}

	v := verifier[K, V]{trie: qp}

	if err := v.walk(qp.root, -1); err != nil {
		return err
	}

	if v.leaves != qp.size {
		return fmt.Errorf("qptrie: found %d leaves, but Len is %d", v.leaves, qp.size)
	}

	return nil
}

type verifier[K Key, V any] struct {
	trie    *Trie[K, V]
	leaves  int
	prevKey K
}

func (v *verifier[K, V]) walk(cur *twig[K, V], parentIndex int) error {
	if cur.leaf {
		return v.checkLeaf(cur)
	}

	if err := cur.twigs.Check(); err != nil {
		return fmt.Errorf("qptrie: branch %v: %w", cur, err)
	}

	if n := cur.twigs.Len(); n < 2 {
		return fmt.Errorf("qptrie: branch %v has %d children", cur, n)
	}

	if cur.index <= parentIndex {
		return fmt.Errorf("qptrie: branch %v is not below its parent index %d", cur, parentIndex)
	}

	if bmp := cur.twigs.Bitmap(); bmp>>slotSize != 0 {
		return fmt.Errorf("qptrie: branch %v uses slots above %d", cur, slotSize-1)
	}

	items := cur.twigs.Items()
	for i := range items {
		if err := v.walk(&items[i], cur.index); err != nil {
			return err
		}
	}

	return nil
}

func (v *verifier[K, V]) checkLeaf(leaf *twig[K, V]) error {
	if leaf.twigs.Len() != 0 {
		return fmt.Errorf("qptrie: leaf %v has children", leaf)
	}

	if len(leaf.key) == 0 {
		return fmt.Errorf("qptrie: leaf with an empty key")
	}

	// order goes first: a duplicate key shadows the other leaf
	if v.leaves > 0 && compareKeys(v.prevKey, leaf.key) >= 0 {
		return fmt.Errorf("qptrie: leaf %v goes after %x", leaf, []byte(v.prevKey))
	}

	if found := findExact(v.trie.root, leaf.key); found != leaf {
		return fmt.Errorf("qptrie: leaf %v is not reachable by its key", leaf)
	}

	v.leaves++
	v.prevKey = leaf.key

	return nil
}
