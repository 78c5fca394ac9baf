package qptrie

import (
	"fmt"
	"io"
	"strings"
)

// Stats describes the shape of a trie.
type Stats struct {
	Leaves    int
	Branches  int
	Height    int
	MaxFanout int
}

// Stats walks the trie and counts its twigs.
func (qp *Trie[K, V]) Stats() Stats {
	var st Stats

	if qp.root != nil {
		collectStats(qp.root, 1, &st)
	}

	return st
}

func collectStats[K Key, V any](cur *twig[K, V], depth int, st *Stats) {
	if cur.leaf {
		st.Leaves++
		return
	}

	st.Branches++
	st.Height = max(st.Height, depth)
	st.MaxFanout = max(st.MaxFanout, cur.twigs.Len())

	items := cur.twigs.Items()
	for i := range items {
		collectStats(&items[i], depth+1, st)
	}
}

// Dump writes a human readable tree of twigs, one twig per line.
func (qp *Trie[K, V]) Dump(w io.Writer) error {
	if qp.root == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}

	return dump(w, qp.root, "T:", "")
}

func (qp *Trie[K, V]) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("<qptrie|len:%d|height:%d>\n", qp.size, qp.Height()))
	_ = qp.Dump(&b)

	return b.String()
}

func dump[K Key, V any](w io.Writer, cur *twig[K, V], tag, indent string) error {
	if cur.leaf {
		_, err := fmt.Fprintf(w, "%s%s LEAF key=%x val=%v\n", indent, tag, []byte(cur.key), cur.val)
		return err
	}

	half := "hi"
	if cur.index&1 != 0 {
		half = "lo"
	}

	_, err := fmt.Fprintf(w, "%s%s BRANCH idx=%d byte=%d half=%s bmp=%0*b\n",
		indent, tag, cur.index, cur.index>>1, half, slotSize, cur.twigs.Bitmap())
	if err != nil {
		return err
	}

	var (
		items = cur.twigs.Items()
		idx   int
	)

	for slot := range cur.twigs.Slots() {
		if err = dump(w, &items[idx], slotTag(slot), indent+"  "); err != nil {
			return err
		}

		idx++
	}

	return nil
}

// slotTag renders a slot as a nibble in hex or $ for a key end.
func slotTag(slot uint) string {
	if slot == endSlot {
		return "$:"
	}

	return fmt.Sprintf("%x:", slot-1)
}
