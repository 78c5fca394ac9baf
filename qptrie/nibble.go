package qptrie

const (
	nibbleWidth = 4
	nibbleMask  = 1<<nibbleWidth - 1 // 0b_1111

	endSlot  uint = 0                  // the key ends before the nibble index
	slotSize      = 1<<nibbleWidth + 1 // 16 nibbles + endSlot
)

// Key is a byte string a Trie can be keyed by.
type Key interface {
	~string | ~[]byte
}

// nibble maps the nibble of a key at the given index to a branch slot.
//
// The index counts nibbles: byte = index/2, half = index%2 (0 - high bits,
// 1 - low bits). Returns endSlot when the key is too short, or 1+nibble.
func nibble[K Key](key K, index int) uint {
	off := index >> 1

	if off >= len(key) {
		return endSlot
	}

	b := key[off]

	if index&1 == 0 {
		b >>= nibbleWidth
	}

	return 1 + uint(b&nibbleMask)
}

// splitIndex returns the index of the first nibble two keys differ at.
// When one key is a prefix of the other the keys differ at the first nibble
// past the shorter one. Returns false for equal keys.
func splitIndex[K Key](a, b K) (int, bool) {
	num := min(len(a), len(b))

	for i := 0; i < num; i++ {
		x := a[i] ^ b[i]

		switch {
		case x == 0:
			continue
		case x>>nibbleWidth != 0:
			return i << 1, true // high nibble differs
		default:
			return i<<1 | 1, true // low nibble differs
		}
	}

	if len(a) == len(b) {
		return 0, false
	}

	return num << 1, true
}

func keyEqual[K Key](a, b K) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func hasPrefix[K Key](key, prefix K) bool {
	if len(key) < len(prefix) {
		return false
	}

	for i := 0; i < len(prefix); i++ {
		if key[i] != prefix[i] {
			return false
		}
	}

	return true
}

// compareKeys compares two keys bytewise, a shorter key goes first.
func compareKeys[K Key](a, b K) int {
	num := min(len(a), len(b))

	for i := 0; i < num; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return +1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return +1
	}

	return 0
}
