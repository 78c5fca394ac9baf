// Package qptrie defines an implementation of a QP-Trie (quadbit popcount trie)
// data structure.
//
// A QP-Trie consists of a number of connected Twigs. A Twig is either a branch
// or a leaf. All branches end with leaf twigs, every leaf holds a complete key
// and its value.
//
// Keys are split into nibbles (4-bit halves of a byte). A branch twig selects
// its children by a single nibble of the key at the branch index:
//
//	index:   0    1    2    3    4    5  ...
//	key:   [ hi | lo ][ hi | lo ][ hi | lo ]
//	byte:      0         1         2
//
// Each nibble is mapped to a slot [1..16], slot 0 is reserved for keys that
// end before the branch index. It allows a key and its own prefix to be
// stored side by side:
//
//	slot:   0         1     2           16
//	      <end> <nib:0000> <nib:0001> .. <nib:1111>
//
// The children of a branch are kept in a sparse array compressed by a bitmap
// popcount, so a branch only allocates room for the children it has.
//
// Branch indexes strictly grow along any path from the root, and a branch
// always has at least two children: a branch left with a single child is
// replaced by that child.
//
// Example trie:
//
//	                                      ,-- [leaf:12]
//	                                      |
//	                                      |                    ,-- [leaf:1230]
//	[branch:idx=0] --+-- [branch:idx=2] --+-- [branch:idx=3] --+
//	                 |                    |                    `-- [leaf:1231_1111]
//	                 |                    |
//	                 |                    `-- [leaf:12ff]
//	                 |
//	                 `-- [leaf:9235_00]
//
// The trie above contains the following keys (in hex):
//
//   - 12
//   - 1230
//   - 1231_1111
//   - 12ff
//   - 9235_00
//
// A Trie is not safe for concurrent mutation. Reads may run in parallel as
// long as nothing mutates the trie.
package qptrie
