// Package sparse implements a popcount-compressed array of up to 32 items
// addressed by a logical slot.
//
// The occupied slots are kept in a 32-bit bitmap, the items themselves are
// stored contiguously in ascending slot order:
//
//	bitmap:  0b_0000_0000_0000_0000_0000_0000_1010_0110
//	items:   [ slot1, slot2, slot5, slot7 ]
//
// The physical offset of a slot is the number of bits set below it.
package sparse

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// Width is the number of logical slots.
const Width = 32

// Array is a sparse array of items of type T. The zero value is an empty array.
type Array[T any] struct {
	bitmap uint32
	items  []T
}

// Has reports whether the slot is occupied.
func (a *Array[T]) Has(slot uint) bool {
	return a.bitmap&bitFor(slot) != 0
}

// Get returns a copy of the item stored at the slot.
func (a *Array[T]) Get(slot uint) (T, bool) {
	if !a.Has(slot) {
		var zero T
		return zero, false
	}

	return a.items[a.rank(slot)], true
}

// Ref returns a pointer to the item stored at the slot or nil.
//
// The pointer is valid until the next Set/Remove/Pop on the array.
func (a *Array[T]) Ref(slot uint) *T {
	if !a.Has(slot) {
		return nil
	}

	return &a.items[a.rank(slot)]
}

// GetOrHead returns the item at the slot if present, otherwise the item at
// the lowest occupied slot.
func (a *Array[T]) GetOrHead(slot uint) T {
	return *a.RefOrHead(slot)
}

// RefOrHead is a pointer flavour of GetOrHead.
func (a *Array[T]) RefOrHead(slot uint) *T {
	if a.Has(slot) {
		return &a.items[a.rank(slot)]
	}

	a.mustNotBeEmpty("RefOrHead")

	return &a.items[0]
}

// Head returns the item at the lowest occupied slot.
func (a *Array[T]) Head() T {
	a.mustNotBeEmpty("Head")

	return a.items[0]
}

// Set stores the item at the slot. It returns true if the slot was empty
// and false if an existing item was overwritten.
func (a *Array[T]) Set(slot uint, item T) bool {
	var (
		bit = bitFor(slot)
		idx = a.rank(slot)
	)

	if a.bitmap&bit != 0 {
		a.items[idx] = item
		return false
	}

	if len(a.items) >= Width {
		panic("sparse: array is full")
	}

	a.bitmap |= bit

	// insert in place
	var zero T
	a.items = append(a.items, zero)
	copy(a.items[idx+1:], a.items[idx:])
	a.items[idx] = item

	return true
}

// Remove deletes the item at the slot closing the gap. The slot must be occupied.
func (a *Array[T]) Remove(slot uint) {
	if !a.Has(slot) {
		panic(fmt.Sprintf("sparse: Remove of an empty slot %d", slot))
	}

	a.deleteAt(a.rank(slot))
	a.bitmap &^= bitFor(slot)
}

// Pop removes and returns the item at the lowest occupied slot.
func (a *Array[T]) Pop() T {
	a.mustNotBeEmpty("Pop")

	var (
		slot = uint(bits.TrailingZeros32(a.bitmap))
		item = a.items[0]
	)

	a.deleteAt(0)
	a.bitmap &^= bitFor(slot)

	return item
}

// Len returns the number of stored items.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// IsEmpty reports whether the array holds no items.
func (a *Array[T]) IsEmpty() bool {
	return len(a.items) == 0
}

// Clear removes all items.
func (a *Array[T]) Clear() {
	clear(a.items)
	a.items = a.items[:0]
	a.bitmap = 0
}

// Bitmap returns the occupancy bitmap.
func (a *Array[T]) Bitmap() uint32 {
	return a.bitmap
}

// Items returns the stored items in ascending slot order. The slice is shared
// with the array and must not be modified.
func (a *Array[T]) Items() []T {
	return a.items
}

// Slots yields the occupied slots in ascending order.
func (a *Array[T]) Slots() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for bmp := a.bitmap; bmp != 0; bmp &= bmp - 1 {
			if !yield(uint(bits.TrailingZeros32(bmp))) {
				return
			}
		}
	}
}

// Check verifies that the bitmap population matches the number of items.
func (a *Array[T]) Check() error {
	if cnt := popcount.Count(uint64(a.bitmap)); cnt != uint64(len(a.items)) {
		return fmt.Errorf("sparse: bitmap %032b has %d bits set, but %d items are stored",
			a.bitmap, cnt, len(a.items))
	}

	return nil
}

// rank maps a slot to its physical offset.
func (a *Array[T]) rank(slot uint) int {
	return int(popcount.Count(uint64(a.bitmap & (bitFor(slot) - 1))))
}

func (a *Array[T]) deleteAt(idx int) {
	var (
		last = len(a.items) - 1
		zero T
	)

	copy(a.items[idx:], a.items[idx+1:])
	a.items[last] = zero // let GC collect the tail
	a.items = a.items[:last]
}

func (a *Array[T]) mustNotBeEmpty(op string) {
	if len(a.items) == 0 {
		panic("sparse: " + op + " on an empty array")
	}
}

func bitFor(slot uint) uint32 {
	if slot >= Width {
		panic(fmt.Sprintf("sparse: slot %d is out of range [0..%d)", slot, Width))
	}

	return uint32(1) << slot
}
