package utils

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

const BitsPerByte = 8

// Returns the size in bits of n bytes
func Bits(bytes int) int {
	return bytes * BitsPerByte
}

// Returns the size in bytes of values of a type
func Sizeof[T any]() int {
	var val T
	return int(unsafe.Sizeof(val))
}

// Returns the size in bits of values of a type
func SizeofBits[T any]() int {
	return Bits(Sizeof[T]())
}

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	if bits >= SizeofBits[T]() {
		var zero T
		return ^zero
	}
	return (T(1) << bits) - T(1)
}

// Returns the mask selecting a range of bits given its first bit and width
func Mask[T constraints.Unsigned](bit int, width int) T {
	return AllOnes[T](width) << bit
}

// Tells whether a value can be encoded in an immediate operand of the given
// bit width. Immediate fitting decides between the immediate and the general
// register form of a privileged instruction.
func FitsImm[T constraints.Unsigned](value T, immBits int) bool {
	return value&AllOnes[T](immBits) == value
}

// Implements a read/write view over an unsigned integer, allowing manipulating
// individual bit ranges easily
type BitView[T constraints.Unsigned] struct {
	Bits *T
}

// Returns the viewed unsigned int value
func (v BitView[T]) Value() T {
	return *v.Bits
}

// Returns the size in bits of the viewed value
func (v BitView[T]) SizeofBits() int {
	return SizeofBits[T]()
}

// Extracts a range of bits given a first bit and a width. The result is
// shifted down to bit zero.
func (v BitView[T]) Read(bit int, width int) T {
	return (v.Value() >> bit) & AllOnes[T](width)
}

// Copies a value into a range of bits, given the start and width of the range.
// Bits of the destination outside the range keep their previous value, and
// the most significant bits of the value not fitting into the range are
// ignored.
func (v BitView[T]) Write(value T, bit int, width int) {
	mask := Mask[T](bit, width)
	*v.Bits = (*v.Bits &^ mask) | ((value << bit) & mask)
}

// Sets all bits in a range to 1
func (v BitView[T]) SetBits(bit int, width int) {
	*v.Bits |= Mask[T](bit, width)
}

// Sets all bits in a range to 0
func (v BitView[T]) ClearBits(bit int, width int) {
	*v.Bits &^= Mask[T](bit, width)
}

// Sets bit to 1
func (v BitView[T]) SetBit(bit int) {
	v.SetBits(bit, 1)
}

// Sets bit to 0
func (v BitView[T]) ClearBit(bit int) {
	v.ClearBits(bit, 1)
}

// Creates a bit view out of an unsigned int
func CreateBitView[T constraints.Unsigned](value *T) BitView[T] {
	return BitView[T]{
		Bits: value,
	}
}
