package regs

import (
	"github.com/osdev-kit/karch/pkg/utils"
)

// Field is a contiguous bit range inside a register.
type Field struct {
	Offset uint8
	Width  uint8
}

// Returns the mask selecting the field inside its register
func (f Field) Mask() uint64 {
	return utils.Mask[uint64](int(f.Offset), int(f.Width))
}

// Returns the all ones value of the field, in low order position
func (f Field) AllSet() uint64 {
	return utils.AllOnes[uint64](int(f.Width))
}

// Extracts the field value from a register value, shifted down to bit zero
func (f Field) Extract(reg uint64) uint64 {
	return utils.CreateBitView(&reg).Read(int(f.Offset), int(f.Width))
}

// Inserts a field value into a register value, preserving all bits outside
// the field. The most significant bits of the value not fitting the field
// width are ignored.
func (f Field) Insert(reg uint64, value uint64) uint64 {
	utils.CreateBitView(&reg).Write(value, int(f.Offset), int(f.Width))
	return reg
}

// Flag accesses a single-bit field of a read-write register R.
type Flag[R ReadWritable] struct {
	Field
}

// Reads the register and tells whether the bit is set
func (f Flag[R]) Get() bool {
	var r R
	return f.GetFrom(r.Read())
}

// Extracts the bit from an externally supplied register value, used when
// inspecting saved trap contexts
func (f Flag[R]) GetFrom(reg uint64) bool {
	return f.Extract(reg) != 0
}

// Sets the bit through the register's SetBits operation
func (f Flag[R]) Set() {
	var r R
	r.SetBits(f.Mask())
}

// Clears the bit through the register's ClearBits operation
func (f Flag[R]) Clear() {
	var r R
	r.ClearBits(f.Mask())
}

// FlagRO accesses a single-bit field of a read-only register R.
type FlagRO[R Readable] struct {
	Field
}

func (f FlagRO[R]) Get() bool {
	var r R
	return f.GetFrom(r.Read())
}

func (f FlagRO[R]) GetFrom(reg uint64) bool {
	return f.Extract(reg) != 0
}

// Bits accesses a multi-bit field of a read-write register R.
type Bits[R ReadWritable] struct {
	Field
}

// Reads the register and extracts the field, shifted down to bit zero
func (f Bits[R]) Get() uint64 {
	var r R
	return f.GetFrom(r.Read())
}

// Extracts the field from an externally supplied register value
func (f Bits[R]) GetFrom(reg uint64) uint64 {
	return f.Extract(reg)
}

// Replaces the field with a value, preserving all other bits of the register.
// This is always a read-modify-write sequence, never a full register write.
func (f Bits[R]) Write(value uint64) {
	var r R
	r.Write(f.Insert(r.Read(), value))
}

// Sets all bits of the field
func (f Bits[R]) Set() {
	var r R
	r.SetBits(f.Mask())
}

// Clears all bits of the field
func (f Bits[R]) Clear() {
	var r R
	r.ClearBits(f.Mask())
}

// BitsRO accesses a multi-bit field of a read-only register R.
type BitsRO[R Readable] struct {
	Field
}

func (f BitsRO[R]) Get() uint64 {
	var r R
	return f.GetFrom(r.Read())
}

func (f BitsRO[R]) GetFrom(reg uint64) uint64 {
	return f.Extract(reg)
}

// BitsWO accesses a multi-bit field of a write-only register R. Since the
// register cannot be read back there is no read-modify-write path; the field
// value is inserted into an all zeroes word and the whole register is written.
type BitsWO[R Writable] struct {
	Field
}

func (f BitsWO[R]) Write(value uint64) {
	var r R
	r.Write(f.Insert(0, value))
}
