// Package regs implements the declarative model shared by all architecture
// register catalogs: register and field descriptors validated at declaration
// time, and generic type-safe accessors for individual bit fields.
//
// Access capabilities are expressed through the method sets of zero-sized
// per-register types declared in the architecture packages. A register whose
// type has no Write method cannot be written, and the failure is a compile
// error, not a runtime check.
package regs

import "fmt"

// Access describes the operation set legal for a register or field.
type Access uint8

const (
	ReadWrite Access = iota
	ReadOnly
	WriteOnly
)

func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "read-write"
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	default:
		return fmt.Sprintf("Access(%d)", uint8(a))
	}
}

// Tells whether the capability includes reads
func (a Access) CanRead() bool {
	return a == ReadOnly || a == ReadWrite
}

// Tells whether the capability includes writes
func (a Access) CanWrite() bool {
	return a == WriteOnly || a == ReadWrite
}

// Tells whether a field with the given capability is legal inside a register
// with this capability. A field capability is never broader than its
// register's, but write-only fields inside read-write registers are legal
// (write-to-clear hardware bits).
func (a Access) Allows(field Access) bool {
	if a == ReadWrite {
		return true
	}
	return field == a
}

// Readable is satisfied by the access point of any register that can be read.
type Readable interface {
	Read() uint64
}

// Writable is satisfied by the access point of any register that can be
// written. A register write replaces all bits.
type Writable interface {
	Write(value uint64)
}

// ReadWritable is satisfied by the access point of any read-write register.
// SetBits and ClearBits use the architecture's atomic set/clear instruction
// where one exists and a read-modify-write sequence otherwise.
type ReadWritable interface {
	Readable
	Writable
	SetBits(mask uint64)
	ClearBits(mask uint64)
}
