package x86

import (
	"github.com/osdev-kit/karch/pkg/hw/regs"
)

func selectorFields(access regs.Access) []regs.FieldDescriptor {
	return []regs.FieldDescriptor{
		{Field: regs.Field{Offset: 0, Width: 2}, Name: "RPL", Access: access},
		{Field: regs.Field{Offset: 2, Width: 1}, Name: "TI", Access: access, Enum: map[uint64]string{
			0: "gdt",
			1: "ldt",
		}},
		{Field: regs.Field{Offset: 3, Width: 13}, Name: "Index", Access: access},
	}
}

// Descriptors is the declarative catalog of the x86_64 privileged registers,
// validated at package load. The typed access points in catalog.go mirror
// these shapes one to one, with two deliberate gaps: ldtr and tr are
// catalogued but carry no typed accessors (their load path is unported), and
// the indexed MSR space is not a register, so it only appears through
// MsrBank.
//
// gdtr and idtr load a packed 80 bit pointer image; the catalog entry
// describes the 64 bit base, the 16 bit limit travels alongside it in the
// image.
var Descriptors = (&regs.Catalog{
	Arch: "x86_64",
	Registers: []*regs.RegisterDescriptor{
		{Name: "rbp", Width: 64, Access: regs.ReadOnly},
		{
			Name: "rflags", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: rflagsIFOffset, Width: 1}, Name: "IF", Access: regs.ReadWrite},
			},
		},
		{Name: "gdtr", Width: 64, Access: regs.ReadWrite},
		{Name: "idtr", Width: 64, Access: regs.ReadWrite},
		{Name: "ldtr", Width: 16, Access: regs.ReadWrite},
		{Name: "tr", Width: 16, Access: regs.ReadWrite},
		{
			Name: "cr0", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 1}, Name: "PE", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 31, Width: 1}, Name: "PG", Access: regs.ReadWrite},
			},
		},
		{Name: "cr2", Width: 64, Access: regs.ReadOnly},
		{
			Name: "cr3", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 3, Width: 1}, Name: "PWT", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 4, Width: 1}, Name: "PCD", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 12, Width: 52}, Name: "PageDirectoryBase", Access: regs.ReadWrite},
			},
		},
		{
			Name: "cr4", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 5, Width: 1}, Name: "PAE", Access: regs.ReadWrite},
			},
		},
		{Name: "cr8", Width: 64, Access: regs.ReadWrite},
		{Name: "xcr0", Width: 64, Access: regs.ReadWrite},
		{Name: "cs", Width: 16, Access: regs.ReadOnly, Fields: selectorFields(regs.ReadOnly)},
		{Name: "ss", Width: 16, Access: regs.ReadWrite, Fields: selectorFields(regs.ReadWrite)},
		{Name: "ds", Width: 16, Access: regs.ReadWrite, Fields: selectorFields(regs.ReadWrite)},
		{Name: "es", Width: 16, Access: regs.ReadWrite, Fields: selectorFields(regs.ReadWrite)},
		{Name: "fs", Width: 16, Access: regs.ReadWrite, Fields: selectorFields(regs.ReadWrite)},
		{Name: "gs", Width: 16, Access: regs.ReadWrite, Fields: selectorFields(regs.ReadWrite)},
	},
}).MustValidate()
