package riscv

import (
	"github.com/osdev-kit/karch/pkg/hw/regs"
)

// Descriptors is the declarative catalog of the RV64 supervisor registers,
// validated at package load. The typed access points in catalog.go mirror
// these shapes one to one.
var Descriptors = (&regs.Catalog{
	Arch: "riscv64",
	Registers: []*regs.RegisterDescriptor{
		{Name: "fp", Width: 64, Access: regs.ReadOnly},
		{Name: "tp", Width: 64, Access: regs.ReadOnly},
		{
			Name: "sstatus", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 1, Width: 1}, Name: "SIE", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 5, Width: 1}, Name: "SPIE", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 8, Width: 1}, Name: "SPP", Access: regs.ReadWrite, Enum: map[uint64]string{
					0: "user",
					1: "supervisor",
				}},
				{Field: regs.Field{Offset: 13, Width: 2}, Name: "FS", Access: regs.ReadWrite, Enum: map[uint64]string{
					FsOff:     "off",
					FsInitial: "initial",
					FsClean:   "clean",
					FsDirty:   "dirty",
				}},
			},
		},
		{
			Name: "stvec", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 2}, Name: "MODE", Access: regs.ReadWrite, Enum: map[uint64]string{
					StvecModeDirect:   "direct",
					StvecModeVectored: "vectored",
				}},
				{Field: regs.Field{Offset: 2, Width: 62}, Name: "BASE", Access: regs.ReadWrite},
			},
		},
		{
			Name: "sip", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 1, Width: 1}, Name: "SSIP", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 5, Width: 1}, Name: "STIP", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 9, Width: 1}, Name: "SEIP", Access: regs.ReadWrite},
			},
		},
		{
			Name: "sie", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 1, Width: 1}, Name: "SSIE", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 5, Width: 1}, Name: "STIE", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 9, Width: 1}, Name: "SEIE", Access: regs.ReadWrite},
			},
		},
		{Name: "time", Width: 64, Access: regs.ReadOnly},
		{Name: "cycle", Width: 64, Access: regs.ReadOnly},
		{Name: "instret", Width: 64, Access: regs.ReadOnly},
		{Name: "sscratch", Width: 64, Access: regs.ReadWrite},
		{Name: "sepc", Width: 64, Access: regs.ReadWrite},
		{
			Name: "scause", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 63, Width: 1}, Name: "Interrupt", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 0, Width: 63}, Name: "ExceptionCode", Access: regs.ReadWrite},
			},
		},
		{Name: "stval", Width: 64, Access: regs.ReadWrite},
		{
			Name: "satp", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 44}, Name: "PPN", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 44, Width: 16}, Name: "ASID", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 60, Width: 4}, Name: "MODE", Access: regs.ReadWrite, Enum: map[uint64]string{
					SatpModeBare: "Bare",
					SatpModeSv39: "Sv39",
					SatpModeSv48: "Sv48",
					SatpModeSv57: "Sv57",
					SatpModeSv64: "Sv64",
				}},
			},
		},
		{Name: "stimecmp", Width: 64, Access: regs.ReadOnly},
	},
}).MustValidate()
