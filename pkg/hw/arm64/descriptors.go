package arm64

import (
	"github.com/osdev-kit/karch/pkg/hw/regs"
)

// Descriptors is the declarative catalog of the AArch64 EL1 system registers,
// validated at package load. The typed access points in catalog.go mirror
// these shapes one to one.
var Descriptors = (&regs.Catalog{
	Arch: "arm64",
	Registers: []*regs.RegisterDescriptor{
		{Name: "x0", Width: 64, Access: regs.ReadOnly},
		{Name: "x29", Width: 64, Access: regs.ReadOnly},
		{
			Name: "cpacr_el1", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 20, Width: 2}, Name: "FPEN", Access: regs.ReadWrite, Enum: map[uint64]string{
					0b00: "trap-all",
					0b01: "trap-el0",
					0b11: "trap-none",
				}},
			},
		},
		{
			Name: "currentel", Width: 64, Access: regs.ReadOnly,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 2, Width: 2}, Name: "EL", Access: regs.ReadOnly, Enum: map[uint64]string{
					0: "EL0",
					1: "EL1",
					2: "EL2",
					3: "EL3",
				}},
			},
		},
		{
			Name: "spsel", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 1}, Name: "SP", Access: regs.ReadWrite, Enum: map[uint64]string{
					0: "SP_EL0",
					1: "SP_ELx",
				}},
			},
		},
		{
			Name: "daif", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: daifFOffset, Width: 1}, Name: "F", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: daifIOffset, Width: 1}, Name: "I", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: daifAOffset, Width: 1}, Name: "A", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: daifDOffset, Width: 1}, Name: "D", Access: regs.ReadWrite},
			},
		},
		{
			Name: "vbar_el1", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 11, Width: 53}, Name: "BASE", Access: regs.ReadWrite},
			},
		},
		{Name: "elr_el1", Width: 64, Access: regs.ReadWrite},
		{Name: "spsr_el1", Width: 64, Access: regs.ReadWrite},
		{Name: "sp_el0", Width: 64, Access: regs.ReadWrite},
		{Name: "sp_el1", Width: 64, Access: regs.ReadWrite},
		{
			Name: "mpidr_el1", Width: 64, Access: regs.ReadOnly,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 8}, Name: "Aff0", Access: regs.ReadOnly},
				{Field: regs.Field{Offset: 8, Width: 8}, Name: "Aff1", Access: regs.ReadOnly},
				{Field: regs.Field{Offset: 16, Width: 8}, Name: "Aff2", Access: regs.ReadOnly},
				{Field: regs.Field{Offset: 24, Width: 1}, Name: "MT", Access: regs.ReadOnly},
				{Field: regs.Field{Offset: 30, Width: 1}, Name: "U", Access: regs.ReadOnly},
				{Field: regs.Field{Offset: 32, Width: 8}, Name: "Aff3", Access: regs.ReadOnly},
			},
		},
		{
			Name: "sctlr_el1", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 1}, Name: "M", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 2, Width: 1}, Name: "C", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 12, Width: 1}, Name: "I", Access: regs.ReadWrite},
			},
		},
		{
			Name: "mair_el1", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 8}, Name: "Attr0", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 8, Width: 8}, Name: "Attr1", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 16, Width: 8}, Name: "Attr2", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 24, Width: 8}, Name: "Attr3", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 32, Width: 8}, Name: "Attr4", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 40, Width: 8}, Name: "Attr5", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 48, Width: 8}, Name: "Attr6", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 56, Width: 8}, Name: "Attr7", Access: regs.ReadWrite},
			},
		},
		{
			Name: "tcr_el1", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 6}, Name: "T0SZ", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 14, Width: 2}, Name: "TG0", Access: regs.ReadWrite, Enum: map[uint64]string{
					0b00: "4KiB",
					0b01: "64KiB",
					0b10: "16KiB",
				}},
				{Field: regs.Field{Offset: 16, Width: 6}, Name: "T1SZ", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 30, Width: 2}, Name: "TG1", Access: regs.ReadWrite, Enum: map[uint64]string{
					0b01: "16KiB",
					0b10: "4KiB",
					0b11: "64KiB",
				}},
				{Field: regs.Field{Offset: 32, Width: 3}, Name: "IPS", Access: regs.ReadWrite},
			},
		},
		{
			Name: "esr_el1", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 25}, Name: "ISS", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 26, Width: 6}, Name: "EC", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 32, Width: 5}, Name: "ISS2", Access: regs.ReadWrite},
			},
		},
		{Name: "far_el1", Width: 64, Access: regs.ReadWrite},
		{
			Name: "cntv_ctl_el0", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 1}, Name: "ENABLE", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 1, Width: 1}, Name: "IMASK", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 2, Width: 1}, Name: "ISTATUS", Access: regs.ReadOnly},
			},
		},
		{
			Name: "cntv_tval_el0", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 32}, Name: "TimerValue", Access: regs.ReadWrite},
			},
		},
		{Name: "cntvct_el0", Width: 64, Access: regs.ReadOnly},
		{Name: "cntfrq_el0", Width: 64, Access: regs.ReadOnly},
		{
			Name: "icc_pmr_el1", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 8}, Name: "Priority", Access: regs.ReadWrite},
			},
		},
		{
			Name: "icc_igrpen1_el1", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 1}, Name: "Enable", Access: regs.ReadWrite},
			},
		},
		{
			Name: "icc_sre_el1", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 1}, Name: "SRE", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 1, Width: 1}, Name: "DFB", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 2, Width: 1}, Name: "DIB", Access: regs.ReadWrite},
			},
		},
		{
			Name: "icc_iar1_el1", Width: 64, Access: regs.ReadOnly,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 24}, Name: "INTID", Access: regs.ReadOnly},
			},
		},
		{
			Name: "icc_eoir1_el1", Width: 64, Access: regs.WriteOnly,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 24}, Name: "INTID", Access: regs.WriteOnly},
			},
		},
		{
			Name: "ttbr0_el1", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 1}, Name: "CnP", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 1, Width: 47}, Name: "BADDR", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 48, Width: 16}, Name: "ASID", Access: regs.ReadWrite},
			},
		},
		{
			Name: "ttbr1_el1", Width: 64, Access: regs.ReadWrite,
			Fields: []regs.FieldDescriptor{
				{Field: regs.Field{Offset: 0, Width: 1}, Name: "CnP", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 1, Width: 47}, Name: "BADDR", Access: regs.ReadWrite},
				{Field: regs.Field{Offset: 48, Width: 16}, Name: "ASID", Access: regs.ReadWrite},
			},
		},
	},
}).MustValidate()
