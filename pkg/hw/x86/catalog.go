package x86

import (
	"github.com/osdev-kit/karch/pkg/hw/regs"
)

func rmwSet(read func() uint64, write func(uint64), mask uint64) {
	write(read() | mask)
}

func rmwClear(read func() uint64, write func(uint64), mask uint64) {
	write(read() &^ mask)
}

type rbpOps struct{}

func (rbpOps) Read() uint64 { return rbpRead() }

// rflagsOps reads and writes RFLAGS through pushfq/popfq, except that a
// masked update hitting exactly the IF bit is the dedicated sti/cli
// instruction instead of a read-modify-write.
type rflagsOps struct{}

func (rflagsOps) Read() uint64       { return rflagsRead() }
func (rflagsOps) Write(value uint64) { rflagsWrite(value) }

func (rflagsOps) SetBits(mask uint64) {
	if mask == 1<<rflagsIFOffset {
		sti()
		return
	}
	rmwSet(rflagsRead, rflagsWrite, mask)
}

func (rflagsOps) ClearBits(mask uint64) {
	if mask == 1<<rflagsIFOffset {
		cli()
		return
	}
	rmwClear(rflagsRead, rflagsWrite, mask)
}

type cr0Ops struct{}

func (cr0Ops) Read() uint64          { return cr0Read() }
func (cr0Ops) Write(value uint64)    { cr0Write(value) }
func (cr0Ops) SetBits(mask uint64)   { rmwSet(cr0Read, cr0Write, mask) }
func (cr0Ops) ClearBits(mask uint64) { rmwClear(cr0Read, cr0Write, mask) }

type cr2Ops struct{}

func (cr2Ops) Read() uint64 { return cr2Read() }

type cr3Ops struct{}

func (cr3Ops) Read() uint64          { return cr3Read() }
func (cr3Ops) Write(value uint64)    { cr3Write(value) }
func (cr3Ops) SetBits(mask uint64)   { rmwSet(cr3Read, cr3Write, mask) }
func (cr3Ops) ClearBits(mask uint64) { rmwClear(cr3Read, cr3Write, mask) }

type cr4Ops struct{}

func (cr4Ops) Read() uint64          { return cr4Read() }
func (cr4Ops) Write(value uint64)    { cr4Write(value) }
func (cr4Ops) SetBits(mask uint64)   { rmwSet(cr4Read, cr4Write, mask) }
func (cr4Ops) ClearBits(mask uint64) { rmwClear(cr4Read, cr4Write, mask) }

type cr8Ops struct{}

func (cr8Ops) Read() uint64          { return cr8Read() }
func (cr8Ops) Write(value uint64)    { cr8Write(value) }
func (cr8Ops) SetBits(mask uint64)   { rmwSet(cr8Read, cr8Write, mask) }
func (cr8Ops) ClearBits(mask uint64) { rmwClear(cr8Read, cr8Write, mask) }

type xcr0Ops struct{}

func (xcr0Ops) Read() uint64          { return xcr0Read() }
func (xcr0Ops) Write(value uint64)    { xcr0Write(value) }
func (xcr0Ops) SetBits(mask uint64)   { rmwSet(xcr0Read, xcr0Write, mask) }
func (xcr0Ops) ClearBits(mask uint64) { rmwClear(xcr0Read, xcr0Write, mask) }

// Segment selector plumbing. The selectors are 16 bit values travelling
// through the 64 bit accessor plane.

type csOps struct{}

func (csOps) Read() uint64 { return uint64(segRead(SegCS)) }

func segOpsRead(seg Segment) uint64 { return uint64(segRead(seg)) }

func segOpsWrite(seg Segment, value uint64) { segWrite(seg, uint16(value)) }

func segOpsSet(seg Segment, mask uint64) { segOpsWrite(seg, segOpsRead(seg)|mask) }

func segOpsClear(seg Segment, mask uint64) { segOpsWrite(seg, segOpsRead(seg)&^mask) }

type ssOps struct{}

func (ssOps) Read() uint64          { return segOpsRead(SegSS) }
func (ssOps) Write(value uint64)    { segOpsWrite(SegSS, value) }
func (ssOps) SetBits(mask uint64)   { segOpsSet(SegSS, mask) }
func (ssOps) ClearBits(mask uint64) { segOpsClear(SegSS, mask) }

type dsOps struct{}

func (dsOps) Read() uint64          { return segOpsRead(SegDS) }
func (dsOps) Write(value uint64)    { segOpsWrite(SegDS, value) }
func (dsOps) SetBits(mask uint64)   { segOpsSet(SegDS, mask) }
func (dsOps) ClearBits(mask uint64) { segOpsClear(SegDS, mask) }

type esOps struct{}

func (esOps) Read() uint64          { return segOpsRead(SegES) }
func (esOps) Write(value uint64)    { segOpsWrite(SegES, value) }
func (esOps) SetBits(mask uint64)   { segOpsSet(SegES, mask) }
func (esOps) ClearBits(mask uint64) { segOpsClear(SegES, mask) }

type fsOps struct{}

func (fsOps) Read() uint64          { return segOpsRead(SegFS) }
func (fsOps) Write(value uint64)    { segOpsWrite(SegFS, value) }
func (fsOps) SetBits(mask uint64)   { segOpsSet(SegFS, mask) }
func (fsOps) ClearBits(mask uint64) { segOpsClear(SegFS, mask) }

type gsOps struct{}

func (gsOps) Read() uint64          { return segOpsRead(SegGS) }
func (gsOps) Write(value uint64)    { segOpsWrite(SegGS, value) }
func (gsOps) SetBits(mask uint64)   { segOpsSet(SegGS, mask) }
func (gsOps) ClearBits(mask uint64) { segOpsClear(SegGS, mask) }

// Rbp is the frame pointer as saved by the calling convention.
type RbpReg struct{ rbpOps }

var Rbp = RbpReg{}

// Rflags is the flags register. The IF field's Set and Clear emit sti and
// cli; every other masked update is a pushfq/popfq read-modify-write.
type RflagsReg struct {
	rflagsOps
	If regs.Flag[rflagsOps]
}

var Rflags = RflagsReg{
	If: regs.Flag[rflagsOps]{Field: regs.Field{Offset: rflagsIFOffset, Width: 1}},
}

// Cr0 carries the machine control bits that gate protection and paging.
type Cr0Reg struct {
	cr0Ops
	Pe regs.Flag[cr0Ops]
	Pg regs.Flag[cr0Ops]
}

var Cr0 = Cr0Reg{
	Pe: regs.Flag[cr0Ops]{Field: regs.Field{Offset: 0, Width: 1}},
	Pg: regs.Flag[cr0Ops]{Field: regs.Field{Offset: 31, Width: 1}},
}

// Cr2 holds the faulting linear address of the last page fault.
type Cr2Reg struct{ cr2Ops }

var Cr2 = Cr2Reg{}

// Cr3 points at the root of the page table hierarchy.
type Cr3Reg struct {
	cr3Ops
	Pwt               regs.Flag[cr3Ops]
	Pcd               regs.Flag[cr3Ops]
	PageDirectoryBase regs.Bits[cr3Ops]
}

var Cr3 = Cr3Reg{
	Pwt:               regs.Flag[cr3Ops]{Field: regs.Field{Offset: 3, Width: 1}},
	Pcd:               regs.Flag[cr3Ops]{Field: regs.Field{Offset: 4, Width: 1}},
	PageDirectoryBase: regs.Bits[cr3Ops]{Field: regs.Field{Offset: 12, Width: 52}},
}

type Cr4Reg struct {
	cr4Ops
	Pae regs.Flag[cr4Ops]
}

var Cr4 = Cr4Reg{
	Pae: regs.Flag[cr4Ops]{Field: regs.Field{Offset: 5, Width: 1}},
}

// Cr8 is the task priority register gating external interrupts.
type Cr8Reg struct{ cr8Ops }

var Cr8 = Cr8Reg{}

// Xcr0 selects the extended state components xsave manages.
type Xcr0Reg struct{ xcr0Ops }

var Xcr0 = Xcr0Reg{}

// Gdtr and Idtr are not bit-addressable registers; they load and store the
// packed limit/base pointer image as a unit.
type GdtrReg struct{}

func (GdtrReg) Read() DescriptorTablePointer {
	var image [10]byte
	sgdt(&image)
	return DecodeDescriptorTablePointer(image)
}

func (GdtrReg) Write(pointer DescriptorTablePointer) {
	image := pointer.Encode()
	lgdt(&image)
}

var Gdtr = GdtrReg{}

type IdtrReg struct{}

func (IdtrReg) Read() DescriptorTablePointer {
	var image [10]byte
	sidt(&image)
	return DecodeDescriptorTablePointer(image)
}

func (IdtrReg) Write(pointer DescriptorTablePointer) {
	image := pointer.Encode()
	lidt(&image)
}

var Idtr = IdtrReg{}

// Cs is the code segment selector. It cannot be moved to directly; Load
// runs the far return reload sequence. The fields stay read-only.
type CsReg struct {
	csOps
	Rpl   regs.BitsRO[csOps]
	Ti    regs.FlagRO[csOps]
	Index regs.BitsRO[csOps]
}

func (CsReg) Load(sel uint16) { writeCS(sel) }

var Cs = CsReg{
	Rpl:   regs.BitsRO[csOps]{Field: regs.Field{Offset: 0, Width: 2}},
	Ti:    regs.FlagRO[csOps]{Field: regs.Field{Offset: 2, Width: 1}},
	Index: regs.BitsRO[csOps]{Field: regs.Field{Offset: 3, Width: 13}},
}

type SsReg struct {
	ssOps
	Rpl   regs.Bits[ssOps]
	Ti    regs.Flag[ssOps]
	Index regs.Bits[ssOps]
}

var Ss = SsReg{
	Rpl:   regs.Bits[ssOps]{Field: regs.Field{Offset: 0, Width: 2}},
	Ti:    regs.Flag[ssOps]{Field: regs.Field{Offset: 2, Width: 1}},
	Index: regs.Bits[ssOps]{Field: regs.Field{Offset: 3, Width: 13}},
}

type DsReg struct {
	dsOps
	Rpl   regs.Bits[dsOps]
	Ti    regs.Flag[dsOps]
	Index regs.Bits[dsOps]
}

var Ds = DsReg{
	Rpl:   regs.Bits[dsOps]{Field: regs.Field{Offset: 0, Width: 2}},
	Ti:    regs.Flag[dsOps]{Field: regs.Field{Offset: 2, Width: 1}},
	Index: regs.Bits[dsOps]{Field: regs.Field{Offset: 3, Width: 13}},
}

type EsReg struct {
	esOps
	Rpl   regs.Bits[esOps]
	Ti    regs.Flag[esOps]
	Index regs.Bits[esOps]
}

var Es = EsReg{
	Rpl:   regs.Bits[esOps]{Field: regs.Field{Offset: 0, Width: 2}},
	Ti:    regs.Flag[esOps]{Field: regs.Field{Offset: 2, Width: 1}},
	Index: regs.Bits[esOps]{Field: regs.Field{Offset: 3, Width: 13}},
}

type FsReg struct {
	fsOps
	Rpl   regs.Bits[fsOps]
	Ti    regs.Flag[fsOps]
	Index regs.Bits[fsOps]
}

var Fs = FsReg{
	Rpl:   regs.Bits[fsOps]{Field: regs.Field{Offset: 0, Width: 2}},
	Ti:    regs.Flag[fsOps]{Field: regs.Field{Offset: 2, Width: 1}},
	Index: regs.Bits[fsOps]{Field: regs.Field{Offset: 3, Width: 13}},
}

type GsReg struct {
	gsOps
	Rpl   regs.Bits[gsOps]
	Ti    regs.Flag[gsOps]
	Index regs.Bits[gsOps]
}

var Gs = GsReg{
	Rpl:   regs.Bits[gsOps]{Field: regs.Field{Offset: 0, Width: 2}},
	Ti:    regs.Flag[gsOps]{Field: regs.Field{Offset: 2, Width: 1}},
	Index: regs.Bits[gsOps]{Field: regs.Field{Offset: 3, Width: 13}},
}

// MsrBank accesses the model specific register space, indexed by 32 bit
// address rather than catalogued per register.
type MsrBank struct{}

func (MsrBank) Read(addr uint32) uint64 {
	return rdmsr(addr)
}

func (MsrBank) Write(addr uint32, value uint64) {
	wrmsr(addr, value)
}

var Msr = MsrBank{}
