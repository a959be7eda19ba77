package x86

import (
	"encoding/binary"

	"github.com/osdev-kit/karch/pkg/hw/regs"
)

// Hardware dictated binary layouts. These are plain words with shift and
// mask accessors; no Go struct layout is trusted to match the manuals.

// DescriptorTablePointer is the operand of lgdt/lidt and the result of
// sgdt/sidt: a 16 bit table limit followed by a 64 bit linear base address,
// packed into 10 bytes in memory.
type DescriptorTablePointer struct {
	Limit uint16
	Base  uint64
}

// Encodes the packed 10 byte memory image
func (p DescriptorTablePointer) Encode() [10]byte {
	var image [10]byte
	binary.LittleEndian.PutUint16(image[0:2], p.Limit)
	binary.LittleEndian.PutUint64(image[2:10], p.Base)
	return image
}

// Decodes the packed 10 byte memory image
func DecodeDescriptorTablePointer(image [10]byte) DescriptorTablePointer {
	return DescriptorTablePointer{
		Limit: binary.LittleEndian.Uint16(image[0:2]),
		Base:  binary.LittleEndian.Uint64(image[2:10]),
	}
}

// Segment descriptor fields inside the packed 64 bit GDT entry.
var (
	segLimitLow  = regs.Field{Offset: 0, Width: 16}
	segBaseLow   = regs.Field{Offset: 16, Width: 16}
	segBaseMid   = regs.Field{Offset: 32, Width: 8}
	segType      = regs.Field{Offset: 40, Width: 4}
	segS         = regs.Field{Offset: 44, Width: 1}
	segDPL       = regs.Field{Offset: 45, Width: 2}
	segP         = regs.Field{Offset: 47, Width: 1}
	segLimitHigh = regs.Field{Offset: 48, Width: 4}
	segAVL       = regs.Field{Offset: 52, Width: 1}
	segL         = regs.Field{Offset: 53, Width: 1}
	segDB        = regs.Field{Offset: 54, Width: 1}
	segG         = regs.Field{Offset: 55, Width: 1}
	segBaseHigh  = regs.Field{Offset: 56, Width: 8}
)

// SegmentDescriptor is one packed GDT entry.
type SegmentDescriptor uint64

// SegmentConfig names the descriptor attributes a builder call sets.
type SegmentConfig struct {
	Base     uint32
	Limit    uint32 // 20 bits, in bytes or 4 KiB units when Granular
	Type     uint8  // 4 bit type field
	User     bool   // code/data rather than system segment
	DPL      uint8
	Long     bool // 64 bit code segment
	DB       bool // default operand size, must be off with Long
	Granular bool
	AVL      bool
}

// Builds a GDT entry from its unpacked attributes
func NewSegmentDescriptor(config SegmentConfig) SegmentDescriptor {
	var word uint64
	word = segLimitLow.Insert(word, uint64(config.Limit))
	word = segLimitHigh.Insert(word, uint64(config.Limit>>16))
	word = segBaseLow.Insert(word, uint64(config.Base))
	word = segBaseMid.Insert(word, uint64(config.Base>>16))
	word = segBaseHigh.Insert(word, uint64(config.Base>>24))
	word = segType.Insert(word, uint64(config.Type))
	word = segDPL.Insert(word, uint64(config.DPL))
	word = segP.Insert(word, 1)
	if config.User {
		word = segS.Insert(word, 1)
	}
	if config.Long {
		word = segL.Insert(word, 1)
	}
	if config.DB {
		word = segDB.Insert(word, 1)
	}
	if config.Granular {
		word = segG.Insert(word, 1)
	}
	if config.AVL {
		word = segAVL.Insert(word, 1)
	}
	return SegmentDescriptor(word)
}

func (d SegmentDescriptor) Base() uint32 {
	word := uint64(d)
	return uint32(segBaseLow.Extract(word) |
		segBaseMid.Extract(word)<<16 |
		segBaseHigh.Extract(word)<<24)
}

func (d SegmentDescriptor) Limit() uint32 {
	word := uint64(d)
	return uint32(segLimitLow.Extract(word) | segLimitHigh.Extract(word)<<16)
}

func (d SegmentDescriptor) Type() uint8    { return uint8(segType.Extract(uint64(d))) }
func (d SegmentDescriptor) DPL() uint8     { return uint8(segDPL.Extract(uint64(d))) }
func (d SegmentDescriptor) Present() bool  { return segP.Extract(uint64(d)) != 0 }
func (d SegmentDescriptor) User() bool     { return segS.Extract(uint64(d)) != 0 }
func (d SegmentDescriptor) Long() bool     { return segL.Extract(uint64(d)) != 0 }
func (d SegmentDescriptor) Granular() bool { return segG.Extract(uint64(d)) != 0 }

// Gate descriptor fields inside the low word of the packed 16 byte long
// mode IDT entry. The high word holds offset bits 32..63 and reserved zeros.
var (
	gateOffsetLow  = regs.Field{Offset: 0, Width: 16}
	gateSelector   = regs.Field{Offset: 16, Width: 16}
	gateIST        = regs.Field{Offset: 32, Width: 3}
	gateType       = regs.Field{Offset: 40, Width: 4}
	gateDPL        = regs.Field{Offset: 45, Width: 2}
	gateP          = regs.Field{Offset: 47, Width: 1}
	gateOffsetMid  = regs.Field{Offset: 48, Width: 16}
	gateOffsetHigh = regs.Field{Offset: 0, Width: 32} // in the high word
)

// Long mode gate types.
const (
	GateTypeInterrupt uint8 = 0xE
	GateTypeTrap      uint8 = 0xF
)

// GateDescriptor is one packed long mode IDT entry, two 64 bit words.
type GateDescriptor struct {
	Low  uint64
	High uint64
}

// GateConfig names the gate attributes a builder call sets.
type GateConfig struct {
	Offset   uint64
	Selector uint16
	IST      uint8
	Type     uint8
	DPL      uint8
}

// Builds an IDT entry from its unpacked attributes
func NewGateDescriptor(config GateConfig) GateDescriptor {
	var low uint64
	low = gateOffsetLow.Insert(low, config.Offset)
	low = gateOffsetMid.Insert(low, config.Offset>>16)
	low = gateSelector.Insert(low, uint64(config.Selector))
	low = gateIST.Insert(low, uint64(config.IST))
	low = gateType.Insert(low, uint64(config.Type))
	low = gateDPL.Insert(low, uint64(config.DPL))
	low = gateP.Insert(low, 1)

	return GateDescriptor{
		Low:  low,
		High: gateOffsetHigh.Insert(0, config.Offset>>32),
	}
}

func (d GateDescriptor) Offset() uint64 {
	return gateOffsetLow.Extract(d.Low) |
		gateOffsetMid.Extract(d.Low)<<16 |
		gateOffsetHigh.Extract(d.High)<<32
}

func (d GateDescriptor) Selector() uint16 { return uint16(gateSelector.Extract(d.Low)) }
func (d GateDescriptor) IST() uint8       { return uint8(gateIST.Extract(d.Low)) }
func (d GateDescriptor) Type() uint8      { return uint8(gateType.Extract(d.Low)) }
func (d GateDescriptor) DPL() uint8       { return uint8(gateDPL.Extract(d.Low)) }
func (d GateDescriptor) Present() bool    { return gateP.Extract(d.Low) != 0 }

// ErrorCode is the word a protection fault pushes, identifying the selector
// involved.
type ErrorCode uint32

// Tells whether the event originated outside the current program
func (e ErrorCode) External() bool { return e&1 != 0 }

// Tells whether the selector indexes the IDT rather than a descriptor table
func (e ErrorCode) IDT() bool { return e&2 != 0 }

// Tells whether the selector indexes the LDT rather than the GDT; only
// meaningful when IDT is false
func (e ErrorCode) TI() bool { return e&4 != 0 }

// Returns the index of the selector involved
func (e ErrorCode) Index() uint32 { return uint32(e) >> 3 }
