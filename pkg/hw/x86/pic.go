package x86

// Legacy 8259A cascade at the standard ISA ports.
const (
	picMasterCmd  uint16 = 0x20
	picMasterData uint16 = 0x21
	picSlaveCmd   uint16 = 0xA0
	picSlaveData  uint16 = 0xA1

	picEOI     uint8 = 0x20
	picReadIRR uint8 = 0x0A
	picReadISR uint8 = 0x0B

	icw1Init uint8 = 0x11 // edge triggered, cascade, ICW4 follows
	icw48086 uint8 = 0x01
)

// PIC drives the two cascaded 8259A controllers, with interrupt vectors
// remapped away from the CPU exception range.
type PIC struct {
	offset1 uint8
	offset2 uint8
}

// NewPIC remaps the master to offset1 and the slave to offset2, wires the
// cascade on IR2, enters 8086 mode, and leaves every line masked.
func NewPIC(offset1, offset2 uint8) *PIC {
	outb(picMasterCmd, icw1Init)
	outb(picSlaveCmd, icw1Init)

	outb(picMasterData, offset1)
	outb(picSlaveData, offset2)

	// slave on master IR2; slave cascade identity 2
	outb(picMasterData, 0x04)
	outb(picSlaveData, 0x02)

	outb(picMasterData, icw48086)
	outb(picSlaveData, icw48086)

	outb(picMasterData, 0xFF)
	outb(picSlaveData, 0xFF)

	return &PIC{offset1: offset1, offset2: offset2}
}

// Enable unmasks IRQ line n (0..15), unmasking the cascade line alongside
// slave lines.
func (p *PIC) Enable(n uint8) {
	if n < 8 {
		outb(picMasterData, inb(picMasterData)&^(1<<n))
		return
	}

	outb(picSlaveData, inb(picSlaveData)&^(1<<(n-8)))
	outb(picMasterData, inb(picMasterData)&^(1<<2))
}

// Disable masks IRQ line n (0..15).
func (p *PIC) Disable(n uint8) {
	if n < 8 {
		outb(picMasterData, inb(picMasterData)|1<<n)
		return
	}

	outb(picSlaveData, inb(picSlaveData)|1<<(n-8))
}

// Clear acknowledges the interrupt with the given vector number: EOI to the
// master, and to the slave too when the vector belongs to its range.
func (p *PIC) Clear(vector uint8) {
	if vector >= p.offset2 {
		outb(picSlaveCmd, picEOI)
	}

	outb(picMasterCmd, picEOI)
}

func (p *PIC) readCombined(ocw3 uint8) uint16 {
	outb(picMasterCmd, ocw3)
	outb(picSlaveCmd, ocw3)
	return uint16(inb(picSlaveCmd))<<8 | uint16(inb(picMasterCmd))
}

// GetIrr returns the combined interrupt request register, slave in the high
// byte.
func (p *PIC) GetIrr() uint16 {
	return p.readCombined(picReadIRR)
}

// GetIsr returns the combined in-service register, slave in the high byte.
func (p *PIC) GetIsr() uint16 {
	return p.readCombined(picReadISR)
}
