package arm64

// Stage 1 descriptor attribute bits, VMSAv8-64 with 4 KiB granule.
const (
	PTEValid uint64 = 1 << 0
	PTETable uint64 = 1 << 1
	PTENS    uint64 = 1 << 5
	PTEAPEL0 uint64 = 1 << 6
	PTEAPRO  uint64 = 1 << 7
	PTEAF    uint64 = 1 << 10
	PTENG    uint64 = 1 << 11
	PTEDBM   uint64 = 1 << 51
	PTEPXN   uint64 = 1 << 53
	PTEUXN   uint64 = 1 << 54
)

// AttrIndx occupies descriptor bits <4:2>, selecting a MAIR_EL1 attribute.
func PTEAttrIndx(index uint8) uint64 {
	return uint64(index&0b111) << 2
}

// Shareability occupies descriptor bits <9:8>.
const (
	PTEShareNone  uint64 = 0b00 << 8
	PTEShareOuter uint64 = 0b10 << 8
	PTEShareInner uint64 = 0b11 << 8
)

// PageSize is the translation granule size.
const PageSize = 4096

// PTE is one VMSAv8-64 translation table descriptor.
type PTE uint64

// Builds a descriptor mapping a physical address with the given attribute
// bits. The output address occupies bits 12 to 47.
func NewPTE(pa uintptr, flags uint64) PTE {
	return PTE(uint64(pa)&0x0000_FFFF_FFFF_F000 | flags)
}

// Returns the physical address the descriptor points to
func (pte PTE) Address() uintptr {
	return uintptr(uint64(pte) & 0x0000_FFFF_FFFF_F000)
}

// Tells whether the descriptor is valid
func (pte PTE) Valid() bool {
	return uint64(pte)&PTEValid != 0
}

// Tells whether the descriptor points to a next level table rather than
// mapping a block or page. Only meaningful at levels 0 to 2; at level 3 the
// bit distinguishes page descriptors from invalid ones.
func (pte PTE) Table() bool {
	return uint64(pte)&(PTEValid|PTETable) == PTEValid|PTETable
}

// Returns the translation table index of a virtual address at the given
// level (level 0 is the root with 48 bit addressing)
func PageTableIndex(level int, va uintptr) uintptr {
	return (va >> (12 + uintptr(3-level)*9)) & 0x1ff
}

// EnableMMU turns on stage 1 address translation. TTBR0/TTBR1, TCR and MAIR
// must already be programmed.
func EnableMMU() {
	SCTLR_EL1.M.Set()
	isb()
}

// DisableMMU turns off stage 1 address translation.
func DisableMMU() {
	SCTLR_EL1.M.Clear()
	isb()
}

// SetPageTableRoot installs the physical address of the kernel root table,
// serving the high half of the address space, in TTBR1_EL1.
func SetPageTableRoot(root uintptr) {
	TTBR1_EL1.Write(uint64(root))
	isb()
}

// SetUserPageTableRoot installs the physical address of the root table for
// the low half of the address space in TTBR0_EL1.
func SetUserPageTableRoot(root uintptr) {
	TTBR0_EL1.Write(uint64(root))
	isb()
}

// PageTableRoot returns the physical address of the kernel root table.
func PageTableRoot() uintptr {
	return uintptr(TTBR1_EL1.Baddr.Get() << 1)
}

// Invalidates all stage 1 TLB entries of the inner shareable domain.
func FlushTLB() {
	dsbSy()
	tlbiVMALLE1IS()
	dsbSy()
	isb()
}

// Invalidates the TLB entries translating one virtual address, any ASID.
func FlushTLBAddr(va uintptr) {
	tlbiVAAE1IS(uint64(va) >> 12)
	dsbSy()
	isb()
}
