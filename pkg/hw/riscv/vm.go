package riscv

// Page table entry attribute bits (Sv39/Sv48 leaf and non-leaf entries).
const (
	PTEValid    uint64 = 1 << 0
	PTERead     uint64 = 1 << 1
	PTEWrite    uint64 = 1 << 2
	PTEExec     uint64 = 1 << 3
	PTEUser     uint64 = 1 << 4
	PTEGlobal   uint64 = 1 << 5
	PTEAccessed uint64 = 1 << 6
	PTEDirty    uint64 = 1 << 7
)

// PageSize is the base page size of all supported translation modes.
const PageSize = 4096

// PTE is one Sv39/Sv48 page table entry.
type PTE uint64

// Builds a page table entry mapping a physical address with the given
// attribute bits. The physical page number occupies bits 10 and up.
func NewPTE(pa uintptr, flags uint64) PTE {
	return PTE((uint64(pa)>>12)<<10 | flags)
}

// Returns the physical address a page table entry points to
func (pte PTE) Address() uintptr {
	return uintptr((uint64(pte) >> 10) << 12)
}

// Tells whether the entry is valid
func (pte PTE) Valid() bool {
	return uint64(pte)&PTEValid != 0
}

// Tells whether the entry is a leaf mapping rather than a pointer to the
// next level table
func (pte PTE) Leaf() bool {
	return uint64(pte)&(PTERead|PTEWrite|PTEExec) != 0
}

// Returns the page table index of a virtual address at the given level
// (level 2 is the Sv39 root)
func PageTableIndex(level int, va uintptr) uintptr {
	return (va >> (12 + uintptr(level)*9)) & 0x1ff
}

// Enables Sv39 address translation. The root page table must already be
// installed through SetPageTableRoot.
func EnablePaging() {
	Satp.Mode.Write(SatpModeSv39)
	fenceVMA()
}

// Disables address translation.
func DisablePaging() {
	Satp.Mode.Write(SatpModeBare)
	fenceVMA()
}

// Installs the physical address of the root page table in satp.PPN.
func SetPageTableRoot(root uintptr) {
	Satp.Ppn.Write(uint64(root) >> 12)
	fenceVMA()
}

// Returns the physical address of the root page table.
func PageTableRoot() uintptr {
	return uintptr(Satp.Ppn.Get() << 12)
}

// Invalidates all TLB entries of the current hart.
func FlushTLB() {
	fenceVMA()
}

// Invalidates the TLB entries translating one virtual address.
func FlushTLBAddr(va uintptr) {
	fenceVMAAddr(va)
}
