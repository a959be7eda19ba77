package x86

// Page table entry attribute bits, identical at every level of the long
// mode hierarchy. Bits 9 to 11 are software defined.
const (
	PTEPresent   uint64 = 1 << 0
	PTEWrite     uint64 = 1 << 1
	PTEUser      uint64 = 1 << 2
	PTEPWT       uint64 = 1 << 3
	PTEPCD       uint64 = 1 << 4
	PTEAccessed  uint64 = 1 << 5
	PTEDirty     uint64 = 1 << 6
	PTEHuge      uint64 = 1 << 7
	PTEGlobal    uint64 = 1 << 8
	PTESoftware0 uint64 = 1 << 9
	PTESoftware1 uint64 = 1 << 10
	PTESoftware2 uint64 = 1 << 11
	PTENoExec    uint64 = 1 << 63
)

// PageSize is the base page size.
const PageSize = 4096

const pteAddrMask = 0x000F_FFFF_FFFF_F000

// PTE is one long mode page table entry.
type PTE uint64

// Builds a page table entry mapping a physical address with the given
// attribute bits. The physical frame occupies bits 12 to 51.
func NewPTE(pa uintptr, flags uint64) PTE {
	return PTE(uint64(pa)&pteAddrMask | flags)
}

// Returns the physical address the entry points to
func (pte PTE) Address() uintptr {
	return uintptr(uint64(pte) & pteAddrMask)
}

// Tells whether the entry is present
func (pte PTE) Present() bool {
	return uint64(pte)&PTEPresent != 0
}

// Tells whether the entry maps a huge page instead of pointing to the next
// level table
func (pte PTE) Huge() bool {
	return uint64(pte)&PTEHuge != 0
}

// Returns the page table index of a virtual address at the given level
// (level 3 is the PML4 root)
func PageTableIndex(level int, va uintptr) uintptr {
	return (va >> (12 + uintptr(level)*9)) & 0x1ff
}

// EnablePaging is a no-op: long mode cannot run without paging, CR0.PG was
// set before the kernel gained control.
func EnablePaging() {}

// DisablePaging is a no-op for the same reason.
func DisablePaging() {}

// Installs the physical address of the root page table in
// cr3.PageDirectoryBase, preserving the PWT/PCD cache hints.
func SetPageTableRoot(root uintptr) {
	Cr3.PageDirectoryBase.Write(uint64(root) >> 12)
}

// Returns the physical address of the root page table.
func PageTableRoot() uintptr {
	return uintptr(Cr3.PageDirectoryBase.Get() << 12)
}

// Invalidates all non-global TLB entries by reloading cr3.
func FlushTLB() {
	cr3Write(cr3Read())
}

// Invalidates the TLB entries translating one virtual address.
func FlushTLBAddr(va uintptr) {
	invlpg(va)
}
