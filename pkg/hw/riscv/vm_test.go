package riscv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPTE(t *testing.T) {
	pte := NewPTE(0x8020_0000, PTEValid|PTERead|PTEWrite)

	assert.Equal(t, uintptr(0x8020_0000), pte.Address())
	assert.True(t, pte.Valid())
	assert.True(t, pte.Leaf())
	assert.Equal(t, PTE(0x8020_0000>>12<<10|0x7), pte)
}

func TestNonLeafPTE(t *testing.T) {
	pte := NewPTE(0x8040_0000, PTEValid)

	assert.True(t, pte.Valid())
	assert.False(t, pte.Leaf())
}

func TestPageTableIndex(t *testing.T) {
	// Sv39: va[38:30] at level 2, va[29:21] at level 1, va[20:12] at level 0
	va := uintptr(0x12345678)

	assert.Equal(t, va>>30&0x1ff, PageTableIndex(2, va))
	assert.Equal(t, va>>21&0x1ff, PageTableIndex(1, va))
	assert.Equal(t, va>>12&0x1ff, PageTableIndex(0, va))
}

func TestEnablePagingWritesSatpMode(t *testing.T) {
	hart := withHart(t)

	EnablePaging()
	assert.Equal(t, SatpModeSv39, hart.CSR(CSRSatp)>>60)
	assert.Contains(t, hart.Trace(), "sfence.vma")

	DisablePaging()
	assert.Equal(t, SatpModeBare, hart.CSR(CSRSatp)>>60)
}

func TestPageTableRootRoundTrip(t *testing.T) {
	hart := withHart(t)
	hart.SetCSR(CSRSatp, uint64(SatpModeSv39)<<60)

	SetPageTableRoot(0x8040_0000)

	// mode and asid survive a root install
	assert.Equal(t, SatpModeSv39, hart.CSR(CSRSatp)>>60)
	assert.Equal(t, uintptr(0x8040_0000), PageTableRoot())
}

func TestFlushTLB(t *testing.T) {
	hart := withHart(t)

	FlushTLB()
	FlushTLBAddr(0x8020_0000)

	assert.Equal(t, []string{"sfence.vma", "sfence.vma 0x80200000"}, hart.Trace())
}
