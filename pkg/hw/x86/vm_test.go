package x86

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPTERoundTrip(t *testing.T) {
	pte := NewPTE(0x0000_0001_2345_6000, PTEPresent|PTEWrite|PTENoExec)

	assert.Equal(t, uintptr(0x0000_0001_2345_6000), pte.Address())
	assert.True(t, pte.Present())
	assert.False(t, pte.Huge())
	assert.NotZero(t, uint64(pte)&PTENoExec)
}

func TestPTEMasksStrayAddressBits(t *testing.T) {
	// low bits and the NX position do not leak into the frame number
	pte := NewPTE(0xFFF0_0000_0000_0FFF, PTEPresent)

	assert.Equal(t, uintptr(0), pte.Address())
	assert.True(t, pte.Present())
}

func TestPageTableIndexSplitsCanonicalAddress(t *testing.T) {
	va := uintptr(0xFFFF_8000_1234_5000)

	assert.Equal(t, uintptr(0x100), PageTableIndex(3, va))
	assert.Equal(t, uintptr(0), PageTableIndex(2, va))
	assert.Equal(t, uintptr(0x91), PageTableIndex(1, va))
	assert.Equal(t, uintptr(0x145), PageTableIndex(0, va))
}

func TestPageTableRootPreservesCacheHints(t *testing.T) {
	machine := withMachine(t)
	machine.SetCR3(uint64(PTEPWT | PTEPCD))

	SetPageTableRoot(0x0000_0000_0010_0000)

	assert.Equal(t, uint64(0x10_0000|PTEPWT|PTEPCD), machine.CR3())
	assert.Equal(t, uintptr(0x10_0000), PageTableRoot())
}

func TestFlushTLBReloadsCR3(t *testing.T) {
	machine := withMachine(t)
	machine.SetCR3(0x10_0000)

	FlushTLB()

	assert.Equal(t, []string{
		"mov rax, cr3",
		"mov cr3, 0x100000",
	}, machine.Trace())
	assert.Equal(t, uint64(0x10_0000), machine.CR3())
}

func TestFlushTLBAddr(t *testing.T) {
	machine := withMachine(t)

	FlushTLBAddr(0xFFFF_8000_0020_1000)

	assert.Equal(t, []string{"invlpg 0xffff800000201000"}, machine.Trace())
}

func TestPagingTogglesAreInert(t *testing.T) {
	machine := withMachine(t)

	EnablePaging()
	DisablePaging()

	assert.Empty(t, machine.Trace())
}
