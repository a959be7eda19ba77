package arm64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorRoundTrip(t *testing.T) {
	flags := PTEValid | PTETable | PTEAF | PTEShareInner | PTEAttrIndx(1)
	pte := NewPTE(0x8020_0000, flags)

	assert.True(t, pte.Valid())
	assert.True(t, pte.Table())
	assert.Equal(t, uintptr(0x8020_0000), pte.Address())
	assert.Equal(t, flags, uint64(pte)&^uint64(0x0000_FFFF_FFFF_F000))
}

func TestDescriptorAddressIsMasked(t *testing.T) {
	// bits below 12 and above 47 never reach the output address
	pte := NewPTE(0x8020_0FFF, PTEValid)
	assert.Equal(t, uintptr(0x8020_0000), pte.Address())
}

func TestPageTableIndexWalk(t *testing.T) {
	va := uintptr(0x0000_7F80_2040_1000)

	assert.Equal(t, va>>39&0x1ff, PageTableIndex(0, va))
	assert.Equal(t, va>>30&0x1ff, PageTableIndex(1, va))
	assert.Equal(t, va>>21&0x1ff, PageTableIndex(2, va))
	assert.Equal(t, va>>12&0x1ff, PageTableIndex(3, va))
}

func TestEnableMMUSequence(t *testing.T) {
	core := withCore(t)

	EnableMMU()

	trace := core.Trace()
	require.Len(t, trace, 3)
	assert.Equal(t, "mrs x0, SCTLR_EL1", trace[0])
	assert.Equal(t, "msr SCTLR_EL1, 0x1", trace[1])
	assert.Equal(t, "isb", trace[2])
	assert.True(t, SCTLR_EL1.M.Get())
}

func TestPageTableRootInstall(t *testing.T) {
	core := withCore(t)

	SetPageTableRoot(0x8030_0000)
	SetUserPageTableRoot(0x8020_0000)

	assert.Equal(t, uint64(0x8030_0000), core.SysReg(SysTTBR1EL1))
	assert.Equal(t, uint64(0x8020_0000), core.SysReg(SysTTBR0EL1))
	assert.Equal(t, uintptr(0x8030_0000), PageTableRoot())
}

func TestFlushTLBBarrierSequence(t *testing.T) {
	core := withCore(t)

	FlushTLB()

	assert.Equal(t, []string{
		"dsb sy",
		"tlbi vmalle1is",
		"dsb sy",
		"isb",
	}, core.Trace())
}

func TestFlushTLBAddrUsesPageOperand(t *testing.T) {
	core := withCore(t)

	FlushTLBAddr(0xffff_0000_0020_1FFF)

	trace := core.Trace()
	require.NotEmpty(t, trace)
	assert.Equal(t, "tlbi vaae1is, 0xffff000000201", trace[0])
}
