package arm64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisableInterruptUsesImmediateForm(t *testing.T) {
	core := withCore(t)

	DisableInterrupt()

	// all four masks fit the 4 bit PSTATE immediate, so masking is one
	// instruction, no read-modify-write
	trace := core.Trace()
	require.Len(t, trace, 1)
	assert.Equal(t, "msr DAIFSet, #15", trace[0])

	assert.Equal(t, uint64(0b1111)<<daifFOffset, core.SysReg(SysDAIF))
	assert.False(t, GetInterruptStatus())
}

func TestEnableInterruptUsesImmediateForm(t *testing.T) {
	core := withCore(t)
	core.SetSysReg(SysDAIF, 0b1111<<daifFOffset)

	EnableInterrupt()

	trace := core.Trace()
	require.NotEmpty(t, trace)
	assert.Equal(t, "msr DAIFClr, #15", trace[0])

	assert.Equal(t, uint64(0), core.SysReg(SysDAIF))
	assert.True(t, GetInterruptStatus())
}

func TestDAIFImmediateFormsRejectWideOperands(t *testing.T) {
	withCore(t)

	// msr DAIFSet/DAIFClr encode a 4 bit immediate; a wider operand has no
	// encoding
	assert.Panics(t, func() { daifSet(1 << 4) })
	assert.Panics(t, func() { daifClr(0xFF) })
	assert.NotPanics(t, func() { daifSet(daifImmAll) })
}

func TestPerSourceTogglesCoverOneMaskEach(t *testing.T) {
	core := withCore(t)

	DisableIRQ()
	DisableFIQ()
	EnableIRQ()

	assert.Equal(t, []string{
		"msr DAIFSet, #2",
		"msr DAIFSet, #1",
		"msr DAIFClr, #2",
	}, core.Trace())

	// FIQ still masked, so interrupts stay off as a whole
	assert.False(t, GetInterruptStatus())
	assert.True(t, DAIF.F.Get())
	assert.False(t, DAIF.I.Get())

	EnableFIQ()
	assert.True(t, GetInterruptStatus())
}

func TestSingleMaskTogglesKeepImmediateForm(t *testing.T) {
	core := withCore(t)

	DAIF.I.Set()
	DAIF.F.Set()
	DAIF.I.Clear()

	assert.Equal(t, []string{
		"msr DAIFSet, #2",
		"msr DAIFSet, #1",
		"msr DAIFClr, #2",
	}, core.Trace())
	assert.False(t, DAIF.I.Get())
	assert.True(t, DAIF.F.Get())
}

func TestInterruptStatusNeedsBothMasksClear(t *testing.T) {
	core := withCore(t)

	core.SetSysReg(SysDAIF, 1<<daifIOffset)
	assert.False(t, GetInterruptStatus())

	core.SetSysReg(SysDAIF, 1<<daifFOffset)
	assert.False(t, GetInterruptStatus())

	core.SetSysReg(SysDAIF, 1<<daifDOffset|1<<daifAOffset)
	assert.True(t, GetInterruptStatus())
}

func TestEnableFPUGrantsFullAccess(t *testing.T) {
	core := withCore(t)

	EnableFPU()

	trace := core.Trace()
	require.NotEmpty(t, trace)
	assert.Equal(t, "isb", trace[len(trace)-1])

	assert.Equal(t, uint64(0b11), CPACR_EL1.Fpen.Get())
}

func TestPauseEmitsYield(t *testing.T) {
	core := withCore(t)

	Pause()

	assert.Equal(t, []string{"yield"}, core.Trace())
}
