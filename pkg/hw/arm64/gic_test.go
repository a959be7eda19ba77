package arm64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterfaceBringUp(t *testing.T) {
	core := withCore(t)

	EnableSystemRegisterInterface()
	SetPriorityMask(0xF0)
	EnableGroup1()

	assert.True(t, ICC_SRE_EL1.SRE.Get())
	assert.Equal(t, uint64(0xF0), ICC_PMR_EL1.Priority.Get())
	assert.True(t, ICC_IGRPEN1_EL1.Enable.Get())
	assert.Equal(t, uint64(1), core.SysReg(SysICCIGRPEN1EL1))
}

func TestAckAndCompleteInterrupt(t *testing.T) {
	core := withCore(t)
	core.SetSysReg(SysICCIAR1EL1, 30)

	intid, ok := AckInterrupt()
	require.True(t, ok)
	assert.Equal(t, uint64(30), intid)

	EndOfInterrupt(intid)
	assert.Equal(t, uint64(30), core.SysReg(SysICCEOIR1EL1))
}

func TestSpuriousInterruptIsNotAcked(t *testing.T) {
	core := withCore(t)
	core.SetSysReg(SysICCIAR1EL1, IntIDSpurious)

	_, ok := AckInterrupt()
	assert.False(t, ok)
}

func TestTimerArming(t *testing.T) {
	core := withCore(t)
	core.SetSysReg(SysCNTFRQEL0, 62_500_000)

	SetTimer(uint32(TimerFrequency() / 100))

	assert.Equal(t, uint64(625_000), CNTV_TVAL_EL0.TimerValue.Get())
	assert.True(t, CNTV_CTL_EL0.Enable.Get())
	assert.False(t, CNTV_CTL_EL0.IMask.Get())

	StopTimer()
	assert.False(t, CNTV_CTL_EL0.Enable.Get())
	assert.Equal(t, uint64(0), core.SysReg(SysCNTVCTLEL0))
}

func TestTimerFiredFollowsStatusBit(t *testing.T) {
	core := withCore(t)

	assert.False(t, TimerFired())

	core.SetSysReg(SysCNTVCTLEL0, 1<<2|1)
	assert.True(t, TimerFired())
}
