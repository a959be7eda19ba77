package arm64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCpuOnCallShape(t *testing.T) {
	core := withCore(t)

	var got [4]uint64
	core.Monitor = func(a0, a1, a2, a3, a4, a5, a6, a7 uint64) (uint64, uint64, uint64, uint64) {
		got = [4]uint64{a0, a1, a2, a3}
		return 0, 0, 0, 0
	}

	err := CpuOn(1, 0x8020_0000, 0)
	require.NoError(t, err)

	assert.Equal(t, [4]uint64{PsciCpuOn, 1, 0x8020_0000, 0}, got)

	trace := core.Trace()
	require.NotEmpty(t, trace)
	assert.Equal(t, "smc #0 <- x0=0xc4000003 x1=0x1 x2=0x80200000 x3=0x0", trace[0])
}

func TestMigrateCallShape(t *testing.T) {
	core := withCore(t)

	var got [2]uint64
	core.Monitor = func(a0, a1, a2, a3, a4, a5, a6, a7 uint64) (uint64, uint64, uint64, uint64) {
		got = [2]uint64{a0, a1}
		return 0, 0, 0, 0
	}

	err := Migrate(0x0000_0001)
	require.NoError(t, err)

	assert.Equal(t, [2]uint64{PsciMigrate, 1}, got)
	assert.Equal(t, uint64(0xC400_0005), PsciMigrate)
}

func TestPsciErrorsCarryCodeNames(t *testing.T) {
	core := withCore(t)
	core.Monitor = func(a0, a1, a2, a3, a4, a5, a6, a7 uint64) (uint64, uint64, uint64, uint64) {
		code := int64(PsciAlreadyOn)
		return uint64(code), 0, 0, 0
	}

	err := CpuOn(1, 0x8020_0000, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPsci)
	assert.Contains(t, err.Error(), "ALREADY_ON")
}

func TestMissingMonitorMeansNotSupported(t *testing.T) {
	withCore(t)

	err := SystemOff()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPsci)
	assert.Contains(t, err.Error(), "NOT_SUPPORTED")
}

func TestVersionSplitsMajorMinor(t *testing.T) {
	core := withCore(t)
	core.Monitor = func(a0, a1, a2, a3, a4, a5, a6, a7 uint64) (uint64, uint64, uint64, uint64) {
		assert.Equal(t, PsciVersion, a0)
		return 1<<16 | 1, 0, 0, 0
	}

	major, minor := Version()
	assert.Equal(t, uint16(1), major)
	assert.Equal(t, uint16(1), minor)
}

func TestAffinityInfoDistinguishesStateFromError(t *testing.T) {
	core := withCore(t)
	core.Monitor = func(a0, a1, a2, a3, a4, a5, a6, a7 uint64) (uint64, uint64, uint64, uint64) {
		if a1 == 1 {
			return uint64(AffinityOff), 0, 0, 0
		}
		code := int64(PsciInvalidParams)
		return uint64(code), 0, 0, 0
	}

	state, err := AffinityInfo(1, 0)
	require.NoError(t, err)
	assert.Equal(t, AffinityOff, state)

	_, err = AffinityInfo(99, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_PARAMETERS")
}

func TestPowerStatePacking(t *testing.T) {
	state := NewPowerState(2, true, 0x123)

	assert.Equal(t, uint8(2), state.PowerLevel())
	assert.True(t, state.PowerDown())
	assert.Equal(t, uint16(0x123), state.StateID())
	assert.Equal(t, uint8(0x3), state.CoreState())
	assert.Equal(t, uint8(0x2), state.ClusterState())
	assert.Equal(t, uint8(0x1), state.SystemState())

	standby := NewPowerState(0, false, 0)
	assert.False(t, standby.PowerDown())
	assert.Equal(t, PowerState(0), standby)
}

func TestCpuSuspendPassesPackedState(t *testing.T) {
	core := withCore(t)

	var got [3]uint64
	core.Monitor = func(a0, a1, a2, a3, a4, a5, a6, a7 uint64) (uint64, uint64, uint64, uint64) {
		got = [3]uint64{a0, a1, a2}
		return 0, 0, 0, 0
	}

	state := NewPowerState(0, true, 2)
	require.NoError(t, CpuSuspend(state, 0x8020_0000, 0x99))

	assert.Equal(t, PsciCpuSuspend, got[0])
	assert.Equal(t, uint64(state), got[1])
	assert.Equal(t, uint64(0x8020_0000), got[2])
}
