package riscv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withHart installs a fresh hart model for the duration of the test so the
// catalog operations never touch real CSRs, whatever the host GOARCH.
func withHart(t *testing.T) *Hart {
	t.Helper()

	hart := NewHart()
	t.Cleanup(hart.Install())

	return hart
}

func TestDescriptorMaskDerivations(t *testing.T) {
	for _, register := range Descriptors.Registers {
		for _, field := range register.Fields {
			expectedAllSet := uint64(1)<<field.Width - 1
			if field.Width == 64 {
				expectedAllSet = ^uint64(0)
			}

			assert.Equal(t, expectedAllSet<<field.Offset, field.Mask(), "%s.%s mask", register.Name, field.Name)
			assert.Equal(t, expectedAllSet, field.AllSet(), "%s.%s all-set", register.Name, field.Name)
			assert.LessOrEqual(t, uint(field.Offset)+uint(field.Width), uint(register.Width), "%s.%s bounds", register.Name, field.Name)
		}
	}
}

func TestCatalogValidates(t *testing.T) {
	assert.NoError(t, Descriptors.Validate())
}

func TestFieldWritePreservesSurroundingBits(t *testing.T) {
	hart := withHart(t)
	hart.SetCSR(CSRSatp, 0xffff_ffff_ffff_ffff)

	Satp.Asid.Write(0x42)

	expected := (uint64(0xffff_ffff_ffff_ffff) &^ (uint64(0xffff) << 44)) | (uint64(0x42) << 44)
	assert.Equal(t, expected, hart.CSR(CSRSatp))
	assert.Equal(t, uint64(0x42), Satp.Asid.Get())
}

func TestRegisterWriteReplacesAllBits(t *testing.T) {
	hart := withHart(t)
	hart.SetCSR(CSRSepc, 0xdead_beef)

	Sepc.Write(0x8020_0000)

	assert.Equal(t, uint64(0x8020_0000), hart.CSR(CSRSepc))
}

func TestSetBitsAndClearBits(t *testing.T) {
	hart := withHart(t)

	Sie.SetBits(0x222)
	assert.Equal(t, uint64(0x222), hart.CSR(CSRSie)&0x222)

	Sie.ClearBits(0x222)
	assert.Zero(t, hart.CSR(CSRSie)&0x222)
}

func TestSwapReturnsPreviousValue(t *testing.T) {
	hart := withHart(t)
	hart.SetCSR(CSRSscratch, 0x1111)

	previous := Sscratch.Swap(0x2222)

	assert.Equal(t, uint64(0x1111), previous)
	assert.Equal(t, uint64(0x2222), hart.CSR(CSRSscratch))
	assert.Contains(t, hart.Trace(), "csrrw sscratch, 0x2222")
}

func TestStvecSetDirect(t *testing.T) {
	hart := withHart(t)
	hart.SetCSR(CSRStvec, 0x1000)

	// misaligned base is rejected and the CSR is untouched
	assert.False(t, Stvec.SetDirect(0x8020_0001))
	assert.Equal(t, uint64(0x1000), hart.CSR(CSRStvec))

	require.True(t, Stvec.SetDirect(0x8020_0000))
	assert.Equal(t, uint64(0x8020_0000), hart.CSR(CSRStvec))
	assert.Equal(t, StvecModeDirect, Stvec.Mode.Get())
	assert.Equal(t, uint64(0x8020_0000>>2), Stvec.Base.Get())
}

func TestScauseDecoding(t *testing.T) {
	specs := []struct {
		scause   uint64
		expected string
	}{
		{1<<63 | 5, "supervisor timer interrupt"},
		{1<<63 | 9, "supervisor external interrupt"},
		{13, "load page fault"},
		{2, "illegal instruction"},
		{11, "unknown exception"},
	}

	for _, spec := range specs {
		assert.Equal(t, spec.expected, DecodeCause(spec.scause))
	}
}

func TestSatpModeNames(t *testing.T) {
	modes := Descriptors.Register("satp").Field("MODE")
	require.NotNil(t, modes)

	assert.Equal(t, "Sv39", modes.Enum[SatpModeSv39])
	assert.Equal(t, "Bare", modes.Enum[SatpModeBare])
}
