package arm64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCore installs a fresh core model for the duration of the test so the
// catalog operations never touch real system registers, whatever the host
// GOARCH.
func withCore(t *testing.T) *Core {
	t.Helper()

	core := NewCore()
	t.Cleanup(core.Install())

	return core
}

func TestDescriptorMaskDerivations(t *testing.T) {
	for _, register := range Descriptors.Registers {
		for _, field := range register.Fields {
			expectedAllSet := uint64(1)<<field.Width - 1
			if field.Width == 64 {
				expectedAllSet = ^uint64(0)
			}

			assert.Equal(t, expectedAllSet<<field.Offset, field.Mask(), "%s.%s mask", register.Name, field.Name)
			assert.LessOrEqual(t, uint(field.Offset)+uint(field.Width), uint(register.Width), "%s.%s bounds", register.Name, field.Name)
		}
	}
}

func TestCatalogValidates(t *testing.T) {
	assert.NoError(t, Descriptors.Validate())
}

func TestFieldWritePreservesSurroundingBits(t *testing.T) {
	core := withCore(t)
	core.SetSysReg(SysTCREL1, 0xffff_ffff_ffff_ffff)

	TCR_EL1.T0SZ.Write(16)

	expected := uint64(0xffff_ffff_ffff_ffff)&^uint64(0b111111) | 16
	assert.Equal(t, expected, core.SysReg(SysTCREL1))
	assert.Equal(t, uint64(16), TCR_EL1.T0SZ.Get())
}

func TestRegisterWriteReplacesAllBits(t *testing.T) {
	core := withCore(t)
	core.SetSysReg(SysELREL1, 0xdead_beef)

	ELR_EL1.Write(0x4008_0000)

	assert.Equal(t, uint64(0x4008_0000), core.SysReg(SysELREL1))
}

func TestVectorBaseField(t *testing.T) {
	core := withCore(t)

	VBAR_EL1.Base.Write(0x4010_0000 >> 11)

	assert.Equal(t, uint64(0x4010_0000), core.SysReg(SysVBAREL1))
	assert.Equal(t, uint64(0x4010_0000>>11), VBAR_EL1.Base.Get())
}

func TestMaskedUpdatesAreReadModifyWrite(t *testing.T) {
	core := withCore(t)
	core.SetSysReg(SysSCTLREL1, 1<<12)

	SCTLR_EL1.C.Set()

	trace := core.Trace()
	require.Len(t, trace, 2)
	assert.Equal(t, "mrs x0, SCTLR_EL1", trace[0])
	assert.Equal(t, "msr SCTLR_EL1, 0x1004", trace[1])
	assert.Equal(t, uint64(1<<12|1<<2), core.SysReg(SysSCTLREL1))

	SCTLR_EL1.C.Clear()
	assert.Equal(t, uint64(1<<12), core.SysReg(SysSCTLREL1))
}

func TestCoreIDFromAffinityFields(t *testing.T) {
	core := withCore(t)
	// MT bit set, cluster 0, core 3
	core.SetSysReg(SysMPIDREL1, 0x8000_0003)

	assert.Equal(t, uint64(3), GetCurrentCoreID())
	assert.Equal(t, uint64(3), MPIDR_EL1.Aff0.Get())
	assert.Equal(t, uint64(0), MPIDR_EL1.Aff1.Get())
	assert.False(t, MPIDR_EL1.U.Get())
}

func TestExceptionSyndromeFields(t *testing.T) {
	core := withCore(t)
	// EC 0x24 (data abort from lower EL), ISS 0x47
	core.SetSysReg(SysESREL1, uint64(0x24)<<26|0x47)

	assert.Equal(t, uint64(0x24), ESR_EL1.EC.Get())
	assert.Equal(t, uint64(0x47), ESR_EL1.ISS.Get())
}

func TestMemoryAttributeSlots(t *testing.T) {
	core := withCore(t)

	MAIR_EL1.Attr0.Write(0xFF)
	MAIR_EL1.Attr1.Write(0x04)

	assert.Equal(t, uint64(0x04FF), core.SysReg(SysMAIREL1))
	assert.Equal(t, uint64(0x04), MAIR_EL1.Attr1.Get())
}

func TestTranslationBaseFields(t *testing.T) {
	core := withCore(t)

	TTBR0_EL1.Write(0x8020_0000)
	TTBR0_EL1.Asid.Write(0x17)

	assert.Equal(t, uint64(0x17)<<48|0x8020_0000, core.SysReg(SysTTBR0EL1))
	assert.Equal(t, uint64(0x17), TTBR0_EL1.Asid.Get())
	assert.Equal(t, uint64(0x8020_0000>>1), TTBR0_EL1.Baddr.Get())
}

func TestEnumNamesInDescriptors(t *testing.T) {
	reg := Descriptors.Register("currentel")
	require.NotNil(t, reg)

	field := reg.Field("EL")
	require.NotNil(t, field)
	assert.Equal(t, "EL1", field.Enum[1])
}
