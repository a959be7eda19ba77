package x86

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func scriptVendor(machine *Machine, vendor string) {
	ebx := binary.LittleEndian.Uint32([]byte(vendor[0:4]))
	edx := binary.LittleEndian.Uint32([]byte(vendor[4:8]))
	ecx := binary.LittleEndian.Uint32([]byte(vendor[8:12]))
	machine.SetCpuid(0, 0, 0x16, ebx, ecx, edx)
}

func TestVendorString(t *testing.T) {
	machine := withMachine(t)
	scriptVendor(machine, "GenuineIntel")

	assert.Equal(t, "GenuineIntel", VendorString())
	assert.Equal(t, uint32(0x16), MaxLeaf())
}

func TestBrandString(t *testing.T) {
	machine := withMachine(t)
	machine.SetCpuid(0x8000_0000, 0, 0x8000_0004, 0, 0, 0)

	brand := "QEMU Virtual CPU version 2.5+"
	var raw [48]byte
	copy(raw[:], brand)
	for i := uint32(0); i < 3; i++ {
		base := i * 16
		machine.SetCpuid(0x8000_0002+i, 0,
			binary.LittleEndian.Uint32(raw[base:]),
			binary.LittleEndian.Uint32(raw[base+4:]),
			binary.LittleEndian.Uint32(raw[base+8:]),
			binary.LittleEndian.Uint32(raw[base+12:]))
	}

	assert.Equal(t, brand, BrandString())
}

func TestBrandStringAbsentExtendedLeaves(t *testing.T) {
	machine := withMachine(t)
	machine.SetCpuid(0x8000_0000, 0, 0x8000_0000, 0, 0, 0)

	assert.Equal(t, "", BrandString())
}

func TestFeaturePredicates(t *testing.T) {
	machine := withMachine(t)
	machine.SetCpuid(1, 0, 0, 0, 1<<0|1<<28, 1<<25|1<<26)

	assert.True(t, FeatureSSE3.Supported())
	assert.True(t, FeatureAVX.Supported())
	assert.True(t, FeatureSSE.Supported())
	assert.True(t, FeatureSSE2.Supported())
	assert.False(t, FeatureVMX.Supported())
	assert.False(t, FeatureAPIC.Supported())
	assert.Equal(t, "avx", FeatureAVX.String())
}

func TestTopologyShiftsFromExtendedLeaf(t *testing.T) {
	machine := withMachine(t)
	machine.SetCpuid(0, 0, 0x0B, 0, 0, 0)
	machine.SetCpuid(0x0B, 0, 1, 2, 0x100, 0)
	machine.SetCpuid(0x0B, 1, 4, 8, 0x201, 0)

	assert.Equal(t, uint32(1), SMTShift())
	assert.Equal(t, uint32(4), CoreShift())
}

func TestCoreShiftFallsBackToLeafFour(t *testing.T) {
	machine := withMachine(t)
	machine.SetCpuid(0, 0, 4, 0, 0, 0)
	// 6 cores per package in eax[31:26]: value 5
	machine.SetCpuid(4, 0, 5<<26, 0, 0, 0)

	assert.Equal(t, uint32(0), SMTShift())
	assert.Equal(t, uint32(3), CoreShift())
}

func TestLogicalProcessorCount(t *testing.T) {
	machine := withMachine(t)
	machine.SetCpuid(1, 0, 0, 16<<16, 0, 0)

	assert.Equal(t, uint32(16), LogicalProcessorCount())
}
