package x86

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withMachine installs a fresh machine model for the duration of the test
// so the catalog operations never touch real registers or ports, whatever
// the host GOARCH.
func withMachine(t *testing.T) *Machine {
	t.Helper()

	machine := NewMachine()
	t.Cleanup(machine.Install())

	return machine
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

func TestPageDirectoryBaseWritePreservesLowBits(t *testing.T) {
	machine := withMachine(t)
	machine.SetCR3(0x0000_0000_ABCD_F018)

	Cr3.PageDirectoryBase.Write(0x0001_2345)

	assert.Equal(t, uint64(0x0000_0000_1234_5018), machine.CR3())
	assert.True(t, Cr3.Pwt.Get())
	assert.True(t, Cr3.Pcd.Get())
}

func TestControlRegisterMaskedUpdates(t *testing.T) {
	machine := withMachine(t)
	machine.SetCR0(1 << 0)

	Cr0.Pg.Set()
	assert.Equal(t, uint64(1<<31|1), machine.CR0())

	Cr0.Pe.Clear()
	assert.Equal(t, uint64(1<<31), machine.CR0())

	trace := machine.Trace()
	require.Len(t, trace, 4)
	assert.Equal(t, "mov rax, cr0", trace[0])
	assert.Equal(t, "mov cr0, 0x80000001", trace[1])
}

func TestFaultAddressIsReadOnlyStorage(t *testing.T) {
	machine := withMachine(t)
	machine.SetCR2(0xdead_beef)

	assert.Equal(t, uint64(0xdead_beef), Cr2.Read())
}

func TestSegmentSelectorFields(t *testing.T) {
	machine := withMachine(t)
	// GDT index 2, RPL 3
	machine.SetSegment(SegCS, 2<<3|3)

	assert.Equal(t, uint64(3), Cs.Rpl.Get())
	assert.False(t, Cs.Ti.Get())
	assert.Equal(t, uint64(2), Cs.Index.Get())
}

func TestCodeSegmentReloadTakesFarReturn(t *testing.T) {
	machine := withMachine(t)

	Cs.Load(0x08)

	assert.Equal(t, uint16(0x08), machine.Segment(SegCS))
	assert.Equal(t, []string{"lretq cs=0x8"}, machine.Trace())
}

func TestDataSegmentWrite(t *testing.T) {
	machine := withMachine(t)

	Ds.Write(0x10)

	assert.Equal(t, uint16(0x10), machine.Segment(SegDS))
	assert.Equal(t, []string{"mov ds, 0x10"}, machine.Trace())
}

func TestMsrBank(t *testing.T) {
	machine := withMachine(t)

	Msr.Write(MsrEFER, 1<<8|1<<11)

	assert.Equal(t, uint64(1<<8|1<<11), machine.Msr(MsrEFER))
	assert.Equal(t, uint64(1<<8|1<<11), Msr.Read(MsrEFER))
}

func TestDescriptorTableRegisters(t *testing.T) {
	machine := withMachine(t)

	pointer := DescriptorTablePointer{Limit: 8*8 - 1, Base: 0x0000_0000_0010_2000}
	Gdtr.Write(pointer)

	assert.Equal(t, pointer.Encode(), machine.GdtImage())
	assert.Equal(t, pointer, Gdtr.Read())

	Idtr.Write(DescriptorTablePointer{Limit: 256*16 - 1, Base: 0x20_3000})
	assert.Equal(t, uint64(0x20_3000), Idtr.Read().Base)
}

func TestXcr0RoundTrip(t *testing.T) {
	machine := withMachine(t)

	Xcr0.Write(0b111)

	assert.Equal(t, uint64(0b111), Xcr0.Read())
	trace := machine.Trace()
	require.NotEmpty(t, trace)
	assert.Equal(t, "xsetbv 0x7", trace[0])
}
