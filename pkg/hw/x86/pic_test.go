package x86

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPICRemapSequence(t *testing.T) {
	machine := withMachine(t)

	pic := NewPIC(0x20, 0x28)
	require.NotNil(t, pic)

	assert.Equal(t, []string{
		"outb 0x20, 0x11",
		"outb 0xa0, 0x11",
		"outb 0x21, 0x20",
		"outb 0xa1, 0x28",
		"outb 0x21, 0x4",
		"outb 0xa1, 0x2",
		"outb 0x21, 0x1",
		"outb 0xa1, 0x1",
		"outb 0x21, 0xff",
		"outb 0xa1, 0xff",
	}, machine.Trace())

	// every line masked after init
	assert.Equal(t, uint32(0xFF), machine.LastOut(0x21))
	assert.Equal(t, uint32(0xFF), machine.LastOut(0xA1))
}

func TestPICEnableMasterLine(t *testing.T) {
	machine := withMachine(t)
	pic := NewPIC(0x20, 0x28)

	pic.Enable(1)

	assert.Equal(t, uint32(0xFD), machine.LastOut(0x21))
	assert.Equal(t, uint32(0xFF), machine.LastOut(0xA1))
}

func TestPICEnableSlaveLineUnmasksCascade(t *testing.T) {
	machine := withMachine(t)
	pic := NewPIC(0x20, 0x28)

	pic.Enable(12)

	assert.Equal(t, uint32(0xEF), machine.LastOut(0xA1))
	// cascade line IR2 opened on the master too
	assert.Equal(t, uint32(0xFB), machine.LastOut(0x21))
}

func TestPICDisableRestoresMask(t *testing.T) {
	machine := withMachine(t)
	pic := NewPIC(0x20, 0x28)

	pic.Enable(4)
	pic.Disable(4)

	assert.Equal(t, uint32(0xFF), machine.LastOut(0x21))
}

func TestPICClearRoutesEOI(t *testing.T) {
	machine := withMachine(t)
	pic := NewPIC(0x20, 0x28)
	initLen := len(machine.Trace())

	pic.Clear(0x21) // master range vector
	trace := machine.Trace()[initLen:]
	assert.Equal(t, []string{"outb 0x20, 0x20"}, trace)

	initLen = len(machine.Trace())
	pic.Clear(0x2C) // slave range vector
	trace = machine.Trace()[initLen:]
	assert.Equal(t, []string{"outb 0xa0, 0x20", "outb 0x20, 0x20"}, trace)
}

func TestPICCombinedStatusReads(t *testing.T) {
	machine := withMachine(t)
	pic := NewPIC(0x20, 0x28)

	machine.QueueIn(0xA0, 0x80)
	machine.QueueIn(0x20, 0x05)

	assert.Equal(t, uint16(0x8005), pic.GetIrr())
}
