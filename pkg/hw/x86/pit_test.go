package x86

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPITDivisor(t *testing.T) {
	assert.Equal(t, uint16(11931), PITDivisor(100))
	assert.Equal(t, uint16(1193), PITDivisor(1000))
	// 18.2 Hz is the slowest reachable rate: both a zero frequency and
	// anything below the floor saturate to the hardware maximum divisor
	assert.Equal(t, uint16(0), PITDivisor(18))
	assert.Equal(t, uint16(0), PITDivisor(0))
	// 19 Hz is just above the floor and still fits the 16 bit reload value
	assert.Equal(t, uint16(PITBaseFrequency/19), PITDivisor(19))
}

func TestSetupPITProgramsChannelZero(t *testing.T) {
	machine := withMachine(t)

	SetupPIT(100)

	// command word, then the divisor low byte before the high byte
	assert.Equal(t, []string{
		"outb 0x43, 0x36",
		"outb 0x40, 0x9b",
		"outb 0x40, 0x2e",
	}, machine.Trace())
}
