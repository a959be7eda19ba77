package x86

// 8253/8254 programmable interval timer at the standard ISA ports.
const (
	pitChannel0 uint16 = 0x40
	pitCommand  uint16 = 0x43

	// channel 0, lobyte/hibyte access, mode 3 square wave, binary counting
	pitCommandWord uint8 = 0x36

	// PITBaseFrequency is the input clock of the counter in Hz.
	PITBaseFrequency uint32 = 1_193_180
)

// PITDivisor returns the channel reload value producing the requested
// output frequency. A divisor of 0 means the hardware maximum, 65536;
// frequencies at or below the ~18.2 Hz floor saturate to it.
func PITDivisor(frequency uint32) uint16 {
	if frequency == 0 {
		return 0
	}

	divisor := PITBaseFrequency / frequency
	if divisor > 0xFFFF {
		return 0
	}
	return uint16(divisor)
}

// SetupPIT programs channel 0 as a square wave generator at the requested
// frequency, low divisor byte first.
func SetupPIT(frequency uint32) {
	divisor := PITDivisor(frequency)

	outb(pitCommand, pitCommandWord)
	outb(pitChannel0, uint8(divisor))
	outb(pitChannel0, uint8(divisor>>8))
}
