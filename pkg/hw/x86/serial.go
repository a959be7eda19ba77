package x86

import (
	"errors"

	"github.com/osdev-kit/karch/pkg/utils"
)

// 16550 register offsets from the base port.
const (
	serialData uint16 = 0
	serialIER  uint16 = 1
	serialFCR  uint16 = 2
	serialLCR  uint16 = 3
	serialMCR  uint16 = 4
	serialLSR  uint16 = 5

	serialLSRDataReady    uint8 = 1 << 0
	serialLSRTransmitIdle uint8 = 1 << 5

	// COM1Port is the conventional first UART base.
	COM1Port uint16 = 0x3F8
)

var ErrSerialLoopback = errors.New("serial loopback self-test failed")

// Serial drives a 16550-style UART through port I/O with busy-wait reads
// and writes. It satisfies io.ReadWriter for use with text formatters.
type Serial struct {
	port uint16
}

// NewSerial initializes the UART at the given base port: 38400 baud, 8N1,
// FIFOs at a 14 byte threshold, interrupts and RTS/DSR on. The chip is
// checked with a loopback echo before entering normal operation; a wrong
// echo means no working UART at this port.
func NewSerial(port uint16) (*Serial, error) {
	outb(port+serialIER, 0x00)  // interrupts off during setup
	outb(port+serialLCR, 0x80)  // DLAB on
	outb(port+serialData, 0x03) // divisor 3 = 38400 baud, low byte
	outb(port+serialIER, 0x00)  // divisor high byte
	outb(port+serialLCR, 0x03)  // 8N1, DLAB off
	outb(port+serialFCR, 0xC7)  // FIFOs on, cleared, 14 byte threshold
	outb(port+serialMCR, 0x0B)  // IRQs on, RTS/DSR set

	outb(port+serialMCR, 0x1E) // loopback
	outb(port+serialData, 0xAE)
	if echo := inb(port + serialData); echo != 0xAE {
		return nil, utils.MakeError(ErrSerialLoopback, "port %#x echoed %#x", port, echo)
	}

	outb(port+serialMCR, 0x0F) // normal operation
	return &Serial{port: port}, nil
}

// WriteByte busy-waits for the transmitter and sends one byte.
func (s *Serial) WriteByte(value byte) {
	for inb(s.port+serialLSR)&serialLSRTransmitIdle == 0 {
		cpuPause()
	}

	outb(s.port+serialData, value)
}

// ReadByte busy-waits for received data and returns one byte.
func (s *Serial) ReadByte() byte {
	for inb(s.port+serialLSR)&serialLSRDataReady == 0 {
		cpuPause()
	}

	return inb(s.port + serialData)
}

// Write sends the whole buffer, never failing.
func (s *Serial) Write(buffer []byte) (int, error) {
	for _, value := range buffer {
		s.WriteByte(value)
	}

	return len(buffer), nil
}

// Read fills at least one byte, blocking until data arrives.
func (s *Serial) Read(buffer []byte) (int, error) {
	if len(buffer) == 0 {
		return 0, nil
	}

	buffer[0] = s.ReadByte()

	count := 1
	for count < len(buffer) && inb(s.port+serialLSR)&serialLSRDataReady != 0 {
		buffer[count] = s.ReadByte()
		count++
	}

	return count, nil
}
