// Package x86 exposes the x86_64 long mode register catalog: typed accessors
// for the control, flags, segment and model specific registers, the
// interrupt and virtual memory facade built on them, the CPUID surface, the
// legacy PIC/PIT/UART device helpers, and the trap and context switch frame
// layouts.
//
// Privileged instructions reach hardware through per-register assembly stubs
// on amd64 builds. Other GOARCHes run against a hosted machine model,
// keeping the catalog exercisable on a development machine.
package x86

// Segment identifies one segment selector register.
type Segment uint8

const (
	SegCS Segment = iota
	SegSS
	SegDS
	SegES
	SegFS
	SegGS
)

var segmentNames = map[Segment]string{
	SegCS: "cs",
	SegSS: "ss",
	SegDS: "ds",
	SegES: "es",
	SegFS: "fs",
	SegGS: "gs",
}

func (s Segment) String() string {
	if name, known := segmentNames[s]; known {
		return name
	}

	return "seg?"
}

// Well known MSR addresses.
const (
	MsrAPICBase     uint32 = 0x0000_001B
	MsrEFER         uint32 = 0xC000_0080
	MsrSTAR         uint32 = 0xC000_0081
	MsrLSTAR        uint32 = 0xC000_0082
	MsrSFMASK       uint32 = 0xC000_0084
	MsrFSBase       uint32 = 0xC000_0100
	MsrGSBase       uint32 = 0xC000_0101
	MsrKernelGSBase uint32 = 0xC000_0102
)

// RFLAGS.IF position; toggles go through sti/cli rather than popfq.
const rflagsIFOffset = 9
