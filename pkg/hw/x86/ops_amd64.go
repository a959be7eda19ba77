//go:build amd64

package x86

// Assembly stubs; see ops_amd64.s.

func cr0ReadNative() uint64
func cr0WriteNative(value uint64)
func cr2ReadNative() uint64
func cr3ReadNative() uint64
func cr3WriteNative(value uint64)
func cr4ReadNative() uint64
func cr4WriteNative(value uint64)
func cr8ReadNative() uint64
func cr8WriteNative(value uint64)

func xgetbv0() uint64
func xsetbv0(value uint64)

func pushfqPop() uint64
func pushPopfq(value uint64)

func rbpReadNative() uint64

func stiNative()
func cliNative()
func hltNative()
func pauseNative()

func csReadNative() uint16
func ssReadNative() uint16
func dsReadNative() uint16
func esReadNative() uint16
func fsReadNative() uint16
func gsReadNative() uint16

func ssWriteNative(sel uint16)
func dsWriteNative(sel uint16)
func esWriteNative(sel uint16)
func fsWriteNative(sel uint16)
func gsWriteNative(sel uint16)
func csWriteNative(sel uint16)

func rdmsrNative(addr uint32) uint64
func wrmsrNative(addr uint32, value uint64)

func sgdtNative(image *[10]byte)
func lgdtNative(image *[10]byte)
func sidtNative(image *[10]byte)
func lidtNative(image *[10]byte)

func ltrNative(sel uint16)
func strNative() uint16
func lldtNative(sel uint16)
func sldtNative() uint16

func invlpgNative(va uintptr)

func cpuidNative(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

func outbNative(port uint16, value uint8)
func outwNative(port uint16, value uint16)
func outlNative(port uint16, value uint32)
func inbNative(port uint16) uint8
func inwNative(port uint16) uint16
func inlNative(port uint16) uint32

func init() {
	cr0Read, cr0Write = cr0ReadNative, cr0WriteNative
	cr2Read = cr2ReadNative
	cr3Read, cr3Write = cr3ReadNative, cr3WriteNative
	cr4Read, cr4Write = cr4ReadNative, cr4WriteNative
	cr8Read, cr8Write = cr8ReadNative, cr8WriteNative
	xcr0Read, xcr0Write = xgetbv0, xsetbv0
	rflagsRead, rflagsWrite = pushfqPop, pushPopfq
	rbpRead = rbpReadNative
	sti, cli, hlt, cpuPause = stiNative, cliNative, hltNative, pauseNative
	segRead = segReadNative
	segWrite = segWriteNative
	writeCS = csWriteNative
	rdmsr, wrmsr = rdmsrNative, wrmsrNative
	sgdt, lgdt, sidt, lidt = sgdtNative, lgdtNative, sidtNative, lidtNative
	ltr, str, lldt, sldt = ltrNative, strNative, lldtNative, sldtNative
	invlpg = invlpgNative
	cpuid = cpuidNative
	outb, outw, outl = outbNative, outwNative, outlNative
	inb, inw, inl = inbNative, inwNative, inlNative
}

func segReadNative(seg Segment) uint16 {
	switch seg {
	case SegCS:
		return csReadNative()
	case SegSS:
		return ssReadNative()
	case SegDS:
		return dsReadNative()
	case SegES:
		return esReadNative()
	case SegFS:
		return fsReadNative()
	case SegGS:
		return gsReadNative()
	}
	return 0
}

func segWriteNative(seg Segment, sel uint16) {
	switch seg {
	case SegSS:
		ssWriteNative(sel)
	case SegDS:
		dsWriteNative(sel)
	case SegES:
		esWriteNative(sel)
	case SegFS:
		fsWriteNative(sel)
	case SegGS:
		gsWriteNative(sel)
	case SegCS:
		csWriteNative(sel)
	}
}
