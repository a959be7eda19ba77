package x86

// Primitive operation bindings. On amd64 builds each variable is bound to an
// assembly stub issuing the one privileged instruction; everywhere else they
// are bound to the hosted machine model.
var (
	cr0Read  func() uint64
	cr0Write func(value uint64)
	cr2Read  func() uint64
	cr3Read  func() uint64
	cr3Write func(value uint64)
	cr4Read  func() uint64
	cr4Write func(value uint64)
	cr8Read  func() uint64
	cr8Write func(value uint64)

	// xgetbv/xsetbv with ecx = 0
	xcr0Read  func() uint64
	xcr0Write func(value uint64)

	// pushfq/popfq; the IF bit never travels this path, see rflagsOps
	rflagsRead  func() uint64
	rflagsWrite func(value uint64)

	rbpRead func() uint64

	sti      func()
	cli      func()
	hlt      func()
	cpuPause func()

	segRead func(seg Segment) uint16
	// cs is excluded: reloading it takes the far return sequence below
	segWrite func(seg Segment, sel uint16)
	writeCS  func(sel uint16)

	rdmsr func(addr uint32) uint64
	wrmsr func(addr uint32, value uint64)

	// 10 byte limit:16 base:64 images
	sgdt func(image *[10]byte)
	lgdt func(image *[10]byte)
	sidt func(image *[10]byte)
	lidt func(image *[10]byte)

	ltr  func(sel uint16)
	str  func() uint16
	lldt func(sel uint16)
	sldt func() uint16

	invlpg func(va uintptr)

	cpuid func(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

	outb func(port uint16, value uint8)
	outw func(port uint16, value uint16)
	outl func(port uint16, value uint32)
	inb  func(port uint16) uint8
	inw  func(port uint16) uint16
	inl  func(port uint16) uint32
)
