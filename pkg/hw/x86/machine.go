package x86

import (
	"fmt"
	"sync"
)

// Machine models the privileged register file and port bus of a single
// x86_64 core in plain memory, backing the catalog on non-amd64 builds and
// giving tests deterministic storage plus a trace of the instructions the
// catalog would have emitted.
//
// The port bus behaves like a latch: a read returns the last value written
// to the port unless the test queued explicit read values. CPUID leaves are
// scripted per (leaf, subleaf).
type Machine struct {
	mu sync.Mutex

	cr0    uint64
	cr2    uint64
	cr3    uint64
	cr4    uint64
	cr8    uint64
	xcr0   uint64
	rflags uint64
	rbp    uint64

	segments map[Segment]uint16
	msrs     map[uint32]uint64

	gdt [10]byte
	idt [10]byte

	tr   uint16
	ldtr uint16

	cpuidLeaves map[uint64][4]uint32

	outLatch map[uint16]uint32
	inQueues map[uint16][]uint32

	halted bool
	trace  []string
}

func NewMachine() *Machine {
	return &Machine{
		segments:    make(map[Segment]uint16),
		msrs:        make(map[uint32]uint64),
		cpuidLeaves: make(map[uint64][4]uint32),
		outLatch:    make(map[uint16]uint32),
		inQueues:    make(map[uint16][]uint32),
	}
}

// State preloads and inspection, none of it traced.

func (m *Machine) SetCR0(value uint64) { m.mu.Lock(); defer m.mu.Unlock(); m.cr0 = value }
func (m *Machine) SetCR2(value uint64) { m.mu.Lock(); defer m.mu.Unlock(); m.cr2 = value }
func (m *Machine) SetCR3(value uint64) { m.mu.Lock(); defer m.mu.Unlock(); m.cr3 = value }
func (m *Machine) SetCR4(value uint64) { m.mu.Lock(); defer m.mu.Unlock(); m.cr4 = value }
func (m *Machine) SetCR8(value uint64) { m.mu.Lock(); defer m.mu.Unlock(); m.cr8 = value }

func (m *Machine) CR0() uint64 { m.mu.Lock(); defer m.mu.Unlock(); return m.cr0 }
func (m *Machine) CR2() uint64 { m.mu.Lock(); defer m.mu.Unlock(); return m.cr2 }
func (m *Machine) CR3() uint64 { m.mu.Lock(); defer m.mu.Unlock(); return m.cr3 }
func (m *Machine) CR4() uint64 { m.mu.Lock(); defer m.mu.Unlock(); return m.cr4 }
func (m *Machine) CR8() uint64 { m.mu.Lock(); defer m.mu.Unlock(); return m.cr8 }

func (m *Machine) SetRflags(value uint64) { m.mu.Lock(); defer m.mu.Unlock(); m.rflags = value }
func (m *Machine) Rflags() uint64         { m.mu.Lock(); defer m.mu.Unlock(); return m.rflags }

func (m *Machine) SetRbp(value uint64) { m.mu.Lock(); defer m.mu.Unlock(); m.rbp = value }

func (m *Machine) SetSegment(seg Segment, sel uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.segments[seg] = sel
}

func (m *Machine) Segment(seg Segment) uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.segments[seg]
}

func (m *Machine) SetMsr(addr uint32, value uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msrs[addr] = value
}

func (m *Machine) Msr(addr uint32) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.msrs[addr]
}

func (m *Machine) TaskRegister() uint16 { m.mu.Lock(); defer m.mu.Unlock(); return m.tr }
func (m *Machine) LdtRegister() uint16  { m.mu.Lock(); defer m.mu.Unlock(); return m.ldtr }

func (m *Machine) GdtImage() [10]byte { m.mu.Lock(); defer m.mu.Unlock(); return m.gdt }
func (m *Machine) IdtImage() [10]byte { m.mu.Lock(); defer m.mu.Unlock(); return m.idt }

func (m *Machine) Halted() bool { m.mu.Lock(); defer m.mu.Unlock(); return m.halted }

// SetCpuid scripts the result of one CPUID leaf/subleaf pair.
func (m *Machine) SetCpuid(leaf, subleaf uint32, eax, ebx, ecx, edx uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cpuidLeaves[uint64(leaf)<<32|uint64(subleaf)] = [4]uint32{eax, ebx, ecx, edx}
}

// QueueIn queues values a port read will return, in order, before the bus
// falls back to the latch.
func (m *Machine) QueueIn(port uint16, values ...uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inQueues[port] = append(m.inQueues[port], values...)
}

// LastOut returns the latched last value written to a port.
func (m *Machine) LastOut(port uint16) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outLatch[port]
}

// Returns the instructions emitted against this machine, in assembler syntax
func (m *Machine) Trace() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.trace...)
}

func (m *Machine) emit(format string, args ...any) {
	m.trace = append(m.trace, fmt.Sprintf(format, args...))
}

func (m *Machine) readReg(name string, value *uint64) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("mov rax, %s", name)
	return *value
}

func (m *Machine) writeReg(name string, slot *uint64, value uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("mov %s, %#x", name, value)
	*slot = value
}

func (m *Machine) readCR0() uint64 { return m.readReg("cr0", &m.cr0) }
func (m *Machine) readCR2() uint64 { return m.readReg("cr2", &m.cr2) }
func (m *Machine) readCR3() uint64 { return m.readReg("cr3", &m.cr3) }
func (m *Machine) readCR4() uint64 { return m.readReg("cr4", &m.cr4) }
func (m *Machine) readCR8() uint64 { return m.readReg("cr8", &m.cr8) }

func (m *Machine) writeCR0(value uint64) { m.writeReg("cr0", &m.cr0, value) }
func (m *Machine) writeCR3(value uint64) { m.writeReg("cr3", &m.cr3, value) }
func (m *Machine) writeCR4(value uint64) { m.writeReg("cr4", &m.cr4, value) }
func (m *Machine) writeCR8(value uint64) { m.writeReg("cr8", &m.cr8, value) }

func (m *Machine) readXCR0() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("xgetbv")
	return m.xcr0
}

func (m *Machine) writeXCR0(value uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("xsetbv %#x", value)
	m.xcr0 = value
}

func (m *Machine) readRflags() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("pushfq")
	return m.rflags
}

func (m *Machine) writeRflags(value uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("popfq %#x", value)
	m.rflags = value
}

func (m *Machine) readRbp() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rbp
}

func (m *Machine) sti() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("sti")
	m.rflags |= 1 << rflagsIFOffset
}

func (m *Machine) cli() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("cli")
	m.rflags &^= 1 << rflagsIFOffset
}

func (m *Machine) hlt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("hlt")
	m.halted = true
}

func (m *Machine) pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("pause")
}

func (m *Machine) readSeg(seg Segment) uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("mov ax, %s", seg)
	return m.segments[seg]
}

func (m *Machine) writeSeg(seg Segment, sel uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("mov %s, %#x", seg, sel)
	m.segments[seg] = sel
}

func (m *Machine) writeCS(sel uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("lretq cs=%#x", sel)
	m.segments[SegCS] = sel
}

func (m *Machine) rdmsr(addr uint32) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("rdmsr %#x", addr)
	return m.msrs[addr]
}

func (m *Machine) wrmsr(addr uint32, value uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("wrmsr %#x, %#x", addr, value)
	m.msrs[addr] = value
}

func (m *Machine) sgdt(image *[10]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("sgdt")
	*image = m.gdt
}

func (m *Machine) lgdt(image *[10]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("lgdt")
	m.gdt = *image
}

func (m *Machine) sidt(image *[10]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("sidt")
	*image = m.idt
}

func (m *Machine) lidt(image *[10]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("lidt")
	m.idt = *image
}

func (m *Machine) ltr(sel uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("ltr %#x", sel)
	m.tr = sel
}

func (m *Machine) str() uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("str")
	return m.tr
}

func (m *Machine) lldt(sel uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("lldt %#x", sel)
	m.ldtr = sel
}

func (m *Machine) sldt() uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("sldt")
	return m.ldtr
}

func (m *Machine) invlpg(va uintptr) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("invlpg %#x", va)
}

func (m *Machine) cpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("cpuid leaf=%#x subleaf=%#x", leaf, subleaf)
	result := m.cpuidLeaves[uint64(leaf)<<32|uint64(subleaf)]
	return result[0], result[1], result[2], result[3]
}

func (m *Machine) out(port uint16, width string, value uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("out%s %#x, %#x", width, port, value)
	m.outLatch[port] = value
}

func (m *Machine) in(port uint16, width string) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emit("in%s %#x", width, port)
	if queued := m.inQueues[port]; len(queued) > 0 {
		value := queued[0]
		m.inQueues[port] = queued[1:]
		return value
	}
	return m.outLatch[port]
}

// Install binds the package's primitive operations to this machine and
// returns a function restoring the previous bindings. Tests defer the
// restore.
func (m *Machine) Install() (restore func()) {
	type bindings struct {
		cr0Read, cr2Read, cr3Read, cr4Read, cr8Read func() uint64
		cr0Write, cr3Write, cr4Write, cr8Write      func(uint64)
		xcr0Read, rflagsRead, rbpRead               func() uint64
		xcr0Write, rflagsWrite                      func(uint64)
		sti, cli, hlt, cpuPause                     func()
		segRead                                     func(Segment) uint16
		segWrite                                    func(Segment, uint16)
		writeCS, ltr, lldt                          func(uint16)
		str, sldt                                   func() uint16
		rdmsr                                       func(uint32) uint64
		wrmsr                                       func(uint32, uint64)
		sgdt, lgdt, sidt, lidt                      func(*[10]byte)
		invlpg                                      func(uintptr)
		cpuid                                       func(uint32, uint32) (uint32, uint32, uint32, uint32)
		outb                                        func(uint16, uint8)
		outw                                        func(uint16, uint16)
		outl                                        func(uint16, uint32)
		inb                                         func(uint16) uint8
		inw                                         func(uint16) uint16
		inl                                         func(uint16) uint32
	}

	prev := bindings{
		cr0Read, cr2Read, cr3Read, cr4Read, cr8Read,
		cr0Write, cr3Write, cr4Write, cr8Write,
		xcr0Read, rflagsRead, rbpRead,
		xcr0Write, rflagsWrite,
		sti, cli, hlt, cpuPause,
		segRead, segWrite,
		writeCS, ltr, lldt,
		str, sldt,
		rdmsr, wrmsr,
		sgdt, lgdt, sidt, lidt,
		invlpg, cpuid,
		outb, outw, outl, inb, inw, inl,
	}

	cr0Read, cr2Read, cr3Read, cr4Read, cr8Read = m.readCR0, m.readCR2, m.readCR3, m.readCR4, m.readCR8
	cr0Write, cr3Write, cr4Write, cr8Write = m.writeCR0, m.writeCR3, m.writeCR4, m.writeCR8
	xcr0Read, rflagsRead, rbpRead = m.readXCR0, m.readRflags, m.readRbp
	xcr0Write, rflagsWrite = m.writeXCR0, m.writeRflags
	sti, cli, hlt, cpuPause = m.sti, m.cli, m.hlt, m.pause
	segRead, segWrite, writeCS = m.readSeg, m.writeSeg, m.writeCS
	ltr, str, lldt, sldt = m.ltr, m.str, m.lldt, m.sldt
	rdmsr, wrmsr = m.rdmsr, m.wrmsr
	sgdt, lgdt, sidt, lidt = m.sgdt, m.lgdt, m.sidt, m.lidt
	invlpg = m.invlpg
	cpuid = m.cpuid
	outb = func(port uint16, value uint8) { m.out(port, "b", uint32(value)) }
	outw = func(port uint16, value uint16) { m.out(port, "w", uint32(value)) }
	outl = func(port uint16, value uint32) { m.out(port, "l", value) }
	inb = func(port uint16) uint8 { return uint8(m.in(port, "b")) }
	inw = func(port uint16) uint16 { return uint16(m.in(port, "w")) }
	inl = func(port uint16) uint32 { return m.in(port, "l") }

	return func() {
		cr0Read, cr2Read, cr3Read, cr4Read, cr8Read = prev.cr0Read, prev.cr2Read, prev.cr3Read, prev.cr4Read, prev.cr8Read
		cr0Write, cr3Write, cr4Write, cr8Write = prev.cr0Write, prev.cr3Write, prev.cr4Write, prev.cr8Write
		xcr0Read, rflagsRead, rbpRead = prev.xcr0Read, prev.rflagsRead, prev.rbpRead
		xcr0Write, rflagsWrite = prev.xcr0Write, prev.rflagsWrite
		sti, cli, hlt, cpuPause = prev.sti, prev.cli, prev.hlt, prev.cpuPause
		segRead, segWrite, writeCS = prev.segRead, prev.segWrite, prev.writeCS
		ltr, str, lldt, sldt = prev.ltr, prev.str, prev.lldt, prev.sldt
		rdmsr, wrmsr = prev.rdmsr, prev.wrmsr
		sgdt, lgdt, sidt, lidt = prev.sgdt, prev.lgdt, prev.sidt, prev.lidt
		invlpg = prev.invlpg
		cpuid = prev.cpuid
		outb, outw, outl = prev.outb, prev.outw, prev.outl
		inb, inw, inl = prev.inb, prev.inw, prev.inl
	}
}
