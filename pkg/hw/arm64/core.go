package arm64

import (
	"fmt"
	"sync"

	"github.com/osdev-kit/karch/pkg/utils"
)

// Core models the system register file of a single core in plain memory,
// backing the catalog on non-arm64 builds and giving tests deterministic
// storage plus a trace of the instructions the catalog would have emitted.
//
// Secure monitor calls are routed to a test supplied monitor function so
// PSCI conversations can be scripted.
type Core struct {
	mu      sync.Mutex
	sysregs map[SysReg]uint64
	x0      uint64
	x29     uint64
	trace   []string

	// Monitor handles smc #0. Nil returns PSCI NOT_SUPPORTED.
	Monitor func(a0, a1, a2, a3, a4, a5, a6, a7 uint64) (uint64, uint64, uint64, uint64)
}

func NewCore() *Core {
	return &Core{
		sysregs: make(map[SysReg]uint64),
	}
}

// Preloads a system register without recording a trace entry
func (c *Core) SetSysReg(reg SysReg, value uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sysregs[reg] = value
}

// Returns the current value of a system register without tracing
func (c *Core) SysReg(reg SysReg) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sysregs[reg]
}

// Preloads the x0 register
func (c *Core) SetX0(value uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.x0 = value
}

// Preloads the frame pointer register
func (c *Core) SetX29(value uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.x29 = value
}

// Returns the instructions emitted against this core, in assembler syntax
func (c *Core) Trace() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.trace...)
}

func (c *Core) emit(format string, args ...any) {
	c.trace = append(c.trace, fmt.Sprintf(format, args...))
}

func (c *Core) read(reg SysReg) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emit("mrs x0, %s", reg)
	return c.sysregs[reg]
}

func (c *Core) write(reg SysReg, value uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emit("msr %s, %#x", reg, value)
	c.sysregs[reg] = value
}

// The immediate of msr DAIFSet/DAIFClr is 4 bits wide in the instruction
// encoding. A wider operand cannot be assembled, so the model rejects it the
// way the assembler would.
const daifImmBits = 4

func checkDAIFImm(imm uint8) {
	if !utils.FitsImm(imm, daifImmBits) {
		panic(fmt.Sprintf("DAIF immediate %#x does not fit %d bits", imm, daifImmBits))
	}
}

func (c *Core) daifSet(imm uint8) {
	checkDAIFImm(imm)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emit("msr DAIFSet, #%d", imm)
	c.sysregs[SysDAIF] |= uint64(imm) << daifFOffset
}

func (c *Core) daifClr(imm uint8) {
	checkDAIFImm(imm)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emit("msr DAIFClr, #%d", imm)
	c.sysregs[SysDAIF] &^= uint64(imm) << daifFOffset
}

func (c *Core) readX0() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.x0
}

func (c *Core) readX29() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.x29
}

func (c *Core) isb() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emit("isb")
}

func (c *Core) dsbSy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emit("dsb sy")
}

func (c *Core) yield() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emit("yield")
}

func (c *Core) tlbiVMALLE1IS() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emit("tlbi vmalle1is")
}

func (c *Core) tlbiVAAE1IS(page uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emit("tlbi vaae1is, %#x", page)
}

func (c *Core) smc(a0, a1, a2, a3, a4, a5, a6, a7 uint64) (uint64, uint64, uint64, uint64) {
	c.mu.Lock()
	monitor := c.Monitor
	c.emit("smc #0 <- x0=%#x x1=%#x x2=%#x x3=%#x", a0, a1, a2, a3)
	c.mu.Unlock()

	if monitor == nil {
		return notSupportedR0, 0, 0, 0
	}

	return monitor(a0, a1, a2, a3, a4, a5, a6, a7)
}

// Install binds the package's primitive operations to this core and returns
// a function restoring the previous bindings. Tests defer the restore.
func (c *Core) Install() (restore func()) {
	prevRead, prevWrite := sysRead, sysWrite
	prevSet, prevClr := daifSet, daifClr
	prevX0, prevX29 := readX0, readX29
	prevISB, prevDSB := isb, dsbSy
	prevYield := yield
	prevTLBIAll, prevTLBIVA := tlbiVMALLE1IS, tlbiVAAE1IS
	prevSMC := smcCall

	sysRead, sysWrite = c.read, c.write
	daifSet, daifClr = c.daifSet, c.daifClr
	readX0, readX29 = c.readX0, c.readX29
	isb, dsbSy = c.isb, c.dsbSy
	yield = c.yield
	tlbiVMALLE1IS, tlbiVAAE1IS = c.tlbiVMALLE1IS, c.tlbiVAAE1IS
	smcCall = c.smc

	return func() {
		sysRead, sysWrite = prevRead, prevWrite
		daifSet, daifClr = prevSet, prevClr
		readX0, readX29 = prevX0, prevX29
		isb, dsbSy = prevISB, prevDSB
		yield = prevYield
		tlbiVMALLE1IS, tlbiVAAE1IS = prevTLBIAll, prevTLBIVA
		smcCall = prevSMC
	}
}
