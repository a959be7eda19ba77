package arm64

// Primitive operation bindings. On arm64 builds each variable is bound to an
// assembly stub issuing the one mrs/msr (or barrier, tlbi, smc) instruction;
// everywhere else they are bound to the hosted core model.
var (
	sysRead  func(reg SysReg) uint64
	sysWrite func(reg SysReg, value uint64)

	// PSTATE immediate forms. The operand is encoded in the instruction
	// word; only the constants used by the facade are wired natively.
	daifSet func(imm uint8)
	daifClr func(imm uint8)

	readX0  func() uint64
	readX29 func() uint64

	isb           func()
	dsbSy         func()
	yield         func()
	tlbiVMALLE1IS func()
	tlbiVAAE1IS   func(page uint64)

	// smc #0 with arguments bound to x0..x7, results read from x0..x3
	smcCall func(a0, a1, a2, a3, a4, a5, a6, a7 uint64) (uint64, uint64, uint64, uint64)
)
