package riscv

// Primitive operation bindings. On riscv64 builds each variable is bound to
// an assembly stub that issues the one privileged instruction for the CSR;
// everywhere else the variables are bound to the hosted hart model. Tests
// install a private hart through Hart.Install.
var (
	csrRead  func(csr uint16) uint64
	csrWrite func(csr uint16, value uint64)
	csrSet   func(csr uint16, mask uint64)
	csrClear func(csr uint16, mask uint64)
	csrSwap  func(csr uint16, value uint64) uint64

	// Immediate instruction forms. The operand is encoded in the
	// instruction word, so these are only wired for the operand values the
	// facade uses as compile time constants; see csr_riscv64.go.
	csrWriteImm func(csr uint16, imm uint8)
	csrSetImm   func(csr uint16, imm uint8)
	csrClearImm func(csr uint16, imm uint8)

	readTp func() uint64
	readFp func() uint64

	fenceVMA     func()
	fenceVMAAddr func(va uintptr)
	cpuPause     func()
)
