package riscv

// TrapContext is the register state an exception entry stub stores before
// entering Go code and reloads on exit. Field order and size are frozen:
// the assembly save/restore sequence addresses the struct by byte offset.
//
// The hardwired zero register is not stored. The fcsr value is 32 bits but
// occupies a full slot to keep every offset 8 byte aligned.
type TrapContext struct {
	Ra  uint64
	Sp  uint64
	Gp  uint64
	Tp  uint64
	T0  uint64
	T1  uint64
	T2  uint64
	S0  uint64
	S1  uint64
	A0  uint64
	A1  uint64
	A2  uint64
	A3  uint64
	A4  uint64
	A5  uint64
	A6  uint64
	A7  uint64
	S2  uint64
	S3  uint64
	S4  uint64
	S5  uint64
	S6  uint64
	S7  uint64
	S8  uint64
	S9  uint64
	S10 uint64
	S11 uint64
	T3  uint64
	T4  uint64
	T5  uint64
	T6  uint64

	F    [32]uint64
	Fcsr uint64

	Sstatus uint64
	Sepc    uint64
	Stval   uint64
	Scause  uint64
}

// Byte offsets consumed by the assembly entry and exit stubs.
const (
	TrapContextRaOffset      = 0
	TrapContextSpOffset      = 8
	TrapContextFRegsOffset   = 31 * 8
	TrapContextFcsrOffset    = 63 * 8
	TrapContextSstatusOffset = 64 * 8
	TrapContextSepcOffset    = 65 * 8
	TrapContextStvalOffset   = 66 * 8
	TrapContextScauseOffset  = 67 * 8
	TrapContextSize          = 68 * 8
)

// CalleeSavedContext is the state a cooperative context switch preserves:
// the callee saved registers of the RV64 ABI plus the return address and
// the stack pointer. It lives inside the thread control block of the owning
// thread.
type CalleeSavedContext struct {
	Ra  uint64
	Sp  uint64
	S0  uint64
	S1  uint64
	S2  uint64
	S3  uint64
	S4  uint64
	S5  uint64
	S6  uint64
	S7  uint64
	S8  uint64
	S9  uint64
	S10 uint64
	S11 uint64
}

const CalleeSavedContextSize = 14 * 8
