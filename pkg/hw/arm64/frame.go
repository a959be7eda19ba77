package arm64

// TrapContext is the register state an exception vector stub stores before
// entering Go code and reloads on eret. Field order and size are frozen:
// the assembly save/restore sequence addresses the struct by byte offset.
//
// Fpsr and Fpcr are 32 bit registers sharing one slot so every offset stays
// 8 byte aligned.
type TrapContext struct {
	X [31]uint64

	Sp   uint64
	Elr  uint64
	Spsr uint64
	Esr  uint64

	// Q registers as 128 bit pairs, low word first
	Q    [32][2]uint64
	Fpsr uint32
	Fpcr uint32
}

// Byte offsets consumed by the assembly vector stubs.
const (
	TrapContextXOffset    = 0
	TrapContextSpOffset   = 31 * 8
	TrapContextElrOffset  = 32 * 8
	TrapContextSpsrOffset = 33 * 8
	TrapContextEsrOffset  = 34 * 8
	TrapContextQOffset    = 35 * 8
	TrapContextFpsrOffset = 99 * 8
	TrapContextFpcrOffset = 99*8 + 4
	TrapContextSize       = 100 * 8
)

// CalleeSavedContext is the state a cooperative context switch preserves:
// the callee saved registers of the AAPCS64 ABI plus the frame pointer, the
// link register and the stack pointer. It lives inside the thread control
// block of the owning thread.
type CalleeSavedContext struct {
	X19 uint64
	X20 uint64
	X21 uint64
	X22 uint64
	X23 uint64
	X24 uint64
	X25 uint64
	X26 uint64
	X27 uint64
	X28 uint64
	X29 uint64
	X30 uint64
	Sp  uint64
}

const CalleeSavedContextSize = 13 * 8
