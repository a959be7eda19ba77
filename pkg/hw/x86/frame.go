package x86

// TrapContext is the register state the interrupt entry stubs store before
// entering Go code and reload on iretq. Field order and size are frozen:
// the stubs push the general registers r15 first, then the vector and error
// code, above the hardware iretq frame. The fxsave area sits last, at a 16
// byte aligned offset.
type TrapContext struct {
	R15 uint64
	R14 uint64
	R13 uint64
	R12 uint64
	R11 uint64
	R10 uint64
	R9  uint64
	R8  uint64
	Rbp uint64
	Rdi uint64
	Rsi uint64
	Rdx uint64
	Rcx uint64
	Rbx uint64
	Rax uint64

	Vector uint64
	Info   uint64 // hardware error code, 0 for vectors without one

	// hardware pushed iretq frame
	Rip    uint64
	Cs     uint64
	Rflags uint64
	Rsp    uint64
	Ss     uint64

	FpState [512]byte
}

// Byte offsets consumed by the assembly entry and exit stubs.
const (
	TrapContextR15Offset     = 0
	TrapContextRaxOffset     = 14 * 8
	TrapContextVectorOffset  = 15 * 8
	TrapContextInfoOffset    = 16 * 8
	TrapContextRipOffset     = 17 * 8
	TrapContextCsOffset      = 18 * 8
	TrapContextRflagsOffset  = 19 * 8
	TrapContextRspOffset     = 20 * 8
	TrapContextSsOffset      = 21 * 8
	TrapContextFpStateOffset = 22 * 8
	TrapContextSize          = 22*8 + 512
)

// CalleeSavedContext is the state a cooperative context switch preserves:
// the callee saved registers of the System V ABI plus the stack pointer and
// the resume address. It lives inside the thread control block of the
// owning thread.
type CalleeSavedContext struct {
	Rbx uint64
	Rbp uint64
	R12 uint64
	R13 uint64
	R14 uint64
	R15 uint64
	Rsp uint64
	Rip uint64
}

const CalleeSavedContextSize = 8 * 8
