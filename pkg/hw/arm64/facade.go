package arm64

// DAIF masks as DAIFSet/DAIFClr immediate operands, bits <3:0> covering
// D, A, I, F.
const (
	daifImmFIQ = 1 << 0
	daifImmIRQ = 1 << 1
	daifImmAll = 0b1111
)

// Enables interrupts by clearing all four DAIF masks.
func EnableInterrupt() {
	daifClr(daifImmAll)
}

// Disables interrupts by setting all four DAIF masks.
func DisableInterrupt() {
	daifSet(daifImmAll)
}

// EnableIRQ clears only the IRQ mask, leaving FIQ and the abort masks
// untouched.
func EnableIRQ() {
	daifClr(daifImmIRQ)
}

// DisableIRQ sets only the IRQ mask.
func DisableIRQ() {
	daifSet(daifImmIRQ)
}

// EnableFIQ clears only the FIQ mask.
func EnableFIQ() {
	daifClr(daifImmFIQ)
}

// DisableFIQ sets only the FIQ mask.
func DisableFIQ() {
	daifSet(daifImmFIQ)
}

// Tells whether interrupts are enabled, meaning neither the IRQ nor the FIQ
// mask is set.
func GetInterruptStatus() bool {
	return !DAIF.I.Get() && !DAIF.F.Get()
}

// Returns the core id, affinity level 0 of MPIDR_EL1.
func GetCurrentCoreID() uint64 {
	return MPIDR_EL1.Aff0.Get()
}

// Grants EL0 and EL1 full access to the FP/SIMD unit. The context
// synchronization barrier makes the grant visible to following instructions.
func EnableFPU() {
	CPACR_EL1.Fpen.Write(0b11)
	isb()
}

// Pause hints the core that it is in a spin wait loop.
func Pause() {
	yield()
}
