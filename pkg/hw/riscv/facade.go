package riscv

// sstatus.SIE as a csr immediate operand. The mask fits the 5 bit immediate
// range, so the interrupt toggles below use the csrrsi/csrrci forms.
const sieImm = 1 << 1

// Enables supervisor interrupts by setting sstatus.SIE.
func EnableInterrupt() {
	csrSetImm(CSRSstatus, sieImm)
}

// Disables supervisor interrupts by clearing sstatus.SIE.
func DisableInterrupt() {
	csrClearImm(CSRSstatus, sieImm)
}

// Tells whether supervisor interrupts are enabled.
func GetInterruptStatus() bool {
	return Sstatus.Sie.Get()
}

// Returns the hart id, held in tp by kernel convention.
func GetCurrentCoreID() uint64 {
	return Tp.Read()
}

// Enables the floating point unit by moving sstatus.FS out of the off
// state. The unit starts in the initial state; the first FP instruction
// marks it dirty.
func EnableFPU() {
	Sstatus.Fs.Write(FsInitial)
}

// Pause hints the core that it is in a spin wait loop (Zihintpause).
func Pause() {
	cpuPause()
}
