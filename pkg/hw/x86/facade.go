package x86

// cr0 bits the FPU bring-up touches.
const (
	cr0MP = 1 << 1
	cr0EM = 1 << 2
)

// Enables external interrupts by setting RFLAGS.IF.
func EnableInterrupt() {
	sti()
}

// Disables external interrupts by clearing RFLAGS.IF.
func DisableInterrupt() {
	cli()
}

// Tells whether external interrupts are enabled.
func GetInterruptStatus() bool {
	return Rflags.If.Get()
}

// Returns the core id: the x2APIC id from extended topology when available,
// the initial APIC id of cpuid leaf 1 otherwise.
func GetCurrentCoreID() uint64 {
	return uint64(APICID())
}

// EnableFPU makes x87/SSE instructions executable: coprocessor emulation
// off, wait instructions monitored.
func EnableFPU() {
	Cr0.ClearBits(cr0EM)
	Cr0.SetBits(cr0MP)
}

// Halt stops the core until the next interrupt.
func Halt() {
	hlt()
}

// Pause hints the core that it is in a spin wait loop.
func Pause() {
	cpuPause()
}
