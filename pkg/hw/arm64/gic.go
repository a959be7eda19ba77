package arm64

// GICv3 CPU interface helpers, built on the ICC_* system registers. The
// distributor and redistributor live in MMIO space and are out of scope here.

// INTIDs 1020..1023 are special; 1023 means no pending interrupt.
const (
	IntIDSpurious uint64 = 1023
)

// Lowest priority mask value, letting every priority through.
const PriorityMaskAll uint64 = 0xFF

// EnableSystemRegisterInterface switches the CPU interface from MMIO to the
// ICC_* system registers. Must run before any other ICC_* access.
func EnableSystemRegisterInterface() {
	ICC_SRE_EL1.SRE.Set()
	isb()
}

// EnableGroup1 enables signalling of group 1 interrupts to this core.
func EnableGroup1() {
	ICC_IGRPEN1_EL1.Enable.Set()
}

// DisableGroup1 stops signalling of group 1 interrupts to this core.
func DisableGroup1() {
	ICC_IGRPEN1_EL1.Enable.Clear()
}

// SetPriorityMask lets through only interrupts of higher priority than the
// mask, lower values meaning higher priority.
func SetPriorityMask(priority uint8) {
	ICC_PMR_EL1.Priority.Write(uint64(priority))
}

// AckInterrupt acknowledges the highest priority pending group 1 interrupt
// and returns its INTID. The ok result is false on a spurious read, when no
// interrupt was actually pending.
func AckInterrupt() (intid uint64, ok bool) {
	intid = ICC_IAR1_EL1.INTID.Get()
	return intid, intid != IntIDSpurious
}

// EndOfInterrupt signals completion of an interrupt previously returned by
// AckInterrupt.
func EndOfInterrupt(intid uint64) {
	ICC_EOIR1_EL1.INTID.Write(intid)
}
