package arm64

// Virtual timer helpers on the CNTV_* registers. The virtual counter is the
// right one under a hypervisor since it accounts for virtual time offsets.

// TimerFrequency returns the counter frequency in Hz, as programmed into
// CNTFRQ_EL0 by firmware.
func TimerFrequency() uint64 {
	return CNTFRQ_EL0.Read()
}

// CounterValue returns the current virtual counter value.
func CounterValue() uint64 {
	return CNTVCT_EL0.Read()
}

// SetTimer arms the virtual timer to fire after the given number of counter
// ticks, unmasking and enabling it.
func SetTimer(ticks uint32) {
	CNTV_TVAL_EL0.TimerValue.Write(uint64(ticks))
	CNTV_CTL_EL0.IMask.Clear()
	CNTV_CTL_EL0.Enable.Set()
}

// StopTimer disables the virtual timer.
func StopTimer() {
	CNTV_CTL_EL0.Enable.Clear()
}

// TimerFired tells whether the timer condition is met, interrupt masked or
// not.
func TimerFired() bool {
	return CNTV_CTL_EL0.IStatus.Get()
}
