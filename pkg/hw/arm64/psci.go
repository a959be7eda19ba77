package arm64

import (
	"errors"

	"github.com/osdev-kit/karch/pkg/utils"
)

// PSCI 1.x function identifiers, SMC64 calling convention where the call
// carries addresses or 64 bit contexts.
const (
	PsciVersion         uint64 = 0x8400_0000
	PsciCpuSuspend      uint64 = 0xC400_0001
	PsciCpuOff          uint64 = 0x8400_0002
	PsciCpuOn           uint64 = 0xC400_0003
	PsciAffinityInfo    uint64 = 0xC400_0004
	PsciMigrate         uint64 = 0xC400_0005
	PsciMigrateInfoType uint64 = 0x8400_0006
	PsciSystemOff       uint64 = 0x8400_0008
	PsciSystemReset     uint64 = 0x8400_0009
	PsciFeatures        uint64 = 0x8400_000A
)

// ReturnCode is the firmware status in x0 after a PSCI call, a signed value
// in the 64 bit register.
type ReturnCode int64

const (
	PsciSuccess         ReturnCode = 0
	PsciNotSupported    ReturnCode = -1
	PsciInvalidParams   ReturnCode = -2
	PsciDenied          ReturnCode = -3
	PsciAlreadyOn       ReturnCode = -4
	PsciOnPending       ReturnCode = -5
	PsciInternalFailure ReturnCode = -6
	PsciNotPresent      ReturnCode = -7
	PsciDisabled        ReturnCode = -8
	PsciInvalidAddress  ReturnCode = -9
)

// NOT_SUPPORTED as it appears raw in x0.
const notSupportedR0 = ^uint64(0)

func (c ReturnCode) String() string {
	switch c {
	case PsciSuccess:
		return "SUCCESS"
	case PsciNotSupported:
		return "NOT_SUPPORTED"
	case PsciInvalidParams:
		return "INVALID_PARAMETERS"
	case PsciDenied:
		return "DENIED"
	case PsciAlreadyOn:
		return "ALREADY_ON"
	case PsciOnPending:
		return "ON_PENDING"
	case PsciInternalFailure:
		return "INTERNAL_FAILURE"
	case PsciNotPresent:
		return "NOT_PRESENT"
	case PsciDisabled:
		return "DISABLED"
	case PsciInvalidAddress:
		return "INVALID_ADDRESS"
	}
	return "UNKNOWN"
}

var ErrPsci = errors.New("psci call failed")

// Err maps a non success code to a wrapped error carrying the code name.
func (c ReturnCode) Err() error {
	if c == PsciSuccess {
		return nil
	}
	return utils.MakeError(ErrPsci, "%s (%d)", c.String(), int64(c))
}

// AffinityState is the x0 result of a successful AFFINITY_INFO call.
type AffinityState int64

const (
	AffinityOn        AffinityState = 0
	AffinityOff       AffinityState = 1
	AffinityOnPending AffinityState = 2
)

// PowerState is the packed state argument of CPU_SUSPEND, original format.
type PowerState uint32

// Builds a power state from its packed fields
func NewPowerState(powerLevel uint8, powerDown bool, stateID uint16) PowerState {
	state := PowerState(powerLevel&0b11) << 24
	if powerDown {
		state |= 1 << 16
	}
	return state | PowerState(stateID)
}

// Returns the affinity level the state applies to, 0 for core
func (s PowerState) PowerLevel() uint8 {
	return uint8((s >> 24) & 0b11)
}

// Tells whether the state is powerdown rather than standby
func (s PowerState) PowerDown() bool {
	return s&(1<<16) != 0
}

// Returns the platform defined state id
func (s PowerState) StateID() uint16 {
	return uint16(s)
}

// Platform state id nibbles as used by common firmware.
func (s PowerState) CoreState() uint8    { return uint8(s) & 0xF }
func (s PowerState) ClusterState() uint8 { return uint8(s>>4) & 0xF }
func (s PowerState) SystemState() uint8  { return uint8(s>>8) & 0xF }

// SMCResult holds the x0..x3 results of a secure monitor call.
type SMCResult struct {
	R0 uint64
	R1 uint64
	R2 uint64
	R3 uint64
}

// SecureMonitorCall issues smc #0 with the arguments bound to x0..x7 and
// returns the x0..x3 results.
func SecureMonitorCall(a0, a1, a2, a3, a4, a5, a6, a7 uint64) SMCResult {
	r0, r1, r2, r3 := smcCall(a0, a1, a2, a3, a4, a5, a6, a7)
	return SMCResult{R0: r0, R1: r1, R2: r2, R3: r3}
}

func call(fn uint64, args ...uint64) ReturnCode {
	var a [3]uint64
	copy(a[:], args)
	r0, _, _, _ := smcCall(fn, a[0], a[1], a[2], 0, 0, 0, 0)
	return ReturnCode(r0)
}

// Version returns the PSCI major and minor version implemented by the
// firmware.
func Version() (major, minor uint16) {
	r0, _, _, _ := smcCall(PsciVersion, 0, 0, 0, 0, 0, 0, 0)
	return uint16(r0 >> 16), uint16(r0)
}

// CpuOn powers up the core identified by the target MPIDR affinity fields,
// starting it at entryPoint with contextID in x0.
func CpuOn(targetCPU uint64, entryPoint uint64, contextID uint64) error {
	return call(PsciCpuOn, targetCPU, entryPoint, contextID).Err()
}

// CpuOff powers down the calling core. On success the call does not return;
// an error means the firmware refused.
func CpuOff() error {
	return call(PsciCpuOff).Err()
}

// CpuSuspend puts the calling core in the given low power state. On wakeup
// from a powerdown state execution resumes at entryPoint with contextID in
// x0; standby states return here.
func CpuSuspend(state PowerState, entryPoint uint64, contextID uint64) error {
	return call(PsciCpuSuspend, uint64(state), entryPoint, contextID).Err()
}

// AffinityInfo reports the power state of the core or cluster selected by
// the MPIDR affinity fields at the given level.
func AffinityInfo(targetAffinity uint64, lowestLevel uint32) (AffinityState, error) {
	r0, _, _, _ := smcCall(PsciAffinityInfo, targetAffinity, uint64(lowestLevel), 0, 0, 0, 0, 0)
	code := ReturnCode(r0)
	if code < 0 {
		return 0, code.Err()
	}
	return AffinityState(code), nil
}

// Migrate moves the trusted OS to the core identified by the target MPIDR
// affinity fields. Only meaningful when MIGRATE_INFO_TYPE reports a
// migratable trusted OS.
func Migrate(targetCPU uint64) error {
	return call(PsciMigrate, targetCPU).Err()
}

// SystemOff powers down the whole machine. Only firmware refusal returns.
func SystemOff() error {
	return call(PsciSystemOff).Err()
}

// SystemReset performs a cold reset of the whole machine. Only firmware
// refusal returns.
func SystemReset() error {
	return call(PsciSystemReset).Err()
}

// Features asks the firmware whether it implements a PSCI function, returning
// the feature flags on success.
func Features(fn uint64) (uint32, error) {
	r0, _, _, _ := smcCall(PsciFeatures, fn, 0, 0, 0, 0, 0, 0)
	code := ReturnCode(r0)
	if code < 0 {
		return 0, code.Err()
	}
	return uint32(code), nil
}
