package riscv

import (
	"github.com/osdev-kit/karch/pkg/hw/regs"
)

// Typed access points, one zero-sized ops type per catalogued CSR. The
// method set of each ops type is exactly the capability of the register:
// counters have no Write method, so writing them does not compile.

type sstatusOps struct{}

func (sstatusOps) Read() uint64          { return csrRead(CSRSstatus) }
func (sstatusOps) Write(value uint64)    { csrWrite(CSRSstatus, value) }
func (sstatusOps) SetBits(mask uint64)   { csrSet(CSRSstatus, mask) }
func (sstatusOps) ClearBits(mask uint64) { csrClear(CSRSstatus, mask) }

type sieOps struct{}

func (sieOps) Read() uint64          { return csrRead(CSRSie) }
func (sieOps) Write(value uint64)    { csrWrite(CSRSie, value) }
func (sieOps) SetBits(mask uint64)   { csrSet(CSRSie, mask) }
func (sieOps) ClearBits(mask uint64) { csrClear(CSRSie, mask) }

type sipOps struct{}

func (sipOps) Read() uint64          { return csrRead(CSRSip) }
func (sipOps) Write(value uint64)    { csrWrite(CSRSip, value) }
func (sipOps) SetBits(mask uint64)   { csrSet(CSRSip, mask) }
func (sipOps) ClearBits(mask uint64) { csrClear(CSRSip, mask) }

type stvecOps struct{}

func (stvecOps) Read() uint64          { return csrRead(CSRStvec) }
func (stvecOps) Write(value uint64)    { csrWrite(CSRStvec, value) }
func (stvecOps) SetBits(mask uint64)   { csrSet(CSRStvec, mask) }
func (stvecOps) ClearBits(mask uint64) { csrClear(CSRStvec, mask) }

type sscratchOps struct{}

func (sscratchOps) Read() uint64          { return csrRead(CSRSscratch) }
func (sscratchOps) Write(value uint64)    { csrWrite(CSRSscratch, value) }
func (sscratchOps) SetBits(mask uint64)   { csrSet(CSRSscratch, mask) }
func (sscratchOps) ClearBits(mask uint64) { csrClear(CSRSscratch, mask) }

type sepcOps struct{}

func (sepcOps) Read() uint64          { return csrRead(CSRSepc) }
func (sepcOps) Write(value uint64)    { csrWrite(CSRSepc, value) }
func (sepcOps) SetBits(mask uint64)   { csrSet(CSRSepc, mask) }
func (sepcOps) ClearBits(mask uint64) { csrClear(CSRSepc, mask) }

type scauseOps struct{}

func (scauseOps) Read() uint64          { return csrRead(CSRScause) }
func (scauseOps) Write(value uint64)    { csrWrite(CSRScause, value) }
func (scauseOps) SetBits(mask uint64)   { csrSet(CSRScause, mask) }
func (scauseOps) ClearBits(mask uint64) { csrClear(CSRScause, mask) }

type stvalOps struct{}

func (stvalOps) Read() uint64          { return csrRead(CSRStval) }
func (stvalOps) Write(value uint64)    { csrWrite(CSRStval, value) }
func (stvalOps) SetBits(mask uint64)   { csrSet(CSRStval, mask) }
func (stvalOps) ClearBits(mask uint64) { csrClear(CSRStval, mask) }

type satpOps struct{}

func (satpOps) Read() uint64          { return csrRead(CSRSatp) }
func (satpOps) Write(value uint64)    { csrWrite(CSRSatp, value) }
func (satpOps) SetBits(mask uint64)   { csrSet(CSRSatp, mask) }
func (satpOps) ClearBits(mask uint64) { csrClear(CSRSatp, mask) }

type timeOps struct{}

func (timeOps) Read() uint64 { return csrRead(CSRTime) }

type cycleOps struct{}

func (cycleOps) Read() uint64 { return csrRead(CSRCycle) }

type instretOps struct{}

func (instretOps) Read() uint64 { return csrRead(CSRInstret) }

type stimecmpOps struct{}

func (stimecmpOps) Read() uint64 { return csrRead(CSRStimecmp) }

type tpOps struct{}

func (tpOps) Read() uint64 { return readTp() }

type fpOps struct{}

func (fpOps) Read() uint64 { return readFp() }

// Values of sstatus.FS.
const (
	FsOff     uint64 = 0
	FsInitial uint64 = 1
	FsClean   uint64 = 2
	FsDirty   uint64 = 3
)

// Sstatus is the supervisor status register.
type SstatusReg struct {
	sstatusOps
	// Supervisor interrupt enable
	Sie regs.Flag[sstatusOps]
	// Interrupt enable state prior to the trap
	Spie regs.Flag[sstatusOps]
	// Privilege level prior to the trap: 0 user, 1 supervisor
	Spp regs.Bits[sstatusOps]
	// Floating point unit state: 0 off, 1 initial, 2 clean, 3 dirty
	Fs regs.Bits[sstatusOps]
}

// Atomically installs a new value and returns the previous one (csrrw).
func (SstatusReg) Swap(value uint64) uint64 { return csrSwap(CSRSstatus, value) }

var Sstatus = SstatusReg{
	Sie:  regs.Flag[sstatusOps]{Field: regs.Field{Offset: 1, Width: 1}},
	Spie: regs.Flag[sstatusOps]{Field: regs.Field{Offset: 5, Width: 1}},
	Spp:  regs.Bits[sstatusOps]{Field: regs.Field{Offset: 8, Width: 1}},
	Fs:   regs.Bits[sstatusOps]{Field: regs.Field{Offset: 13, Width: 2}},
}

// Sie is the supervisor interrupt enable register.
type SieReg struct {
	sieOps
	Ssie regs.Flag[sieOps]
	Stie regs.Flag[sieOps]
	Seie regs.Flag[sieOps]
}

var Sie = SieReg{
	Ssie: regs.Flag[sieOps]{Field: regs.Field{Offset: 1, Width: 1}},
	Stie: regs.Flag[sieOps]{Field: regs.Field{Offset: 5, Width: 1}},
	Seie: regs.Flag[sieOps]{Field: regs.Field{Offset: 9, Width: 1}},
}

// Sip is the supervisor interrupt pending register.
type SipReg struct {
	sipOps
	Ssip regs.Flag[sipOps]
	Stip regs.Flag[sipOps]
	Seip regs.Flag[sipOps]
}

var Sip = SipReg{
	Ssip: regs.Flag[sipOps]{Field: regs.Field{Offset: 1, Width: 1}},
	Stip: regs.Flag[sipOps]{Field: regs.Field{Offset: 5, Width: 1}},
	Seip: regs.Flag[sipOps]{Field: regs.Field{Offset: 9, Width: 1}},
}

// Trap vector modes of stvec.
const (
	StvecModeDirect   uint64 = 0
	StvecModeVectored uint64 = 1
)

// Stvec is the supervisor trap vector base address register.
type StvecReg struct {
	stvecOps
	Base regs.Bits[stvecOps]
	Mode regs.Bits[stvecOps]
}

// Installs a direct mode trap vector. The base address must be 4 byte
// aligned; a misaligned address is rejected and the CSR is left untouched.
func (r StvecReg) SetDirect(addr uintptr) bool {
	if addr&0x3 != 0 {
		return false
	}

	// mode bits are the low 2 bits, direct mode is zero
	csrWrite(CSRStvec, uint64(addr))
	return true
}

var Stvec = StvecReg{
	Base: regs.Bits[stvecOps]{Field: regs.Field{Offset: 2, Width: 62}},
	Mode: regs.Bits[stvecOps]{Field: regs.Field{Offset: 0, Width: 2}},
}

// Sscratch is the supervisor scratch register, conventionally holding the
// per hart supervisor context pointer while in user mode.
type SscratchReg struct {
	sscratchOps
}

// Atomically exchanges the scratch register with a new value (csrrw), the
// first step of a trap entry sequence.
func (SscratchReg) Swap(value uint64) uint64 { return csrSwap(CSRSscratch, value) }

var Sscratch = SscratchReg{}

// Sepc is the supervisor exception program counter.
type SepcReg struct {
	sepcOps
}

var Sepc = SepcReg{}

// Stval holds the faulting address or instruction bits of the last trap.
type StvalReg struct {
	stvalOps
}

var Stval = StvalReg{}

// Scause identifies the cause of the last trap. The register is WARL; raw
// writes are exposed unfiltered and legalization is left to the hardware.
type ScauseReg struct {
	scauseOps
	Interrupt     regs.Flag[scauseOps]
	ExceptionCode regs.Bits[scauseOps]
}

var Scause = ScauseReg{
	Interrupt:     regs.Flag[scauseOps]{Field: regs.Field{Offset: 63, Width: 1}},
	ExceptionCode: regs.Bits[scauseOps]{Field: regs.Field{Offset: 0, Width: 63}},
}

// Interrupt codes of scause when the interrupt bit is set.
type InterruptCode uint64

const (
	InterruptSupervisorSoftware InterruptCode = 1
	InterruptSupervisorTimer    InterruptCode = 5
	InterruptSupervisorExternal InterruptCode = 9
)

var interruptCodeNames = map[InterruptCode]string{
	InterruptSupervisorSoftware: "supervisor software interrupt",
	InterruptSupervisorTimer:    "supervisor timer interrupt",
	InterruptSupervisorExternal: "supervisor external interrupt",
}

func (c InterruptCode) String() string {
	if name, known := interruptCodeNames[c]; known {
		return name
	}

	return "unknown interrupt"
}

// Exception codes of scause when the interrupt bit is clear.
type ExceptionCode uint64

const (
	ExceptionInstructionMisaligned ExceptionCode = 0
	ExceptionInstructionFault      ExceptionCode = 1
	ExceptionIllegalInstruction    ExceptionCode = 2
	ExceptionBreakpoint            ExceptionCode = 3
	ExceptionLoadMisaligned        ExceptionCode = 4
	ExceptionLoadFault             ExceptionCode = 5
	ExceptionStoreMisaligned       ExceptionCode = 6
	ExceptionStoreFault            ExceptionCode = 7
	ExceptionUserCall              ExceptionCode = 8
	ExceptionSupervisorCall        ExceptionCode = 9
	ExceptionInstructionPageFault  ExceptionCode = 12
	ExceptionLoadPageFault         ExceptionCode = 13
	ExceptionStorePageFault        ExceptionCode = 15
)

var exceptionCodeNames = map[ExceptionCode]string{
	ExceptionInstructionMisaligned: "instruction address misaligned",
	ExceptionInstructionFault:      "instruction access fault",
	ExceptionIllegalInstruction:    "illegal instruction",
	ExceptionBreakpoint:            "breakpoint",
	ExceptionLoadMisaligned:        "load address misaligned",
	ExceptionLoadFault:             "load access fault",
	ExceptionStoreMisaligned:       "store/AMO address misaligned",
	ExceptionStoreFault:            "store/AMO access fault",
	ExceptionUserCall:              "environment call from U-mode",
	ExceptionSupervisorCall:        "environment call from S-mode",
	ExceptionInstructionPageFault:  "instruction page fault",
	ExceptionLoadPageFault:         "load page fault",
	ExceptionStorePageFault:        "store/AMO page fault",
}

func (c ExceptionCode) String() string {
	if name, known := exceptionCodeNames[c]; known {
		return name
	}

	return "unknown exception"
}

// Describes a raw scause value, typically taken from a saved trap context.
func DecodeCause(scause uint64) string {
	if Scause.Interrupt.GetFrom(scause) {
		return InterruptCode(Scause.ExceptionCode.GetFrom(scause)).String()
	}

	return ExceptionCode(Scause.ExceptionCode.GetFrom(scause)).String()
}

// Address translation modes of satp.
const (
	SatpModeBare uint64 = 0
	SatpModeSv39 uint64 = 8
	SatpModeSv48 uint64 = 9
	SatpModeSv57 uint64 = 10
	SatpModeSv64 uint64 = 11
)

// Satp is the supervisor address translation and protection register.
type SatpReg struct {
	satpOps
	Ppn  regs.Bits[satpOps]
	Asid regs.Bits[satpOps]
	Mode regs.Bits[satpOps]
}

var Satp = SatpReg{
	Ppn:  regs.Bits[satpOps]{Field: regs.Field{Offset: 0, Width: 44}},
	Asid: regs.Bits[satpOps]{Field: regs.Field{Offset: 44, Width: 16}},
	Mode: regs.Bits[satpOps]{Field: regs.Field{Offset: 60, Width: 4}},
}

// Read-only counters and timer compare.

type TimeReg struct{ timeOps }
type CycleReg struct{ cycleOps }
type InstretReg struct{ instretOps }
type StimecmpReg struct{ stimecmpOps }

var (
	Time     = TimeReg{}
	Cycle    = CycleReg{}
	Instret  = InstretReg{}
	Stimecmp = StimecmpReg{}
)

// Tp reads the thread pointer register, which holds the hart id by kernel
// convention. Fp reads the frame pointer.

type TpReg struct{ tpOps }
type FpReg struct{ fpOps }

var (
	Tp = TpReg{}
	Fp = FpReg{}
)
