// Package arm64 exposes the AArch64 EL1 register catalog: typed accessors
// for the system registers, the interrupt, power and virtual memory facade
// built on them, and the trap and context switch frame layouts.
//
// System register names are encoded in the mrs/msr instruction word, so each
// catalogued register is wired to its own instruction stubs on arm64 builds.
// Other GOARCHes run against a hosted core model, keeping the catalog
// exercisable on a development machine.
package arm64

// SysReg identifies one catalogued system register. The identity selects
// the mrs/msr stub to run; it never reaches hardware as data.
type SysReg uint8

const (
	SysCPACREL1 SysReg = iota
	SysCurrentEL
	SysSPSel
	SysDAIF
	SysVBAREL1
	SysELREL1
	SysSPSREL1
	SysSPEL0
	SysSPEL1
	SysMPIDREL1
	SysSCTLREL1
	SysMAIREL1
	SysTCREL1
	SysESREL1
	SysFAREL1
	SysCNTVCTLEL0
	SysCNTVTVALEL0
	SysCNTVCTEL0
	SysCNTFRQEL0
	SysICCPMREL1
	SysICCIGRPEN1EL1
	SysICCSREEL1
	SysICCIAR1EL1
	SysICCEOIR1EL1
	SysTTBR0EL1
	SysTTBR1EL1
)

var sysRegNames = map[SysReg]string{
	SysCPACREL1:      "CPACR_EL1",
	SysCurrentEL:     "CurrentEL",
	SysSPSel:         "SPSel",
	SysDAIF:          "DAIF",
	SysVBAREL1:       "VBAR_EL1",
	SysELREL1:        "ELR_EL1",
	SysSPSREL1:       "SPSR_EL1",
	SysSPEL0:         "SP_EL0",
	SysSPEL1:         "SP_EL1",
	SysMPIDREL1:      "MPIDR_EL1",
	SysSCTLREL1:      "SCTLR_EL1",
	SysMAIREL1:       "MAIR_EL1",
	SysTCREL1:        "TCR_EL1",
	SysESREL1:        "ESR_EL1",
	SysFAREL1:        "FAR_EL1",
	SysCNTVCTLEL0:    "CNTV_CTL_EL0",
	SysCNTVTVALEL0:   "CNTV_TVAL_EL0",
	SysCNTVCTEL0:     "CNTVCT_EL0",
	SysCNTFRQEL0:     "CNTFRQ_EL0",
	SysICCPMREL1:     "ICC_PMR_EL1",
	SysICCIGRPEN1EL1: "ICC_IGRPEN1_EL1",
	SysICCSREEL1:     "ICC_SRE_EL1",
	SysICCIAR1EL1:    "ICC_IAR1_EL1",
	SysICCEOIR1EL1:   "ICC_EOIR1_EL1",
	SysTTBR0EL1:      "TTBR0_EL1",
	SysTTBR1EL1:      "TTBR1_EL1",
}

func (r SysReg) String() string {
	if name, known := sysRegNames[r]; known {
		return name
	}

	return "sysreg?"
}

// The msr DAIFSet/DAIFClr forms encode a 4 bit operand in the instruction
// word, one bit per PSTATE interrupt mask.
const PStateImmBits = 4

// PSTATE interrupt mask bit offsets within DAIF.
const (
	daifFOffset = 6
	daifIOffset = 7
	daifAOffset = 8
	daifDOffset = 9
)
