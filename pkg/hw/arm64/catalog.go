package arm64

import (
	"github.com/osdev-kit/karch/pkg/hw/regs"
)

// AArch64 has no atomic set/clear instruction for general system registers;
// masked updates are mrs+msr read-modify-write sequences. Registers that
// need a barrier after modification (SCTLR, TCR, TTBR) get it in the facade,
// not here.
func rmwSet(reg SysReg, mask uint64) {
	sysWrite(reg, sysRead(reg)|mask)
}

func rmwClear(reg SysReg, mask uint64) {
	sysWrite(reg, sysRead(reg)&^mask)
}

type cpacrOps struct{}

func (cpacrOps) Read() uint64          { return sysRead(SysCPACREL1) }
func (cpacrOps) Write(value uint64)    { sysWrite(SysCPACREL1, value) }
func (cpacrOps) SetBits(mask uint64)   { rmwSet(SysCPACREL1, mask) }
func (cpacrOps) ClearBits(mask uint64) { rmwClear(SysCPACREL1, mask) }

type currentELOps struct{}

func (currentELOps) Read() uint64 { return sysRead(SysCurrentEL) }

type spselOps struct{}

func (spselOps) Read() uint64          { return sysRead(SysSPSel) }
func (spselOps) Write(value uint64)    { sysWrite(SysSPSel, value) }
func (spselOps) SetBits(mask uint64)   { rmwSet(SysSPSel, mask) }
func (spselOps) ClearBits(mask uint64) { rmwClear(SysSPSel, mask) }

// daifOps masks and unmasks PSTATE interrupt bits through the immediate
// DAIFSet/DAIFClr forms. All DAIF bits sit inside the 4 bit immediate range,
// so masked updates never need a read-modify-write.
type daifOps struct{}

func (daifOps) Read() uint64          { return sysRead(SysDAIF) }
func (daifOps) Write(value uint64)    { sysWrite(SysDAIF, value) }
func (daifOps) SetBits(mask uint64)   { daifSet(uint8(mask >> daifFOffset)) }
func (daifOps) ClearBits(mask uint64) { daifClr(uint8(mask >> daifFOffset)) }

type vbarOps struct{}

func (vbarOps) Read() uint64          { return sysRead(SysVBAREL1) }
func (vbarOps) Write(value uint64)    { sysWrite(SysVBAREL1, value) }
func (vbarOps) SetBits(mask uint64)   { rmwSet(SysVBAREL1, mask) }
func (vbarOps) ClearBits(mask uint64) { rmwClear(SysVBAREL1, mask) }

type elrOps struct{}

func (elrOps) Read() uint64          { return sysRead(SysELREL1) }
func (elrOps) Write(value uint64)    { sysWrite(SysELREL1, value) }
func (elrOps) SetBits(mask uint64)   { rmwSet(SysELREL1, mask) }
func (elrOps) ClearBits(mask uint64) { rmwClear(SysELREL1, mask) }

type spsrOps struct{}

func (spsrOps) Read() uint64          { return sysRead(SysSPSREL1) }
func (spsrOps) Write(value uint64)    { sysWrite(SysSPSREL1, value) }
func (spsrOps) SetBits(mask uint64)   { rmwSet(SysSPSREL1, mask) }
func (spsrOps) ClearBits(mask uint64) { rmwClear(SysSPSREL1, mask) }

type spel0Ops struct{}

func (spel0Ops) Read() uint64          { return sysRead(SysSPEL0) }
func (spel0Ops) Write(value uint64)    { sysWrite(SysSPEL0, value) }
func (spel0Ops) SetBits(mask uint64)   { rmwSet(SysSPEL0, mask) }
func (spel0Ops) ClearBits(mask uint64) { rmwClear(SysSPEL0, mask) }

type spel1Ops struct{}

func (spel1Ops) Read() uint64          { return sysRead(SysSPEL1) }
func (spel1Ops) Write(value uint64)    { sysWrite(SysSPEL1, value) }
func (spel1Ops) SetBits(mask uint64)   { rmwSet(SysSPEL1, mask) }
func (spel1Ops) ClearBits(mask uint64) { rmwClear(SysSPEL1, mask) }

type mpidrOps struct{}

func (mpidrOps) Read() uint64 { return sysRead(SysMPIDREL1) }

type sctlrOps struct{}

func (sctlrOps) Read() uint64          { return sysRead(SysSCTLREL1) }
func (sctlrOps) Write(value uint64)    { sysWrite(SysSCTLREL1, value) }
func (sctlrOps) SetBits(mask uint64)   { rmwSet(SysSCTLREL1, mask) }
func (sctlrOps) ClearBits(mask uint64) { rmwClear(SysSCTLREL1, mask) }

type mairOps struct{}

func (mairOps) Read() uint64          { return sysRead(SysMAIREL1) }
func (mairOps) Write(value uint64)    { sysWrite(SysMAIREL1, value) }
func (mairOps) SetBits(mask uint64)   { rmwSet(SysMAIREL1, mask) }
func (mairOps) ClearBits(mask uint64) { rmwClear(SysMAIREL1, mask) }

type tcrOps struct{}

func (tcrOps) Read() uint64          { return sysRead(SysTCREL1) }
func (tcrOps) Write(value uint64)    { sysWrite(SysTCREL1, value) }
func (tcrOps) SetBits(mask uint64)   { rmwSet(SysTCREL1, mask) }
func (tcrOps) ClearBits(mask uint64) { rmwClear(SysTCREL1, mask) }

type esrOps struct{}

func (esrOps) Read() uint64          { return sysRead(SysESREL1) }
func (esrOps) Write(value uint64)    { sysWrite(SysESREL1, value) }
func (esrOps) SetBits(mask uint64)   { rmwSet(SysESREL1, mask) }
func (esrOps) ClearBits(mask uint64) { rmwClear(SysESREL1, mask) }

type farOps struct{}

func (farOps) Read() uint64          { return sysRead(SysFAREL1) }
func (farOps) Write(value uint64)    { sysWrite(SysFAREL1, value) }
func (farOps) SetBits(mask uint64)   { rmwSet(SysFAREL1, mask) }
func (farOps) ClearBits(mask uint64) { rmwClear(SysFAREL1, mask) }

type cntvCtlOps struct{}

func (cntvCtlOps) Read() uint64          { return sysRead(SysCNTVCTLEL0) }
func (cntvCtlOps) Write(value uint64)    { sysWrite(SysCNTVCTLEL0, value) }
func (cntvCtlOps) SetBits(mask uint64)   { rmwSet(SysCNTVCTLEL0, mask) }
func (cntvCtlOps) ClearBits(mask uint64) { rmwClear(SysCNTVCTLEL0, mask) }

type cntvTvalOps struct{}

func (cntvTvalOps) Read() uint64          { return sysRead(SysCNTVTVALEL0) }
func (cntvTvalOps) Write(value uint64)    { sysWrite(SysCNTVTVALEL0, value) }
func (cntvTvalOps) SetBits(mask uint64)   { rmwSet(SysCNTVTVALEL0, mask) }
func (cntvTvalOps) ClearBits(mask uint64) { rmwClear(SysCNTVTVALEL0, mask) }

type cntvctOps struct{}

func (cntvctOps) Read() uint64 { return sysRead(SysCNTVCTEL0) }

type cntfrqOps struct{}

func (cntfrqOps) Read() uint64 { return sysRead(SysCNTFRQEL0) }

type iccPmrOps struct{}

func (iccPmrOps) Read() uint64          { return sysRead(SysICCPMREL1) }
func (iccPmrOps) Write(value uint64)    { sysWrite(SysICCPMREL1, value) }
func (iccPmrOps) SetBits(mask uint64)   { rmwSet(SysICCPMREL1, mask) }
func (iccPmrOps) ClearBits(mask uint64) { rmwClear(SysICCPMREL1, mask) }

type iccIgrpen1Ops struct{}

func (iccIgrpen1Ops) Read() uint64          { return sysRead(SysICCIGRPEN1EL1) }
func (iccIgrpen1Ops) Write(value uint64)    { sysWrite(SysICCIGRPEN1EL1, value) }
func (iccIgrpen1Ops) SetBits(mask uint64)   { rmwSet(SysICCIGRPEN1EL1, mask) }
func (iccIgrpen1Ops) ClearBits(mask uint64) { rmwClear(SysICCIGRPEN1EL1, mask) }

type iccSreOps struct{}

func (iccSreOps) Read() uint64          { return sysRead(SysICCSREEL1) }
func (iccSreOps) Write(value uint64)    { sysWrite(SysICCSREEL1, value) }
func (iccSreOps) SetBits(mask uint64)   { rmwSet(SysICCSREEL1, mask) }
func (iccSreOps) ClearBits(mask uint64) { rmwClear(SysICCSREEL1, mask) }

type iccIar1Ops struct{}

func (iccIar1Ops) Read() uint64 { return sysRead(SysICCIAR1EL1) }

type iccEoir1Ops struct{}

func (iccEoir1Ops) Write(value uint64) { sysWrite(SysICCEOIR1EL1, value) }

type ttbr0Ops struct{}

func (ttbr0Ops) Read() uint64          { return sysRead(SysTTBR0EL1) }
func (ttbr0Ops) Write(value uint64)    { sysWrite(SysTTBR0EL1, value) }
func (ttbr0Ops) SetBits(mask uint64)   { rmwSet(SysTTBR0EL1, mask) }
func (ttbr0Ops) ClearBits(mask uint64) { rmwClear(SysTTBR0EL1, mask) }

type ttbr1Ops struct{}

func (ttbr1Ops) Read() uint64          { return sysRead(SysTTBR1EL1) }
func (ttbr1Ops) Write(value uint64)    { sysWrite(SysTTBR1EL1, value) }
func (ttbr1Ops) SetBits(mask uint64)   { rmwSet(SysTTBR1EL1, mask) }
func (ttbr1Ops) ClearBits(mask uint64) { rmwClear(SysTTBR1EL1, mask) }

type x0Ops struct{}

func (x0Ops) Read() uint64 { return readX0() }

type x29Ops struct{}

func (x29Ops) Read() uint64 { return readX29() }

// CPACR_EL1 controls EL0/EL1 access to the FP/SIMD unit.
type CPACRReg struct {
	cpacrOps
	// 0b00 traps all FP/SIMD, 0b01 traps EL0, 0b11 traps nothing
	Fpen regs.Bits[cpacrOps]
}

var CPACR_EL1 = CPACRReg{
	Fpen: regs.Bits[cpacrOps]{Field: regs.Field{Offset: 20, Width: 2}},
}

// CurrentEL reports the exception level the core runs at.
type CurrentELReg struct {
	currentELOps
	EL regs.BitsRO[currentELOps]
}

var CurrentEL = CurrentELReg{
	EL: regs.BitsRO[currentELOps]{Field: regs.Field{Offset: 2, Width: 2}},
}

// SPSel selects the stack pointer register at EL1.
type SPSelReg struct {
	spselOps
	SP regs.Flag[spselOps]
}

var SPSel = SPSelReg{
	SP: regs.Flag[spselOps]{Field: regs.Field{Offset: 0, Width: 1}},
}

// DAIF holds the PSTATE interrupt masks: Debug, SError, IRQ, FIQ. A set bit
// masks the interrupt class. Field sets and clears use the immediate
// DAIFSet/DAIFClr instruction forms.
type DAIFReg struct {
	daifOps
	D regs.Flag[daifOps]
	A regs.Flag[daifOps]
	I regs.Flag[daifOps]
	F regs.Flag[daifOps]
}

var DAIF = DAIFReg{
	D: regs.Flag[daifOps]{Field: regs.Field{Offset: daifDOffset, Width: 1}},
	A: regs.Flag[daifOps]{Field: regs.Field{Offset: daifAOffset, Width: 1}},
	I: regs.Flag[daifOps]{Field: regs.Field{Offset: daifIOffset, Width: 1}},
	F: regs.Flag[daifOps]{Field: regs.Field{Offset: daifFOffset, Width: 1}},
}

// VBAR_EL1 holds the exception vector table base, 2 KiB aligned.
type VBARReg struct {
	vbarOps
	Base regs.Bits[vbarOps]
}

var VBAR_EL1 = VBARReg{
	Base: regs.Bits[vbarOps]{Field: regs.Field{Offset: 11, Width: 53}},
}

// Plain 64 bit registers of the exception state.

type ELRReg struct{ elrOps }
type SPSRReg struct{ spsrOps }
type SPEL0Reg struct{ spel0Ops }
type SPEL1Reg struct{ spel1Ops }
type FARReg struct{ farOps }

var (
	ELR_EL1  = ELRReg{}
	SPSR_EL1 = SPSRReg{}
	SP_EL0   = SPEL0Reg{}
	SP_EL1   = SPEL1Reg{}
	FAR_EL1  = FARReg{}
)

// MPIDR_EL1 identifies the core within the affinity hierarchy.
type MPIDRReg struct {
	mpidrOps
	Aff0 regs.BitsRO[mpidrOps]
	Aff1 regs.BitsRO[mpidrOps]
	Aff2 regs.BitsRO[mpidrOps]
	Aff3 regs.BitsRO[mpidrOps]
	MT   regs.FlagRO[mpidrOps]
	U    regs.FlagRO[mpidrOps]
}

var MPIDR_EL1 = MPIDRReg{
	Aff0: regs.BitsRO[mpidrOps]{Field: regs.Field{Offset: 0, Width: 8}},
	Aff1: regs.BitsRO[mpidrOps]{Field: regs.Field{Offset: 8, Width: 8}},
	Aff2: regs.BitsRO[mpidrOps]{Field: regs.Field{Offset: 16, Width: 8}},
	Aff3: regs.BitsRO[mpidrOps]{Field: regs.Field{Offset: 32, Width: 8}},
	MT:   regs.FlagRO[mpidrOps]{Field: regs.Field{Offset: 24, Width: 1}},
	U:    regs.FlagRO[mpidrOps]{Field: regs.Field{Offset: 30, Width: 1}},
}

// SCTLR_EL1 is the EL1 system control register.
type SCTLRReg struct {
	sctlrOps
	M regs.Flag[sctlrOps]
	C regs.Flag[sctlrOps]
	I regs.Flag[sctlrOps]
}

var SCTLR_EL1 = SCTLRReg{
	M: regs.Flag[sctlrOps]{Field: regs.Field{Offset: 0, Width: 1}},
	C: regs.Flag[sctlrOps]{Field: regs.Field{Offset: 2, Width: 1}},
	I: regs.Flag[sctlrOps]{Field: regs.Field{Offset: 12, Width: 1}},
}

// MAIR_EL1 holds eight memory attribute encodings indexed by the AttrIndx
// field of page table entries.
type MAIRReg struct {
	mairOps
	Attr0 regs.Bits[mairOps]
	Attr1 regs.Bits[mairOps]
	Attr2 regs.Bits[mairOps]
	Attr3 regs.Bits[mairOps]
	Attr4 regs.Bits[mairOps]
	Attr5 regs.Bits[mairOps]
	Attr6 regs.Bits[mairOps]
	Attr7 regs.Bits[mairOps]
}

var MAIR_EL1 = MAIRReg{
	Attr0: regs.Bits[mairOps]{Field: regs.Field{Offset: 0, Width: 8}},
	Attr1: regs.Bits[mairOps]{Field: regs.Field{Offset: 8, Width: 8}},
	Attr2: regs.Bits[mairOps]{Field: regs.Field{Offset: 16, Width: 8}},
	Attr3: regs.Bits[mairOps]{Field: regs.Field{Offset: 24, Width: 8}},
	Attr4: regs.Bits[mairOps]{Field: regs.Field{Offset: 32, Width: 8}},
	Attr5: regs.Bits[mairOps]{Field: regs.Field{Offset: 40, Width: 8}},
	Attr6: regs.Bits[mairOps]{Field: regs.Field{Offset: 48, Width: 8}},
	Attr7: regs.Bits[mairOps]{Field: regs.Field{Offset: 56, Width: 8}},
}

// TCR_EL1 configures both translation table walks.
type TCRReg struct {
	tcrOps
	T0SZ regs.Bits[tcrOps]
	TG0  regs.Bits[tcrOps]
	T1SZ regs.Bits[tcrOps]
	TG1  regs.Bits[tcrOps]
	IPS  regs.Bits[tcrOps]
}

var TCR_EL1 = TCRReg{
	T0SZ: regs.Bits[tcrOps]{Field: regs.Field{Offset: 0, Width: 6}},
	TG0:  regs.Bits[tcrOps]{Field: regs.Field{Offset: 14, Width: 2}},
	T1SZ: regs.Bits[tcrOps]{Field: regs.Field{Offset: 16, Width: 6}},
	TG1:  regs.Bits[tcrOps]{Field: regs.Field{Offset: 30, Width: 2}},
	IPS:  regs.Bits[tcrOps]{Field: regs.Field{Offset: 32, Width: 3}},
}

// ESR_EL1 is the exception syndrome of the last trap to EL1.
type ESRReg struct {
	esrOps
	ISS  regs.Bits[esrOps]
	EC   regs.Bits[esrOps]
	ISS2 regs.Bits[esrOps]
}

var ESR_EL1 = ESRReg{
	ISS:  regs.Bits[esrOps]{Field: regs.Field{Offset: 0, Width: 25}},
	EC:   regs.Bits[esrOps]{Field: regs.Field{Offset: 26, Width: 6}},
	ISS2: regs.Bits[esrOps]{Field: regs.Field{Offset: 32, Width: 5}},
}

// Virtual timer registers.

type CNTVCTLReg struct {
	cntvCtlOps
	Enable  regs.Flag[cntvCtlOps]
	IMask   regs.Flag[cntvCtlOps]
	IStatus regs.Flag[cntvCtlOps]
}

var CNTV_CTL_EL0 = CNTVCTLReg{
	Enable:  regs.Flag[cntvCtlOps]{Field: regs.Field{Offset: 0, Width: 1}},
	IMask:   regs.Flag[cntvCtlOps]{Field: regs.Field{Offset: 1, Width: 1}},
	IStatus: regs.Flag[cntvCtlOps]{Field: regs.Field{Offset: 2, Width: 1}},
}

type CNTVTVALReg struct {
	cntvTvalOps
	TimerValue regs.Bits[cntvTvalOps]
}

var CNTV_TVAL_EL0 = CNTVTVALReg{
	TimerValue: regs.Bits[cntvTvalOps]{Field: regs.Field{Offset: 0, Width: 32}},
}

type CNTVCTReg struct{ cntvctOps }
type CNTFRQReg struct{ cntfrqOps }

var (
	CNTVCT_EL0 = CNTVCTReg{}
	CNTFRQ_EL0 = CNTFRQReg{}
)

// GICv3 CPU interface registers.

type ICCPMRReg struct {
	iccPmrOps
	Priority regs.Bits[iccPmrOps]
}

var ICC_PMR_EL1 = ICCPMRReg{
	Priority: regs.Bits[iccPmrOps]{Field: regs.Field{Offset: 0, Width: 8}},
}

type ICCIGRPEN1Reg struct {
	iccIgrpen1Ops
	Enable regs.Flag[iccIgrpen1Ops]
}

var ICC_IGRPEN1_EL1 = ICCIGRPEN1Reg{
	Enable: regs.Flag[iccIgrpen1Ops]{Field: regs.Field{Offset: 0, Width: 1}},
}

type ICCSREReg struct {
	iccSreOps
	SRE regs.Flag[iccSreOps]
	DFB regs.Flag[iccSreOps]
	DIB regs.Flag[iccSreOps]
}

var ICC_SRE_EL1 = ICCSREReg{
	SRE: regs.Flag[iccSreOps]{Field: regs.Field{Offset: 0, Width: 1}},
	DFB: regs.Flag[iccSreOps]{Field: regs.Field{Offset: 1, Width: 1}},
	DIB: regs.Flag[iccSreOps]{Field: regs.Field{Offset: 2, Width: 1}},
}

type ICCIAR1Reg struct {
	iccIar1Ops
	INTID regs.BitsRO[iccIar1Ops]
}

var ICC_IAR1_EL1 = ICCIAR1Reg{
	INTID: regs.BitsRO[iccIar1Ops]{Field: regs.Field{Offset: 0, Width: 24}},
}

type ICCEOIR1Reg struct {
	iccEoir1Ops
	INTID regs.BitsWO[iccEoir1Ops]
}

var ICC_EOIR1_EL1 = ICCEOIR1Reg{
	INTID: regs.BitsWO[iccEoir1Ops]{Field: regs.Field{Offset: 0, Width: 24}},
}

// Translation table base registers.

type TTBR0Reg struct {
	ttbr0Ops
	CnP   regs.Flag[ttbr0Ops]
	Baddr regs.Bits[ttbr0Ops]
	Asid  regs.Bits[ttbr0Ops]
}

var TTBR0_EL1 = TTBR0Reg{
	CnP:   regs.Flag[ttbr0Ops]{Field: regs.Field{Offset: 0, Width: 1}},
	Baddr: regs.Bits[ttbr0Ops]{Field: regs.Field{Offset: 1, Width: 47}},
	Asid:  regs.Bits[ttbr0Ops]{Field: regs.Field{Offset: 48, Width: 16}},
}

type TTBR1Reg struct {
	ttbr1Ops
	CnP   regs.Flag[ttbr1Ops]
	Baddr regs.Bits[ttbr1Ops]
	Asid  regs.Bits[ttbr1Ops]
}

var TTBR1_EL1 = TTBR1Reg{
	CnP:   regs.Flag[ttbr1Ops]{Field: regs.Field{Offset: 0, Width: 1}},
	Baddr: regs.Bits[ttbr1Ops]{Field: regs.Field{Offset: 1, Width: 47}},
	Asid:  regs.Bits[ttbr1Ops]{Field: regs.Field{Offset: 48, Width: 16}},
}

// General purpose register views.

type X0Reg struct{ x0Ops }
type X29Reg struct{ x29Ops }

var (
	X0  = X0Reg{}
	X29 = X29Reg{}
)
