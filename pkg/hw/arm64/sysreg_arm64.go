//go:build arm64

package arm64

import "fmt"

// Assembly stubs, one per (system register, direction) pair. The register
// name is encoded in the mrs/msr instruction word, so every catalogued
// register carries its own stubs; see sysreg_arm64.s.

func mrsCPACR() uint64
func mrsCurrentEL() uint64
func mrsSPSel() uint64
func mrsDAIF() uint64
func mrsVBAR() uint64
func mrsELR() uint64
func mrsSPSR() uint64
func mrsSPEL0() uint64
func mrsSPEL1() uint64
func mrsMPIDR() uint64
func mrsSCTLR() uint64
func mrsMAIR() uint64
func mrsTCR() uint64
func mrsESR() uint64
func mrsFAR() uint64
func mrsCNTVCTL() uint64
func mrsCNTVTVAL() uint64
func mrsCNTVCT() uint64
func mrsCNTFRQ() uint64
func mrsICCPMR() uint64
func mrsICCIGRPEN1() uint64
func mrsICCSRE() uint64
func mrsICCIAR1() uint64
func mrsTTBR0() uint64
func mrsTTBR1() uint64

func msrCPACR(value uint64)
func msrSPSel(value uint64)
func msrDAIF(value uint64)
func msrVBAR(value uint64)
func msrELR(value uint64)
func msrSPSR(value uint64)
func msrSPEL0(value uint64)
func msrSPEL1(value uint64)
func msrSCTLR(value uint64)
func msrMAIR(value uint64)
func msrTCR(value uint64)
func msrESR(value uint64)
func msrFAR(value uint64)
func msrCNTVCTL(value uint64)
func msrCNTVTVAL(value uint64)
func msrICCPMR(value uint64)
func msrICCIGRPEN1(value uint64)
func msrICCSRE(value uint64)
func msrICCEOIR1(value uint64)
func msrTTBR0(value uint64)
func msrTTBR1(value uint64)

func daifSetImm1()
func daifSetImm2()
func daifSetImm4()
func daifSetImm8()
func daifSetImm15()
func daifClrImm1()
func daifClrImm2()
func daifClrImm4()
func daifClrImm8()
func daifClrImm15()

func readX0Reg() uint64
func readX29Reg() uint64

func isbNative()
func dsbSyNative()
func yieldNative()
func tlbiVMALLE1ISNative()
func tlbiVAAE1ISNative(page uint64)
func smcNative(a0, a1, a2, a3, a4, a5, a6, a7 uint64) (uint64, uint64, uint64, uint64)

func init() {
	sysRead = sysReadNative
	sysWrite = sysWriteNative
	daifSet = daifSetNative
	daifClr = daifClrNative
	readX0 = readX0Reg
	readX29 = readX29Reg
	isb = isbNative
	dsbSy = dsbSyNative
	yield = yieldNative
	tlbiVMALLE1IS = tlbiVMALLE1ISNative
	tlbiVAAE1IS = tlbiVAAE1ISNative
	smcCall = smcNative
}

func unwired(op string, reg SysReg) {
	panic(fmt.Sprintf("arm64: %s is not wired for %s", op, reg))
}

func sysReadNative(reg SysReg) uint64 {
	switch reg {
	case SysCPACREL1:
		return mrsCPACR()
	case SysCurrentEL:
		return mrsCurrentEL()
	case SysSPSel:
		return mrsSPSel()
	case SysDAIF:
		return mrsDAIF()
	case SysVBAREL1:
		return mrsVBAR()
	case SysELREL1:
		return mrsELR()
	case SysSPSREL1:
		return mrsSPSR()
	case SysSPEL0:
		return mrsSPEL0()
	case SysSPEL1:
		return mrsSPEL1()
	case SysMPIDREL1:
		return mrsMPIDR()
	case SysSCTLREL1:
		return mrsSCTLR()
	case SysMAIREL1:
		return mrsMAIR()
	case SysTCREL1:
		return mrsTCR()
	case SysESREL1:
		return mrsESR()
	case SysFAREL1:
		return mrsFAR()
	case SysCNTVCTLEL0:
		return mrsCNTVCTL()
	case SysCNTVTVALEL0:
		return mrsCNTVTVAL()
	case SysCNTVCTEL0:
		return mrsCNTVCT()
	case SysCNTFRQEL0:
		return mrsCNTFRQ()
	case SysICCPMREL1:
		return mrsICCPMR()
	case SysICCIGRPEN1EL1:
		return mrsICCIGRPEN1()
	case SysICCSREEL1:
		return mrsICCSRE()
	case SysICCIAR1EL1:
		return mrsICCIAR1()
	case SysTTBR0EL1:
		return mrsTTBR0()
	case SysTTBR1EL1:
		return mrsTTBR1()
	}
	unwired("read", reg)
	return 0
}

func sysWriteNative(reg SysReg, value uint64) {
	switch reg {
	case SysCPACREL1:
		msrCPACR(value)
	case SysSPSel:
		msrSPSel(value)
	case SysDAIF:
		msrDAIF(value)
	case SysVBAREL1:
		msrVBAR(value)
	case SysELREL1:
		msrELR(value)
	case SysSPSREL1:
		msrSPSR(value)
	case SysSPEL0:
		msrSPEL0(value)
	case SysSPEL1:
		msrSPEL1(value)
	case SysSCTLREL1:
		msrSCTLR(value)
	case SysMAIREL1:
		msrMAIR(value)
	case SysTCREL1:
		msrTCR(value)
	case SysESREL1:
		msrESR(value)
	case SysFAREL1:
		msrFAR(value)
	case SysCNTVCTLEL0:
		msrCNTVCTL(value)
	case SysCNTVTVALEL0:
		msrCNTVTVAL(value)
	case SysICCPMREL1:
		msrICCPMR(value)
	case SysICCIGRPEN1EL1:
		msrICCIGRPEN1(value)
	case SysICCSREEL1:
		msrICCSRE(value)
	case SysICCEOIR1EL1:
		msrICCEOIR1(value)
	case SysTTBR0EL1:
		msrTTBR0(value)
	case SysTTBR1EL1:
		msrTTBR1(value)
	default:
		unwired("write", reg)
	}
}

// The PSTATE operand is an instruction immediate, so only the masks the
// catalog and facade actually use are wired to immediate stubs. Other masks
// fall back to a DAIF read-modify-write.
func daifSetNative(imm uint8) {
	switch imm {
	case 1:
		daifSetImm1()
	case 2:
		daifSetImm2()
	case 4:
		daifSetImm4()
	case 8:
		daifSetImm8()
	case 15:
		daifSetImm15()
	default:
		msrDAIF(mrsDAIF() | uint64(imm)<<daifFOffset)
	}
}

func daifClrNative(imm uint8) {
	switch imm {
	case 1:
		daifClrImm1()
	case 2:
		daifClrImm2()
	case 4:
		daifClrImm4()
	case 8:
		daifClrImm8()
	case 15:
		daifClrImm15()
	default:
		msrDAIF(mrsDAIF() &^ (uint64(imm) << daifFOffset))
	}
}
