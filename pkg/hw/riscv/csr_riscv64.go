//go:build riscv64

package riscv

import "fmt"

// Assembly stubs, one per (CSR, operation) pair. The CSR number is an
// instruction immediate, so every catalogued CSR carries its own stubs; see
// csr_riscv64.s.

func csrrSstatus() uint64
func csrrSie() uint64
func csrrStvec() uint64
func csrrSscratch() uint64
func csrrSepc() uint64
func csrrScause() uint64
func csrrStval() uint64
func csrrSip() uint64
func csrrSatp() uint64
func csrrStimecmp() uint64
func csrrTime() uint64
func csrrCycle() uint64
func csrrInstret() uint64

func csrwSstatus(value uint64)
func csrwSie(value uint64)
func csrwStvec(value uint64)
func csrwSscratch(value uint64)
func csrwSepc(value uint64)
func csrwScause(value uint64)
func csrwStval(value uint64)
func csrwSip(value uint64)
func csrwSatp(value uint64)

func csrsSstatus(mask uint64)
func csrsSie(mask uint64)
func csrsStvec(mask uint64)
func csrsSscratch(mask uint64)
func csrsSepc(mask uint64)
func csrsScause(mask uint64)
func csrsStval(mask uint64)
func csrsSip(mask uint64)
func csrsSatp(mask uint64)

func csrcSstatus(mask uint64)
func csrcSie(mask uint64)
func csrcStvec(mask uint64)
func csrcSscratch(mask uint64)
func csrcSepc(mask uint64)
func csrcScause(mask uint64)
func csrcStval(mask uint64)
func csrcSip(mask uint64)
func csrcSatp(mask uint64)

func csrrwSstatus(value uint64) uint64
func csrrwSscratch(value uint64) uint64

func csrsiSstatusSIE()
func csrciSstatusSIE()

func readTpReg() uint64
func readFpReg() uint64

func sfenceVMANative()
func sfenceVMAAddrNative(va uintptr)
func pauseNative()

func init() {
	csrRead = csrReadNative
	csrWrite = csrWriteNative
	csrSet = csrSetNative
	csrClear = csrClearNative
	csrSwap = csrSwapNative
	csrWriteImm = csrWriteImmNative
	csrSetImm = csrSetImmNative
	csrClearImm = csrClearImmNative
	readTp = readTpReg
	readFp = readFpReg
	fenceVMA = sfenceVMANative
	fenceVMAAddr = sfenceVMAAddrNative
	cpuPause = pauseNative
}

func unwired(op string, csr uint16) {
	panic(fmt.Sprintf("riscv: %s is not wired for csr %#x (%s)", op, csr, CSRName(csr)))
}

func csrReadNative(csr uint16) uint64 {
	switch csr {
	case CSRSstatus:
		return csrrSstatus()
	case CSRSie:
		return csrrSie()
	case CSRStvec:
		return csrrStvec()
	case CSRSscratch:
		return csrrSscratch()
	case CSRSepc:
		return csrrSepc()
	case CSRScause:
		return csrrScause()
	case CSRStval:
		return csrrStval()
	case CSRSip:
		return csrrSip()
	case CSRSatp:
		return csrrSatp()
	case CSRStimecmp:
		return csrrStimecmp()
	case CSRTime:
		return csrrTime()
	case CSRCycle:
		return csrrCycle()
	case CSRInstret:
		return csrrInstret()
	}
	unwired("read", csr)
	return 0
}

func csrWriteNative(csr uint16, value uint64) {
	switch csr {
	case CSRSstatus:
		csrwSstatus(value)
	case CSRSie:
		csrwSie(value)
	case CSRStvec:
		csrwStvec(value)
	case CSRSscratch:
		csrwSscratch(value)
	case CSRSepc:
		csrwSepc(value)
	case CSRScause:
		csrwScause(value)
	case CSRStval:
		csrwStval(value)
	case CSRSip:
		csrwSip(value)
	case CSRSatp:
		csrwSatp(value)
	default:
		unwired("write", csr)
	}
}

func csrSetNative(csr uint16, mask uint64) {
	switch csr {
	case CSRSstatus:
		csrsSstatus(mask)
	case CSRSie:
		csrsSie(mask)
	case CSRStvec:
		csrsStvec(mask)
	case CSRSscratch:
		csrsSscratch(mask)
	case CSRSepc:
		csrsSepc(mask)
	case CSRScause:
		csrsScause(mask)
	case CSRStval:
		csrsStval(mask)
	case CSRSip:
		csrsSip(mask)
	case CSRSatp:
		csrsSatp(mask)
	default:
		unwired("set", csr)
	}
}

func csrClearNative(csr uint16, mask uint64) {
	switch csr {
	case CSRSstatus:
		csrcSstatus(mask)
	case CSRSie:
		csrcSie(mask)
	case CSRStvec:
		csrcStvec(mask)
	case CSRSscratch:
		csrcSscratch(mask)
	case CSRSepc:
		csrcSepc(mask)
	case CSRScause:
		csrcScause(mask)
	case CSRStval:
		csrcStval(mask)
	case CSRSip:
		csrcSip(mask)
	case CSRSatp:
		csrcSatp(mask)
	default:
		unwired("clear", csr)
	}
}

func csrSwapNative(csr uint16, value uint64) uint64 {
	switch csr {
	case CSRSstatus:
		return csrrwSstatus(value)
	case CSRSscratch:
		return csrrwSscratch(value)
	}
	unwired("swap", csr)
	return 0
}

// The immediate forms encode the operand in the instruction word, so only
// the (csr, imm) pairs the facade uses as constants have dedicated stubs.
// Any other pair falls back to the general register form, matching the rule
// that runtime operands never select the immediate encoding.

func csrWriteImmNative(csr uint16, imm uint8) {
	csrWriteNative(csr, uint64(imm))
}

func csrSetImmNative(csr uint16, imm uint8) {
	if csr == CSRSstatus && imm == sieImm {
		csrsiSstatusSIE()
		return
	}
	csrSetNative(csr, uint64(imm))
}

func csrClearImmNative(csr uint16, imm uint8) {
	if csr == CSRSstatus && imm == sieImm {
		csrciSstatusSIE()
		return
	}
	csrClearNative(csr, uint64(imm))
}
