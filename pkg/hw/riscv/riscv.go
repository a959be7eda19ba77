// Package riscv exposes the RV64 supervisor mode register catalog: typed
// accessors for the supervisor CSRs, the interrupt and virtual memory
// facade built on them, and the trap and context switch frame layouts.
//
// Every catalog operation resolves to the single privileged instruction for
// the register on riscv64 builds. On any other GOARCH the operations run
// against a hosted hart model, which keeps the whole catalog exercisable on
// a development machine.
package riscv

// Supervisor CSR numbers. The CSR number is encoded as an instruction
// immediate, so each catalogued CSR is wired to its own instruction stubs.
const (
	CSRSstatus  uint16 = 0x100
	CSRSie      uint16 = 0x104
	CSRStvec    uint16 = 0x105
	CSRSscratch uint16 = 0x140
	CSRSepc     uint16 = 0x141
	CSRScause   uint16 = 0x142
	CSRStval    uint16 = 0x143
	CSRSip      uint16 = 0x144
	CSRStimecmp uint16 = 0x14d
	CSRSatp     uint16 = 0x180
	CSRCycle    uint16 = 0xc00
	CSRTime     uint16 = 0xc01
	CSRInstret  uint16 = 0xc02
)

var csrNames = map[uint16]string{
	CSRSstatus:  "sstatus",
	CSRSie:      "sie",
	CSRStvec:    "stvec",
	CSRSscratch: "sscratch",
	CSRSepc:     "sepc",
	CSRScause:   "scause",
	CSRStval:    "stval",
	CSRSip:      "sip",
	CSRStimecmp: "stimecmp",
	CSRSatp:     "satp",
	CSRCycle:    "cycle",
	CSRTime:     "time",
	CSRInstret:  "instret",
}

// Returns the assembler name of a catalogued CSR
func CSRName(csr uint16) string {
	if name, known := csrNames[csr]; known {
		return name
	}

	return "csr?"
}

// The csr immediate instruction forms (csrwi, csrrsi, csrrci) encode a 5 bit
// operand in the instruction word.
const CSRImmBits = 5
