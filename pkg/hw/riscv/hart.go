package riscv

import (
	"fmt"
	"sync"

	"github.com/osdev-kit/karch/pkg/utils"
)

// Hart models the CSR file of a single hart in plain memory. It backs the
// catalog on builds that cannot issue riscv64 privileged instructions and it
// gives tests deterministic register storage plus a trace of the
// instructions the catalog would have emitted.
type Hart struct {
	mu    sync.Mutex
	csrs  map[uint16]uint64
	tp    uint64
	fp    uint64
	trace []string
}

func NewHart() *Hart {
	return &Hart{
		csrs: make(map[uint16]uint64),
	}
}

// Preloads a CSR value without recording a trace entry
func (h *Hart) SetCSR(csr uint16, value uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.csrs[csr] = value
}

// Returns the current CSR value without recording a trace entry
func (h *Hart) CSR(csr uint16) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.csrs[csr]
}

// Preloads the tp register, which holds the hart id by kernel convention
func (h *Hart) SetTp(value uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tp = value
}

// Preloads the frame pointer register
func (h *Hart) SetFp(value uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fp = value
}

// Returns the instructions emitted against this hart, in assembler syntax
func (h *Hart) Trace() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string{}, h.trace...)
}

func (h *Hart) emit(format string, args ...any) {
	h.trace = append(h.trace, fmt.Sprintf(format, args...))
}

func (h *Hart) read(csr uint16) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("csrr %s", CSRName(csr))
	return h.csrs[csr]
}

func (h *Hart) write(csr uint16, value uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("csrw %s, %#x", CSRName(csr), value)
	h.csrs[csr] = value
}

func (h *Hart) set(csr uint16, mask uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("csrrs zero, %s, %#x", CSRName(csr), mask)
	h.csrs[csr] |= mask
}

func (h *Hart) clear(csr uint16, mask uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("csrrc zero, %s, %#x", CSRName(csr), mask)
	h.csrs[csr] &^= mask
}

func (h *Hart) swap(csr uint16, value uint64) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("csrrw %s, %#x", CSRName(csr), value)
	previous := h.csrs[csr]
	h.csrs[csr] = value
	return previous
}

// An operand wider than the instruction encoding cannot be assembled, so the
// model rejects it the way the assembler would.
func checkCSRImm(imm uint8) {
	if !utils.FitsImm(imm, CSRImmBits) {
		panic(fmt.Sprintf("csr immediate %#x does not fit %d bits", imm, CSRImmBits))
	}
}

func (h *Hart) writeImm(csr uint16, imm uint8) {
	checkCSRImm(imm)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("csrwi %s, %d", CSRName(csr), imm)
	h.csrs[csr] = uint64(imm)
}

func (h *Hart) setImm(csr uint16, imm uint8) {
	checkCSRImm(imm)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("csrrsi zero, %s, %d", CSRName(csr), imm)
	h.csrs[csr] |= uint64(imm)
}

func (h *Hart) clearImm(csr uint16, imm uint8) {
	checkCSRImm(imm)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("csrrci zero, %s, %d", CSRName(csr), imm)
	h.csrs[csr] &^= uint64(imm)
}

func (h *Hart) readTp() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("mv a0, tp")
	return h.tp
}

func (h *Hart) readFp() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("mv a0, s0")
	return h.fp
}

func (h *Hart) fenceVMA() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("sfence.vma")
}

func (h *Hart) fenceVMAAddr(va uintptr) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("sfence.vma %#x", uint64(va))
}

func (h *Hart) pause() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit("pause")
}

// Install binds the package's primitive operations to this hart and returns
// a function restoring the previous bindings. Tests defer the restore.
func (h *Hart) Install() (restore func()) {
	prevRead, prevWrite, prevSet, prevClear, prevSwap := csrRead, csrWrite, csrSet, csrClear, csrSwap
	prevWriteImm, prevSetImm, prevClearImm := csrWriteImm, csrSetImm, csrClearImm
	prevTp, prevFp := readTp, readFp
	prevFence, prevFenceAddr, prevPause := fenceVMA, fenceVMAAddr, cpuPause

	csrRead, csrWrite, csrSet, csrClear, csrSwap = h.read, h.write, h.set, h.clear, h.swap
	csrWriteImm, csrSetImm, csrClearImm = h.writeImm, h.setImm, h.clearImm
	readTp, readFp = h.readTp, h.readFp
	fenceVMA, fenceVMAAddr, cpuPause = h.fenceVMA, h.fenceVMAAddr, h.pause

	return func() {
		csrRead, csrWrite, csrSet, csrClear, csrSwap = prevRead, prevWrite, prevSet, prevClear, prevSwap
		csrWriteImm, csrSetImm, csrClearImm = prevWriteImm, prevSetImm, prevClearImm
		readTp, readFp = prevTp, prevFp
		fenceVMA, fenceVMAAddr, cpuPause = prevFence, prevFenceAddr, prevPause
	}
}
