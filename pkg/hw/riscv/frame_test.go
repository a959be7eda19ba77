package riscv

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// The assembly entry stubs address the frames by byte offset, so the layout
// constants are part of the contract.

func TestTrapContextLayout(t *testing.T) {
	var ctx TrapContext

	assert.Equal(t, uintptr(TrapContextSize), unsafe.Sizeof(ctx))
	assert.Equal(t, uintptr(TrapContextRaOffset), unsafe.Offsetof(ctx.Ra))
	assert.Equal(t, uintptr(TrapContextSpOffset), unsafe.Offsetof(ctx.Sp))
	assert.Equal(t, uintptr(TrapContextFRegsOffset), unsafe.Offsetof(ctx.F))
	assert.Equal(t, uintptr(TrapContextFcsrOffset), unsafe.Offsetof(ctx.Fcsr))
	assert.Equal(t, uintptr(TrapContextSstatusOffset), unsafe.Offsetof(ctx.Sstatus))
	assert.Equal(t, uintptr(TrapContextSepcOffset), unsafe.Offsetof(ctx.Sepc))
	assert.Equal(t, uintptr(TrapContextStvalOffset), unsafe.Offsetof(ctx.Stval))
	assert.Equal(t, uintptr(TrapContextScauseOffset), unsafe.Offsetof(ctx.Scause))
}

func TestCalleeSavedContextLayout(t *testing.T) {
	var ctx CalleeSavedContext

	assert.Equal(t, uintptr(CalleeSavedContextSize), unsafe.Sizeof(ctx))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(ctx.Ra))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(ctx.Sp))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(ctx.S0))
	assert.Equal(t, uintptr(13*8), unsafe.Offsetof(ctx.S11))
}

func TestTrapContextFieldExtraction(t *testing.T) {
	ctx := TrapContext{
		Sstatus: 1<<1 | 1<<5,
		Scause:  1<<63 | 5,
	}

	// saved state is inspected with the same field accessors as live state
	assert.True(t, Sstatus.Sie.GetFrom(ctx.Sstatus))
	assert.True(t, Scause.Interrupt.GetFrom(ctx.Scause))
	assert.Equal(t, uint64(5), Scause.ExceptionCode.GetFrom(ctx.Scause))
}
