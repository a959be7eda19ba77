package arm64

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// The vector stubs address the frames by byte offset, so the layout
// constants are part of the contract.

func TestTrapContextLayout(t *testing.T) {
	var ctx TrapContext

	assert.Equal(t, uintptr(TrapContextSize), unsafe.Sizeof(ctx))
	assert.Equal(t, uintptr(TrapContextXOffset), unsafe.Offsetof(ctx.X))
	assert.Equal(t, uintptr(TrapContextSpOffset), unsafe.Offsetof(ctx.Sp))
	assert.Equal(t, uintptr(TrapContextElrOffset), unsafe.Offsetof(ctx.Elr))
	assert.Equal(t, uintptr(TrapContextSpsrOffset), unsafe.Offsetof(ctx.Spsr))
	assert.Equal(t, uintptr(TrapContextEsrOffset), unsafe.Offsetof(ctx.Esr))
	assert.Equal(t, uintptr(TrapContextQOffset), unsafe.Offsetof(ctx.Q))
	assert.Equal(t, uintptr(TrapContextFpsrOffset), unsafe.Offsetof(ctx.Fpsr))
	assert.Equal(t, uintptr(TrapContextFpcrOffset), unsafe.Offsetof(ctx.Fpcr))
}

func TestCalleeSavedContextLayout(t *testing.T) {
	var ctx CalleeSavedContext

	assert.Equal(t, uintptr(CalleeSavedContextSize), unsafe.Sizeof(ctx))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(ctx.X19))
	assert.Equal(t, uintptr(10*8), unsafe.Offsetof(ctx.X29))
	assert.Equal(t, uintptr(12*8), unsafe.Offsetof(ctx.Sp))
}

func TestTrapContextFieldExtraction(t *testing.T) {
	ctx := TrapContext{
		Spsr: 1 << daifIOffset,
		Esr:  uint64(0x15) << 26,
	}

	// saved state is inspected with the same field accessors as live state
	assert.True(t, DAIF.I.GetFrom(ctx.Spsr))
	assert.Equal(t, uint64(0x15), ESR_EL1.EC.GetFrom(ctx.Esr))
}
