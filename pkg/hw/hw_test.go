package hw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArchIsNamed(t *testing.T) {
	assert.Contains(t, []string{"x86_64", "aarch64", "riscv64"}, Arch)
}

func TestFacadeIsBound(t *testing.T) {
	assert.NotNil(t, EnableInterrupt)
	assert.NotNil(t, DisableInterrupt)
	assert.NotNil(t, GetInterruptStatus)
	assert.NotNil(t, GetCurrentCoreID)
	assert.NotNil(t, EnableFPU)
	assert.NotNil(t, Pause)
	assert.NotNil(t, EnablePaging)
	assert.NotNil(t, SetPageTableRoot)
	assert.NotNil(t, FlushTLB)
	assert.NotNil(t, FlushTLBAddr)
}
