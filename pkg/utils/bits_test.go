package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOnes(t *testing.T) {
	assert.Equal(t, uint64(0), AllOnes[uint64](0))
	assert.Equal(t, uint64(0x1f), AllOnes[uint64](5))
	assert.Equal(t, uint8(0xff), AllOnes[uint8](8))
	assert.Equal(t, ^uint64(0), AllOnes[uint64](64))
}

func TestMask(t *testing.T) {
	assert.Equal(t, uint64(0x2), Mask[uint64](1, 1))
	assert.Equal(t, uint64(0x3c0), Mask[uint64](6, 4))
	assert.Equal(t, uint64(0xfffffffffffff000), Mask[uint64](12, 52))
}

func TestFitsImm(t *testing.T) {
	// riscv csr immediate operands are 5 bits, aarch64 pstate ones 4 bits
	assert.True(t, FitsImm(uint64(0x2), 5))
	assert.True(t, FitsImm(uint64(0x1f), 5))
	assert.False(t, FitsImm(uint64(0x20), 5))
	assert.True(t, FitsImm(uint64(0xf), 4))
	assert.False(t, FitsImm(uint64(0x10), 4))
}

func TestBitViewWritePreservesSurroundingBits(t *testing.T) {
	value := uint64(0xffff_ffff_ffff_ffff)
	view := CreateBitView(&value)

	view.Write(0x5, 8, 4)

	assert.Equal(t, uint64(0xffff_ffff_ffff_f5ff), value)
	assert.Equal(t, uint64(0x5), view.Read(8, 4))
}

func TestBitViewSetAndClear(t *testing.T) {
	value := uint64(0)
	view := CreateBitView(&value)

	view.SetBits(4, 4)
	assert.Equal(t, uint64(0xf0), value)

	view.SetBit(0)
	assert.Equal(t, uint64(0xf1), value)

	view.ClearBits(4, 2)
	assert.Equal(t, uint64(0xc1), value)

	view.ClearBit(0)
	assert.Equal(t, uint64(0xc0), value)
}
