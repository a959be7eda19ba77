package regs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AcceptsWellFormedRegister(t *testing.T) {
	register := &RegisterDescriptor{
		Name:   "sstatus",
		Width:  64,
		Access: ReadWrite,
		Fields: []FieldDescriptor{
			{Field: Field{Offset: 1, Width: 1}, Name: "SIE", Access: ReadWrite},
			{Field: Field{Offset: 5, Width: 1}, Name: "SPIE", Access: ReadWrite},
			{Field: Field{Offset: 8, Width: 1}, Name: "SPP", Access: ReadWrite},
		},
	}

	assert.NoError(t, register.Validate())
}

func TestValidate_Violations(t *testing.T) {
	specs := []struct {
		name     string
		register RegisterDescriptor
		expected error
	}{
		{
			name:     "odd register width",
			register: RegisterDescriptor{Name: "r", Width: 48},
			expected: ErrBadRegisterWidth,
		},
		{
			name: "zero width field",
			register: RegisterDescriptor{Name: "r", Width: 64, Fields: []FieldDescriptor{
				{Field: Field{Offset: 0, Width: 0}, Name: "f"},
			}},
			expected: ErrZeroWidthField,
		},
		{
			name: "field past the register top bit",
			register: RegisterDescriptor{Name: "r", Width: 32, Fields: []FieldDescriptor{
				{Field: Field{Offset: 30, Width: 4}, Name: "f"},
			}},
			expected: ErrFieldOverflow,
		},
		{
			name: "overlapping fields",
			register: RegisterDescriptor{Name: "r", Width: 64, Fields: []FieldDescriptor{
				{Field: Field{Offset: 0, Width: 4}, Name: "low"},
				{Field: Field{Offset: 3, Width: 2}, Name: "mid"},
			}},
			expected: ErrFieldOverlap,
		},
		{
			name: "overlap reported regardless of declaration order",
			register: RegisterDescriptor{Name: "r", Width: 64, Fields: []FieldDescriptor{
				{Field: Field{Offset: 3, Width: 2}, Name: "mid"},
				{Field: Field{Offset: 0, Width: 4}, Name: "low"},
			}},
			expected: ErrFieldOverlap,
		},
		{
			name: "read-write field inside a read-only register",
			register: RegisterDescriptor{Name: "r", Width: 64, Access: ReadOnly, Fields: []FieldDescriptor{
				{Field: Field{Offset: 0, Width: 1}, Name: "f", Access: ReadWrite},
			}},
			expected: ErrFieldAccess,
		},
		{
			name: "duplicate field names",
			register: RegisterDescriptor{Name: "r", Width: 64, Fields: []FieldDescriptor{
				{Field: Field{Offset: 0, Width: 1}, Name: "f"},
				{Field: Field{Offset: 1, Width: 1}, Name: "f"},
			}},
			expected: ErrDuplicateField,
		},
	}

	for _, spec := range specs {
		t.Run(spec.name, func(t *testing.T) {
			assert.ErrorIs(t, spec.register.Validate(), spec.expected)
		})
	}
}

func TestValidate_WriteOnlyFieldInsideReadWriteRegisterIsLegal(t *testing.T) {
	register := &RegisterDescriptor{
		Name:   "r",
		Width:  64,
		Access: ReadWrite,
		Fields: []FieldDescriptor{
			{Field: Field{Offset: 0, Width: 1}, Name: "write-clear bit", Access: WriteOnly},
		},
	}

	assert.NoError(t, register.Validate())
}

func TestAccessAllows(t *testing.T) {
	assert.True(t, ReadWrite.Allows(ReadOnly))
	assert.True(t, ReadWrite.Allows(WriteOnly))
	assert.True(t, ReadWrite.Allows(ReadWrite))
	assert.True(t, ReadOnly.Allows(ReadOnly))
	assert.False(t, ReadOnly.Allows(ReadWrite))
	assert.False(t, ReadOnly.Allows(WriteOnly))
	assert.False(t, WriteOnly.Allows(ReadWrite))
}

func TestCatalogLookup(t *testing.T) {
	catalog := &Catalog{
		Arch: "riscv64",
		Registers: []*RegisterDescriptor{
			{Name: "sstatus", Width: 64},
			{Name: "satp", Width: 64, Fields: []FieldDescriptor{
				{Field: Field{Offset: 60, Width: 4}, Name: "MODE"},
			}},
		},
	}

	assert.NoError(t, catalog.Validate())
	assert.NotNil(t, catalog.Register("satp"))
	assert.Nil(t, catalog.Register("mstatus"))
	assert.NotNil(t, catalog.Register("satp").Field("MODE"))
	assert.Nil(t, catalog.Register("satp").Field("ASID"))
}
