package regs

import (
	"errors"
	"sort"

	"github.com/osdev-kit/karch/pkg/utils"
)

var (
	ErrBadRegisterWidth = errors.New("register width must be 8, 16, 32 or 64 bits")
	ErrZeroWidthField   = errors.New("field width must be at least one bit")
	ErrFieldOverflow    = errors.New("field exceeds the parent register width")
	ErrFieldOverlap     = errors.New("field overlaps another field of the same register")
	ErrFieldAccess      = errors.New("field capability is broader than the register capability")
	ErrDuplicateField   = errors.New("duplicate field name")
	ErrUnknownField     = errors.New("unknown field")
	ErrUnknownRegister  = errors.New("unknown register")
)

// FieldDescriptor describes one named bit field of a register: where it
// lives, how wide it is, and the capability attached to it. Descriptors
// contain no executable content; they exist for validation, documentation
// and the inspection tooling. The typed accessors declared next to each
// catalog entry are the operational surface.
type FieldDescriptor struct {
	Field
	Name   string
	Access Access

	// Enum gives names to the architected values of the field, when the
	// field is an enumeration rather than a plain integer. Nil otherwise.
	Enum map[uint64]string
}

// RegisterDescriptor describes one hardware register: its symbolic name, its
// canonical width in bits, its capability, and its named fields. Two
// descriptors never share a name within an architecture.
type RegisterDescriptor struct {
	Name   string
	Width  uint8
	Access Access
	Fields []FieldDescriptor
}

// Returns the named field descriptor, or nil
func (d *RegisterDescriptor) Field(name string) *FieldDescriptor {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i]
		}
	}

	return nil
}

// Checks the declaration invariants of the register and all its fields:
// legal register width, non-zero field widths, fields contained within the
// register, no overlapping bit ranges, unique field names, and no field
// capability broader than the register capability.
func (d *RegisterDescriptor) Validate() error {
	switch d.Width {
	case 8, 16, 32, 64:
	default:
		return utils.MakeError(ErrBadRegisterWidth, "register %v declares width %v", d.Name, d.Width)
	}

	names := make(map[string]struct{}, len(d.Fields))

	for i := range d.Fields {
		field := &d.Fields[i]

		if field.Width == 0 {
			return utils.MakeError(ErrZeroWidthField, "field %v.%v", d.Name, field.Name)
		}

		if uint(field.Offset)+uint(field.Width) > uint(d.Width) {
			return utils.MakeError(ErrFieldOverflow, "field %v.%v spans bits [%v, %v] but the register is %v bits wide",
				d.Name, field.Name, field.Offset, uint(field.Offset)+uint(field.Width)-1, d.Width)
		}

		if !d.Access.Allows(field.Access) {
			return utils.MakeError(ErrFieldAccess, "field %v.%v is %v inside a %v register",
				d.Name, field.Name, field.Access, d.Access)
		}

		if _, duplicate := names[field.Name]; duplicate {
			return utils.MakeError(ErrDuplicateField, "field %v.%v", d.Name, field.Name)
		}
		names[field.Name] = struct{}{}
	}

	sorted := make([]*FieldDescriptor, len(d.Fields))
	for i := range d.Fields {
		sorted[i] = &d.Fields[i]
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	for i := 1; i < len(sorted); i++ {
		previous := sorted[i-1]
		if uint(previous.Offset)+uint(previous.Width) > uint(sorted[i].Offset) {
			return utils.MakeError(ErrFieldOverlap, "fields %v.%v and %v.%v",
				d.Name, previous.Name, d.Name, sorted[i].Name)
		}
	}

	return nil
}

// Catalog groups the register descriptors of one architecture.
type Catalog struct {
	Arch      string
	Registers []*RegisterDescriptor
}

// Returns the named register descriptor, or nil
func (c *Catalog) Register(name string) *RegisterDescriptor {
	for _, register := range c.Registers {
		if register.Name == name {
			return register
		}
	}

	return nil
}

// Validates every register of the catalog, stopping at the first violation
func (c *Catalog) Validate() error {
	for _, register := range c.Registers {
		if err := register.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Validates the catalog, panicking on violation. Catalogs are compile time
// declarations, so a validation failure is a programming error, not a
// runtime condition.
func (c *Catalog) MustValidate() *Catalog {
	if err := c.Validate(); err != nil {
		panic(err)
	}

	return c
}
