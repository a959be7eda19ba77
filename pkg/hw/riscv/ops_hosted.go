//go:build !riscv64

package riscv

// Hosted builds route every primitive operation to an in-memory hart model.
func init() {
	NewHart().Install()
}
