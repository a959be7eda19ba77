//go:build !arm64

package arm64

// Hosted builds route every primitive operation to an in-memory core model.
func init() {
	NewCore().Install()
}
