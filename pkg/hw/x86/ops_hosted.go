//go:build !amd64

package x86

// Hosted GOARCHes run the catalog against a machine model. Tests install
// their own machine over this default one.
func init() {
	NewMachine().Install()
}
