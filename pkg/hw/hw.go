// Package hw re-exports the register access façade of the architecture the
// binary is compiled for. The selection is purely a build time decision;
// kernels that need another architecture's surface import its package
// directly.
package hw
