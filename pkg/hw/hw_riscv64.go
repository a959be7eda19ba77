package hw

import "github.com/osdev-kit/karch/pkg/hw/riscv"

// Arch names the architecture this build targets.
const Arch = "riscv64"

var (
	EnableInterrupt    = riscv.EnableInterrupt
	DisableInterrupt   = riscv.DisableInterrupt
	GetInterruptStatus = riscv.GetInterruptStatus
	GetCurrentCoreID   = riscv.GetCurrentCoreID
	EnableFPU          = riscv.EnableFPU
	Pause              = riscv.Pause

	EnablePaging     = riscv.EnablePaging
	SetPageTableRoot = riscv.SetPageTableRoot
	FlushTLB         = riscv.FlushTLB
	FlushTLBAddr     = riscv.FlushTLBAddr
)
