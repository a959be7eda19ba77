package hw

import "github.com/osdev-kit/karch/pkg/hw/arm64"

// Arch names the architecture this build targets.
const Arch = "aarch64"

var (
	EnableInterrupt    = arm64.EnableInterrupt
	DisableInterrupt   = arm64.DisableInterrupt
	GetInterruptStatus = arm64.GetInterruptStatus
	GetCurrentCoreID   = arm64.GetCurrentCoreID
	EnableFPU          = arm64.EnableFPU
	Pause              = arm64.Pause

	EnablePaging     = arm64.EnableMMU
	SetPageTableRoot = arm64.SetPageTableRoot
	FlushTLB         = arm64.FlushTLB
	FlushTLBAddr     = arm64.FlushTLBAddr
)
