package hw

import "github.com/osdev-kit/karch/pkg/hw/x86"

// Arch names the architecture this build targets.
const Arch = "x86_64"

var (
	EnableInterrupt    = x86.EnableInterrupt
	DisableInterrupt   = x86.DisableInterrupt
	GetInterruptStatus = x86.GetInterruptStatus
	GetCurrentCoreID   = x86.GetCurrentCoreID
	EnableFPU          = x86.EnableFPU
	Pause              = x86.Pause

	EnablePaging     = x86.EnablePaging
	SetPageTableRoot = x86.SetPageTableRoot
	FlushTLB         = x86.FlushTLB
	FlushTLBAddr     = x86.FlushTLBAddr
)
