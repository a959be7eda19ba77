package x86

import (
	"encoding/binary"
	"math/bits"
	"strings"
)

// CPUID queries. Everything funnels through ExecuteCpuid, so on hosted
// GOARCHes the whole surface runs against scripted machine leaves.

// ExecuteCpuid issues cpuid with the given leaf in eax and subleaf in ecx.
func ExecuteCpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return cpuid(leaf, subleaf)
}

// MaxLeaf returns the highest supported standard leaf.
func MaxLeaf() uint32 {
	eax, _, _, _ := cpuid(0, 0)
	return eax
}

// MaxExtendedLeaf returns the highest supported extended leaf.
func MaxExtendedLeaf() uint32 {
	eax, _, _, _ := cpuid(0x8000_0000, 0)
	return eax
}

// VendorString returns the 12 byte vendor identification of leaf 0, for
// example "GenuineIntel" or "AuthenticAMD".
func VendorString() string {
	_, ebx, ecx, edx := cpuid(0, 0)

	var raw [12]byte
	binary.LittleEndian.PutUint32(raw[0:4], ebx)
	binary.LittleEndian.PutUint32(raw[4:8], edx)
	binary.LittleEndian.PutUint32(raw[8:12], ecx)
	return string(raw[:])
}

// BrandString returns the processor brand of extended leaves 2 to 4, or ""
// when the extended leaves are absent.
func BrandString() string {
	if MaxExtendedLeaf() < 0x8000_0004 {
		return ""
	}

	var raw [48]byte
	for i := uint32(0); i < 3; i++ {
		eax, ebx, ecx, edx := cpuid(0x8000_0002+i, 0)
		base := i * 16
		binary.LittleEndian.PutUint32(raw[base:], eax)
		binary.LittleEndian.PutUint32(raw[base+4:], ebx)
		binary.LittleEndian.PutUint32(raw[base+8:], ecx)
		binary.LittleEndian.PutUint32(raw[base+12:], edx)
	}

	return strings.TrimRight(strings.TrimRight(string(raw[:]), "\x00"), " ")
}

type featureWord uint8

const (
	leaf1ECX featureWord = iota
	leaf1EDX
)

// Feature is one documented leaf 1 feature bit.
type Feature struct {
	name string
	word featureWord
	bit  uint8
}

var (
	FeatureSSE3   = Feature{"sse3", leaf1ECX, 0}
	FeatureVMX    = Feature{"vmx", leaf1ECX, 5}
	FeatureSSSE3  = Feature{"ssse3", leaf1ECX, 9}
	FeatureFMA    = Feature{"fma", leaf1ECX, 12}
	FeaturePCID   = Feature{"pcid", leaf1ECX, 17}
	FeatureSSE41  = Feature{"sse4.1", leaf1ECX, 19}
	FeatureSSE42  = Feature{"sse4.2", leaf1ECX, 20}
	FeatureX2APIC = Feature{"x2apic", leaf1ECX, 21}
	FeatureXSAVE  = Feature{"xsave", leaf1ECX, 26}
	FeatureAVX    = Feature{"avx", leaf1ECX, 28}
	FeatureRDRAND = Feature{"rdrand", leaf1ECX, 30}

	FeatureFPU  = Feature{"fpu", leaf1EDX, 0}
	FeaturePSE  = Feature{"pse", leaf1EDX, 3}
	FeatureTSC  = Feature{"tsc", leaf1EDX, 4}
	FeatureMSR  = Feature{"msr", leaf1EDX, 5}
	FeaturePAE  = Feature{"pae", leaf1EDX, 6}
	FeatureAPIC = Feature{"apic", leaf1EDX, 9}
	FeaturePGE  = Feature{"pge", leaf1EDX, 13}
	FeaturePAT  = Feature{"pat", leaf1EDX, 16}
	FeatureSSE  = Feature{"sse", leaf1EDX, 25}
	FeatureSSE2 = Feature{"sse2", leaf1EDX, 26}
)

func (f Feature) String() string { return f.name }

// Supported tells whether the processor reports the feature in leaf 1.
func (f Feature) Supported() bool {
	_, _, ecx, edx := cpuid(1, 0)

	word := ecx
	if f.word == leaf1EDX {
		word = edx
	}
	return word&(1<<f.bit) != 0
}

// hasExtendedTopology reports a usable leaf 0x0B, meaning the leaf exists
// and its first level is populated.
func hasExtendedTopology() bool {
	if MaxLeaf() < 0x0B {
		return false
	}
	_, ebx, _, _ := cpuid(0x0B, 0)
	return ebx != 0
}

// APICID returns the x2APIC id from extended topology when available, the
// initial 8 bit APIC id of leaf 1 otherwise.
func APICID() uint32 {
	if hasExtendedTopology() {
		_, _, _, edx := cpuid(0x0B, 0)
		return edx
	}

	_, ebx, _, _ := cpuid(1, 0)
	return ebx >> 24
}

// LogicalProcessorCount returns the addressable logical processor count of
// leaf 1.
func LogicalProcessorCount() uint32 {
	_, ebx, _, _ := cpuid(1, 0)
	return ebx >> 16 & 0xFF
}

// SMTShift returns the number of APIC id bits addressing threads within a
// core.
func SMTShift() uint32 {
	if hasExtendedTopology() {
		eax, _, _, _ := cpuid(0x0B, 0)
		return eax & 0x1F
	}

	// without leaf 0x0B assume no SMT rather than guess
	return 0
}

// CoreShift returns the number of APIC id bits addressing threads within a
// package.
func CoreShift() uint32 {
	if hasExtendedTopology() {
		eax, _, _, _ := cpuid(0x0B, 1)
		return eax & 0x1F
	}

	if MaxLeaf() >= 4 {
		eax, _, _, _ := cpuid(4, 0)
		cores := (eax>>26)&0x3F + 1
		return uint32(bits.Len32(cores - 1))
	}

	return 0
}
