// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"errors"
)

// EFI Boot Services offset for AllocatePages
const allocatePages = 0x28

// EFI_ALLOCATE_TYPE
const (
	AllocateAnyPages = iota
	AllocateMaxAddress
	AllocateAddress
	MaxAllocateType
)

// EFI_MEMORY_TYPE
const (
	EfiReservedMemoryType = iota
	EfiLoaderCode
	EfiLoaderData
	EfiBootServicesCode
	EfiBootServicesData
	EfiRuntimeServicesCode
	EfiRuntimeServicesData
	EfiConventionalMemory
	EfiUnusableMemory
	EfiACPIReclaimMemory
	EfiACPIMemoryNVS
	EfiMemoryMappedIO
	EfiMemoryMappedIOPortSpace
	EfiPalCode
	EfiPersistentMemory
	EfiUnacceptedMemoryType
	EfiMaxMemoryType
)

// PageSize represents the EFI page size in bytes
const PageSize = 4096 // 4 KiB

// BootServices represents an EFI Boot Services instance.
type BootServices struct {
	base        uint64
	imageHandle uint64
	call        Caller
}

func (s *BootServices) caller() Caller {
	if s.call != nil {
		return s.call
	}

	return nativeCaller
}

// routine resolves a Boot Services routine slot, a null base yields a
// null routine.
func (s *BootServices) routine(off uint64) uint64 {
	if s.base == 0 {
		return 0
	}

	return peek(s.base + off)
}

// Allocator returns the AllocatePages routine pointer, possibly null, a
// null routine must be treated as a fatal setup condition before any
// allocation is attempted.
func (s *BootServices) Allocator() uint64 {
	return s.routine(allocatePages)
}

// AllocatePages calls EFI_BOOT_SERVICES.AllocatePages() for the argument
// number of pages, returning the allocated physical address.
//
// The physicalAddress argument is the requested placement for
// [AllocateAddress] and [AllocateMaxAddress] requests, it is ignored by the
// firmware for [AllocateAnyPages] ones.
func (s *BootServices) AllocatePages(allocateType int, memoryType int, pages int, physicalAddress uint64) (addr uint64, err error) {
	call := s.caller()
	fn := s.Allocator()

	if call == nil || fn == 0 {
		return 0, errors.New("AllocatePages routine is missing")
	}

	if pages < 1 {
		return 0, errors.New("invalid page count")
	}

	addr = physicalAddress

	status := call(fn, []uint64{
		uint64(allocateType),
		uint64(memoryType),
		uint64(pages),
		ptrval(&addr),
	})

	if err = parseStatus(status); err != nil {
		return 0, err
	}

	return
}
