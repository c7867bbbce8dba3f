// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"unsafe"
)

// Caller invokes a firmware entry point, with up to 5 register width
// arguments, following the native calling convention, returning the value
// left in the return register.
//
// It is the only place where a raw address becomes a transfer of control:
// firmware services and installed payloads alike are dispatched through it.
// A nil Caller falls back to the native assembly dispatcher, which is
// available on tamago builds only.
type Caller func(fn uint64, args []uint64) (status uint64)

// This function helps preparing Caller arguments, allowing a single call
// interface for all EFI services.
//
// Obtaining a pointer in this fashion is typically unsafe and tamago/dma
// package would be best to handle this. However, as arguments are prepared
// right before dispatch, it is considered safe as it is identical as having
// *uint64 as Caller prototype.
func ptrval(ptr any) uint64 {
	var p unsafe.Pointer

	switch v := ptr.(type) {
	case *uint64:
		p = unsafe.Pointer(v)
	case *uint32:
		p = unsafe.Pointer(v)
	case *uint16:
		p = unsafe.Pointer(v)
	case *byte:
		p = unsafe.Pointer(v)
	default:
		panic("internal error, invalid ptrval")
	}

	return uint64(uintptr(p))
}

// peek returns the 64-bit value stored at addr, or 0 when addr is null.
//
// Firmware tables hold service routines as pointer slots, peek resolves a
// slot so that the routine can be null checked before any dispatch.
func peek(addr uint64) (val uint64) {
	if addr == 0 {
		return
	}

	_ = decode(&val, addr)

	return
}
