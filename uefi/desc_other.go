// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tamago

package uefi

import (
	"unsafe"
)

// readMemory returns a copy of n bytes of process memory at addr.
func readMemory(addr uint64, n int) (buf []byte, err error) {
	buf = make([]byte, n)
	copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), n))
	return
}
