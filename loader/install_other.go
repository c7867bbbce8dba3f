// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tamago

package loader

import (
	"unsafe"
)

// install copies the payload in the allocated region, the destination
// capacity is covered by the page count computed before allocation.
func install(addr uint64, image []byte) (err error) {
	copy(unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), len(image)), image)
	return
}
