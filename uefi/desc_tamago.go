// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package uefi

import (
	"github.com/usbarmory/tamago/dma"
)

// readMemory returns a copy of n bytes of firmware memory at addr.
func readMemory(addr uint64, n int) (buf []byte, err error) {
	r, err := dma.NewRegion(uint(addr), n+(n%align), true)

	if err != nil {
		return
	}

	ptr, reg := r.Reserve(n, 0)
	defer r.Release(ptr)

	buf = make([]byte, n)
	copy(buf, reg)

	return
}
