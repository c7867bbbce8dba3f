// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package uefi

// defined in efi_amd64.s and efi_riscv64.s
func service5(fn uint64, a0, a1, a2, a3, a4 uint64) (status uint64)

// callService dispatches a resolved firmware routine under the platform
// calling convention, missing arguments are passed as zero.
func callService(fn uint64, args []uint64) (status uint64) {
	var a [5]uint64
	copy(a[:], args)

	return service5(fn, a[0], a[1], a[2], a[3], a[4])
}

var nativeCaller Caller = callService
