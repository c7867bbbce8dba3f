// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package rv64 provides hardware initialization, automatically on import,
// for the Unified Extensible Firmware Interface (UEFI) application
// environment under a single RV64 hart.
//
// This package is only meant to be used with `GOOS=tamago` as
// supported by the TamaGo framework for bare metal Go, see
// https://github.com/usbarmory/tamago.
package rv64

import (
	"fmt"
	"runtime/goos"
	_ "unsafe"

	"github.com/usbarmory/tamago/riscv64"

	"github.com/bootlace/go-payload/uefi"
)

// set in rv64.s
var (
	imageHandle uint64
	systemTable uint64
	conOut      uint64
)

// Peripheral instances
var (
	// RV64 core
	RV64 = &riscv64.CPU{}

	// UEFI services
	UEFI = &uefi.Services{}
)

//go:linkname nanotime runtime/goos.Nanotime
func nanotime() int64 {
	return RV64.GetTime()
}

// Init takes care of the lower level initialization triggered early in runtime
// setup.
//
//go:linkname Init runtime/goos.Hwinit1
func Init() {
	// initialize CPU
	RV64.Init()

	// disable CPU idle time management
	goos.Idle = nil
}

func init() {
	print("initializing EFI services\n")

	if err := UEFI.Init(imageHandle, systemTable); err != nil {
		fmt.Printf("could not initialize EFI services, %v\n", err)
	}

	// allocate runtime heap in UEFI memory
	allocateHeap()
}
