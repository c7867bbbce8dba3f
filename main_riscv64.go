// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build riscv64

package main

import (
	"log"

	"github.com/bootlace/go-payload/uefi"
	"github.com/bootlace/go-payload/uefi/rv64"
)

func services() *uefi.Services {
	return rv64.UEFI
}

// report logs the boot environment firmware identification.
func report() {
	log.Printf("%s revision %#x", services().Vendor(),
		services().SystemTable.FirmwareRevision)
}
