// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build amd64

package main

import (
	"log"

	"github.com/u-root/u-root/pkg/boot/bzimage"

	"github.com/bootlace/go-payload/uefi"
	"github.com/bootlace/go-payload/uefi/x64"
)

func services() *uefi.Services {
	return x64.UEFI
}

// report logs the boot environment: firmware identification and the amount
// of RAM the memory map advertises.
func report() {
	log.Printf("%s revision %#x", services().Vendor(),
		services().SystemTable.FirmwareRevision)

	memoryMap, err := services().Boot.GetMemoryMap()

	if err != nil {
		log.Printf("could not get memory map, %v", err)
		return
	}

	var ram uint64

	for _, desc := range memoryMap.Descriptors {
		e, err := desc.E820()

		if err != nil {
			continue
		}

		if e.MemType == bzimage.RAM {
			ram += e.Size
		}
	}

	log.Printf("%d MiB RAM in %d descriptors", ram/(1024*1024),
		len(memoryMap.Descriptors))
}
