// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package loader

import (
	"github.com/usbarmory/tamago/dma"
)

// install copies the payload in the allocated region, the destination
// capacity is covered by the page count computed before allocation. The
// region may fall within runtime owned memory, as the allocator can place
// it anywhere in the firmware memory map.
func install(addr uint64, image []byte) (err error) {
	r, err := dma.NewRegion(uint(addr), len(image), true)

	if err != nil {
		return
	}

	ptr, buf := r.Reserve(len(image), 0)
	defer r.Release(ptr)

	copy(buf, image)

	return
}
