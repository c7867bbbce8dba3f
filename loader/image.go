// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package loader

import (
	"github.com/bootlace/go-payload/uefi"
)

// pageCount returns the number of EFI pages covering a payload of n bytes,
// never less than one.
func pageCount(n int) (pages int) {
	pages = (n + uefi.PageSize - 1) / uefi.PageSize

	if pages < 1 {
		pages = 1
	}

	return
}
