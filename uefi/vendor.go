// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"unicode/utf16"
)

const maxVendorSize = 32

// Vendor returns the firmware vendor identification string.
func (s *Services) Vendor() string {
	if s.SystemTable == nil || s.SystemTable.FirmwareVendor == 0 {
		return ""
	}

	var raw [maxVendorSize]uint16

	if err := decode(&raw, s.SystemTable.FirmwareVendor); err != nil {
		return ""
	}

	n := 0

	for n < len(raw) && raw[n] != 0x0000 {
		n++
	}

	return string(utf16.Decode(raw[:n]))
}
