// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"errors"
)

// EFI Boot Services offset for Exit
const exit = 0xd8

// Exit calls EFI_BOOT_SERVICES.Exit(), returning the argument code as the
// application exit status to the firmware.
func (s *BootServices) Exit(code uint64) (err error) {
	call := s.caller()
	fn := s.routine(exit)

	if call == nil || fn == 0 {
		return errors.New("Exit routine is missing")
	}

	status := call(fn, []uint64{
		s.imageHandle,
		code,
		0,
		0,
	})

	return parseStatus(status)
}
