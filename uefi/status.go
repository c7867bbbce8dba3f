// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"fmt"
)

// EFI_STATUS success code
const EFI_SUCCESS = 0

// EFI_STATUS error codes (low byte, the high bit is set on the wire)
const (
	EFI_LOAD_ERROR = iota + 1
	EFI_INVALID_PARAMETER
	EFI_UNSUPPORTED
	EFI_BAD_BUFFER_SIZE
	EFI_BUFFER_TOO_SMALL
	EFI_NOT_READY
	EFI_DEVICE_ERROR
	EFI_WRITE_PROTECTED
	EFI_OUT_OF_RESOURCES
)

// Status represents an EFI_STATUS value returned by a firmware service, it
// implements the error interface for nonzero values so that the original
// numeric code can be recovered by callers (see [errors.As]).
type Status uint64

func (s Status) Error() string {
	return fmt.Sprintf("EFI_STATUS error %#x (%d)", uint64(s), uint64(s)&0xff)
}

func parseStatus(status uint64) (err error) {
	switch {
	case status > 0:
		return Status(status)
	default:
		return
	}
}
