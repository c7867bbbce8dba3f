// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"fmt"
)

// EFI System Table offsets
const (
	// ConOut pointer
	conOutOffset = 0x40
	// BootServices pointer
	bootServicesOffset = 0x60
)

// TableView is a raw fixed-offset view of the EFI System Table, used where
// firmware memory must be read without trusting its structure.
//
// The view never dereferences a null pointer: a null base yields null
// sub-pointers and each accessor re-validates before reading. Validity of
// the returned pointer contents remains the caller's responsibility.
type TableView struct {
	base uint64
	call Caller
}

// NewTableView returns a raw System Table view for the argument pointer,
// validated against the table header. A nil Caller selects the native
// service dispatcher.
func NewTableView(addr uint64, call Caller) (v *TableView, err error) {
	if call == nil {
		call = nativeCaller
	}

	v = &TableView{
		base: addr,
		call: call,
	}

	if addr == 0 {
		return
	}

	hdr := &TableHeader{}

	if err = decode(hdr, addr); err != nil {
		return nil, err
	}

	if hdr.Signature != signature {
		return nil, fmt.Errorf("invalid System Table signature %#x", hdr.Signature)
	}

	if hdr.HeaderSize < uint32(bootServicesOffset+8) {
		return nil, fmt.Errorf("invalid System Table size %d", hdr.HeaderSize)
	}

	return
}

// Caller returns the service dispatcher the view was constructed with,
// which is nil on targets lacking native dispatch when no override was
// given.
func (v *TableView) Caller() Caller {
	return v.call
}

// ConOut returns the console output protocol pointer, possibly null.
func (v *TableView) ConOut() uint64 {
	if v.base == 0 {
		return 0
	}

	return peek(v.base + conOutOffset)
}

// BootServicesAddress returns the Boot Services table pointer, possibly null.
func (v *TableView) BootServicesAddress() uint64 {
	if v.base == 0 {
		return 0
	}

	return peek(v.base + bootServicesOffset)
}

// Console returns a Console over the view console output protocol, the
// returned instance is inert, but valid, when the protocol is missing.
func (v *TableView) Console() *Console {
	return &Console{
		Out:  v.ConOut(),
		Call: v.call,
	}
}

// Boot returns a Boot Services instance, or nil when the Boot Services
// pointer is null.
func (v *TableView) Boot() *BootServices {
	base := v.BootServicesAddress()

	if base == 0 {
		return nil
	}

	return &BootServices{
		base: base,
		call: v.call,
	}
}
