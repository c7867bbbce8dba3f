// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package loader implements the boot time payload loading sequence:
// executable memory is obtained from the firmware page allocator, a fixed
// machine code image is installed in it and made visible to instruction
// fetch, control is transferred to it and every milestone or failure is
// reported on the firmware console.
//
// The sequence runs once, synchronously, on the single execution context
// the firmware hands over, the allocated region is owned for the remainder
// of the boot session and never released.
package loader

import (
	"errors"

	"github.com/bootlace/go-payload/uefi"
)

// Exit statuses returned to the firmware.
const (
	StatusSuccess        = 0
	StatusNoBootServices = 1
	StatusNoAllocator    = 2
	StatusEmptyPayload   = 5
	StatusAllocFailure   = 6
)

// DefaultSentinel is the first argument conventionally passed to the
// payload entry point.
const DefaultSentinel uint64 = 0xdeadbeef12345678

// Loader represents a single payload loading sequence over a firmware
// supplied System Table.
type Loader struct {
	// Handle is the firmware image handle received at entry, the sequence
	// carries it but never uses it.
	Handle uint64

	// Table is the EFI System Table pointer received at entry.
	Table uint64

	// Image is the machine code payload to install and execute.
	Image []byte

	// Sentinel is passed to the payload as its first argument, the four
	// remaining ones are zero.
	Sentinel uint64

	// Call overrides the native service dispatcher.
	Call uefi.Caller

	// instruction barrier hook, tests only
	sync func()
}

// Run executes the loading sequence: locate tables, resolve the allocator,
// allocate, install, synchronize, invoke, report. The sequence is strictly
// linear with no retries, each failure is terminal and reported best effort
// on the console before the corresponding status is returned, console
// availability never changes the returned status.
func (l *Loader) Run() uint64 {
	view, err := uefi.NewTableView(l.Table, l.Call)

	if err != nil {
		// without a valid table there is no console to report on
		return StatusNoBootServices
	}

	console := view.Console()
	boot := view.Boot()

	if boot == nil {
		console.WriteString("boot services pointer is missing\r\n")
		return StatusNoBootServices
	}

	if boot.Allocator() == 0 {
		console.WriteString("allocator routine is missing\r\n")
		return StatusNoAllocator
	}

	console.WriteString("payload loader started\r\n")

	if len(l.Image) == 0 {
		console.WriteString("empty payload\r\n")
		return StatusEmptyPayload
	}

	pages := pageCount(len(l.Image))

	addr, err := boot.AllocatePages(
		uefi.AllocateAnyPages,
		uefi.EfiBootServicesCode,
		pages,
		0,
	)

	if err != nil {
		code := uint64(StatusAllocFailure)

		var status uefi.Status

		if errors.As(err, &status) {
			code = uint64(status)
		}

		console.WriteHex("allocation failed, status=", code)
		return code
	}

	if addr == 0 {
		console.WriteHex("allocation failed, addr=", 0)
		return StatusAllocFailure
	}

	console.WriteHex("exec=", addr)
	console.WriteHex("pages=", uint64(pages))

	ret, err := l.execute(view, console, addr)

	if err != nil {
		console.WriteString("payload installation failed\r\n")
		return StatusAllocFailure
	}

	console.WriteHex("ret=", ret)
	console.WriteString("done\r\n")

	return StatusSuccess
}

// execute installs the payload and transfers control to it as a single
// operation: the copy, the instruction cache barrier and the call are never
// exposed individually so that no path can reach freshly written code
// without the barrier.
func (l *Loader) execute(view *uefi.TableView, console *uefi.Console, addr uint64) (ret uint64, err error) {
	if err = install(addr, l.Image); err != nil {
		return
	}

	barrier := l.sync

	if barrier == nil {
		barrier = icacheSync
	}

	barrier()

	console.WriteString("calling payload\r\n")

	call := view.Caller()

	if call == nil {
		return 0, errors.New("service dispatcher is missing")
	}

	return call(addr, []uint64{l.Sentinel, 0, 0, 0, 0}), nil
}
