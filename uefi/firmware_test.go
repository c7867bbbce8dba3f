// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"encoding/binary"
	"unicode/utf16"
	"unsafe"
)

// Routine tokens dispatched by the fake service caller, they stand in for
// firmware routine addresses stored in the table slots.
const (
	fakeOutputString  = 0xffee0001
	fakeAllocatePages = 0xffee0002
)

// fakeFirmware lays out an EFI System Table, a Simple Text Output protocol
// and a Boot Services table in process memory, so that fixed offset reads
// resolve against real pointers, while routine invocations are captured by
// its service caller.
type fakeFirmware struct {
	table  []byte
	conOut []byte
	boot   []byte

	// captured console output, UCS-2 decoded
	text string
	// captured console code unit counts, terminator included
	units []int

	// AllocatePages behavior and captures
	allocStatus uint64
	allocAddr   uint64
	allocCalls  int
	allocArgs   []uint64
}

func addrOf(b []byte) uint64 {
	return uint64(uintptr(unsafe.Pointer(&b[0])))
}

func peek16(addr uint64) uint16 {
	return *(*uint16)(unsafe.Pointer(uintptr(addr)))
}

func poke64(addr uint64, val uint64) {
	*(*uint64)(unsafe.Pointer(uintptr(addr))) = val
}

func newFakeFirmware() *fakeFirmware {
	f := &fakeFirmware{
		table:  make([]byte, 128),
		conOut: make([]byte, 16),
		boot:   make([]byte, 256),
	}

	binary.LittleEndian.PutUint64(f.table[0:], signature)
	binary.LittleEndian.PutUint32(f.table[12:], uint32(len(f.table)))

	binary.LittleEndian.PutUint64(f.table[conOutOffset:], addrOf(f.conOut))
	binary.LittleEndian.PutUint64(f.table[bootServicesOffset:], addrOf(f.boot))

	binary.LittleEndian.PutUint64(f.conOut[outputString:], fakeOutputString)
	binary.LittleEndian.PutUint64(f.boot[allocatePages:], fakeAllocatePages)

	return f
}

// call implements Caller over the fake routine tokens.
func (f *fakeFirmware) call(fn uint64, args []uint64) (status uint64) {
	switch fn {
	case fakeOutputString:
		var u []uint16

		for addr := args[1]; ; addr += 2 {
			c := peek16(addr)

			if c == 0x0000 {
				break
			}

			u = append(u, c)
		}

		f.text += string(utf16.Decode(u))
		f.units = append(f.units, len(u)+1)
	case fakeAllocatePages:
		f.allocCalls++
		f.allocArgs = append([]uint64{}, args...)

		if f.allocStatus != 0 {
			return f.allocStatus
		}

		poke64(args[3], f.allocAddr)
	}

	return
}
