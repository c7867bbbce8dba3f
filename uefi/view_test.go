// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"encoding/binary"
	"runtime"
	"testing"
)

func TestTableViewNullRoot(t *testing.T) {
	v, err := NewTableView(0, nil)

	if err != nil {
		t.Fatal(err)
	}

	if addr := v.ConOut(); addr != 0 {
		t.Fatalf("null root yielded ConOut %#x", addr)
	}

	if addr := v.BootServicesAddress(); addr != 0 {
		t.Fatalf("null root yielded BootServices %#x", addr)
	}

	if v.Boot() != nil {
		t.Fatal("null root yielded a Boot Services instance")
	}
}

func TestTableViewInvalidSignature(t *testing.T) {
	f := newFakeFirmware()
	binary.LittleEndian.PutUint64(f.table[0:], 0xbadc0ffee)

	if _, err := NewTableView(addrOf(f.table), f.call); err == nil {
		t.Fatal("invalid signature accepted")
	}

	runtime.KeepAlive(f)
}

func TestTableViewInvalidSize(t *testing.T) {
	f := newFakeFirmware()
	binary.LittleEndian.PutUint32(f.table[12:], 24)

	if _, err := NewTableView(addrOf(f.table), f.call); err == nil {
		t.Fatal("undersized table accepted")
	}

	runtime.KeepAlive(f)
}

func TestTableViewOffsets(t *testing.T) {
	f := newFakeFirmware()

	v, err := NewTableView(addrOf(f.table), f.call)

	if err != nil {
		t.Fatal(err)
	}

	if addr := v.ConOut(); addr != addrOf(f.conOut) {
		t.Fatalf("ConOut %#x, expected %#x", addr, addrOf(f.conOut))
	}

	if addr := v.BootServicesAddress(); addr != addrOf(f.boot) {
		t.Fatalf("BootServices %#x, expected %#x", addr, addrOf(f.boot))
	}

	if v.Boot() == nil {
		t.Fatal("missing Boot Services instance")
	}

	runtime.KeepAlive(f)
}

func TestTableViewMissingBootServices(t *testing.T) {
	f := newFakeFirmware()
	binary.LittleEndian.PutUint64(f.table[bootServicesOffset:], 0)

	v, err := NewTableView(addrOf(f.table), f.call)

	if err != nil {
		t.Fatal(err)
	}

	if v.Boot() != nil {
		t.Fatal("null Boot Services pointer yielded an instance")
	}

	runtime.KeepAlive(f)
}
