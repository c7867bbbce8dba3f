// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"encoding/binary"
	"runtime"
	"strings"
	"testing"
)

func fakeConsole(f *fakeFirmware) *Console {
	return &Console{
		Out:  addrOf(f.conOut),
		Call: f.call,
	}
}

func TestWriteHex(t *testing.T) {
	f := newFakeFirmware()

	fakeConsole(f).WriteHex("X=", 0xdeadbeef12345678)

	if expected := "X=0xDEADBEEF12345678\r\n"; f.text != expected {
		t.Fatalf("got %q, expected %q", f.text, expected)
	}

	runtime.KeepAlive(f)
}

func TestWriteHexZeroPadding(t *testing.T) {
	f := newFakeFirmware()

	fakeConsole(f).WriteHex("", 0x1)

	if expected := "0x0000000000000001\r\n"; f.text != expected {
		t.Fatalf("got %q, expected %q", f.text, expected)
	}

	runtime.KeepAlive(f)
}

func TestWriteStringASCII(t *testing.T) {
	f := newFakeFirmware()

	s := strings.Repeat("a", 128) + "\x7f\x01"
	fakeConsole(f).WriteString(s)

	if f.text != s {
		t.Fatalf("lossy output, got %q", f.text)
	}

	if n := f.units[0]; n != len(s)+1 {
		t.Fatalf("got %d code units, expected %d", n, len(s)+1)
	}

	runtime.KeepAlive(f)
}

func TestWriteStringTruncation(t *testing.T) {
	f := newFakeFirmware()

	fakeConsole(f).WriteString(strings.Repeat("b", 300))

	if len(f.text) != maxOutputUnits-1 {
		t.Fatalf("got %d visible units, expected %d", len(f.text), maxOutputUnits-1)
	}

	if n := f.units[0]; n != maxOutputUnits {
		t.Fatalf("got %d code units, expected %d", n, maxOutputUnits)
	}

	runtime.KeepAlive(f)
}

func TestConsoleAbsentIsSilent(t *testing.T) {
	f := newFakeFirmware()

	c := fakeConsole(f)
	c.Out = 0
	c.WriteString("lost")

	// null routine slot
	c = fakeConsole(f)
	binary.LittleEndian.PutUint64(f.conOut[outputString:], 0)
	c.WriteString("lost")

	if f.text != "" {
		t.Fatalf("absent console produced output %q", f.text)
	}

	runtime.KeepAlive(f)
}

func TestConsoleWriter(t *testing.T) {
	f := newFakeFirmware()

	c := fakeConsole(f)
	c.ForceLine = true

	n, err := c.Write([]byte("a\nb\n"))

	if err != nil {
		t.Fatal(err)
	}

	if n != 4 {
		t.Fatalf("got %d, expected 4", n)
	}

	if expected := "a\r\nb\r\n"; f.text != expected {
		t.Fatalf("got %q, expected %q", f.text, expected)
	}

	runtime.KeepAlive(f)
}
