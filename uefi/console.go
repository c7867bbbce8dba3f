// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"strings"
)

// EFI ConOut offset for OutputString
const outputString = 0x08

// maxOutputUnits bounds a single OutputString call, 259 visible UCS-2
// units plus the terminator.
const maxOutputUnits = 260

const hexDigits = "0123456789ABCDEF"

// Console implements the [io.Writer] interface over the EFI Simple Text
// Output protocol.
//
// Diagnostics must never abort the sequence they describe: every output
// operation silently does nothing when the protocol instance, its
// OutputString routine or the service dispatcher are missing.
type Console struct {
	// Out is the SIMPLE_TEXT_OUTPUT_PROTOCOL instance pointer.
	Out uint64

	// Call overrides the native service dispatcher.
	Call Caller

	// ForceLine controls whether line feeds (LF) should be supplemented
	// with a carriage return (CR) on [Console.Write].
	ForceLine bool
}

func (c *Console) caller() Caller {
	if c.Call != nil {
		return c.Call
	}

	return nativeCaller
}

// Output invokes OutputString with a null-terminated UCS-2 sequence, the
// terminator is appended when missing.
func (c *Console) Output(s []uint16) (status uint64) {
	call := c.caller()

	if c.Out == 0 || call == nil {
		return
	}

	// resolve and null check the routine slot before dispatch
	fn := peek(c.Out + outputString)

	if fn == 0 {
		return
	}

	if len(s) == 0 || s[len(s)-1] != 0x0000 {
		s = append(s, 0x0000)
	}

	return call(fn, []uint64{c.Out, ptrval(&s[0])})
}

// WriteString outputs an ASCII string, each byte is zero-extended to an
// UCS-2 code unit with no general Unicode handling. Longer strings are
// truncated to the output call bound, not rejected.
func (c *Console) WriteString(s string) {
	n := len(s)

	if n > maxOutputUnits-1 {
		n = maxOutputUnits - 1
	}

	buf := make([]uint16, 0, n+1)

	for i := 0; i < n; i++ {
		buf = append(buf, uint16(s[i]))
	}

	c.Output(append(buf, 0x0000))
}

// WriteHex outputs an optional label followed by the argument value as
// `0x` and exactly 16 uppercase hexadecimal digits, most significant
// nybble first, terminated by CRLF.
func (c *Console) WriteHex(label string, val uint64) {
	if label != "" {
		c.WriteString(label)
	}

	b := make([]byte, 0, 20)
	b = append(b, '0', 'x')

	for i := 15; i >= 0; i-- {
		b = append(b, hexDigits[(val>>(i*4))&0xf])
	}

	c.WriteString(string(append(b, '\r', '\n')))
}

// Write outputs data from buffer to console.
func (c *Console) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return
	}

	s := string(p)

	if c.ForceLine {
		s = strings.ReplaceAll(s, "\n", "\r\n")
	}

	for len(s) > 0 {
		chunk := s

		if len(chunk) > maxOutputUnits-1 {
			chunk = s[:maxOutputUnits-1]
		}

		c.WriteString(chunk)
		s = s[len(chunk):]
	}

	return len(p), nil
}
