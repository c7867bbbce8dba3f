// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package loader

// Payload is the default machine code image, a single return instruction
// (`jalr x0, x1, 0`). Executing it validates page allocation, installation
// and instruction fetch of freshly written memory, its return value is
// whatever the calling convention yields.
var Payload = []byte{
	0x67, 0x80, 0x00, 0x00, // ret
}
