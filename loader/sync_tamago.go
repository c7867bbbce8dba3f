// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package loader

// icacheSync makes previously written memory observable as valid
// instructions by the current execution context, it must separate any
// write of code from its first fetch.
//
// defined in sync_amd64.s and sync_riscv64.s
func icacheSync()
