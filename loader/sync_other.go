// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tamago

package loader

// Without a bare metal target no code is ever executed from freshly
// written memory and no barrier is required.
func icacheSync() {}
