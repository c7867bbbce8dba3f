// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tamago

package uefi

// Native firmware service dispatch requires the tamago runtime, on any
// other target a Caller must be set explicitly (see package tests).
var nativeCaller Caller
