// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package loader

import (
	"testing"
)

func TestPageCount(t *testing.T) {
	for _, tt := range []struct {
		length int
		pages  int
	}{
		{1, 1},
		{4, 1},
		{4095, 1},
		{4096, 1},
		{4097, 2},
		{8192, 2},
		{12289, 4},
	} {
		if pages := pageCount(tt.length); pages != tt.pages {
			t.Errorf("pageCount(%d) = %d, expected %d", tt.length, pages, tt.pages)
		}
	}
}

func TestDefaultPayload(t *testing.T) {
	if len(Payload) == 0 {
		t.Fatal("empty default payload")
	}

	if pages := pageCount(len(Payload)); pages != 1 {
		t.Fatalf("default payload spans %d pages", pages)
	}
}
