// Copyright (c) The go-payload authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"log"
	"runtime"
	"time"

	"github.com/hako/durafmt"

	"github.com/bootlace/go-payload/loader"
)

func init() {
	log.SetFlags(0)
}

func main() {
	log.Printf("%s/%s (%s) • UEFI payload loader",
		runtime.GOOS, runtime.GOARCH, runtime.Version())

	report()

	l := &loader.Loader{
		Handle:   services().ImageHandle(),
		Table:    services().Address(),
		Image:    loader.Payload,
		Sentinel: loader.DefaultSentinel,
	}

	start := time.Now()
	status := l.Run()

	log.Printf("payload sequence returned %#x after %s",
		status, durafmt.Parse(time.Since(start)))

	if err := services().Boot.Exit(status); err != nil {
		log.Printf("could not exit to firmware, %v", err)
	}

	runtime.Exit(0)
}
