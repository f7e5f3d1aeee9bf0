// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package slot - network time
//
// transaction timestamps count whole seconds from the network epoch
package slot

import (
	"time"
)

// Epoch - start of network time: 2017-03-21 13:00:00 UTC
var Epoch = time.Date(2017, time.March, 21, 13, 0, 0, 0, time.UTC)

// Now - the current time in epoch units
func Now() uint32 {
	return FromTime(time.Now())
}

// FromTime - convert a wall clock time to epoch units
//
// times before the epoch clamp to zero
func FromTime(t time.Time) uint32 {
	d := t.Sub(Epoch)
	if d < 0 {
		return 0
	}
	return uint32(d / time.Second)
}

// ToTime - convert epoch units back to a wall clock time
func ToTime(timestamp uint32) time.Time {
	return Epoch.Add(time.Duration(timestamp) * time.Second)
}
