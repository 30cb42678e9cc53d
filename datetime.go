// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import "fmt"

// DateTime is GDSII's six-field timestamp: year, month, day, hour,
// minute, second, each a signed 16-bit integer. The year is stored as-is
// (most producers write the literal year, not a century-biased offset);
// no calendar validation is performed and none is required for a
// round-trip to succeed.
type DateTime struct {
	Year, Month, Day, Hour, Minute, Second int16
}

func (d DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}
