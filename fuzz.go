// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

// Fuzz is the legacy go-fuzz entrypoint: it reports 1 when data parses as
// a well-formed library, 0 otherwise (including a parse error, which is
// an uninteresting result rather than a crash).
func Fuzz(data []byte) int {
	lib, err := ReadBytes(data, &Options{Fast: false})
	if err != nil {
		return 0
	}
	if lib == nil {
		return 0
	}
	return 1
}
