// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package term

import (
	"github.com/acarl005/stripansi"
	"github.com/rivo/uniseg"
)

const (
	// EraseLine moves the cursor back to column zero so the next write
	// overdraws the current line.
	EraseLine = "\r"
)

func StripANSI(s string) string {
	return stripansi.Strip(s)
}

// DisplayWidth returns the number of terminal cells s occupies once its
// escape sequences are removed.
func DisplayWidth(s string) int {
	return uniseg.StringWidth(stripansi.Strip(s))
}
