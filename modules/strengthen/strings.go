// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package strengthen

import (
	"strings"
)

// SimpleAtob parses the usual spellings of a boolean switch found in
// environment variables, falling back to dv.
func SimpleAtob(s string, dv bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	return dv
}
