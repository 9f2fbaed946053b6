// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package term

func (v Level) Green(s string) string {
	switch v {
	case Level16M:
		// #43e97a
		return "\x1b[38;2;67;233;123m" + s + "\x1b[0m"
	case Level256:
		return "\x1b[32m" + s + "\x1b[0m"
	default:
	}
	return s
}

func (v Level) Yellow(s string) string {
	switch v {
	case Level16M:
		// #fee240
		return "\x1b[38;2;254;225;64m" + s + "\x1b[0m"
	case Level256:
		return "\x1b[33m" + s + "\x1b[0m"
	default:
	}
	return s
}

func (v Level) Blue(s string) string {
	switch v {
	case Level16M:
		// #00c8ff
		return "\x1b[38;2;0;201;255m" + s + "\x1b[0m"
	case Level256:
		return "\x1b[34m" + s + "\x1b[0m"
	default:
	}
	return s
}
