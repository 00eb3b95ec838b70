// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package logging

import "strings"

// maxLoggedValueLen bounds user-controlled strings written to the log.
const maxLoggedValueLen = 128

// SanitizeValue strips control characters (log forging) from user input and
// truncates it before it is attached to a log event.
func SanitizeValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	n := 0
	for _, r := range s {
		if n >= maxLoggedValueLen {
			b.WriteString("...")
			break
		}
		if r < 0x20 || r == 0x7f {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
		n++
	}
	return b.String()
}
