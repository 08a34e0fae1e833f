// rfxtrx433
// Copyright (c) 2026 The rfxtrx433 Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of rfxtrx433.
//
// rfxtrx433 is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// rfxtrx433 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with rfxtrx433; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package rfxtrx433

import (
	"log"
	"sync/atomic"
)

var debugEnabled atomic.Bool

// SetDebugEnabled toggles debug logging for the whole package. Debug
// output goes to the standard logger and includes every frame sent and
// received, which is noisy; it is meant for protocol troubleshooting.
func SetDebugEnabled(enabled bool) {
	debugEnabled.Store(enabled)
}

// DebugEnabled reports whether debug logging is currently enabled.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

func debugf(format string, args ...any) {
	if debugEnabled.Load() {
		log.Printf("rfxtrx433: "+format, args...)
	}
}

func debugln(args ...any) {
	if debugEnabled.Load() {
		log.Println(append([]any{"rfxtrx433:"}, args...)...)
	}
}
