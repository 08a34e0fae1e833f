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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabledProtocolsFromBytesDropsReservedBits(t *testing.T) {
	t.Parallel()
	got := enabledProtocolsFromBytes([]byte{0xFF, 0xFF, 0xFF, 0xFF})

	assert.Equal(t, protocols1Known, got.Protocols1)
	assert.Equal(t, protocols2Known, got.Protocols2)
	assert.Equal(t, protocols3Known, got.Protocols3)
	assert.Equal(t, protocols4Known, got.Protocols4)

	// Reserved bits never survive decoding.
	assert.Zero(t, byte(got.Protocols2)&(1<<5))
	assert.Zero(t, byte(got.Protocols4)&0x3C)
}

func TestProtocolsHas(t *testing.T) {
	t.Parallel()
	mask := Oregon | X10

	assert.True(t, mask.Has(Oregon))
	assert.True(t, mask.Has(Oregon|X10))
	assert.False(t, mask.Has(AC))
	assert.False(t, mask.Has(Oregon|AC))
	assert.True(t, Protocols3(0).Has(0))
}

func TestProtocolsString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(none)", Protocols1(0).String())
	assert.Equal(t, "Rubicson|Imagintronix", (Rubicson | Imagintronix).String())
	assert.Equal(t, "Oregon", Oregon.String())
	assert.Equal(t, "Keeloq|Funkbus", (Keeloq | Funkbus).String())

	// Reserved bits have no name and are skipped.
	assert.Equal(t, "Legrand", (Legrand | Protocols2(1<<5)).String())
}

func TestEnabledProtocolsString(t *testing.T) {
	t.Parallel()
	e := EnabledProtocols{Protocols3: Oregon, Protocols4: Keeloq}
	assert.Equal(t, "1:(none) 2:(none) 3:Oregon 4:Keeloq", e.String())
}
