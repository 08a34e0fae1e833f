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

import "strings"

// The device exposes its receiver protocol selection as four independent
// 8-bit masks. Bit assignments are fixed by the firmware; bits marked
// reserved in the firmware documentation carry no meaning and are
// discarded when decoding status replies.

// Protocols1 is the first protocol enable mask.
type Protocols1 byte

// Protocols1 flags.
const (
	AE           Protocols1 = 1 << 0 // AE Blyss
	Rubicson     Protocols1 = 1 << 1 // Rubicson, Lacrosse, Banggood
	FineOffset   Protocols1 = 1 << 2 // FineOffset, Viking
	Lighting4    Protocols1 = 1 << 3 // PT2262 and compatibles
	RSL          Protocols1 = 1 << 4 // RSL, Revolt
	SX           Protocols1 = 1 << 5 // ByronSX, Selectplus
	Imagintronix Protocols1 = 1 << 6 // Imagintronix, Opus
	Undecoded    Protocols1 = 1 << 7 // forward undecoded messages
)

// Protocols2 is the second protocol enable mask. Bit 5 is reserved.
type Protocols2 byte

// Protocols2 flags.
const (
	Mertik   Protocols2 = 1 << 0 // Mertik Maxitrol
	LWRF     Protocols2 = 1 << 1 // AD LightwaveRF
	Hideki   Protocols2 = 1 << 2 // Hideki
	LaCrosse Protocols2 = 1 << 3 // LaCrosse
	Legrand  Protocols2 = 1 << 4 // Legrand CAD
	BlindsT0 Protocols2 = 1 << 6 // Rollertrol, Hasta new
	BlindsT1 Protocols2 = 1 << 7 // BlindsT1-4
)

// Protocols3 is the third protocol enable mask.
type Protocols3 byte

// Protocols3 flags.
const (
	X10        Protocols3 = 1 << 0 // X10
	ARC        Protocols3 = 1 << 1 // ARC
	AC         Protocols3 = 1 << 2 // AC
	HomeEasyEU Protocols3 = 1 << 3 // HomeEasy EU
	Meiantech  Protocols3 = 1 << 4 // Meiantech, Atlantic
	Oregon     Protocols3 = 1 << 5 // Oregon Scientific
	ATI        Protocols3 = 1 << 6 // ATI remotes
	Visonic    Protocols3 = 1 << 7 // Visonic PowerCode
)

// Protocols4 is the fourth protocol enable mask. Bits 2 through 5 are
// reserved.
type Protocols4 byte

// Protocols4 flags.
const (
	Keeloq      Protocols4 = 1 << 0 // Keeloq
	HomeConfort Protocols4 = 1 << 1 // HomeConfort
	MCZ         Protocols4 = 1 << 6 // MCZ
	Funkbus     Protocols4 = 1 << 7 // Funkbus
)

// Masks of the bits that carry a defined meaning.
const (
	protocols1Known = AE | Rubicson | FineOffset | Lighting4 | RSL | SX | Imagintronix | Undecoded
	protocols2Known = Mertik | LWRF | Hideki | LaCrosse | Legrand | BlindsT0 | BlindsT1
	protocols3Known = X10 | ARC | AC | HomeEasyEU | Meiantech | Oregon | ATI | Visonic
	protocols4Known = Keeloq | HomeConfort | MCZ | Funkbus
)

// Has reports whether every flag in flags is set.
func (p Protocols1) Has(flags Protocols1) bool { return p&flags == flags }

// Has reports whether every flag in flags is set.
func (p Protocols2) Has(flags Protocols2) bool { return p&flags == flags }

// Has reports whether every flag in flags is set.
func (p Protocols3) Has(flags Protocols3) bool { return p&flags == flags }

// Has reports whether every flag in flags is set.
func (p Protocols4) Has(flags Protocols4) bool { return p&flags == flags }

func (p Protocols1) String() string {
	return flagString(byte(p), []string{
		"AE", "Rubicson", "FineOffset", "Lighting4", "RSL", "SX", "Imagintronix", "Undecoded",
	})
}

func (p Protocols2) String() string {
	return flagString(byte(p), []string{
		"Mertik", "LWRF", "Hideki", "LaCrosse", "Legrand", "", "BlindsT0", "BlindsT1",
	})
}

func (p Protocols3) String() string {
	return flagString(byte(p), []string{
		"X10", "ARC", "AC", "HomeEasyEU", "Meiantech", "Oregon", "ATI", "Visonic",
	})
}

func (p Protocols4) String() string {
	return flagString(byte(p), []string{
		"Keeloq", "HomeConfort", "", "", "", "", "MCZ", "Funkbus",
	})
}

// flagString renders a mask as the names of its set bits joined by "|".
// names holds one entry per bit, low bit first; empty names mark reserved
// bits.
func flagString(mask byte, names []string) string {
	if mask == 0 {
		return "(none)"
	}
	var set []string
	for bit, name := range names {
		if mask&(1<<bit) != 0 && name != "" {
			set = append(set, name)
		}
	}
	return strings.Join(set, "|")
}

// EnabledProtocols is the full protocol selection, as reported in status
// replies and as handed to SetMode.
type EnabledProtocols struct {
	Protocols1 Protocols1
	Protocols2 Protocols2
	Protocols3 Protocols3
	Protocols4 Protocols4
}

// enabledProtocolsFromBytes decodes the four mask bytes of a status
// reply. Reserved bits are discarded.
func enabledProtocolsFromBytes(data []byte) EnabledProtocols {
	return EnabledProtocols{
		Protocols1: Protocols1(data[0]) & protocols1Known,
		Protocols2: Protocols2(data[1]) & protocols2Known,
		Protocols3: Protocols3(data[2]) & protocols3Known,
		Protocols4: Protocols4(data[3]) & protocols4Known,
	}
}

func (e EnabledProtocols) String() string {
	return "1:" + e.Protocols1.String() +
		" 2:" + e.Protocols2.String() +
		" 3:" + e.Protocols3.String() +
		" 4:" + e.Protocols4.String()
}
