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

import "fmt"

// Frequency identifies the transceiver or receiver band variant of the
// hardware. It is reported in status replies and selected with SetMode.
type Frequency byte

// Frequency variants.
const (
	FreqTrx310   Frequency = 0x50 // 310 MHz transceiver
	FreqTrx315   Frequency = 0x51 // 315 MHz transceiver
	FreqRec43392 Frequency = 0x52 // 433.92 MHz receiver
	FreqTrx43392 Frequency = 0x53 // 433.92 MHz transceiver
	FreqRec43342 Frequency = 0x54 // 433.42 MHz receiver
	FreqTrx868   Frequency = 0x55 // 868 MHz transceiver
	FreqRec43450 Frequency = 0x5F // 434.50 MHz receiver
)

// DefaultFrequency is the 433.92 MHz transceiver, the common RFXtrx433
// hardware variant.
const DefaultFrequency = FreqTrx43392

var frequencyNames = map[Frequency]string{
	FreqTrx310:   "310 MHz transceiver",
	FreqTrx315:   "315 MHz transceiver",
	FreqRec43392: "433.92 MHz receiver",
	FreqTrx43392: "433.92 MHz transceiver",
	FreqRec43342: "433.42 MHz receiver",
	FreqTrx868:   "868 MHz transceiver",
	FreqRec43450: "434.50 MHz receiver",
}

func (f Frequency) String() string {
	if name, ok := frequencyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Frequency(0x%02X)", byte(f))
}

func frequencyFromByte(b byte) (Frequency, error) {
	f := Frequency(b)
	if _, ok := frequencyNames[f]; !ok {
		return 0, UnknownFrequencyError(b)
	}
	return f, nil
}
