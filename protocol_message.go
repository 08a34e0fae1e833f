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
	"encoding/binary"
	"fmt"
)

// ProtocolMessage is a decoded sensor-plane message forwarded by the
// device from the air. Sensor types without a dedicated decoder are
// delivered as NotParsed.
type ProtocolMessage interface {
	isProtocolMessage()
}

// TempHum is a reading from a combined temperature and humidity sensor.
type TempHum struct {
	// ID identifies the sending sensor. Most sensors pick a new random
	// ID when their battery is changed.
	ID uint16
	// Temp is the temperature in degrees Celsius, 0.1 degree resolution.
	Temp float32
	// Humidity is the relative humidity in percent.
	Humidity byte
	// HumidityStatus is the device-defined comfort code.
	HumidityStatus byte
	// BatteryLevel ranges from 0 (empty) to 15.
	BatteryLevel byte
	// RSSI is the received signal strength, 0 to 15.
	RSSI byte
}

func (TempHum) isProtocolMessage() {}

func (t TempHum) String() string {
	return fmt.Sprintf("temp/hum sensor 0x%04X: %.1f°C %d%% (status %d, battery %d, rssi %d)",
		t.ID, t.Temp, t.Humidity, t.HumidityStatus, t.BatteryLevel, t.RSSI)
}

// NotParsed carries a frame of a known packet type the library has no
// dedicated decoder for. Data is the frame payload after the header.
type NotParsed struct {
	Header Header
	Data   []byte
}

func (NotParsed) isProtocolMessage() {}

func (n NotParsed) String() string {
	return fmt.Sprintf("not parsed: %v, % 02X", n.Header, n.Data)
}

// tempHumBodyLen is the fixed sensor payload: two id bytes, two
// temperature bytes, humidity, humidity status and battery/rssi.
const tempHumBodyLen = 7

// parseTempHum decodes a temperature/humidity sensor body. The
// temperature is sign-magnitude: high bit of the first temperature byte
// is the sign, the remaining 15 bits are tenths of a degree.
func parseTempHum(body []byte) (TempHum, error) {
	if len(body) < tempHumBodyLen {
		return TempHum{}, &NotEnoughDataError{Received: len(body), Expected: tempHumBodyLen}
	}

	magnitude := int16(body[2]&0x7F)<<8 | int16(body[3])
	temp := float32(magnitude) / 10.0
	if body[2]&0x80 != 0 {
		temp = -temp
	}

	return TempHum{
		ID:             binary.BigEndian.Uint16(body[0:2]),
		Temp:           temp,
		Humidity:       body[4],
		HumidityStatus: body[5],
		BatteryLevel:   body[6] >> 4,
		RSSI:           body[6] & 0x0F,
	}, nil
}

// parseMessage decodes one deframed body and classifies it onto a plane.
// Exactly one of the returned messages is non-nil on success.
func parseMessage(data []byte) (InterfaceMessage, ProtocolMessage, error) {
	header, body, err := parseHeader(data)
	if err != nil {
		return nil, nil, err
	}

	switch header.Type {
	case PacketInterfaceMessage:
		msg, err := parseInterfaceMessage(header, body)
		if err != nil {
			return nil, nil, err
		}
		return msg, nil, nil
	case PacketTempHum:
		msg, err := parseTempHum(body)
		if err != nil {
			return nil, nil, err
		}
		return nil, msg, nil
	default:
		// Every other known packet type is an unsolicited sensor frame.
		return nil, NotParsed{Header: header, Data: append([]byte(nil), body...)}, nil
	}
}
