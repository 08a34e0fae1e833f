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
	"fmt"

	"github.com/fredrik-jansson-se/rfxtrx433/internal/frame"
)

// PacketType is the 8-bit tag identifying what a frame carries. The value
// set is fixed by the device firmware.
type PacketType byte

// Packet types understood by the device.
const (
	PacketInterfaceControl PacketType = 0x00
	PacketInterfaceMessage PacketType = 0x01
	PacketRecXmitMessage   PacketType = 0x02
	PacketUndecoded        PacketType = 0x03
	PacketLighting1        PacketType = 0x10
	PacketLighting2        PacketType = 0x11
	PacketLighting3        PacketType = 0x12
	PacketLighting4        PacketType = 0x13
	PacketLighting5        PacketType = 0x14
	PacketLighting6        PacketType = 0x15
	PacketChime            PacketType = 0x16
	PacketFan              PacketType = 0x17
	PacketCurtain          PacketType = 0x18
	PacketBlinds           PacketType = 0x19
	PacketRFY              PacketType = 0x1A
	PacketHomeConfort      PacketType = 0x1B
	PacketFunkbus          PacketType = 0x1E
	PacketHunter           PacketType = 0x1F
	PacketSecurity1        PacketType = 0x20
	PacketSecurity2        PacketType = 0x21
	PacketCamera           PacketType = 0x28
	PacketRemote           PacketType = 0x30
	PacketThermostat1      PacketType = 0x40
	PacketThermostat2      PacketType = 0x41
	PacketThermostat3      PacketType = 0x42
	PacketThermostat4      PacketType = 0x43
	PacketRadiator1        PacketType = 0x48
	PacketBBQ              PacketType = 0x4E
	PacketTempRain         PacketType = 0x4F
	PacketTemp             PacketType = 0x50
	PacketHum              PacketType = 0x51
	PacketTempHum          PacketType = 0x52
	PacketBaro             PacketType = 0x53
	PacketTempHumBaro      PacketType = 0x54
	PacketRain             PacketType = 0x55
	PacketWind             PacketType = 0x56
	PacketUV               PacketType = 0x57
	PacketDateTime         PacketType = 0x58
	PacketCurrent          PacketType = 0x59
	PacketEnergy           PacketType = 0x5A
	PacketCurrentEnergy    PacketType = 0x5B
	PacketPower            PacketType = 0x5C
	PacketWeight           PacketType = 0x5D
	PacketGas              PacketType = 0x5E
	PacketWater            PacketType = 0x5F
	PacketCartElectronic   PacketType = 0x60
	PacketAsyncPort        PacketType = 0x61
	PacketAsyncData        PacketType = 0x62
	PacketRFXSensor        PacketType = 0x70
	PacketRFXMeter         PacketType = 0x71
	PacketFS20             PacketType = 0x72
	PacketWeather          PacketType = 0x76
	PacketSolar            PacketType = 0x77
	PacketRaw              PacketType = 0x7F
)

var packetTypeNames = map[PacketType]string{
	PacketInterfaceControl: "InterfaceControl",
	PacketInterfaceMessage: "InterfaceMessage",
	PacketRecXmitMessage:   "RecXmitMessage",
	PacketUndecoded:        "Undecoded",
	PacketLighting1:        "Lighting1",
	PacketLighting2:        "Lighting2",
	PacketLighting3:        "Lighting3",
	PacketLighting4:        "Lighting4",
	PacketLighting5:        "Lighting5",
	PacketLighting6:        "Lighting6",
	PacketChime:            "Chime",
	PacketFan:              "Fan",
	PacketCurtain:          "Curtain",
	PacketBlinds:           "Blinds",
	PacketRFY:              "RFY",
	PacketHomeConfort:      "HomeConfort",
	PacketFunkbus:          "Funkbus",
	PacketHunter:           "Hunter",
	PacketSecurity1:        "Security1",
	PacketSecurity2:        "Security2",
	PacketCamera:           "Camera",
	PacketRemote:           "Remote",
	PacketThermostat1:      "Thermostat1",
	PacketThermostat2:      "Thermostat2",
	PacketThermostat3:      "Thermostat3",
	PacketThermostat4:      "Thermostat4",
	PacketRadiator1:        "Radiator1",
	PacketBBQ:              "BBQ",
	PacketTempRain:         "TempRain",
	PacketTemp:             "Temp",
	PacketHum:              "Hum",
	PacketTempHum:          "TempHum",
	PacketBaro:             "Baro",
	PacketTempHumBaro:      "TempHumBaro",
	PacketRain:             "Rain",
	PacketWind:             "Wind",
	PacketUV:               "UV",
	PacketDateTime:         "DateTime",
	PacketCurrent:          "Current",
	PacketEnergy:           "Energy",
	PacketCurrentEnergy:    "CurrentEnergy",
	PacketPower:            "Power",
	PacketWeight:           "Weight",
	PacketGas:              "Gas",
	PacketWater:            "Water",
	PacketCartElectronic:   "CartElectronic",
	PacketAsyncPort:        "AsyncPort",
	PacketAsyncData:        "AsyncData",
	PacketRFXSensor:        "RFXSensor",
	PacketRFXMeter:         "RFXMeter",
	PacketFS20:             "FS20",
	PacketWeather:          "Weather",
	PacketSolar:            "Solar",
	PacketRaw:              "Raw",
}

func (p PacketType) String() string {
	if name, ok := packetTypeNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PacketType(0x%02X)", byte(p))
}

// Header is the three-byte header every frame carries after the length
// prefix. The device echoes the sequence number of the triggering command
// in its replies; the library logs it but correlates replies by channel
// order, since the device answers control frames strictly in FIFO order.
type Header struct {
	Type    PacketType
	SubType byte
	SeqNbr  byte
}

func (h Header) String() string {
	return fmt.Sprintf("%v sub-type 0x%02X seqnbr 0x%02X", h.Type, h.SubType, h.SeqNbr)
}

// parseHeader splits a frame body into its header and remaining payload.
// The same header format is used in both directions.
func parseHeader(data []byte) (Header, []byte, error) {
	if len(data) < frame.HeaderSize {
		return Header{}, nil, &NotEnoughDataError{Received: len(data), Expected: frame.HeaderSize}
	}
	packetType := PacketType(data[0])
	if _, ok := packetTypeNames[packetType]; !ok {
		return Header{}, nil, UnknownPacketTypeError(data[0])
	}
	header := Header{
		Type:    packetType,
		SubType: data[1],
		SeqNbr:  data[2],
	}
	return header, data[frame.HeaderSize:], nil
}
