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

// InterfaceMessage is a control-plane reply from the device. It is a
// closed set: StatusMessage, SetModeAck, SaveAck and ReceiverStartedAck
// are the only implementations.
type InterfaceMessage interface {
	isInterfaceMessage()
}

// StatusMessage is the reply to a status request.
type StatusMessage struct {
	Frequency        Frequency
	FirmwareVersion  byte
	EnabledProtocols EnabledProtocols
}

func (StatusMessage) isInterfaceMessage() {}

func (m StatusMessage) String() string {
	return fmt.Sprintf("status: %v, firmware %d, protocols %v",
		m.Frequency, m.FirmwareVersion, m.EnabledProtocols)
}

// SetModeAck acknowledges a set-mode command.
type SetModeAck struct{}

func (SetModeAck) isInterfaceMessage() {}

// SaveAck acknowledges a save command.
type SaveAck struct{}

func (SaveAck) isInterfaceMessage() {}

// ReceiverStartedAck acknowledges a start-receiver command.
type ReceiverStartedAck struct{}

func (ReceiverStartedAck) isInterfaceMessage() {}

// Interface message sub-types.
const (
	subTypeInterfaceResponse     byte = 0x00
	subTypeUnknownRFYRemote      byte = 0x01
	subTypeExtError              byte = 0x02
	subTypeRFYRemoteList         byte = 0x03
	subTypeASARemoteList         byte = 0x04
	subTypeRecStarted            byte = 0x07
	subTypeInterfaceWrongCommand byte = 0xFF
)

var interfaceSubTypeNames = map[byte]string{
	subTypeInterfaceResponse:     "InterfaceResponse",
	subTypeUnknownRFYRemote:      "UnknownRFYRemote",
	subTypeExtError:              "ExtError",
	subTypeRFYRemoteList:         "RFYRemoteList",
	subTypeASARemoteList:         "ASARemoteList",
	subTypeRecStarted:            "RecStarted",
	subTypeInterfaceWrongCommand: "InterfaceWrongCommand",
}

// statusBodyLen is the minimum InterfaceResponse body for a status reply:
// command echo, frequency, firmware version and four protocol masks.
const statusBodyLen = 7

// parseInterfaceMessage decodes the body of an InterfaceMessage frame.
func parseInterfaceMessage(header Header, body []byte) (InterfaceMessage, error) {
	name, known := interfaceSubTypeNames[header.SubType]
	if !known {
		return nil, &UnknownSubTypeError{PacketType: header.Type, SubType: header.SubType}
	}

	switch header.SubType {
	case subTypeRecStarted:
		return ReceiverStartedAck{}, nil
	case subTypeInterfaceResponse:
		return parseInterfaceResponse(body)
	default:
		// Defined by the firmware but never produced during the control
		// flow this library drives.
		return nil, fmt.Errorf("unhandled interface message sub-type %s", name)
	}
}

// parseInterfaceResponse decodes an InterfaceResponse body. The first
// byte echoes the command the device is replying to.
func parseInterfaceResponse(body []byte) (InterfaceMessage, error) {
	if len(body) < 1 {
		return nil, &NotEnoughDataError{Received: len(body), Expected: 1}
	}

	switch body[0] {
	case cmdGetStatus:
		if len(body) < statusBodyLen {
			return nil, &NotEnoughDataError{Received: len(body), Expected: statusBodyLen}
		}
		frequency, err := frequencyFromByte(body[1])
		if err != nil {
			return nil, err
		}
		return StatusMessage{
			Frequency:        frequency,
			FirmwareVersion:  body[2],
			EnabledProtocols: enabledProtocolsFromBytes(body[3:statusBodyLen]),
		}, nil
	case cmdSetMode:
		return SetModeAck{}, nil
	case cmdSave:
		return SaveAck{}, nil
	default:
		return nil, UnknownCommandError(body[0])
	}
}
