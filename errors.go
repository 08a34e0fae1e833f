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
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrShutdown is returned by operations that were waiting on the link
	// when it shut down. The device is unusable afterwards.
	ErrShutdown = errors.New("link was shut down during operation")

	// ErrDeviceNotFound indicates that no serial port matched the
	// requested USB serial number.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceNotFoundError reports that no attached USB serial port carries the
// requested serial number. It wraps ErrDeviceNotFound.
type DeviceNotFoundError struct {
	Serial string
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("no device with serial number %s found", e.Serial)
}

// Unwrap returns ErrDeviceNotFound for errors.Is matching.
func (*DeviceNotFoundError) Unwrap() error {
	return ErrDeviceNotFound
}

// NotEnoughDataError reports a frame body shorter than its decoder
// requires. It is a per-frame condition: the frame is dropped and the link
// keeps running.
type NotEnoughDataError struct {
	Received int
	Expected int
}

func (e *NotEnoughDataError) Error() string {
	return fmt.Sprintf("expected %d bytes, received %d bytes", e.Expected, e.Received)
}

// UnknownPacketTypeError reports a packet type byte with no registered
// decoder mapping.
type UnknownPacketTypeError byte

func (e UnknownPacketTypeError) Error() string {
	return fmt.Sprintf("unknown packet type: 0x%02X", byte(e))
}

// UnknownSubTypeError reports a sub-type byte that is not defined for the
// packet type carrying it.
type UnknownSubTypeError struct {
	PacketType PacketType
	SubType    byte
}

func (e *UnknownSubTypeError) Error() string {
	return fmt.Sprintf("unknown sub-type 0x%02X for packet type %v", e.SubType, e.PacketType)
}

// UnknownCommandError reports an interface message echoing a command code
// the library never sends.
type UnknownCommandError byte

func (e UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown interface message command: 0x%02X", byte(e))
}

// UnknownFrequencyError reports a hardware frequency byte outside the
// documented value set.
type UnknownFrequencyError byte

func (e UnknownFrequencyError) Error() string {
	return fmt.Sprintf("unknown hardware type: 0x%02X", byte(e))
}

// UnexpectedMessageError reports that a control operation received an
// interface reply of the wrong shape. The device stays usable; the next
// reply may still drain normally.
type UnexpectedMessageError struct {
	Expected string
	Got      InterfaceMessage
}

func (e *UnexpectedMessageError) Error() string {
	return fmt.Sprintf("expected %s, received %T", e.Expected, e.Got)
}
