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

// Package detection locates RFXtrx433 devices among the serial ports
// attached to the system. The transceiver enumerates as a USB serial
// port with a stable serial number, which is the recommended way to
// address it: device paths shuffle between boots, serial numbers don't.
package detection

import (
	"errors"
	"fmt"

	"go.bug.st/serial/enumerator"
)

// ErrNoMatch indicates that enumeration succeeded but no port matched.
var ErrNoMatch = errors.New("no matching serial port")

// PortInfo describes one enumerated serial port.
type PortInfo struct {
	// Path is the device path, e.g. /dev/ttyUSB0 or COM3.
	Path string
	// VID and PID identify the USB vendor and product, empty for
	// non-USB ports.
	VID string
	PID string
	// SerialNumber is the USB serial number, empty for non-USB ports.
	SerialNumber string
	// Product is the USB product description, if the platform exposes it.
	Product string
	// IsUSB is true for USB-attached ports.
	IsUSB bool
}

// listPorts is replaced in tests.
var listPorts = enumerator.GetDetailedPortsList

// List returns every serial port visible on the system with whatever
// USB metadata the platform exposes.
func List() ([]PortInfo, error) {
	details, err := listPorts()
	if err != nil {
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}

	ports := make([]PortInfo, 0, len(details))
	for _, d := range details {
		ports = append(ports, PortInfo{
			Path:         d.Name,
			VID:          d.VID,
			PID:          d.PID,
			SerialNumber: d.SerialNumber,
			Product:      d.Product,
			IsUSB:        d.IsUSB,
		})
	}
	return ports, nil
}

// FindBySerialNumber returns the path of the USB serial port whose
// serial number equals serialNumber. It fails with an error wrapping
// ErrNoMatch when no attached port carries that serial number.
func FindBySerialNumber(serialNumber string) (string, error) {
	details, err := listPorts()
	if err != nil {
		return "", fmt.Errorf("enumerate serial ports: %w", err)
	}

	for _, d := range details {
		if d.IsUSB && d.SerialNumber == serialNumber {
			return d.Name, nil
		}
	}
	return "", fmt.Errorf("serial number %s: %w", serialNumber, ErrNoMatch)
}
