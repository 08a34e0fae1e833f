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

/*
Package rfxtrx433 drives the RFXtrx433 USB 433 MHz transceiver.

The device shows up as a USB serial port and speaks a length-prefixed
binary protocol. This library frames that protocol, manages the device
lifecycle (reset, configure, start the receiver) and delivers decoded
sensor messages from the air.

Basic usage:

	device, err := rfxtrx433.Open("/dev/ttyUSB0")
	if err != nil {
	    log.Fatal(err)
	}
	defer device.Close()

	// The device wants a reset first; Open by USB serial number is
	// also available via rfxtrx433.OpenBySerialNumber("A1XYZ123").
	if err := device.Reset(); err != nil {
	    log.Fatal(err)
	}

	if err := device.StartReceiver(); err != nil {
	    log.Fatal(err)
	}

	// Pick the radio protocols the receiver should decode.
	err = device.SetMode(rfxtrx433.DefaultFrequency,
	    rfxtrx433.FineOffset, 0, rfxtrx433.Oregon, 0)
	if err != nil {
	    log.Fatal(err)
	}

	for {
	    msg, err := device.ReadMessage()
	    if err != nil {
	        log.Fatal(err)
	    }
	    if th, ok := msg.(rfxtrx433.TempHum); ok {
	        fmt.Printf("sensor %04X: %.1f°C\n", th.ID, th.Temp)
	    }
	}

Messages:

Inbound traffic is split over two planes. Replies to control commands
are consumed internally by the operation that sent the command; the
unsolicited sensor stream is read with ReadMessage. Sensor types without
a dedicated decoder come back as NotParsed with the raw payload.

Thread safety:

Control operations are serialized internally. ReadMessage may run on its
own goroutine concurrently with control operations, which is the
expected shape of an application: configure once, then consume.
*/
package rfxtrx433
