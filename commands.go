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

import "github.com/fredrik-jansson-se/rfxtrx433/internal/frame"

// Interface control command codes. The device echoes the code in the
// first body byte of its reply.
const (
	cmdReset         byte = 0x00
	cmdGetStatus     byte = 0x02
	cmdSetMode       byte = 0x03
	cmdSave          byte = 0x06
	cmdStartReceiver byte = 0x07
)

// Sub-type of every interface control frame the library sends.
const subTypeInterfaceCommand byte = 0x00

// interfaceCommand is the fixed-layout control frame: command code,
// frequency, transmit power and seven trailing bytes. Fields other than
// the command code are zero except for set-mode. Encoded, every control
// frame is 14 bytes with a length byte of 0x0D.
type interfaceCommand struct {
	seqNbr    byte
	cmd       byte
	frequency byte
	xmitPower byte
	extra     [7]byte
}

func (c *interfaceCommand) encode() []byte {
	payload := make([]byte, 0, 10)
	payload = append(payload, c.cmd, c.frequency, c.xmitPower)
	payload = append(payload, c.extra[:]...)
	return frame.Build(byte(PacketInterfaceControl), subTypeInterfaceCommand, c.seqNbr, payload)
}

func resetCommand(seqNbr byte) []byte {
	return (&interfaceCommand{seqNbr: seqNbr, cmd: cmdReset}).encode()
}

func getStatusCommand(seqNbr byte) []byte {
	return (&interfaceCommand{seqNbr: seqNbr, cmd: cmdGetStatus}).encode()
}

func startReceiverCommand(seqNbr byte) []byte {
	return (&interfaceCommand{seqNbr: seqNbr, cmd: cmdStartReceiver}).encode()
}

func saveCommand(seqNbr byte) []byte {
	return (&interfaceCommand{seqNbr: seqNbr, cmd: cmdSave}).encode()
}

func setModeCommand(
	seqNbr byte,
	frequency Frequency,
	protos1 Protocols1,
	protos2 Protocols2,
	protos3 Protocols3,
	protos4 Protocols4,
) []byte {
	return (&interfaceCommand{
		seqNbr:    seqNbr,
		cmd:       cmdSetMode,
		frequency: byte(frequency),
		extra:     [7]byte{byte(protos1), byte(protos2), byte(protos3), byte(protos4)},
	}).encode()
}
