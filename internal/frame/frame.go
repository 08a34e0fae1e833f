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

// Package frame implements the length-prefixed framing of the RFXtrx433
// serial protocol. A frame on the wire is a single length byte (counting
// everything after itself) followed by packet type, sub-type, sequence
// number and payload. The same layout is used in both directions.
package frame

import (
	"fmt"
	"io"
)

// Frame size limits
const (
	// MaxSize is the largest possible frame including the length byte.
	// The length prefix is a single byte, so a frame body can never
	// exceed 255 bytes.
	MaxSize = 256

	// HeaderSize is the number of bytes following the length prefix that
	// every frame must carry: packet type, sub-type and sequence number.
	HeaderSize = 3
)

// Build assembles a complete wire frame from a header and payload. The
// length byte is computed here; callers only supply the payload that
// follows the header.
func Build(packetType, subType, seqNbr byte, payload []byte) []byte {
	buf := make([]byte, 0, 1+HeaderSize+len(payload))
	buf = append(buf, 0, packetType, subType, seqNbr)
	buf = append(buf, payload...)
	buf[0] = byte(len(buf) - 1)
	return buf
}

// Read reads exactly one frame from r and returns its body (packet type,
// sub-type, sequence number and payload, without the length prefix).
//
// A frame with a zero length byte is an idle marker emitted by the device
// as a keep-alive; Read returns (nil, nil) for those and the caller is
// expected to discard them. A short read surfaces as an error wrapping
// io.ErrUnexpectedEOF and must be treated as fatal for the link.
func Read(r io.Reader) ([]byte, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, fmt.Errorf("read frame length: %w", err)
	}

	size := int(prefix[0])
	if size == 0 {
		return nil, nil
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("read frame body: %w", err)
	}
	return body, nil
}
