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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredrik-jansson-se/rfxtrx433/internal/frame"
)

// replyFrame builds a complete device-to-host interface message frame.
func replyFrame(subType, seqNbr byte, body ...byte) []byte {
	return frame.Build(byte(PacketInterfaceMessage), subType, seqNbr, body)
}

// statusReply is the reply to a get-status command: command echo,
// frequency, firmware version and the four protocol masks.
func statusReply(seqNbr byte) []byte {
	return replyFrame(subTypeInterfaceResponse, seqNbr,
		0x02, 0x53, 0x01, 0x00, 0x00, 0x20, 0x01)
}

// ackEachWrite scripts the mock to answer every host command with the
// reply produced by respond, echoing the command's sequence number.
func ackEachWrite(port *MockPort, respond func(cmd []byte) []byte) {
	port.SetWriteHandler(func(cmd []byte) {
		reply := respond(cmd)
		go port.Inject(reply)
	})
}

func newTestDevice(t *testing.T, port *MockPort, opts ...Option) *Device {
	t.Helper()
	opts = append([]Option{WithTimeout(5 * time.Second)}, opts...)
	device, err := New(port, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = device.Close() })
	return device
}

func TestDeviceStatus(t *testing.T) {
	t.Parallel()
	port := NewMockPort()
	ackEachWrite(port, func(cmd []byte) []byte {
		return statusReply(cmd[3])
	})
	device := newTestDevice(t, port)

	info, err := device.Status()
	require.NoError(t, err)
	assert.Equal(t, FreqTrx43392, info.Frequency)
	assert.Equal(t, byte(1), info.FirmwareVersion)
	assert.Equal(t, EnabledProtocols{Protocols3: Oregon, Protocols4: Keeloq},
		info.EnabledProtocols)

	writes := port.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t,
		[]byte{0x0D, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		writes[0])
}

func TestDeviceSetModeAdvancesSequence(t *testing.T) {
	t.Parallel()
	port := NewMockPort()
	ackEachWrite(port, func(cmd []byte) []byte {
		// Echo back the command byte so the reply matches the request.
		return replyFrame(subTypeInterfaceResponse, cmd[3], cmd[4])
	})
	device := newTestDevice(t, port)

	err := device.SetMode(FreqTrx43392, 0, 0, Oregon, Keeloq)
	require.NoError(t, err)

	writes := port.Writes()
	require.Len(t, writes, 2)

	// set-mode then save, consecutive sequence numbers.
	assert.Equal(t, byte(0x03), writes[0][4])
	assert.Equal(t, byte(0x06), writes[1][4])
	assert.Equal(t, byte(0x00), writes[0][3])
	assert.Equal(t, byte(0x01), writes[1][3])

	// The set-mode command carries the frequency and the masks.
	assert.Equal(t, byte(FreqTrx43392), writes[0][5])
	assert.Equal(t, byte(Oregon), writes[0][9])
	assert.Equal(t, byte(Keeloq), writes[0][10])
}

func TestDeviceStartReceiver(t *testing.T) {
	t.Parallel()
	port := NewMockPort()
	ackEachWrite(port, func(cmd []byte) []byte {
		return replyFrame(subTypeRecStarted, cmd[3], 0x07, 0x43, 0x6F, 0x70)
	})
	device := newTestDevice(t, port)

	require.NoError(t, device.StartReceiver())
}

func TestDeviceReadMessage(t *testing.T) {
	t.Parallel()
	port := NewMockPort()
	device := newTestDevice(t, port)

	go port.Inject(frame.Build(byte(PacketTempHum), 0x01, 0x07,
		[]byte{0xAB, 0xCD, 0x00, 0xFA, 0x32, 0x02, 0x79}))

	msg, err := device.ReadMessage()
	require.NoError(t, err)
	require.IsType(t, TempHum{}, msg)
	assert.Equal(t, uint16(0xABCD), msg.(TempHum).ID)
	assert.InDelta(t, 25.0, msg.(TempHum).Temp, 0.001)
}

func TestDeviceReadMessageSkipsIdleMarkers(t *testing.T) {
	t.Parallel()
	port := NewMockPort()
	device := newTestDevice(t, port)

	data := []byte{0x00, 0x00}
	data = append(data, frame.Build(byte(PacketTempHum), 0x01, 0x07,
		[]byte{0x00, 0x01, 0x00, 0x64, 0x28, 0x01, 0x58})...)
	go port.Inject(data)

	msg, err := device.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0001), msg.(TempHum).ID)
}

func TestDeviceReadMessageSkipsUndecodableFrames(t *testing.T) {
	t.Parallel()
	port := NewMockPort()
	device := newTestDevice(t, port)

	// An unknown packet type is dropped; the frame after it is delivered.
	data := frame.Build(0xEE, 0x00, 0x00, []byte{0x01})
	data = append(data, frame.Build(byte(PacketTempHum), 0x01, 0x07,
		[]byte{0x00, 0x02, 0x00, 0x64, 0x28, 0x01, 0x58})...)
	go port.Inject(data)

	msg, err := device.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0002), msg.(TempHum).ID)
}

func TestDeviceReadMessageContextCancel(t *testing.T) {
	t.Parallel()
	port := NewMockPort()
	device := newTestDevice(t, port)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := device.ReadMessageContext(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDeviceStatusUnexpectedReply(t *testing.T) {
	t.Parallel()
	port := NewMockPort()
	ackEachWrite(port, func(cmd []byte) []byte {
		// Answer the status request with a save ack.
		return replyFrame(subTypeInterfaceResponse, cmd[3], 0x06)
	})
	device := newTestDevice(t, port)

	_, err := device.Status()
	require.Error(t, err)

	var unexpected *UnexpectedMessageError
	require.True(t, errors.As(err, &unexpected))
	assert.Equal(t, SaveAck{}, unexpected.Got)
}

func TestDeviceStatusTimeout(t *testing.T) {
	t.Parallel()
	port := NewMockPort()
	device := newTestDevice(t, port, WithTimeout(20*time.Millisecond))

	// Nothing answers; the configured timeout bounds the wait.
	_, err := device.Status()
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDeviceClose(t *testing.T) {
	t.Parallel()
	port := NewMockPort()
	device := newTestDevice(t, port)

	require.NoError(t, device.Close())
	require.NoError(t, device.Close())

	_, err := device.Status()
	require.ErrorIs(t, err, ErrShutdown)

	_, err = device.ReadMessage()
	require.ErrorIs(t, err, ErrShutdown)
}

func TestDeviceReadFailureShutsDown(t *testing.T) {
	t.Parallel()
	port := NewMockPort()
	device := newTestDevice(t, port)

	port.FailRead(errors.New("device unplugged"))

	_, err := device.ReadMessage()
	require.ErrorIs(t, err, ErrShutdown)

	_, err = device.Status()
	require.ErrorIs(t, err, ErrShutdown)
}

func TestDeviceResetContextCancelled(t *testing.T) {
	t.Parallel()
	port := NewMockPort()
	device := newTestDevice(t, port)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The post-reset quiet period honours cancellation.
	err := device.ResetContext(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// The command itself was still sent; the link writer drains it
	// asynchronously.
	require.Eventually(t, func() bool {
		return len(port.Writes()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, byte(0x00), port.Writes()[0][4])
}
