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
	"fmt"
	"io"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/fredrik-jansson-se/rfxtrx433/detection"
)

const (
	// baudRate is fixed by the device firmware.
	baudRate = 38400

	// defaultMessageQueueLen is the default capacity of each inbound
	// plane channel.
	defaultMessageQueueLen = 100

	// resetQuietTime is how long Reset waits before returning. The
	// device requires at least 500 ms of quiet after a reset; the extra
	// margin matches what the hardware vendor's examples use.
	resetQuietTime = 1000 * time.Millisecond
)

// DeviceConfig contains configuration options for the Device.
type DeviceConfig struct {
	// Timeout bounds every control-plane await. Zero means block until
	// the device answers, which is the wire contract: the device always
	// replies to control frames, in order.
	Timeout time.Duration
	// MessageQueueLen is the capacity of each inbound plane channel.
	MessageQueueLen int
}

// DefaultDeviceConfig returns the default device configuration.
func DefaultDeviceConfig() *DeviceConfig {
	return &DeviceConfig{
		Timeout:         0,
		MessageQueueLen: defaultMessageQueueLen,
	}
}

// Device is a session with an RFXtrx433 transceiver. It owns the serial
// link through a background worker and exposes the control operations
// plus ReadMessage for the unsolicited sensor stream.
//
// Thread safety: control operations (Reset, Status, StartReceiver,
// SetMode) are serialized by an internal mutex so a reply is never
// consumed by the wrong caller. ReadMessage may run concurrently with
// them from another goroutine.
type Device struct {
	link   *link
	config *DeviceConfig
	mu     sync.Mutex
	seqNbr byte
	closed bool
}

// Info describes the hardware as reported by a status request.
type Info struct {
	// Frequency is the configured band variant.
	Frequency Frequency
	// FirmwareVersion is the firmware revision byte.
	FirmwareVersion byte
	// EnabledProtocols are the receiver protocols currently decoded.
	EnabledProtocols EnabledProtocols
}

// New creates a Device on top of an already open byte stream and spawns
// the link worker. The stream is owned by the Device from here on and is
// closed when the Device is closed. Most callers want Open or
// OpenBySerialNumber instead; New exists for custom transports and tests.
func New(port io.ReadWriteCloser, opts ...Option) (*Device, error) {
	device := &Device{
		config: DefaultDeviceConfig(),
	}

	for _, opt := range opts {
		if err := opt(device); err != nil {
			return nil, err
		}
	}

	device.link = newLink(port, device.config.MessageQueueLen)
	go device.link.run()

	return device, nil
}

// Open opens the serial device at path (e.g. /dev/ttyUSB0 or COM3) at
// the fixed 38400 baud 8N1 the device speaks, and returns a session.
func Open(path string, opts ...Option) (*Device, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", path, err)
	}

	device, err := New(port, opts...)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	return device, nil
}

// OpenBySerialNumber enumerates the attached serial ports and opens the
// USB port whose serial number matches serialNumber. It fails with a
// DeviceNotFoundError when no port matches.
func OpenBySerialNumber(serialNumber string, opts ...Option) (*Device, error) {
	debugf("searching serial ports for serial number %s", serialNumber)
	path, err := detection.FindBySerialNumber(serialNumber)
	if err != nil {
		if errors.Is(err, detection.ErrNoMatch) {
			return nil, &DeviceNotFoundError{Serial: serialNumber}
		}
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}
	return Open(path, opts...)
}

// Close shuts down the link worker and closes the port. Pending and
// subsequent operations fail with ErrShutdown. Close is idempotent.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.closed {
		d.closed = true
		close(d.link.outbound)
	}
	return nil
}

// Reset sends a reset command to the device. See ResetContext.
func (d *Device) Reset() error {
	return d.ResetContext(context.Background())
}

// ResetContext sends a reset command. The device sends no reply to a
// reset and must be left alone for at least 500 ms afterwards, so this
// call sleeps before returning.
func (d *Device) ResetContext(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.send(resetCommand(d.nextSeqNbr())); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	debugln("sleeping after reset")
	select {
	case <-time.After(resetQuietTime):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("reset: %w", ctx.Err())
	}
}

// Status queries the device for its configuration. See StatusContext.
func (d *Device) Status() (*Info, error) {
	return d.StatusContext(context.Background())
}

// StatusContext sends a status request and waits for the reply.
func (d *Device) StatusContext(ctx context.Context) (*Info, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	debugln("requesting status")
	if err := d.send(getStatusCommand(d.nextSeqNbr())); err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	reply, err := d.awaitInterfaceMessage(ctx)
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	status, ok := reply.(StatusMessage)
	if !ok {
		return nil, &UnexpectedMessageError{Expected: "status response", Got: reply}
	}
	debugf("received %v", status)

	return &Info{
		Frequency:        status.Frequency,
		FirmwareVersion:  status.FirmwareVersion,
		EnabledProtocols: status.EnabledProtocols,
	}, nil
}

// StartReceiver starts the RF receiver. See StartReceiverContext.
func (d *Device) StartReceiver() error {
	return d.StartReceiverContext(context.Background())
}

// StartReceiverContext starts the RF receiver and waits for the
// confirmation. Once started, the device forwards sensor messages which
// are read with ReadMessage.
func (d *Device) StartReceiverContext(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	debugln("starting receiver")
	if err := d.send(startReceiverCommand(d.nextSeqNbr())); err != nil {
		return fmt.Errorf("start receiver: %w", err)
	}

	if _, err := d.awaitInterfaceMessage(ctx); err != nil {
		return fmt.Errorf("start receiver: %w", err)
	}
	debugln("receiver started")
	return nil
}

// SetMode configures the frequency and the receiver protocol selection.
// See SetModeContext.
func (d *Device) SetMode(
	frequency Frequency,
	protos1 Protocols1,
	protos2 Protocols2,
	protos3 Protocols3,
	protos4 Protocols4,
) error {
	return d.SetModeContext(context.Background(), frequency, protos1, protos2, protos3, protos4)
}

// SetModeContext sends a set-mode command followed by a save, waiting
// for each acknowledgement in turn so the new selection survives a power
// cycle.
func (d *Device) SetModeContext(
	ctx context.Context,
	frequency Frequency,
	protos1 Protocols1,
	protos2 Protocols2,
	protos3 Protocols3,
	protos4 Protocols4,
) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	debugf("setting mode: %v %v %v %v %v", frequency, protos1, protos2, protos3, protos4)
	cmd := setModeCommand(d.nextSeqNbr(), frequency, protos1, protos2, protos3, protos4)
	if err := d.send(cmd); err != nil {
		return fmt.Errorf("set mode: %w", err)
	}
	if _, err := d.awaitInterfaceMessage(ctx); err != nil {
		return fmt.Errorf("set mode: %w", err)
	}

	debugln("saving mode")
	if err := d.send(saveCommand(d.nextSeqNbr())); err != nil {
		return fmt.Errorf("save mode: %w", err)
	}
	if _, err := d.awaitInterfaceMessage(ctx); err != nil {
		return fmt.Errorf("save mode: %w", err)
	}

	return nil
}

// ReadMessage returns the next sensor message. See ReadMessageContext.
func (d *Device) ReadMessage() (ProtocolMessage, error) {
	return d.ReadMessageContext(context.Background())
}

// ReadMessageContext blocks until the device forwards a sensor message,
// the context is cancelled or the link shuts down. The configured
// timeout does not apply here: sensors transmit on their own schedule.
func (d *Device) ReadMessageContext(ctx context.Context) (ProtocolMessage, error) {
	select {
	case msg, ok := <-d.link.sensorCh:
		if !ok {
			return nil, ErrShutdown
		}
		debugf("read message: %v", msg)
		return msg, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("read message: %w", ctx.Err())
	}
}

// nextSeqNbr returns the current sequence number and advances the
// counter, wrapping at 256. Callers hold d.mu.
func (d *Device) nextSeqNbr() byte {
	n := d.seqNbr
	d.seqNbr++
	return n
}

// send enqueues one complete frame for the link writer. Callers hold
// d.mu, so the outbound channel cannot close underneath us.
func (d *Device) send(data []byte) error {
	if d.closed {
		return ErrShutdown
	}
	select {
	case d.link.outbound <- data:
		return nil
	case <-d.link.quit:
		return ErrShutdown
	}
}

// awaitInterfaceMessage waits for the next control-plane reply. Replies
// arrive in the order the commands were sent, so channel order is the
// correlation.
func (d *Device) awaitInterfaceMessage(ctx context.Context) (InterfaceMessage, error) {
	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	select {
	case msg, ok := <-d.link.interfaceCh:
		if !ok {
			return nil, ErrShutdown
		}
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
