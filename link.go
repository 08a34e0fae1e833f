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
	"io"
	"sync"

	"github.com/fredrik-jansson-se/rfxtrx433/internal/frame"
)

// outboundQueueLen sizes the outbound frame queue. Control frames are
// small and rare and the writer drains them immediately, so senders never
// block in practice.
const outboundQueueLen = 32

// link owns the open port for its entire lifetime and shuttles frames
// between it and the channels. Inbound frames are decoded and routed to
// exactly one of the two plane channels: interface-plane replies in wire
// order for the control operations, sensor-plane messages for
// ReadMessage. Frames that fail to decode are dropped; the radio is
// lossy and a bad frame must never take the receiver down.
//
// The link terminates when the outbound channel is closed (normal
// shutdown via Device.Close) or when the port fails. Either way it
// closes both plane channels, which pending receivers observe as
// ErrShutdown.
type link struct {
	port        io.ReadWriteCloser
	outbound    chan []byte
	interfaceCh chan InterfaceMessage
	sensorCh    chan ProtocolMessage
	quit        chan struct{}
	portOnce    sync.Once
}

func newLink(port io.ReadWriteCloser, queueLen int) *link {
	return &link{
		port:        port,
		outbound:    make(chan []byte, outboundQueueLen),
		interfaceCh: make(chan InterfaceMessage, queueLen),
		sensorCh:    make(chan ProtocolMessage, queueLen),
		quit:        make(chan struct{}),
	}
}

// run is the link worker. Writing and reading each get a goroutine so
// that a blocking port read never delays an outbound command; frame order
// within each direction is preserved because each direction is handled by
// a single goroutine.
func (l *link) run() {
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		l.readLoop()
	}()

	l.writeLoop(readerDone)

	// Unblock the reader: a read stuck on the port returns once the port
	// closes, a dispatch stuck on a full plane channel returns via quit.
	close(l.quit)
	l.closePort()
	<-readerDone

	close(l.interfaceCh)
	close(l.sensorCh)
}

func (l *link) writeLoop(readerDone <-chan struct{}) {
	for {
		select {
		case data, ok := <-l.outbound:
			if !ok {
				// Device.Close; normal shutdown.
				return
			}
			debugf("sending % 02X", data)
			if _, err := l.port.Write(data); err != nil {
				debugf("link writer: %v", err)
				return
			}
		case <-readerDone:
			// The reader hit a fatal port error.
			return
		}
	}
}

func (l *link) readLoop() {
	for {
		data, err := frame.Read(l.port)
		if err != nil {
			if !l.stopping() {
				debugf("link reader: %v", err)
			}
			return
		}
		if data == nil {
			// Idle keep-alive, never forwarded.
			continue
		}
		debugf("received % 02X", data)

		ifaceMsg, protoMsg, err := parseMessage(data)
		if err != nil {
			debugf("dropping frame % 02X: %v", data, err)
			continue
		}

		if ifaceMsg != nil {
			select {
			case l.interfaceCh <- ifaceMsg:
			case <-l.quit:
				return
			}
			continue
		}
		// A slow consumer fills the sensor channel and blocks this send,
		// which stops port reads; the kernel serial buffer is the next
		// line of backpressure.
		select {
		case l.sensorCh <- protoMsg:
		case <-l.quit:
			return
		}
	}
}

func (l *link) closePort() {
	l.portOnce.Do(func() {
		if err := l.port.Close(); err != nil {
			debugf("closing port: %v", err)
		}
	})
}

func (l *link) stopping() bool {
	select {
	case <-l.quit:
		return true
	default:
		return false
	}
}
