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
)

// MockPort is an in-memory stand-in for the serial port, used to script
// device behaviour in tests. Frames injected with Inject appear on the
// host's read side; every host write is recorded and optionally handed
// to a write handler so a test can play the device's role.
type MockPort struct {
	reader  *io.PipeReader
	writer  *io.PipeWriter
	mu      sync.Mutex
	writes  [][]byte
	onWrite func(data []byte)
	closed  bool
}

// NewMockPort creates a mock port with no scripted behaviour.
func NewMockPort() *MockPort {
	r, w := io.Pipe()
	return &MockPort{reader: r, writer: w}
}

// Read returns bytes previously injected with Inject. It blocks until
// data is available or the port is closed, like a real serial port with
// no timeout.
func (m *MockPort) Read(p []byte) (int, error) {
	return m.reader.Read(p)
}

// Write records the written frame and invokes the write handler.
func (m *MockPort) Write(p []byte) (int, error) {
	data := append([]byte(nil), p...)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return 0, io.ErrClosedPipe
	}
	m.writes = append(m.writes, data)
	handler := m.onWrite
	m.mu.Unlock()

	if handler != nil {
		handler(data)
	}
	return len(p), nil
}

// Close unblocks pending reads with EOF and fails further writes.
func (m *MockPort) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		_ = m.writer.Close()
		_ = m.reader.Close()
	}
	return nil
}

// Inject delivers raw bytes to the host's read side. It blocks until the
// host has consumed them, so it is usually called from the write handler
// or a separate goroutine.
func (m *MockPort) Inject(data []byte) {
	_, _ = m.writer.Write(data)
}

// FailRead makes the next host read return err, simulating a fatal port
// error.
func (m *MockPort) FailRead(err error) {
	_ = m.writer.CloseWithError(err)
}

// SetWriteHandler installs a function that is called with a copy of
// every frame the host writes. The handler runs on the link writer
// goroutine; respond with Inject from a new goroutine to avoid blocking
// the writer.
func (m *MockPort) SetWriteHandler(handler func(data []byte)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onWrite = handler
}

// Writes returns a copy of every frame written so far, in order.
func (m *MockPort) Writes() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	writes := make([][]byte, len(m.writes))
	copy(writes, m.writes)
	return writes
}
