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
	"time"
)

// Option is a functional option for configuring a Device.
type Option func(*Device) error

// WithTimeout bounds every control-plane await with the given duration.
// The default of zero keeps the wire contract: block until the device
// answers. ReadMessage is never subject to this timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Device) error {
		if timeout < 0 {
			return errors.New("timeout must not be negative")
		}
		d.config.Timeout = timeout
		return nil
	}
}

// WithMessageQueueSize overrides the capacity of the two inbound
// message queues (default 100). When the sensor queue fills, the link
// stops reading from the port until the consumer catches up.
func WithMessageQueueSize(size int) Option {
	return func(d *Device) error {
		if size <= 0 {
			return errors.New("message queue size must be positive")
		}
		d.config.MessageQueueLen = size
		return nil
	}
}
