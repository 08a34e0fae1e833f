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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTempHum(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body []byte
		want TempHum
	}{
		{
			name: "positive temperature",
			body: []byte{0xAB, 0xCD, 0x00, 0xFA, 0x32, 0x02, 0x79},
			want: TempHum{
				ID:             0xABCD,
				Temp:           25.0,
				Humidity:       50,
				HumidityStatus: 2,
				BatteryLevel:   7,
				RSSI:           9,
			},
		},
		{
			name: "negative temperature",
			body: []byte{0x00, 0x01, 0x80, 0x37, 0x60, 0x03, 0xF0},
			want: TempHum{
				ID:             0x0001,
				Temp:           -5.5,
				Humidity:       96,
				HumidityStatus: 3,
				BatteryLevel:   15,
				RSSI:           0,
			},
		},
		{
			name: "zero reading",
			body: []byte{0x12, 0x34, 0x00, 0x00, 0x00, 0x00, 0x00},
			want: TempHum{ID: 0x1234},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseTempHum(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTempHumNotEnoughData(t *testing.T) {
	t.Parallel()
	_, err := parseTempHum([]byte{0xAB, 0xCD, 0x00, 0xFA})
	require.Error(t, err)

	var notEnough *NotEnoughDataError
	require.True(t, errors.As(err, &notEnough))
	assert.Equal(t, 4, notEnough.Received)
	assert.Equal(t, 7, notEnough.Expected)
}

func TestParseMessageClassification(t *testing.T) {
	t.Parallel()

	t.Run("interface plane", func(t *testing.T) {
		t.Parallel()
		data := append([]byte{byte(PacketInterfaceMessage), subTypeInterfaceResponse, 0x05},
			0x02, 0x53, 0x01, 0x00, 0x00, 0x20, 0x01)

		ifMsg, sensorMsg, err := parseMessage(data)
		require.NoError(t, err)
		assert.Nil(t, sensorMsg)
		require.IsType(t, StatusMessage{}, ifMsg)
	})

	t.Run("sensor plane decoded", func(t *testing.T) {
		t.Parallel()
		data := append([]byte{byte(PacketTempHum), 0x01, 0x07},
			0xAB, 0xCD, 0x00, 0xFA, 0x32, 0x02, 0x79)

		ifMsg, sensorMsg, err := parseMessage(data)
		require.NoError(t, err)
		assert.Nil(t, ifMsg)
		require.IsType(t, TempHum{}, sensorMsg)
		assert.Equal(t, uint16(0xABCD), sensorMsg.(TempHum).ID)
	})

	t.Run("sensor plane not parsed", func(t *testing.T) {
		t.Parallel()
		data := []byte{byte(PacketLighting2), 0x00, 0x09, 0x01, 0x02, 0x03}

		ifMsg, sensorMsg, err := parseMessage(data)
		require.NoError(t, err)
		assert.Nil(t, ifMsg)
		notParsed, ok := sensorMsg.(NotParsed)
		require.True(t, ok)
		assert.Equal(t, PacketLighting2, notParsed.Header.Type)
		assert.Equal(t, byte(0x09), notParsed.Header.SeqNbr)
		assert.Equal(t, []byte{0x01, 0x02, 0x03}, notParsed.Data)
	})

	t.Run("unknown packet type", func(t *testing.T) {
		t.Parallel()
		ifMsg, sensorMsg, err := parseMessage([]byte{0xEE, 0x00, 0x00})
		require.Error(t, err)
		assert.Nil(t, ifMsg)
		assert.Nil(t, sensorMsg)

		var unknown UnknownPacketTypeError
		require.True(t, errors.As(err, &unknown))
	})
}

func TestNotParsedCopiesBody(t *testing.T) {
	t.Parallel()
	data := []byte{byte(PacketLighting2), 0x00, 0x09, 0x01, 0x02, 0x03}

	_, sensorMsg, err := parseMessage(data)
	require.NoError(t, err)

	// The link reuses its read buffer between frames; the message must
	// not alias it.
	data[3] = 0xFF
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, sensorMsg.(NotParsed).Data)
}
