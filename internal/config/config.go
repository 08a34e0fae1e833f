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

// Package config loads the receiver configuration used by the rfxlisten
// command: which frequency variant to select and which radio protocols
// the receiver should decode, by name.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	rfxtrx433 "github.com/fredrik-jansson-se/rfxtrx433"
)

// Config is the YAML receiver configuration.
//
//	frequency: trx433.92
//	protocols:
//	  - fineoffset
//	  - oregon
type Config struct {
	// Frequency selects the band variant; empty selects the default
	// 433.92 MHz transceiver.
	Frequency string `yaml:"frequency"`
	// Protocols lists the protocol names to enable, case-insensitive.
	Protocols []string `yaml:"protocols"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

var frequencies = map[string]rfxtrx433.Frequency{
	"trx310":    rfxtrx433.FreqTrx310,
	"trx315":    rfxtrx433.FreqTrx315,
	"rec433.92": rfxtrx433.FreqRec43392,
	"trx433.92": rfxtrx433.FreqTrx43392,
	"rec433.42": rfxtrx433.FreqRec43342,
	"trx868":    rfxtrx433.FreqTrx868,
	"rec434.50": rfxtrx433.FreqRec43450,
}

// protocolFlag locates a named protocol in one of the four masks.
type protocolFlag struct {
	p1 rfxtrx433.Protocols1
	p2 rfxtrx433.Protocols2
	p3 rfxtrx433.Protocols3
	p4 rfxtrx433.Protocols4
}

var protocolsByName = map[string]protocolFlag{
	"ae":           {p1: rfxtrx433.AE},
	"rubicson":     {p1: rfxtrx433.Rubicson},
	"fineoffset":   {p1: rfxtrx433.FineOffset},
	"lighting4":    {p1: rfxtrx433.Lighting4},
	"rsl":          {p1: rfxtrx433.RSL},
	"sx":           {p1: rfxtrx433.SX},
	"imagintronix": {p1: rfxtrx433.Imagintronix},
	"undecoded":    {p1: rfxtrx433.Undecoded},
	"mertik":       {p2: rfxtrx433.Mertik},
	"lwrf":         {p2: rfxtrx433.LWRF},
	"hideki":       {p2: rfxtrx433.Hideki},
	"lacrosse":     {p2: rfxtrx433.LaCrosse},
	"legrand":      {p2: rfxtrx433.Legrand},
	"blindst0":     {p2: rfxtrx433.BlindsT0},
	"blindst1":     {p2: rfxtrx433.BlindsT1},
	"x10":          {p3: rfxtrx433.X10},
	"arc":          {p3: rfxtrx433.ARC},
	"ac":           {p3: rfxtrx433.AC},
	"homeeasyeu":   {p3: rfxtrx433.HomeEasyEU},
	"meiantech":    {p3: rfxtrx433.Meiantech},
	"oregon":       {p3: rfxtrx433.Oregon},
	"ati":          {p3: rfxtrx433.ATI},
	"visonic":      {p3: rfxtrx433.Visonic},
	"keeloq":       {p4: rfxtrx433.Keeloq},
	"homeconfort":  {p4: rfxtrx433.HomeConfort},
	"mcz":          {p4: rfxtrx433.MCZ},
	"funkbus":      {p4: rfxtrx433.Funkbus},
}

// Mode resolves the configuration into the frequency and protocol masks
// handed to Device.SetMode.
func (c *Config) Mode() (rfxtrx433.Frequency, rfxtrx433.EnabledProtocols, error) {
	frequency := rfxtrx433.DefaultFrequency
	if c.Frequency != "" {
		f, ok := frequencies[strings.ToLower(c.Frequency)]
		if !ok {
			return 0, rfxtrx433.EnabledProtocols{},
				fmt.Errorf("unknown frequency %q", c.Frequency)
		}
		frequency = f
	}

	var enabled rfxtrx433.EnabledProtocols
	for _, name := range c.Protocols {
		flag, ok := protocolsByName[strings.ToLower(name)]
		if !ok {
			return 0, rfxtrx433.EnabledProtocols{},
				fmt.Errorf("unknown protocol %q", name)
		}
		enabled.Protocols1 |= flag.p1
		enabled.Protocols2 |= flag.p2
		enabled.Protocols3 |= flag.p3
		enabled.Protocols4 |= flag.p4
	}

	return frequency, enabled, nil
}
