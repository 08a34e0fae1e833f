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

// rfxlisten configures an RFXtrx433 and prints every sensor message it
// forwards until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	rfxtrx433 "github.com/fredrik-jansson-se/rfxtrx433"
	"github.com/fredrik-jansson-se/rfxtrx433/detection"
	"github.com/fredrik-jansson-se/rfxtrx433/internal/config"
)

type flags struct {
	device     *string
	serial     *string
	configPath *string
	timeout    *time.Duration
	listPorts  *bool
	debug      *bool
}

func parseFlags() *flags {
	f := &flags{
		device: flag.String("device", "",
			"Serial device path (e.g. /dev/ttyUSB0 or COM3)."),
		serial: flag.String("serial", "",
			"USB serial number of the transceiver; used when -device is empty."),
		configPath: flag.String("config", "",
			"YAML receiver configuration (frequency and protocol selection)."),
		timeout: flag.Duration("timeout", 10*time.Second,
			"Timeout for device control commands."),
		listPorts: flag.Bool("list", false,
			"List attached serial ports and exit."),
		debug: flag.Bool("debug", false,
			"Enable protocol debug output."),
	}
	flag.Parse()

	if *f.debug {
		rfxtrx433.SetDebugEnabled(true)
	}
	return f
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintln(os.Stderr, "rfxlisten:", err)
		os.Exit(1)
	}
}

func run(f *flags) error {
	if *f.listPorts {
		return listPorts()
	}

	device, err := openDevice(f)
	if err != nil {
		return err
	}
	defer device.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := setup(ctx, device, *f.configPath); err != nil {
		return err
	}

	fmt.Println("listening, press ctrl-c to stop")
	for {
		msg, err := device.ReadMessageContext(ctx)
		switch {
		case errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			return err
		}
		fmt.Println(msg)
	}
}

func listPorts() error {
	ports, err := detection.List()
	if err != nil {
		return err
	}
	for _, port := range ports {
		if port.IsUSB {
			fmt.Printf("%s\tUSB %s:%s serial=%s product=%q\n",
				port.Path, port.VID, port.PID, port.SerialNumber, port.Product)
		} else {
			fmt.Println(port.Path)
		}
	}
	return nil
}

func openDevice(f *flags) (*rfxtrx433.Device, error) {
	opts := []rfxtrx433.Option{rfxtrx433.WithTimeout(*f.timeout)}
	switch {
	case *f.device != "":
		return rfxtrx433.Open(*f.device, opts...)
	case *f.serial != "":
		return rfxtrx433.OpenBySerialNumber(*f.serial, opts...)
	default:
		return nil, errors.New("either -device or -serial is required")
	}
}

// setup resets the device, reports its status and applies the configured
// receiver mode before starting the receiver.
func setup(ctx context.Context, device *rfxtrx433.Device, configPath string) error {
	if err := device.ResetContext(ctx); err != nil {
		return err
	}

	info, err := device.StatusContext(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("connected: %v, firmware %d\n", info.Frequency, info.FirmwareVersion)
	fmt.Printf("enabled protocols: %v\n", info.EnabledProtocols)

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		frequency, protocols, err := cfg.Mode()
		if err != nil {
			return err
		}
		err = device.SetModeContext(ctx, frequency,
			protocols.Protocols1, protocols.Protocols2,
			protocols.Protocols3, protocols.Protocols4)
		if err != nil {
			return err
		}
		fmt.Printf("mode set: %v, protocols %v\n", frequency, protocols)
	}

	return device.StartReceiverContext(ctx)
}
