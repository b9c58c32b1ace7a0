// Package spidev provides a Linux spidev transport for pkg/ads129x,
// plus a GPIO character-device helper for the chip's DRDY line.
package spidev

import (
	"fmt"

	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"
	"periph.io/x/periph/conn/spi/spireg"
	"periph.io/x/periph/host"
)

// DefaultSpeed is a safe SCLK rate for the ADS1292 (the chip tops out
// at fMOD-dependent rates well above this).
const DefaultSpeed = physic.MegaHertz

// Dev is an open spidev port. The kernel driver asserts chip select
// around every transaction, so the ads129x transport contract's CS
// handling comes for free.
type Dev struct {
	port spi.PortCloser
	conn spi.Conn
}

// Open claims the named SPI port (e.g. "/dev/spidev0.0" or "SPI0.0")
// and connects at the given speed. The ADS129x clocks data on SPI
// mode 1.
func Open(name string, speed physic.Frequency) (*Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("spidev: host init: %w", err)
	}
	if speed == 0 {
		speed = DefaultSpeed
	}

	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("spidev: open %q: %w", name, err)
	}
	conn, err := port.Connect(speed, spi.Mode1, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("spidev: connect %q: %w", name, err)
	}
	return &Dev{port: port, conn: conn}, nil
}

// Exchange performs one full-duplex transfer.
func (d *Dev) Exchange(tx, rx []byte) error {
	if len(tx) != len(rx) {
		return fmt.Errorf("spidev: exchange buffers differ: tx %d bytes, rx %d", len(tx), len(rx))
	}
	return d.conn.Tx(tx, rx)
}

// Close releases the port.
func (d *Dev) Close() error {
	return d.port.Close()
}

func (d *Dev) String() string {
	return fmt.Sprintf("spidev{%s}", d.conn)
}
