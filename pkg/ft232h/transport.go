package ft232h

import (
	"errors"
	"fmt"
	"io"
)

// Exchange implements the ads129x transport contract over the MPSSE
// engine. The engine's SPI lanes are half duplex from the API's point
// of view, but bytes clocked during a read go out with MOSI idle low,
// which the ADS129x cannot distinguish from zero padding. Writing the
// non-zero command prefix and reading the zero-padded remainder inside
// one chip-select window is therefore wire-equivalent to a single
// full-duplex transfer for every transaction this protocol issues.
func (ft *FT232H) Exchange(tx, rx []byte) error {
	if len(tx) != len(rx) {
		return fmt.Errorf("exchange buffers differ: tx %d bytes, rx %d", len(tx), len(rx))
	}

	n := len(tx)
	for n > 0 && tx[n-1] == 0x00 {
		n--
	}

	if err := ft.setCS(false); err != nil {
		return fmt.Errorf("failed to assert CS: %w", err)
	}

	err := ft.exchangeLocked(tx[:n], rx)
	if cserr := ft.setCS(true); cserr != nil {
		err = errors.Join(err, fmt.Errorf("failed to release CS: %w", cserr))
	}
	return err
}

func (ft *FT232H) exchangeLocked(prefix, rx []byte) error {
	if len(prefix) > 0 {
		if _, err := ft.SPI.Write(prefix, false, false); err != nil {
			return fmt.Errorf("spi write: %w", err)
		}
	}

	rest := len(rx) - len(prefix)
	if rest == 0 {
		return nil
	}

	b, err := ft.SPI.Read(uint(rest), false, false)
	if err != nil {
		return fmt.Errorf("spi read: %w", err)
	}
	if len(b) < rest {
		return fmt.Errorf("spi read: %w: got %d of %d bytes", io.ErrUnexpectedEOF, len(b), rest)
	}
	copy(rx[len(prefix):], b)
	return nil
}

// Close shuts the SPI engine down.
func (ft *FT232H) Close() error {
	return ft.SPI.Close()
}
