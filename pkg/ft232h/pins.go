package ft232h

import (
	"fmt"
	"time"

	"github.com/yunginnanet/ft232h"
)

// drdyPollInterval paces the DRDY busy poll.
const drdyPollInterval = 100 * time.Microsecond

// spiClockHz is the MPSSE SCLK rate. Comfortably inside the ADS1292's
// SCLK limits at the default clock divider.
const spiClockHz = 1700000

// ConfigureSPI programs the MPSSE SPI engine for the ADS129x: clock
// rate, hardware CS assignment, and SPI mode 1 (CPOL=0, CPHA=1; the
// chip shifts data on SCLK's falling edge). Must be called after
// Connect and before the first Exchange.
func (ft *FT232H) ConfigureSPI(cs uint) error {
	cfg := ft.SPI.GetConfig()
	cfg.Clock = spiClockHz
	cfg.CS = ft232h.C(cs)
	cfg.Mode = 0x00000001
	cfg.ActiveLow = false
	if err := ft.SPI.Config(cfg); err != nil {
		return fmt.Errorf("failed to configure SPI engine: %w", err)
	}
	return nil
}

// SetCSPin assigns and configures the chip-select GPIO. The ADS129x
// samples commands while CS is low; Exchange drives it around every
// transaction.
func (ft *FT232H) SetCSPin(pin uint) error {
	ft.csPin = ft232h.CPin(pin)
	if err := ft.GPIO.ConfigPin(ft.csPin, ft232h.Output, false); err != nil {
		return fmt.Errorf("failed to configure CS pin: %w", err)
	}
	// Idle high, deselected.
	return ft.GPIO.Set(ft.csPin, true)
}

// CSPin returns the configured chip-select pin.
func (ft *FT232H) CSPin() ft232h.CPin {
	return ft.csPin
}

func (ft *FT232H) setCS(high bool) error {
	return ft.GPIO.Set(ft.csPin, high)
}

// SetDRDY assigns and configures the data-ready GPIO.
func (ft *FT232H) SetDRDY(pin uint) error {
	ft.drdyPin = ft232h.CPin(pin)
	return ft.GPIO.ConfigPin(ft.drdyPin, ft232h.Input, true)
}

// DRDYPin returns the configured data-ready pin.
func (ft *FT232H) DRDYPin() ft232h.CPin {
	return ft.drdyPin
}

// WaitDRDY busy-polls the DRDY line until it goes low, signalling a
// fresh frame. Callers gate stream pulls on it.
func (ft *FT232H) WaitDRDY() error {
	for {
		hl, err := ft.FT232H.GPIO.Get(ft.drdyPin)
		if err != nil {
			return fmt.Errorf("failed to read DRDY pin: %w", err)
		}
		if !hl {
			return nil
		}
		time.Sleep(drdyPollInterval)
	}
}

// SetPWDN assigns and configures the power-down GPIO, leaving the chip
// powered.
func (ft *FT232H) SetPWDN(pin uint) error {
	ft.pwdnPin = ft232h.CPin(pin)
	return ft.GPIO.ConfigPin(ft.pwdnPin, ft232h.Output, true)
}

// PWDNPin returns the configured power-down pin.
func (ft *FT232H) PWDNPin() ft232h.CPin {
	return ft.pwdnPin
}

// PowerDown pulls the PWDN pin low.
func (ft *FT232H) PowerDown() error {
	if ft.pwdnPin == 0 {
		return fmt.Errorf("PWDN pin not set")
	}
	if err := ft.FT232H.GPIO.Set(ft.pwdnPin, false); err != nil {
		return fmt.Errorf("failed to set PWDN pin: %w", err)
	}
	return nil
}

// PowerUp pulls the PWDN pin high.
func (ft *FT232H) PowerUp() error {
	if ft.pwdnPin == 0 {
		return fmt.Errorf("PWDN pin not set")
	}
	if err := ft.FT232H.GPIO.Set(ft.pwdnPin, true); err != nil {
		return fmt.Errorf("failed to set PWDN pin: %w", err)
	}
	return nil
}
