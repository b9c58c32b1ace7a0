package ft232h

import (
	"os"
	"testing"

	"github.com/yunginnanet/ft232h"
)

func TestDescriptor(t *testing.T) {
	t.Run("ByIndex", func(t *testing.T) {
		desc := ByIndex(0)
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = ByIndex(-1)
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("BySerial", func(t *testing.T) {
		desc := BySerial("123456")
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = BySerial("")
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("ByMask", func(t *testing.T) {
		mask := new(ft232h.Mask)
		mask.Index = "0"
		desc := ByMask(mask)
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = ByMask(nil)
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("Mask", func(t *testing.T) {
		if ByIndex(5).Mask().Index != "5" {
			t.Error("unexpected mask index")
		}
		if BySerial("5").Mask().Serial != "5" {
			t.Error("unexpected mask serial")
		}
	})
}

// TestConnect needs a physical FT232H on the bus.
func TestConnect(t *testing.T) {
	if os.Getenv("ADS1292_FT232H_TEST") == "" {
		t.Skip("set ADS1292_FT232H_TEST to run against real hardware")
	}

	ftdi, err := Connect()
	if err != nil {
		t.Fatalf("failed to connect to FT232H: %v", err)
	}
	t.Logf("FT232H connected: %s", ftdi)

	info := ftdi.Info()
	if !info.IsOpen {
		t.Error("device reports closed after connect")
	}

	if err = ftdi.ConfigureSPI(0x10); err != nil {
		t.Errorf("failed to configure SPI engine: %v", err)
	}
	if cfg := ftdi.SPI.GetConfig(); cfg.Clock != spiClockHz {
		t.Errorf("expected SPI clock %d, got %d", spiClockHz, cfg.Clock)
	}

	if err = ftdi.Close(); err != nil {
		t.Errorf("failed to close FT232H: %v", err)
	}
}
