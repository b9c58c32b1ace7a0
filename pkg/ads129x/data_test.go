package ads129x

import (
	"errors"
	"testing"
)

func TestChannelDataInt32(t *testing.T) {
	t.Run("MaxPositive", func(t *testing.T) {
		c := ChannelData{0x7F, 0xFF, 0xFF}
		if got := c.Int32(); got != 8388607 {
			t.Errorf("expected 8388607, got %d", got)
		}
	})

	t.Run("MinNegative", func(t *testing.T) {
		c := ChannelData{0x80, 0x00, 0x00}
		if got := c.Int32(); got != -8388608 {
			t.Errorf("expected -8388608, got %d", got)
		}
	})

	t.Run("Zero", func(t *testing.T) {
		c := ChannelData{0x00, 0x00, 0x00}
		if got := c.Int32(); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("MinusOne", func(t *testing.T) {
		c := ChannelData{0xFF, 0xFF, 0xFF}
		if got := c.Int32(); got != -1 {
			t.Errorf("expected -1, got %d", got)
		}
	})
}

func TestChannelDataTemperature(t *testing.T) {
	// 145300 µV is the datasheet's 25°C reference point.
	c := ChannelData{0x02, 0x37, 0x94}
	if got := c.Temperature(); got != 25 {
		t.Errorf("expected 25°C, got %d", got)
	}
}

func TestDecodeFrame(t *testing.T) {
	t.Run("ChannelExtremes", func(t *testing.T) {
		raw := []byte{
			0xC0, 0x00, 0x00, // status
			0x7F, 0xFF, 0xFF, // ch1 max positive
			0x80, 0x00, 0x00, // ch2 min negative
		}
		d, err := DecodeFrame(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := d.Channel1().Int32(); got != 8388607 {
			t.Errorf("ch1: expected 8388607, got %d", got)
		}
		if got := d.Channel2().Int32(); got != -8388608 {
			t.Errorf("ch2: expected -8388608, got %d", got)
		}
		chans := d.Channels()
		if chans[0] != d.Channel1() || chans[1] != d.Channel2() {
			t.Error("Channels() disagrees with Channel1/Channel2")
		}
	})

	t.Run("ShortBuffer", func(t *testing.T) {
		_, err := DecodeFrame(make([]byte, FrameSize-1))
		if !errors.Is(err, ErrFrameLength) {
			t.Errorf("expected ErrFrameLength, got %v", err)
		}
	})

	t.Run("LongBuffer", func(t *testing.T) {
		_, err := DecodeFrame(make([]byte, FrameSize+1))
		if !errors.Is(err, ErrFrameLength) {
			t.Errorf("expected ErrFrameLength, got %v", err)
		}
	})
}

func TestFrameStatus(t *testing.T) {
	// Status bits land shifted across the first two bytes: lead-off
	// status is (b0 << 1) | (b1 >> 7), GPIO is b1 >> 5.
	d := Data{0x0B, 0x80, 0x00, 0, 0, 0, 0, 0, 0}

	loff := d.LeadOffStatus()
	if !loff.RLD() {
		t.Error("expected RLD lead-off set")
	}
	if !loff.In2POff() || !loff.In1NOff() || !loff.In1POff() {
		t.Error("expected IN2P, IN1N and IN1P off flags set")
	}
	if loff.In2NOff() {
		t.Error("IN2N off flag should be clear")
	}
	if loff.ClockDivider() != 0 {
		t.Errorf("expected clock divider 0, got %d", loff.ClockDivider())
	}

	gpio := d.GPIOStatus()
	if !gpio.Control1() {
		t.Error("expected GPIO 1 control set")
	}
	if gpio.Control2() || gpio.Data2() || gpio.Data1() {
		t.Error("unexpected GPIO bits set")
	}
}
