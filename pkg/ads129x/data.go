package ads129x

import "fmt"

// FrameSize is the length of one conversion frame: a 24-bit status word
// followed by two 24-bit channel samples, MSB first.
const FrameSize = 9

// NumChannels is the channel count of the ADS1292 frame.
const NumChannels = 2

// ChannelData is one channel's raw 24-bit sample, MSB first.
type ChannelData [3]byte

// Int32 sign-extends the 24-bit two's-complement sample into an int32.
func (c ChannelData) Int32() int32 {
	u := uint32(c[0])<<16 | uint32(c[1])<<8 | uint32(c[2])
	if u&0x800000 != 0 {
		u |= 0xFF000000
	}
	return int32(u)
}

// Temperature converts the sample into degrees Celsius, assuming the
// channel mux routes the internal temperature sensor (datasheet page 19).
func (c ChannelData) Temperature() int32 {
	return (c.Int32()-145_300)/490 + 25
}

func (c ChannelData) String() string {
	return fmt.Sprintf("(%02x, %02x, %02x)", c[0], c[1], c[2])
}

// LeadOffStatus holds the lead-off flags carried in a frame's status
// word, or read from the LOFF_STAT register. Bits [7:5] are unused.
type LeadOffStatus byte

// ClockDivider returns the CLK_DIV selection bit.
func (s LeadOffStatus) ClockDivider() byte { return byte(s) >> 6 & 1 }

// RLD reports the right leg drive lead-off status.
func (s LeadOffStatus) RLD() bool { return s&1<<4 != 0 }

// In2NOff reports channel 2's negative electrode disconnected.
func (s LeadOffStatus) In2NOff() bool { return s&1<<3 != 0 }

// In2POff reports channel 2's positive electrode disconnected.
func (s LeadOffStatus) In2POff() bool { return s&1<<2 != 0 }

// In1NOff reports channel 1's negative electrode disconnected.
func (s LeadOffStatus) In1NOff() bool { return s&1<<1 != 0 }

// In1POff reports channel 1's positive electrode disconnected.
func (s LeadOffStatus) In1POff() bool { return s&1 != 0 }

func (s LeadOffStatus) String() string {
	return fmt.Sprintf(
		"[clk_div: %d; rld: %t; in2n_off: %t; in2p_off: %t; in1n_off: %t; in1p_off: %t]",
		s.ClockDivider(), s.RLD(), s.In2NOff(), s.In2POff(), s.In1NOff(), s.In1POff(),
	)
}

// GPIOStatus holds the GPIO pin states carried in a frame's status word.
// Bits [7:4] are unused.
type GPIOStatus byte

// Control2 reports the GPIO 2 control bit.
func (s GPIOStatus) Control2() bool { return s&1<<3 != 0 }

// Control1 reports the GPIO 1 control bit.
func (s GPIOStatus) Control1() bool { return s&1<<2 != 0 }

// Data2 reports the GPIO 2 data bit.
func (s GPIOStatus) Data2() bool { return s&1<<1 != 0 }

// Data1 reports the GPIO 1 data bit.
func (s GPIOStatus) Data1() bool { return s&1 != 0 }

func (s GPIOStatus) String() string {
	return fmt.Sprintf(
		"[gpio_c_2: %t; gpio_c_1: %t; gpio_d_2: %t; gpio_d_1: %t]",
		s.Control2(), s.Control1(), s.Data2(), s.Data1(),
	)
}

// Data is one decoded conversion frame.
type Data [FrameSize]byte

// DecodeFrame decodes one raw frame. The input must be exactly
// FrameSize bytes; anything else is a caller bug reported as
// ErrFrameLength.
func DecodeFrame(raw []byte) (Data, error) {
	var d Data
	if len(raw) != FrameSize {
		return d, fmt.Errorf("%w: got %d bytes, want %d", ErrFrameLength, len(raw), FrameSize)
	}
	copy(d[:], raw)
	return d, nil
}

// LeadOffStatus extracts the lead-off flags from the status word.
func (d Data) LeadOffStatus() LeadOffStatus {
	return LeadOffStatus(d[0]<<1 | d[1]>>7)
}

// GPIOStatus extracts the GPIO pin states from the status word.
func (d Data) GPIOStatus() GPIOStatus {
	return GPIOStatus(d[1] >> 5)
}

// Channel1 returns channel 1's raw sample.
func (d Data) Channel1() ChannelData {
	return ChannelData{d[3], d[4], d[5]}
}

// Channel2 returns channel 2's raw sample.
func (d Data) Channel2() ChannelData {
	return ChannelData{d[6], d[7], d[8]}
}

// Channels returns both channel samples in order.
func (d Data) Channels() [NumChannels]ChannelData {
	return [NumChannels]ChannelData{d.Channel1(), d.Channel2()}
}

func (d Data) String() string {
	return fmt.Sprintf(
		"[lead off: %s; gpio: %s; ch1: %s; ch2: %s]",
		d.LeadOffStatus(), d.GPIOStatus(), d.Channel1(), d.Channel2(),
	)
}
