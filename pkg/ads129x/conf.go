package ads129x

// Typed views over the configuration registers. Each view is the raw
// register byte; getters and setters shift the documented fields in and
// out so callers never juggle masks against the datasheet by hand.

// SampleRate selects the oversampling rate used by both channels
// (CONFIG1 DR[2:0]).
type SampleRate byte

const (
	Sps125 SampleRate = 0b000
	Sps250 SampleRate = 0b001
	Sps500 SampleRate = 0b010
	KSps1  SampleRate = 0b011
	KSps2  SampleRate = 0b100
	KSps4  SampleRate = 0b101
	KSps8  SampleRate = 0b110
)

func (s SampleRate) String() string {
	switch s {
	case Sps125:
		return "125SPS"
	case Sps250:
		return "250SPS"
	case Sps500:
		return "500SPS"
	case KSps1:
		return "1kSPS"
	case KSps2:
		return "2kSPS"
	case KSps4:
		return "4kSPS"
	case KSps8:
		return "8kSPS"
	default:
		return "(unknown sample rate)"
	}
}

// Conf1 is the CONFIG1 register: conversion mode and sample rate.
type Conf1 byte

// SingleShot reports whether single-shot conversion mode is selected;
// cleared means continuous conversion.
func (c Conf1) SingleShot() bool { return c&0x80 != 0 }

func (c Conf1) SetSingleShot(on bool) Conf1 {
	if on {
		return c | 0x80
	}
	return c &^ 0x80
}

// SampleRate returns the DR[2:0] oversampling selection.
func (c Conf1) SampleRate() SampleRate { return SampleRate(c & 0x07) }

func (c Conf1) SetSampleRate(s SampleRate) Conf1 {
	return c&^0x07 | Conf1(s)&0x07
}

// Conf2 is the CONFIG2 register: test signal, clock, reference and
// lead-off comparator configuration.
type Conf2 byte

// LeadOffComparator reports whether the lead-off comparators are powered.
func (c Conf2) LeadOffComparator() bool { return c&0x40 != 0 }

func (c Conf2) SetLeadOffComparator(on bool) Conf2 { return c.set(0x40, on) }

// ReferenceBuffer reports whether the internal reference buffer is
// powered; cleared means an external reference is in use.
func (c Conf2) ReferenceBuffer() bool { return c&0x20 != 0 }

func (c Conf2) SetReferenceBuffer(on bool) Conf2 { return c.set(0x20, on) }

// Vref4V reports whether the 4.033 V reference is selected instead of
// the 2.42 V reference.
func (c Conf2) Vref4V() bool { return c&0x10 != 0 }

func (c Conf2) SetVref4V(on bool) Conf2 { return c.set(0x10, on) }

// ClockOut reports whether the internal oscillator drives the CLK pin.
func (c Conf2) ClockOut() bool { return c&0x08 != 0 }

func (c Conf2) SetClockOut(on bool) Conf2 { return c.set(0x08, on) }

// TestSignal reports whether the internal test signal is enabled.
func (c Conf2) TestSignal() bool { return c&0x02 != 0 }

func (c Conf2) SetTestSignal(on bool) Conf2 { return c.set(0x02, on) }

// TestFreqSquare reports whether the test signal is a square wave
// instead of DC.
func (c Conf2) TestFreqSquare() bool { return c&0x01 != 0 }

func (c Conf2) SetTestFreqSquare(on bool) Conf2 { return c.set(0x01, on) }

func (c Conf2) set(mask Conf2, on bool) Conf2 {
	if on {
		return c | mask
	}
	return c &^ mask
}

// LeadOffCurrent selects the lead-off detection current magnitude
// (LOFF ILEAD_OFF[1:0]).
type LeadOffCurrent byte

const (
	Current6nA  LeadOffCurrent = 0b00
	Current22nA LeadOffCurrent = 0b01
	Current6uA  LeadOffCurrent = 0b10
	Current22uA LeadOffCurrent = 0b11
)

// Loff is the LOFF register: lead-off detection configuration.
type Loff byte

// ComparatorThreshold returns COMP_TH[2:0].
func (l Loff) ComparatorThreshold() byte { return byte(l) >> 5 }

func (l Loff) SetComparatorThreshold(th byte) Loff {
	return l&^0xE0 | Loff(th&0x07)<<5
}

// Current returns the lead-off current magnitude selection.
func (l Loff) Current() LeadOffCurrent { return LeadOffCurrent(l >> 2 & 0x03) }

func (l Loff) SetCurrent(c LeadOffCurrent) Loff {
	return l&^0x0C | Loff(c&0x03)<<2
}

// ACDetection reports whether AC (true) or DC (false) lead-off
// detection is selected.
func (l Loff) ACDetection() bool { return l&0x01 != 0 }

func (l Loff) SetACDetection(on bool) Loff {
	if on {
		return l | 0x01
	}
	return l &^ 0x01
}

// LoffSense is the LOFF_SENS register: per-electrode lead-off sense
// selection. Bits, high to low: FLIP2, FLIP1, LOFF2N, LOFF2P, LOFF1N,
// LOFF1P.
type LoffSense byte

func (l LoffSense) Flip2() bool  { return l&0x20 != 0 }
func (l LoffSense) Flip1() bool  { return l&0x10 != 0 }
func (l LoffSense) Loff2N() bool { return l&0x08 != 0 }
func (l LoffSense) Loff2P() bool { return l&0x04 != 0 }
func (l LoffSense) Loff1N() bool { return l&0x02 != 0 }
func (l LoffSense) Loff1P() bool { return l&0x01 != 0 }

// Gain selects a channel's PGA gain (CHnSET GAIN[2:0]).
type Gain byte

const (
	Gain6  Gain = 0b000
	Gain1  Gain = 0b001
	Gain2  Gain = 0b010
	Gain3  Gain = 0b011
	Gain4  Gain = 0b100
	Gain8  Gain = 0b101
	Gain12 Gain = 0b110
)

// Factor returns the numeric gain factor, or 0 for a reserved setting.
func (g Gain) Factor() int {
	switch g {
	case Gain6:
		return 6
	case Gain1:
		return 1
	case Gain2:
		return 2
	case Gain3:
		return 3
	case Gain4:
		return 4
	case Gain8:
		return 8
	case Gain12:
		return 12
	default:
		return 0
	}
}

// InputSelection routes a channel's input multiplexer (CHnSET MUX[3:0]).
type InputSelection byte

const (
	// InputNormal is the normal electrode input (default).
	InputNormal InputSelection = 0b0000
	// InputShorted shorts the inputs, for offset measurements.
	InputShorted InputSelection = 0b0001
	// InputRLDMeasure routes the RLD measurement.
	InputRLDMeasure InputSelection = 0b0010
	// InputMVDD measures the supply voltage.
	InputMVDD InputSelection = 0b0011
	// InputTemperature routes the internal temperature sensor.
	InputTemperature InputSelection = 0b0100
	// InputTest routes the internal test signal.
	InputTest InputSelection = 0b0101
	// InputRLDDRP connects the positive input to RLDIN.
	InputRLDDRP InputSelection = 0b0110
	// InputRLDDRM connects the negative input to RLDIN.
	InputRLDDRM InputSelection = 0b0111
	// InputRLDDRPM connects both inputs to RLDIN.
	InputRLDDRPM InputSelection = 0b1000
	// InputChannel3 routes IN3P/IN3N to the channel inputs.
	InputChannel3 InputSelection = 0b1001
)

// ChannelSettings is a CHnSET register: power mode, PGA gain and input
// multiplexer for one channel.
type ChannelSettings byte

// PowerDown reports whether the channel is powered down.
func (c ChannelSettings) PowerDown() bool { return c&0x80 != 0 }

func (c ChannelSettings) SetPowerDown(on bool) ChannelSettings {
	if on {
		return c | 0x80
	}
	return c &^ 0x80
}

// Gain returns the PGA gain selection.
func (c ChannelSettings) Gain() Gain { return Gain(c >> 4 & 0x07) }

func (c ChannelSettings) SetGain(g Gain) ChannelSettings {
	return c&^0x70 | ChannelSettings(g&0x07)<<4
}

// Mux returns the input multiplexer selection.
func (c ChannelSettings) Mux() InputSelection { return InputSelection(c & 0x0F) }

func (c ChannelSettings) SetMux(m InputSelection) ChannelSettings {
	return c&^0x0F | ChannelSettings(m)&0x0F
}

// ChopFrequency selects the PGA chop frequency (RLD_SENS CHOP[1:0]).
type ChopFrequency byte

const (
	ChopFmodDiv16 ChopFrequency = 0b00
	ChopFmodDiv2  ChopFrequency = 0b10
	ChopFmodDiv4  ChopFrequency = 0b11
)

// RLDSense is the RLD_SENS register: right leg drive derivation.
type RLDSense byte

// Chop returns the PGA chop frequency selection.
func (r RLDSense) Chop() ChopFrequency { return ChopFrequency(r >> 6) }

func (r RLDSense) SetChop(c ChopFrequency) RLDSense {
	return r&^0xC0 | RLDSense(c&0x03)<<6
}

// BufferPower reports whether the RLD buffer is powered.
func (r RLDSense) BufferPower() bool { return r&0x20 != 0 }

func (r RLDSense) SetBufferPower(on bool) RLDSense { return r.set(0x20, on) }

// LeadOffSense reports whether the RLD lead-off sense function is enabled.
func (r RLDSense) LeadOffSense() bool { return r&0x10 != 0 }

func (r RLDSense) SetLeadOffSense(on bool) RLDSense { return r.set(0x10, on) }

func (r RLDSense) RLD2N() bool { return r&0x08 != 0 }
func (r RLDSense) RLD2P() bool { return r&0x04 != 0 }
func (r RLDSense) RLD1N() bool { return r&0x02 != 0 }
func (r RLDSense) RLD1P() bool { return r&0x01 != 0 }

func (r RLDSense) set(mask RLDSense, on bool) RLDSense {
	if on {
		return r | mask
	}
	return r &^ mask
}

// RespConf2 is the RESP2 register: respiration and calibration control.
type RespConf2 byte

// OffsetCalibration reports whether offset calibration is enabled.
func (r RespConf2) OffsetCalibration() bool { return r&0x80 != 0 }

func (r RespConf2) SetOffsetCalibration(on bool) RespConf2 { return r.set(0x80, on) }

// RespFreq64kHz selects the 64 kHz respiration control frequency.
// Must be set on the ADS1291 and ADS1292.
func (r RespConf2) RespFreq64kHz() bool { return r&0x04 != 0 }

func (r RespConf2) SetRespFreq64kHz(on bool) RespConf2 { return r.set(0x04, on) }

// RLDRefInternal reports whether RLDREF is derived internally from
// (AVDD - AVSS) / 2 instead of fed externally.
func (r RespConf2) RLDRefInternal() bool { return r&0x02 != 0 }

func (r RespConf2) SetRLDRefInternal(on bool) RespConf2 { return r.set(0x02, on) }

func (r RespConf2) set(mask RespConf2, on bool) RespConf2 {
	if on {
		return r | mask
	}
	return r &^ mask
}
