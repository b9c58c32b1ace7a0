package ads129x

// Command is a single-byte SPI command opcode.
//
// Opcodes from Table 13 of the ADS1292 datasheet.
type Command byte

const (
	// CmdWAKEUP wakes the device from standby mode.
	CmdWAKEUP Command = 0x02
	// CmdSTANDBY enters standby mode.
	CmdSTANDBY Command = 0x04
	// CmdRESET resets the device.
	CmdRESET Command = 0x06
	// CmdSTART starts or restarts (synchronizes) conversions.
	CmdSTART Command = 0x08
	// CmdSTOP stops conversions.
	CmdSTOP Command = 0x0A
	// CmdRDATAC enables read-data-continuous mode. This is the power-up
	// default; RREG commands are ignored while it is active.
	CmdRDATAC Command = 0x10
	// CmdSDATAC stops read-data-continuous mode.
	CmdSDATAC Command = 0x11
	// CmdRDATA reads one data frame by command.
	CmdRDATA Command = 0x12
	// CmdOFFSETCAL runs the channel offset calibration.
	CmdOFFSETCAL Command = 0x1A

	// CmdRREG and CmdWREG are register transaction opcodes. They are
	// never sent bare; the low bits carry the register address and a
	// second byte carries the register count minus one.
	CmdRREG Command = 0x20
	CmdWREG Command = 0x40
)

// Commands lists every standalone command opcode, in wire-value order.
// RREG/WREG are excluded; they head multi-byte register transactions.
var Commands = []Command{
	CmdWAKEUP, CmdSTANDBY, CmdRESET, CmdSTART, CmdSTOP,
	CmdRDATAC, CmdSDATAC, CmdRDATA, CmdOFFSETCAL,
}

// Word returns the wire encoding of the command.
func (c Command) Word() byte {
	return byte(c)
}

func (c Command) String() string {
	switch c {
	case CmdWAKEUP:
		return "WAKEUP"
	case CmdSTANDBY:
		return "STANDBY"
	case CmdRESET:
		return "RESET"
	case CmdSTART:
		return "START"
	case CmdSTOP:
		return "STOP"
	case CmdRDATAC:
		return "RDATAC"
	case CmdSDATAC:
		return "SDATAC"
	case CmdRDATA:
		return "RDATA"
	case CmdOFFSETCAL:
		return "OFFSETCAL"
	case CmdRREG:
		return "RREG"
	case CmdWREG:
		return "WREG"
	default:
		return "(invalid command)"
	}
}
