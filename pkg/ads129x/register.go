package ads129x

// Register addresses a readable/writable device register.
//
// Addresses from Table 14 of the ADS1292 datasheet.
type Register byte

const (
	// RegID is the ID control register (factory-programmed, read-only).
	RegID Register = 0x00
	// RegCONFIG1 is configuration register 1.
	RegCONFIG1 Register = 0x01
	// RegCONFIG2 is configuration register 2.
	RegCONFIG2 Register = 0x02
	// RegLOFF is the lead-off control register.
	RegLOFF Register = 0x03
	// RegCH1SET holds the channel 1 settings.
	RegCH1SET Register = 0x04
	// RegCH2SET holds the channel 2 settings.
	RegCH2SET Register = 0x05
	// RegRLDSENS selects right leg drive sense inputs.
	RegRLDSENS Register = 0x06
	// RegLOFFSENS selects lead-off sense inputs.
	RegLOFFSENS Register = 0x07
	// RegLOFFSTAT is the lead-off status register.
	RegLOFFSTAT Register = 0x08
	// RegRESP1 is respiration control register 1.
	RegRESP1 Register = 0x09
	// RegRESP2 is respiration control register 2.
	RegRESP2 Register = 0x0A
	// RegGPIO is the general-purpose I/O register.
	RegGPIO Register = 0x0B

	// NumRegisters is the total number of registers (0x00 through 0x0B).
	NumRegisters = 0x0C
)

// Registers lists every register, in address order.
var Registers = []Register{
	RegID, RegCONFIG1, RegCONFIG2, RegLOFF, RegCH1SET, RegCH2SET,
	RegRLDSENS, RegLOFFSENS, RegLOFFSTAT, RegRESP1, RegRESP2, RegGPIO,
}

// Addr returns the register's address byte.
func (r Register) Addr() byte {
	return byte(r)
}

func (r Register) String() string {
	switch r {
	case RegID:
		return "ID"
	case RegCONFIG1:
		return "CONFIG1"
	case RegCONFIG2:
		return "CONFIG2"
	case RegLOFF:
		return "LOFF"
	case RegCH1SET:
		return "CH1SET"
	case RegCH2SET:
		return "CH2SET"
	case RegRLDSENS:
		return "RLD_SENS"
	case RegLOFFSENS:
		return "LOFF_SENS"
	case RegLOFFSTAT:
		return "LOFF_STAT"
	case RegRESP1:
		return "RESP1"
	case RegRESP2:
		return "RESP2"
	case RegGPIO:
		return "GPIO"
	default:
		return "(invalid register)"
	}
}

// writableBits maps each register to the bits a write may set. Writes
// carrying bits outside the mask are rejected rather than silently
// masked. Read-only registers have a zero mask.
var writableBits = [NumRegisters]byte{
	RegID:       0x00, // factory-programmed
	RegCONFIG1:  0x87, // SINGLE_SHOT + DR[2:0]
	RegCONFIG2:  0x7B, // PDB_LOFF_COMP, PDB_REFBUF, VREF_4V, CLK_EN, INT_TEST, TEST_FREQ
	RegLOFF:     0xED, // COMP_TH[2:0], ILEAD_OFF[1:0], FLEAD_OFF
	RegCH1SET:   0xFF,
	RegCH2SET:   0xFF,
	RegRLDSENS:  0xFF,
	RegLOFFSENS: 0x3F, // FLIP2, FLIP1, LOFF2N, LOFF2P, LOFF1N, LOFF1P
	RegLOFFSTAT: 0x40, // CLK_DIV; the status bits are read-only
	RegRESP1:    0xFD, // RESP_DEMOD_EN1, RESP_MOD_EN, RESP_PH[3:0], RESP_CTRL
	RegRESP2:    0x86, // CALIB_ON, RESP_FREQ, RLDREF_INT
	RegGPIO:     0x0F, // GPIOC[2:1], GPIOD[2:1]
}

// Writable reports whether v touches only bits a write to r may set.
func (r Register) Writable(v byte) bool {
	if int(r) >= NumRegisters {
		return false
	}
	return v&^writableBits[r] == 0
}

// idModelMask selects the ID register bit that must be high on every
// ADS129x family member. Init refuses to talk to a chip without it.
const idModelMask = 0x10
