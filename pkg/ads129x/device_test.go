package ads129x

import (
	"errors"
	"testing"
)

func TestCommandEncoding(t *testing.T) {
	t.Run("Distinct", func(t *testing.T) {
		all := append([]Command{CmdRREG, CmdWREG}, Commands...)
		seen := make(map[byte]Command, len(all))
		for _, c := range all {
			if prev, dup := seen[c.Word()]; dup {
				t.Errorf("%s and %s share opcode 0x%02X", prev, c, c.Word())
			}
			seen[c.Word()] = c
		}
	})

	t.Run("Named", func(t *testing.T) {
		for _, c := range append([]Command{CmdRREG, CmdWREG}, Commands...) {
			if c.String() == "(invalid command)" {
				t.Errorf("command 0x%02X has no name", c.Word())
			}
		}
	})
}

func TestRegisterEncoding(t *testing.T) {
	seen := make(map[byte]Register, len(Registers))
	for _, r := range Registers {
		if prev, dup := seen[r.Addr()]; dup {
			t.Errorf("%s and %s share address 0x%02X", prev, r, r.Addr())
		}
		seen[r.Addr()] = r
		if r.String() == "(invalid register)" {
			t.Errorf("register 0x%02X has no name", r.Addr())
		}
	}
	if len(Registers) != NumRegisters {
		t.Errorf("register table lists %d of %d registers", len(Registers), NumRegisters)
	}
}

func TestInit(t *testing.T) {
	t.Run("Handshake", func(t *testing.T) {
		sim := newSimTransport()
		d, err := Init(sim, testConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d == nil {
			t.Fatal("expected a handle")
		}
		// The chip powers up streaming; Init must stop it exactly once.
		if n := sim.countCommand(CmdSDATAC); n != 1 {
			t.Errorf("expected 1 SDATAC during init, got %d", n)
		}
		if got := d.LastReadRegister(RegID); got != 0x53 {
			t.Errorf("expected cached ID 0x53, got 0x%02X", got)
		}
	})

	t.Run("BadID", func(t *testing.T) {
		sim := newSimTransport()
		sim.regs[RegID] = 0x00
		_, err := Init(sim, testConfig())
		if !errors.Is(err, ErrInit) {
			t.Errorf("expected ErrInit, got %v", err)
		}
		if !errors.Is(err, ErrBootFailure) {
			t.Errorf("expected ErrBootFailure, got %v", err)
		}
	})

	t.Run("BusFailure", func(t *testing.T) {
		sim := newSimTransport()
		sim.failNext(errSimBus)
		_, err := Init(sim, testConfig())
		if !errors.Is(err, ErrInit) || !errors.Is(err, ErrTransport) {
			t.Errorf("expected ErrInit wrapping ErrTransport, got %v", err)
		}
	})
}

func TestRegisterRoundTrip(t *testing.T) {
	sim := newSimTransport()
	d, err := Init(sim, testConfig())
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, reg := range Registers {
		mask := writableBits[reg]
		if mask == 0 {
			continue
		}
		for _, v := range []byte{0x00, mask & 0x55, mask} {
			if err := d.WriteRegister(reg, v); err != nil {
				t.Fatalf("write %s <- 0x%02X: %v", reg, v, err)
			}
			got, err := d.ReadRegister(reg)
			if err != nil {
				t.Fatalf("read %s: %v", reg, err)
			}
			if got != v {
				t.Errorf("%s: wrote 0x%02X, read 0x%02X", reg, v, got)
			}
		}
	}
}

func TestWriteRegisterRejects(t *testing.T) {
	sim := newSimTransport()
	d, err := Init(sim, testConfig())
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	cases := []struct {
		name  string
		reg   Register
		value byte
	}{
		{"ReadOnlyID", RegID, 0x01},
		{"ReservedBits", RegLOFFSENS, 0xFF},
		{"StatusBits", RegLOFFSTAT, 0x1F},
		{"NoSuchRegister", Register(0x1F), 0x00},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := sim.exchanges()
			err := d.WriteRegister(tc.reg, tc.value)
			if !errors.Is(err, ErrInvalidRegisterValue) {
				t.Errorf("expected ErrInvalidRegisterValue, got %v", err)
			}
			if sim.exchanges() != before {
				t.Error("rejected write still touched the bus")
			}
		})
	}
}

func TestTypedRegisterAccessors(t *testing.T) {
	sim := newSimTransport()
	d, err := Init(sim, testConfig())
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	conf1 := Conf1(0).SetSampleRate(Sps500)
	if err := d.SetConf1(conf1); err != nil {
		t.Fatalf("SetConf1: %v", err)
	}
	got, err := d.Conf1()
	if err != nil {
		t.Fatalf("Conf1: %v", err)
	}
	if got.SampleRate() != Sps500 || got.SingleShot() {
		t.Errorf("unexpected CONFIG1 readback: %08b", byte(got))
	}

	ch := ChannelSettings(0).SetGain(Gain4).SetMux(InputTest)
	if err := d.SetChannel1(ch); err != nil {
		t.Fatalf("SetChannel1: %v", err)
	}
	gotCh, err := d.Channel1()
	if err != nil {
		t.Fatalf("Channel1: %v", err)
	}
	if gotCh.Gain() != Gain4 || gotCh.Mux() != InputTest || gotCh.PowerDown() {
		t.Errorf("unexpected CH1SET readback: %08b", byte(gotCh))
	}
}

func TestReadData(t *testing.T) {
	sim := newSimTransport()
	d, err := Init(sim, testConfig())
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	sim.queueFrame([]byte{0, 0, 0, 0x00, 0x00, 0x2A, 0xFF, 0xFF, 0xD6})
	data, err := d.ReadData()
	if err != nil {
		t.Fatalf("ReadData: %v", err)
	}
	if got := data.Channel1().Int32(); got != 42 {
		t.Errorf("ch1: expected 42, got %d", got)
	}
	if got := data.Channel2().Int32(); got != -42 {
		t.Errorf("ch2: expected -42, got %d", got)
	}
	if n := sim.countCommand(CmdRDATA); n != 1 {
		t.Errorf("expected 1 RDATA command, got %d", n)
	}
}

func TestReadAllRegisters(t *testing.T) {
	sim := newSimTransport()
	d, err := Init(sim, testConfig())
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	regs, err := d.ReadAllRegisters()
	if err != nil {
		t.Fatalf("ReadAllRegisters: %v", err)
	}
	if len(regs) != NumRegisters {
		t.Errorf("expected %d registers, got %d", NumRegisters, len(regs))
	}
	if regs[RegID] != 0x53 {
		t.Errorf("expected ID 0x53, got 0x%02X", regs[RegID])
	}
}

func TestRegistersCache(t *testing.T) {
	sim := newSimTransport()
	d, err := Init(sim, testConfig())
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	if err = d.WriteRegister(RegCONFIG1, 0x02); err != nil {
		t.Fatalf("WriteRegister: %v", err)
	}
	if _, err = d.ReadRegister(RegCONFIG1); err != nil {
		t.Fatalf("ReadRegister: %v", err)
	}

	before := sim.exchanges()
	regs := d.Registers()
	if got := sim.exchanges(); got != before {
		t.Errorf("Registers touched the bus: %d exchanges before, %d after", before, got)
	}
	if len(regs) != NumRegisters {
		t.Errorf("expected %d registers, got %d", NumRegisters, len(regs))
	}
	if regs[RegCONFIG1] != 0x02 {
		t.Errorf("expected cached CONFIG1 0x02, got 0x%02X", regs[RegCONFIG1])
	}
	if regs[RegID] != 0x53 {
		t.Errorf("expected cached ID 0x53, got 0x%02X", regs[RegID])
	}
}

func TestCloseStandsBy(t *testing.T) {
	sim := newSimTransport()
	d, err := Init(sim, testConfig())
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if n := sim.countCommand(CmdSTANDBY); n != 1 {
		t.Errorf("expected 1 STANDBY on close, got %d", n)
	}
	if !sim.closed {
		t.Error("transport not closed")
	}
	if err := d.Close(); !errors.Is(err, ErrHandleConsumed) {
		t.Errorf("expected ErrHandleConsumed on second close, got %v", err)
	}
}
