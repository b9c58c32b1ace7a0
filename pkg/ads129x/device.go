// Package ads129x drives the Texas Instruments ADS1292 24-bit
// 2-channel analog front end over a synchronous serial transport.
//
// Obtain a handle with Init, configure it through the register
// accessors, then either call ReadData for single-shot acquisition or
// convert the handle into a DataStream for continuous conversion. The
// caller gates stream pulls on the chip's DRDY line; see pkg/ft232h
// and pkg/spidev for transports and DRDY helpers.
package ads129x

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Delay constants, expressed as durations of the reference 500 kHz
// command timer used by the chip's documentation.
const (
	// DefaultSettleDelay is the wait applied after mode-changing
	// commands (200 timer periods).
	DefaultSettleDelay = 400 * time.Microsecond

	// DefaultInitDelay is the wait applied after the wake-up SDATAC
	// during Init (40 timer periods).
	DefaultInitDelay = 80 * time.Microsecond

	// tRegisterSettle is the post-transaction wait after register
	// reads and writes (t6 in the datasheet timing table).
	tRegisterSettle = 50 * time.Microsecond
)

// WaitFunc blocks for at least d. The default is time.Sleep; variants
// with different timing sources can substitute their own.
type WaitFunc func(d time.Duration)

// Config carries the user-level device parameters.
type Config struct {
	// SettleDelay is applied after mode-changing commands before the
	// chip is assumed ready. Variant chips with different settle
	// requirements override this.
	SettleDelay time.Duration

	// InitDelay is applied after the wake-up SDATAC sent by Init.
	InitDelay time.Duration

	// Wait is the blocking delay primitive. Nil means time.Sleep.
	Wait WaitFunc
}

// DefaultConfig returns the ADS1292 timing defaults.
func DefaultConfig() Config {
	return Config{
		SettleDelay: DefaultSettleDelay,
		InitDelay:   DefaultInitDelay,
	}
}

func (cfg Config) withDefaults() Config {
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	if cfg.InitDelay == 0 {
		cfg.InitDelay = DefaultInitDelay
	}
	if cfg.Wait == nil {
		cfg.Wait = time.Sleep
	}
	return cfg
}

// ADS1292 provides register-level control over a TI ADS1292 analog
// front end. The handle exclusively owns its Transport; converting it
// into a DataStream moves that ownership into the stream until the
// stream is closed.
type ADS1292 struct {
	mu  sync.Mutex
	spi Transport
	cfg Config

	// Last read register values, for reference and debugging.
	regLR [NumRegisters]byte
}

// Init takes ownership of the transport and performs the power-up
// handshake: the chip boots streaming, so Init stops continuous mode,
// waits for it to settle, and verifies the ID register. The transport
// is not closed on failure; the caller still owns it then.
func Init(t Transport, cfg Config) (*ADS1292, error) {
	d := &ADS1292{spi: t, cfg: cfg.withDefaults()}

	if err := d.cmd(CmdSDATAC); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	d.cfg.Wait(d.cfg.InitDelay)

	id, err := d.readRegister(RegID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	if id&idModelMask != idModelMask {
		return nil, fmt.Errorf("%w: %w: id 0x%02X", ErrInit, ErrBootFailure, id)
	}

	return d, nil
}

// Wait blocks for d using the configured delay primitive. Callers use
// it to space commands the way the datasheet requires.
func (d *ADS1292) Wait(dur time.Duration) {
	d.cfg.Wait(dur)
}

// Cmd sends a single command byte.
func (d *ADS1292) Cmd(c Command) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cmd(c)
}

func (d *ADS1292) cmd(c Command) error {
	rx := get1()
	defer put1(rx)
	if err := d.exchange([]byte{c.Word()}, rx); err != nil {
		return fmt.Errorf("%s: %w", c, err)
	}
	return nil
}

// exchange performs one bus exchange, tagging failures with
// ErrTransport. Callers hold d.mu.
func (d *ADS1292) exchange(tx, rx []byte) error {
	if d.spi == nil {
		return ErrHandleConsumed
	}
	if err := d.spi.Exchange(tx, rx); err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return nil
}

// WriteRegister writes one register. Values carrying bits outside the
// register's writable mask are rejected with ErrInvalidRegisterValue
// rather than silently masked.
func (d *ADS1292) WriteRegister(reg Register, value byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeRegister(reg, value)
}

func (d *ADS1292) writeRegister(reg Register, value byte) error {
	if int(reg) >= NumRegisters {
		return fmt.Errorf("%w: no register at 0x%02X", ErrInvalidRegisterValue, byte(reg))
	}
	if !reg.Writable(value) {
		return fmt.Errorf("%w: %s <- 0x%02X (writable bits 0x%02X)",
			ErrInvalidRegisterValue, reg, value, writableBits[reg])
	}

	// WREG header: opcode | address, then register count minus one.
	tx := []byte{CmdWREG.Word() | reg.Addr(), 0x00, value}
	rx := get3()
	defer put3(rx)
	if err := d.exchange(tx, rx); err != nil {
		return fmt.Errorf("write %s: %w", reg, err)
	}
	d.cfg.Wait(tRegisterSettle)
	return nil
}

// ReadRegister reads one register.
func (d *ADS1292) ReadRegister(reg Register) (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readRegister(reg)
}

func (d *ADS1292) readRegister(reg Register) (byte, error) {
	if int(reg) >= NumRegisters {
		return 0, fmt.Errorf("%w: no register at 0x%02X", ErrInvalidRegisterValue, byte(reg))
	}

	// RREG header mirrors WREG; the value is clocked out on the third
	// byte of the same exchange.
	tx := []byte{CmdRREG.Word() | reg.Addr(), 0x00, 0x00, 0x00}
	rx := make([]byte, 4)
	if err := d.exchange(tx, rx); err != nil {
		return 0, fmt.Errorf("read %s: %w", reg, err)
	}
	d.cfg.Wait(tRegisterSettle)

	d.regLR[reg] = rx[2]
	return rx[2], nil
}

// LastReadRegister returns the cached value from the most recent read
// of reg, without touching the bus.
func (d *ADS1292) LastReadRegister(reg Register) byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.regLR[reg]
}

// Registers returns the cached value of every register from its most
// recent read, without touching the bus.
func (d *ADS1292) Registers() map[Register]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.registers()
}

// ReadAllRegisters reads every register and returns the address→value
// map.
func (d *ADS1292) ReadAllRegisters() (map[Register]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, reg := range Registers {
		if _, err := d.readRegister(reg); err != nil {
			return nil, err
		}
	}
	return d.registers(), nil
}

// registers snapshots the last-read cache. Callers hold d.mu.
func (d *ADS1292) registers() map[Register]byte {
	regs := make(map[Register]byte, NumRegisters)
	for reg, val := range d.regLR {
		regs[Register(reg)] = val
	}
	return regs
}

// ReadData acquires one frame by command: RDATA followed by a
// frame-sized transfer.
func (d *ADS1292) ReadData() (Data, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.cmd(CmdRDATA); err != nil {
		return Data{}, err
	}
	return d.readFrame()
}

// readFrame clocks one frame off the bus. Callers hold d.mu.
func (d *ADS1292) readFrame() (Data, error) {
	buf := getFrame()
	defer putFrame(buf)
	if err := d.exchange(zeroFrame, buf); err != nil {
		return Data{}, fmt.Errorf("read frame: %w", err)
	}
	return DecodeFrame(buf)
}

// Reset sends the RESET command and waits for the chip to settle.
func (d *ADS1292) Reset() error {
	if err := d.Cmd(CmdRESET); err != nil {
		return err
	}
	d.cfg.Wait(d.cfg.SettleDelay)
	return nil
}

// Start starts (or resynchronizes) conversions.
func (d *ADS1292) Start() error { return d.Cmd(CmdSTART) }

// Stop stops conversions.
func (d *ADS1292) Stop() error { return d.Cmd(CmdSTOP) }

// Standby enters standby mode. Only WAKEUP brings the chip back out.
func (d *ADS1292) Standby() error { return d.Cmd(CmdSTANDBY) }

// Wakeup leaves standby mode.
func (d *ADS1292) Wakeup() error {
	if err := d.Cmd(CmdWAKEUP); err != nil {
		return err
	}
	d.cfg.Wait(d.cfg.SettleDelay)
	return nil
}

// OffsetCal runs the channel offset calibration.
func (d *ADS1292) OffsetCal() error {
	if err := d.Cmd(CmdOFFSETCAL); err != nil {
		return err
	}
	d.cfg.Wait(d.cfg.SettleDelay)
	return nil
}

// Close puts the chip in standby and releases the transport.
func (d *ADS1292) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.spi == nil {
		return ErrHandleConsumed
	}
	err := d.cmd(CmdSTANDBY)
	if cerr := d.spi.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("%w: %w", ErrTransport, cerr))
	}
	d.spi = nil
	return err
}

// Typed register accessors.

// ID reads the factory-programmed ID register.
func (d *ADS1292) ID() (byte, error) { return d.ReadRegister(RegID) }

// Conf1 reads CONFIG1.
func (d *ADS1292) Conf1() (Conf1, error) {
	b, err := d.ReadRegister(RegCONFIG1)
	return Conf1(b), err
}

// SetConf1 writes CONFIG1.
func (d *ADS1292) SetConf1(c Conf1) error { return d.WriteRegister(RegCONFIG1, byte(c)) }

// Conf2 reads CONFIG2.
func (d *ADS1292) Conf2() (Conf2, error) {
	b, err := d.ReadRegister(RegCONFIG2)
	return Conf2(b), err
}

// SetConf2 writes CONFIG2.
func (d *ADS1292) SetConf2(c Conf2) error { return d.WriteRegister(RegCONFIG2, byte(c)) }

// LeadOff reads LOFF.
func (d *ADS1292) LeadOff() (Loff, error) {
	b, err := d.ReadRegister(RegLOFF)
	return Loff(b), err
}

// SetLeadOff writes LOFF.
func (d *ADS1292) SetLeadOff(l Loff) error { return d.WriteRegister(RegLOFF, byte(l)) }

// LeadOffSense reads LOFF_SENS.
func (d *ADS1292) LeadOffSense() (LoffSense, error) {
	b, err := d.ReadRegister(RegLOFFSENS)
	return LoffSense(b), err
}

// SetLeadOffSense writes LOFF_SENS.
func (d *ADS1292) SetLeadOffSense(l LoffSense) error {
	return d.WriteRegister(RegLOFFSENS, byte(l))
}

// LeadOffStatus reads LOFF_STAT.
func (d *ADS1292) LeadOffStatus() (LeadOffStatus, error) {
	b, err := d.ReadRegister(RegLOFFSTAT)
	return LeadOffStatus(b), err
}

// Channel1 reads CH1SET.
func (d *ADS1292) Channel1() (ChannelSettings, error) {
	b, err := d.ReadRegister(RegCH1SET)
	return ChannelSettings(b), err
}

// SetChannel1 writes CH1SET.
func (d *ADS1292) SetChannel1(c ChannelSettings) error {
	return d.WriteRegister(RegCH1SET, byte(c))
}

// Channel2 reads CH2SET.
func (d *ADS1292) Channel2() (ChannelSettings, error) {
	b, err := d.ReadRegister(RegCH2SET)
	return ChannelSettings(b), err
}

// SetChannel2 writes CH2SET.
func (d *ADS1292) SetChannel2(c ChannelSettings) error {
	return d.WriteRegister(RegCH2SET, byte(c))
}

// RLDSense reads RLD_SENS.
func (d *ADS1292) RLDSense() (RLDSense, error) {
	b, err := d.ReadRegister(RegRLDSENS)
	return RLDSense(b), err
}

// SetRLDSense writes RLD_SENS.
func (d *ADS1292) SetRLDSense(r RLDSense) error {
	return d.WriteRegister(RegRLDSENS, byte(r))
}

// RespConf2 reads RESP2.
func (d *ADS1292) RespConf2() (RespConf2, error) {
	b, err := d.ReadRegister(RegRESP2)
	return RespConf2(b), err
}

// SetRespConf2 writes RESP2.
func (d *ADS1292) SetRespConf2(r RespConf2) error {
	return d.WriteRegister(RegRESP2, byte(r))
}
