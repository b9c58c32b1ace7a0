// ecgdump streams conversion frames from an ADS1292 analog front end
// and prints the decoded channel values. It talks to the chip either
// through a Linux spidev port with a gpiochip DRDY line, or through an
// FT232H bridge.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/l0nax/go-spew/spew"
	"github.com/rs/zerolog"
	"periph.io/x/periph/conn/physic"

	"github.com/yunginnanet/spi-ads1292/pkg/ads129x"
	"github.com/yunginnanet/spi-ads1292/pkg/ft232h"
	"github.com/yunginnanet/spi-ads1292/pkg/spidev"
)

var log zerolog.Logger

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

var pprint = spew.ConfigState{
	Indent:           "\t",
	SortKeys:         true,
	HighlightHex:     true,
	ContinueOnMethod: true,
}

type options struct {
	spiPort string
	chip    string
	drdy    int
	useFTDI bool
	ftIndex int
	csPin   uint
	drdyPin uint
	pwdnPin uint
	rate    uint
	gain    uint
	count   int
	verbose bool
}

func flags() options {
	var o options
	flag.StringVar(&o.spiPort, "spi", "/dev/spidev0.0", "spidev port")
	flag.StringVar(&o.chip, "chip", "gpiochip0", "gpiochip carrying the DRDY line")
	flag.IntVar(&o.drdy, "drdy", 25, "DRDY line offset on -chip")
	flag.BoolVar(&o.useFTDI, "ftdi", false, "use an FT232H bridge instead of spidev")
	flag.IntVar(&o.ftIndex, "ftdi-index", 0, "FT232H device index")
	flag.UintVar(&o.csPin, "cs", 0x10, "chip select pin (FT232H)")
	flag.UintVar(&o.drdyPin, "ftdi-drdy", 0x01, "data ready pin (FT232H)")
	flag.UintVar(&o.pwdnPin, "pwdn", 0x40, "power down pin (FT232H)")
	flag.UintVar(&o.rate, "rate", uint(ads129x.Sps500), "sample rate code (CONFIG1 DR bits)")
	flag.UintVar(&o.gain, "gain", uint(ads129x.Gain6), "PGA gain code (CHnSET GAIN bits)")
	flag.IntVar(&o.count, "n", 500, "number of frames to read, 0 for unlimited")
	flag.BoolVar(&o.verbose, "v", false, "verbose output")
	flag.Parse()
	return o
}

// validateCodes rejects -rate and -gain values that don't name a real
// device setting, rather than letting the register setters truncate
// them to their field width.
func validateCodes(rate, gain uint) error {
	if rate > uint(ads129x.KSps8) {
		return fmt.Errorf("sample rate code %d out of range (max %d)", rate, uint(ads129x.KSps8))
	}
	if gain > uint(ads129x.Gain12) || ads129x.Gain(gain).Factor() == 0 {
		return fmt.Errorf("gain code %d is not a valid PGA setting", gain)
	}
	return nil
}

// waiter gates stream pulls on the data-ready signal, whichever pin
// backend provides it.
type waiter func(ctx context.Context) error

func main() {
	o := flags()
	if err := validateCodes(o.rate, o.gain); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}
	if o.verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	transport, ready := connect(o)

	adc, err := ads129x.Init(transport, ads129x.DefaultConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize ADS1292")
	}
	log.Info().Msg("initialized ADS1292")

	configure(adc, o)

	if o.verbose {
		regs, err := adc.ReadAllRegisters()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read back registers")
		}
		log.Debug().Msg("register map:\n" + pprint.Sdump(regs))
	}

	if err = adc.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start conversions")
	}
	adc.Wait(ads129x.DefaultSettleDelay)

	stream, err := adc.IntoStream()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to enter continuous mode")
	}
	log.Info().Msg("streaming")

	read := 0
	for o.count == 0 || read < o.count {
		if err = ready(ctx); err != nil {
			log.Info().Err(err).Msg("stopping")
			break
		}
		data, err := stream.Next()
		if err != nil {
			log.Error().Err(err).Msg("pull failed")
			break
		}
		read++
		ev := log.Info().
			Int("frame", read).
			Int32("ch1", data.Channel1().Int32()).
			Int32("ch2", data.Channel2().Int32())
		if loff := data.LeadOffStatus(); loff != 0 {
			ev = ev.Str("lead_off", loff.String())
		}
		ev.Send()
	}

	adc, err = stream.Close()
	if err != nil {
		log.Error().Err(err).Msg("failed to exit continuous mode")
	}
	if err = adc.Stop(); err != nil {
		log.Error().Err(err).Msg("failed to stop conversions")
	}
	if err = adc.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close ADS1292")
	}
	log.Info().Int("frames", read).Msg("done")
}

// connect opens the selected transport and returns it along with the
// matching data-ready waiter.
func connect(o options) (ads129x.Transport, waiter) {
	if o.useFTDI {
		ftdi, err := ft232h.Connect(ft232h.ByIndex(o.ftIndex))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to FT232H")
		}
		log.Info().Any("info", ftdi.Info()).Msgf("connected to %s", ftdi)

		if err = ftdi.ConfigureSPI(o.csPin); err != nil {
			log.Fatal().Err(err).Msg("failed to configure SPI engine")
		}
		if err = ftdi.SetCSPin(o.csPin); err != nil {
			log.Fatal().Err(err).Msg("failed to configure CS pin")
		}
		if err = ftdi.SetDRDY(o.drdyPin); err != nil {
			log.Fatal().Err(err).Msg("failed to configure DRDY pin")
		}
		if err = ftdi.SetPWDN(o.pwdnPin); err != nil {
			log.Fatal().Err(err).Msg("failed to configure PWDN pin")
		}
		return ftdi, func(context.Context) error { return ftdi.WaitDRDY() }
	}

	dev, err := spidev.Open(o.spiPort, physic.MegaHertz)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open spidev port")
	}
	log.Info().Msgf("opened %s", dev)

	ready, err := spidev.NewReadyLine(o.chip, o.drdy)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to request DRDY line")
	}
	return dev, ready.Wait
}

func configure(adc *ads129x.ADS1292, o options) {
	conf1 := ads129x.Conf1(0).SetSampleRate(ads129x.SampleRate(o.rate))
	if err := adc.SetConf1(conf1); err != nil {
		log.Fatal().Err(err).Msg("failed to write CONFIG1")
	}

	// Internal reference buffer on, test signal off.
	conf2 := ads129x.Conf2(0).SetReferenceBuffer(true)
	if err := adc.SetConf2(conf2); err != nil {
		log.Fatal().Err(err).Msg("failed to write CONFIG2")
	}

	ch := ads129x.ChannelSettings(0).
		SetGain(ads129x.Gain(o.gain)).
		SetMux(ads129x.InputNormal)
	if err := adc.SetChannel1(ch); err != nil {
		log.Fatal().Err(err).Msg("failed to write CH1SET")
	}
	if err := adc.SetChannel2(ch); err != nil {
		log.Fatal().Err(err).Msg("failed to write CH2SET")
	}

	adc.Wait(100 * time.Millisecond)
}
