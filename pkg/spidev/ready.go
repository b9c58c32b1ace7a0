package spidev

import (
	"context"
	"fmt"

	"github.com/warthog618/gpiod"
)

// ReadyLine watches the ADS129x DRDY pin through the GPIO character
// device. DRDY falls when a fresh conversion frame is ready; callers
// block on Wait before each stream pull.
type ReadyLine struct {
	line   *gpiod.Line
	events chan gpiod.LineEvent
}

// NewReadyLine requests the DRDY line with falling-edge detection.
// chip is a gpiochip name like "gpiochip0"; offset is the line number.
func NewReadyLine(chip string, offset int) (*ReadyLine, error) {
	r := &ReadyLine{events: make(chan gpiod.LineEvent, 16)}
	line, err := gpiod.RequestLine(chip, offset,
		gpiod.AsInput,
		gpiod.WithFallingEdge,
		gpiod.WithEventHandler(r.handleEvent),
	)
	if err != nil {
		return nil, fmt.Errorf("spidev: request DRDY line %s:%d: %w", chip, offset, err)
	}
	r.line = line
	return r, nil
}

func (r *ReadyLine) handleEvent(evt gpiod.LineEvent) {
	// Never block the gpiod event goroutine; a slow consumer drops
	// edges and simply reads the next frame instead.
	select {
	case r.events <- evt:
	default:
	}
}

// Wait blocks until DRDY falls or the context is done.
func (r *ReadyLine) Wait(ctx context.Context) error {
	// Drain stale edges so we wait for a frame produced from now on.
drain:
	for {
		select {
		case <-r.events:
		default:
			break drain
		}
	}
	select {
	case <-r.events:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases the line.
func (r *ReadyLine) Close() error {
	return r.line.Close()
}
