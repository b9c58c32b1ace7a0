package ads129x

import (
	"fmt"
	"runtime"
	"sync"
)

// DataStream reads conversion frames while the chip runs in
// read-data-continuous mode. A stream exclusively owns the device
// handle it was created from: the handle it came from is emptied and
// fails every operation until Close hands a live handle back.
//
// The caller gates Next on the DRDY line; the stream itself has no
// visibility into it. Pulling before DRDY asserts yields stale or
// partial frames.
type DataStream struct {
	mu     sync.Mutex
	dev    *ADS1292
	closed bool
}

// IntoStream sends RDATAC, waits the configured settle delay, and
// moves the handle into a DataStream. On failure the handle is left
// untouched and still usable, so the caller can retry or fall back to
// single-shot reads.
func (d *ADS1292) IntoStream() (*DataStream, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.spi == nil {
		return nil, ErrHandleConsumed
	}
	if err := d.cmd(CmdRDATAC); err != nil {
		return nil, fmt.Errorf("enter continuous mode: %w", err)
	}
	d.cfg.Wait(d.cfg.SettleDelay)

	// Move the transport into a stream-private handle. The original
	// handle keeps nothing it could drive the bus with.
	inner := &ADS1292{spi: d.spi, cfg: d.cfg, regLR: d.regLR}
	d.spi = nil

	s := &DataStream{dev: inner}
	runtime.SetFinalizer(s, finalizeStream)
	return s, nil
}

// Next pulls one frame. In continuous mode the chip streams frames on
// its own, so the pull is exactly one frame-sized transfer with no
// command byte.
func (s *DataStream) Next() (Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Data{}, ErrStreamClosed
	}
	return s.dev.pullFrame()
}

func (d *ADS1292) pullFrame() (Data, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readFrame()
}

// Close stops continuous mode and returns the recovered device handle.
// The first call sends SDATAC; later calls are no-ops returning the
// same handle. Even when the SDATAC exchange fails the handle is
// returned alongside the error, so bus ownership is never lost.
func (s *DataStream) Close() (*ADS1292, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.dev, nil
	}
	s.closed = true
	runtime.SetFinalizer(s, nil)

	if err := s.dev.Cmd(CmdSDATAC); err != nil {
		return s.dev, fmt.Errorf("exit continuous mode: %w", err)
	}
	s.dev.cfg.Wait(s.dev.cfg.SettleDelay)
	return s.dev, nil
}

// finalizeStream closes streams that were dropped without an explicit
// Close, so SDATAC is sent on every path that ends a stream's life.
// The recovered handle is unreachable at that point and is discarded
// along with any exit error.
func finalizeStream(s *DataStream) {
	_, _ = s.Close()
}
