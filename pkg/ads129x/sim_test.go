package ads129x

import (
	"errors"
	"sync"
	"time"
)

// simTransport is a scripted in-memory bus. It records every exchange,
// keeps a register file with echo semantics, and serves canned frames
// for frame-sized reads.
type simTransport struct {
	mu     sync.Mutex
	log    [][]byte
	frames [][]byte
	regs   [NumRegisters]byte
	fail   error
	closed bool
}

func newSimTransport() *simTransport {
	s := &simTransport{}
	// Any ID with the family bit high.
	s.regs[RegID] = 0x53
	return s
}

func (s *simTransport) Exchange(tx, rx []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log = append(s.log, append([]byte(nil), tx...))
	if s.fail != nil {
		err := s.fail
		s.fail = nil
		return err
	}

	switch {
	case len(tx) == 3 && tx[0]&0xE0 == CmdWREG.Word():
		s.regs[tx[0]&0x1F] = tx[2]
	case len(tx) == 4 && tx[0]&0xE0 == CmdRREG.Word():
		rx[2] = s.regs[tx[0]&0x1F]
	case len(tx) == FrameSize:
		if len(s.frames) > 0 {
			copy(rx, s.frames[0])
			s.frames = s.frames[1:]
		}
	}
	return nil
}

func (s *simTransport) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *simTransport) failNext(err error) {
	s.mu.Lock()
	s.fail = err
	s.mu.Unlock()
}

func (s *simTransport) queueFrame(f []byte) {
	s.mu.Lock()
	s.frames = append(s.frames, append([]byte(nil), f...))
	s.mu.Unlock()
}

// countCommand returns how many single-byte exchanges carried c.
func (s *simTransport) countCommand(c Command) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, tx := range s.log {
		if len(tx) == 1 && tx[0] == c.Word() {
			n++
		}
	}
	return n
}

func (s *simTransport) exchanges() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.log)
}

var errSimBus = errors.New("simulated bus failure")

// noWait replaces the delay primitive in tests so they run at full
// speed.
func noWait(time.Duration) {}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Wait = noWait
	return cfg
}
