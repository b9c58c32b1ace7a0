package ads129x

import "errors"

var (
	// ErrTransport wraps a failure of the underlying serial exchange.
	ErrTransport = errors.New("transport error")

	// ErrInit reports a failed initialization handshake.
	ErrInit = errors.New("initialization failed")

	// ErrBootFailure reports an ID register read that does not match the
	// ADS129x family. Wrapped in ErrInit.
	ErrBootFailure = errors.New("boot failure, unexpected device id")

	// ErrInvalidRegisterValue reports a register write carrying bits
	// outside the register's writable mask.
	ErrInvalidRegisterValue = errors.New("value exceeds register's writable bits")

	// ErrFrameLength reports a decode buffer that is not exactly one
	// frame long.
	ErrFrameLength = errors.New("unexpected frame length")

	// ErrStreamClosed reports a read from a closed data stream.
	ErrStreamClosed = errors.New("data stream closed")

	// ErrHandleConsumed reports an operation on a device handle whose
	// transport has been moved into a data stream.
	ErrHandleConsumed = errors.New("device handle consumed by data stream")
)
