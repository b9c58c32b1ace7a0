package ads129x

// Transport is the synchronous serial exchange the driver runs on.
// Implementations own the bus handle and the chip-select line; CS is
// asserted for the duration of each exchange and released before it
// returns. All calls block until the exchange completes.
//
// The driver never retries: an exchange error is surfaced to the caller
// as is, wrapped in ErrTransport.
type Transport interface {
	// Exchange clocks tx out while filling rx with the bytes read
	// back. len(rx) must equal len(tx).
	Exchange(tx, rx []byte) error

	// Close releases the bus.
	Close() error
}
