package xrow

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultChunkSize is the largest transfer Bytes requests per ReadChunk call.
const DefaultChunkSize = 1024

// Reassembly selects how Bytes advances its offsets between chunk reads.
type Reassembly uint8

const (
	// ReassembleLegacy advances the source and destination offsets by the chunk
	// size after every call, whatever the cursor actually transferred. A short
	// chunk before the last one leaves a gap and shifts the tail of the value.
	ReassembleLegacy Reassembly = iota
	// ReassembleStrict advances both offsets by the bytes actually transferred.
	ReassembleStrict
)

func (r Reassembly) String() string {
	if r == ReassembleStrict {
		return "strict"
	}
	return "legacy"
}

type binaryConfig struct {
	chunkSize int
	mode      Reassembly
	logger    *zap.Logger
}

// BinaryOption configures Bytes.
type BinaryOption func(*binaryConfig)

// WithChunkSize sets the per-call transfer limit. Values below 1 are ignored.
func WithChunkSize(n int) BinaryOption {
	return func(c *binaryConfig) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

func WithReassembly(mode Reassembly) BinaryOption {
	return func(c *binaryConfig) {
		c.mode = mode
	}
}

// WithLogger sets the logger used for chunk-level debug output.
func WithLogger(logger *zap.Logger) BinaryOption {
	return func(c *binaryConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newBinaryConfig(opts []BinaryOption) binaryConfig {
	cfg := binaryConfig{
		chunkSize: DefaultChunkSize,
		mode:      ReassembleLegacy,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Bytes reads a binary column of the current row, however large, by driving
// the cursor's ReadChunk in a loop.
//
// A NULL column returns a nil slice and no chunk is read. Otherwise Bytes asks
// the cursor for the declared length (ReadChunk with a nil buffer and zero
// length), allocates exactly that much, and requests at most the chunk size
// per call until the bytes transferred add up to the declared length. A
// zero-length value returns a non-nil empty slice.
//
// Errors from ReadChunk are returned as is. If the cursor stops transferring
// before the declared length is reached, Bytes fails with [ErrShortRead].
//
// Example:
//
//	payload, err := xrow.Bytes(rows, "payload", xrow.WithReassembly(xrow.ReassembleStrict))
//	if err != nil {
//	    return err
//	}
//	if payload == nil {
//	    // NULL
//	}
func Bytes(c Cursor, name string, opts ...BinaryOption) ([]byte, error) {
	cfg := newBinaryConfig(opts)

	i, err := resolve(c, name)
	if err != nil {
		return nil, columnErr("Bytes", name, err)
	}
	absent, err := absentByPolicy(c, i, KindBytes)
	if err != nil {
		return nil, columnErr("Bytes", name, err)
	}
	if absent {
		return nil, nil
	}

	total, err := c.ReadChunk(i, 0, nil, 0, 0)
	if err != nil {
		return nil, err
	}
	if total < 0 {
		return nil, columnErr("Bytes", name, fmt.Errorf("%w: declared length %d", ErrShortRead, total))
	}
	buf := make([]byte, total)
	if err := reassemble(c, i, name, buf, cfg); err != nil {
		return nil, err
	}
	return buf, nil
}

func reassemble(c Cursor, i int, name string, buf []byte, cfg binaryConfig) error {
	log := cfg.logger.With(zap.String("column", name))
	var read, pos int
	for read < len(buf) {
		if pos >= len(buf) {
			log.Warn("binary value ended early",
				zap.Int("declared", len(buf)),
				zap.Int("read", read),
				zap.Stringer("reassembly", cfg.mode))
			return columnErr("Bytes", name, fmt.Errorf("%w: %d of %d bytes", ErrShortRead, read, len(buf)))
		}
		want := min(cfg.chunkSize, len(buf)-pos)
		n, err := c.ReadChunk(i, int64(pos), buf, pos, want)
		if err != nil {
			return err
		}
		log.Debug("chunk read",
			zap.Int("offset", pos),
			zap.Int("requested", want),
			zap.Int("transferred", n))
		read += n

		switch cfg.mode {
		case ReassembleStrict:
			if n <= 0 {
				return columnErr("Bytes", name, fmt.Errorf("%w: %d of %d bytes", ErrShortRead, read, len(buf)))
			}
			pos += n
		default:
			if n < want && read < len(buf) {
				log.Warn("short chunk; offsets still advance by chunk size",
					zap.Int("offset", pos),
					zap.Int("requested", want),
					zap.Int("transferred", n))
			}
			pos += cfg.chunkSize
		}
	}
	return nil
}
