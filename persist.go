package bitvecgo

import (
	"context"
	"encoding/binary"
	"fmt"
	"runtime"

	"github.com/hupe1980/bitvecgo/blobstore"
	"github.com/hupe1980/bitvecgo/block"
	"github.com/hupe1980/bitvecgo/codec"
	"github.com/hupe1980/bitvecgo/lane"
	"golang.org/x/sync/errgroup"
)

type persistOptions struct {
	compression codec.Compression
	logger      *Logger
	concurrency int
}

// PersistOption configures Save, Load and SaveMany behavior.
type PersistOption func(*persistOptions)

// WithCompression selects the payload compression used when encoding.
// The default is codec.None. Load detects the compression from the
// encoded data, so the option only affects writes.
func WithCompression(c codec.Compression) PersistOption {
	return func(o *persistOptions) {
		o.compression = c
	}
}

// WithLogger configures the logger used by persistence operations.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) PersistOption {
	return func(o *persistOptions) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithConcurrency bounds the number of parallel store operations in
// SaveMany. Defaults to GOMAXPROCS.
func WithConcurrency(n int) PersistOption {
	return func(o *persistOptions) {
		o.concurrency = n
	}
}

func applyPersistOptions(opts []PersistOption) *persistOptions {
	o := &persistOptions{
		compression: codec.None,
		logger:      NoopLogger(),
		concurrency: runtime.GOMAXPROCS(0),
	}

	for _, fn := range opts {
		fn(o)
	}

	if o.concurrency <= 0 {
		o.concurrency = 1
	}

	return o
}

// Marshal encodes the vector into its persisted form: the logical
// length followed by the lane sequence, trimmed of trailing zero lanes
// and wrapped in a compression envelope.
func Marshal[B block.Block[B, E], E lane.Element](v *BitVec[B, E], c codec.Compression) ([]byte, error) {
	payload, err := codec.Marshal(v.trimmedLanes(), c)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 8+len(payload))
	binary.LittleEndian.PutUint64(out, uint64(v.nbits))
	copy(out[8:], payload)

	return out, nil
}

// Unmarshal decodes a vector from its persisted form. Lanes trimmed at
// encode time are restored as zeros.
func Unmarshal[B block.Block[B, E], E lane.Element](data []byte) (*BitVec[B, E], error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: short header", codec.ErrInvalidEncoding)
	}

	nbits := binary.LittleEndian.Uint64(data)
	if nbits > uint64(int(^uint(0)>>1)) {
		return nil, fmt.Errorf("%w: length %d out of range", codec.ErrInvalidEncoding, nbits)
	}

	lanes, err := codec.Unmarshal[E](data[8:])
	if err != nil {
		return nil, err
	}

	var cur B
	if maxLanes := blocksFor[B, E](int(nbits)) * cur.Lanes(); len(lanes) > maxLanes {
		return nil, fmt.Errorf("%w: %d lanes exceed storage for %d bits", codec.ErrInvalidEncoding, len(lanes), nbits)
	}

	return fromLanesPadded[B, E](lanes, int(nbits)), nil
}

// Save encodes the vector and writes it to the store under name.
func Save[B block.Block[B, E], E lane.Element](ctx context.Context, store blobstore.Store, name string, v *BitVec[B, E], opts ...PersistOption) error {
	o := applyPersistOptions(opts)

	data, err := Marshal(v, o.compression)
	if err != nil {
		o.logger.LogSave(ctx, name, v.Len(), 0, err)

		return err
	}

	err = store.Put(ctx, name, data)
	o.logger.LogSave(ctx, name, v.Len(), len(data), err)

	return err
}

// Load reads the blob under name from the store and decodes it.
func Load[B block.Block[B, E], E lane.Element](ctx context.Context, store blobstore.Store, name string, opts ...PersistOption) (*BitVec[B, E], error) {
	o := applyPersistOptions(opts)

	blob, err := store.Open(ctx, name)
	if err != nil {
		o.logger.LogLoad(ctx, name, 0, err)

		return nil, err
	}
	defer func() { _ = blob.Close() }()

	data, err := blobstore.ReadAll(blob)
	if err != nil {
		o.logger.LogLoad(ctx, name, 0, err)

		return nil, err
	}

	v, err := Unmarshal[B, E](data)
	if err != nil {
		o.logger.LogLoad(ctx, name, 0, err)

		return nil, err
	}

	o.logger.LogLoad(ctx, name, v.Len(), nil)

	return v, nil
}

// SaveMany writes a set of vectors in parallel, bounded by the
// configured concurrency. The first error cancels the remaining writes.
func SaveMany[B block.Block[B, E], E lane.Element](ctx context.Context, store blobstore.Store, vecs map[string]*BitVec[B, E], opts ...PersistOption) error {
	o := applyPersistOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for name, v := range vecs {
		g.Go(func() error {
			data, err := Marshal(v, o.compression)
			if err != nil {
				o.logger.LogSave(ctx, name, v.Len(), 0, err)

				return fmt.Errorf("marshal %q: %w", name, err)
			}

			if err := store.Put(ctx, name, data); err != nil {
				o.logger.LogSave(ctx, name, v.Len(), len(data), err)

				return fmt.Errorf("put %q: %w", name, err)
			}

			o.logger.LogSave(ctx, name, v.Len(), len(data), nil)

			return nil
		})
	}

	return g.Wait()
}
