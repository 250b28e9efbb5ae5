package cli

import (
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// maxDecoderMemory bounds what a single zstd decoder may allocate.
const maxDecoderMemory = 256 << 20

// decoderPool reuses zstd decoders across batch sources.
type decoderPool struct {
	pool      sync.Pool
	maxMemory uint64
}

// newDecoderPool returns a pool whose decoders allocate at most maxMemory
// bytes. Zero means no limit.
func newDecoderPool(maxMemory uint64) *decoderPool {
	return &decoderPool{maxMemory: maxMemory}
}

// get returns a decoder reading from r. The caller must call release once
// done with the decoder; it is not needed when an error is returned.
func (p *decoderPool) get(r io.Reader) (dec *zstd.Decoder, release func(), err error) {
	if pooled, ok := p.pool.Get().(*zstd.Decoder); ok {
		if err := pooled.Reset(r); err == nil {
			return pooled, p.releaser(pooled), nil
		}
		pooled.Close()
	}

	dec, err = p.newDecoder(r)
	if err != nil {
		return nil, nil, err
	}
	return dec, p.releaser(dec), nil
}

func (p *decoderPool) releaser(dec *zstd.Decoder) func() {
	return func() {
		_ = dec.Reset(nil) //nolint:errcheck // clearing state before pool return
		p.pool.Put(dec)
	}
}

func (p *decoderPool) newDecoder(r io.Reader) (*zstd.Decoder, error) {
	if p.maxMemory == 0 {
		return zstd.NewReader(r)
	}
	return zstd.NewReader(r, zstd.WithDecoderMaxMemory(p.maxMemory))
}

// closerFunc adapts a release function to io.Closer.
type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}
