package misc

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Both are safe for concurrent EncodeAll/DecodeAll calls.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
)

func Compress(src []byte) []byte {
	return zstdEncoder.EncodeAll(src, make([]byte, 0, len(src)/4))
}

// DecompressInto decompresses src into dst, which must be exactly the size of
// the original data and have no spare capacity.
func DecompressInto(dst []byte, src []byte) error {
	decompressed, err := zstdDecoder.DecodeAll(src, dst[:0])
	if err != nil {
		return fmt.Errorf("unable to decompress - %w", err)
	}
	if len(decompressed) != len(dst) {
		return fmt.Errorf("decompressed %d bytes, expected %d", len(decompressed), len(dst))
	}
	return nil
}
