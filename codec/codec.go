package codec

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/spacemeshos/go-scale"
)

// EncodeTo encodes value to a writer stream.
func EncodeTo(w io.Writer, value scale.Encodable) (int, error) {
	return value.EncodeScale(scale.NewEncoder(w))
}

// DecodeFrom decodes a value using data from a reader stream.
func DecodeFrom(r io.Reader, value scale.Decodable) (int, error) {
	return value.DecodeScale(scale.NewDecoder(r))
}

var encoderPool = sync.Pool{
	New: func() any {
		b := new(bytes.Buffer)
		b.Grow(64)
		return b
	},
}

func getEncoderBuffer() *bytes.Buffer {
	return encoderPool.Get().(*bytes.Buffer)
}

func putEncoderBuffer(b *bytes.Buffer) {
	b.Reset()
	encoderPool.Put(b)
}

// Encode value to a byte buffer.
func Encode(value scale.Encodable) ([]byte, error) {
	b := getEncoderBuffer()
	defer putEncoderBuffer(b)
	if _, err := EncodeTo(b, value); err != nil {
		return nil, err
	}
	buf := make([]byte, b.Len())
	copy(buf, b.Bytes())
	return buf, nil
}

// MustEncode encodes value and panics on error.
func MustEncode(value scale.Encodable) []byte {
	buf, err := Encode(value)
	if err != nil {
		panic(err)
	}
	return buf
}

// Decode value from a byte buffer.
func Decode(buf []byte, value scale.Decodable) error {
	if _, err := DecodeFrom(bytes.NewReader(buf), value); err != nil {
		return fmt.Errorf("decode from buffer: %w", err)
	}
	return nil
}
