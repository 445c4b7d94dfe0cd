package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Bitstream is a sequence of bits packed into bytes, most significant bit
// first.  It is immutable once produced.
type Bitstream struct {
	data []byte
	bits int
}

// Len returns the number of bits in the stream.
func (bs *Bitstream) Len() int {
	return bs.bits
}

// ByteLen returns the number of bytes needed to hold the stream.  When Len
// is not a multiple of 8, the final byte is zero-padded on the low side.
func (bs *Bitstream) ByteLen() int {
	return byteLen(bs.bits)
}

// Bytes returns the packed bytes.  The caller must not modify them.
func (bs *Bitstream) Bytes() []byte {
	return bs.data
}

// Bit returns the i'th bit, 0 or 1.
func (bs *Bitstream) Bit(i int) byte {
	return (bs.data[i>>3] >> (7 - uint(i&7))) & 1
}

// String renders the stream as a bare string of '0' and '1' characters.
func (bs *Bitstream) String() string {
	var sb strings.Builder
	sb.Grow(bs.bits)
	for i := 0; i < bs.bits; i++ {
		sb.WriteByte('0' + bs.Bit(i))
	}
	return sb.String()
}

// reader returns a bit reader positioned at the first bit of the stream.
func (bs *Bitstream) reader() *bitio.Reader {
	return bitio.NewReader(bytes.NewReader(bs.data))
}

var _ fmt.Stringer = (*Bitstream)(nil)

// ParseBitstream builds a Bitstream from a string of '0' and '1' characters.
func ParseBitstream(s string) (*Bitstream, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			_ = w.WriteBool(false)
		case '1':
			_ = w.WriteBool(true)
		default:
			return nil, fmt.Errorf("huffman: invalid bit %q at offset %d", s[i], i)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &Bitstream{data: buf.Bytes(), bits: len(s)}, nil
}
