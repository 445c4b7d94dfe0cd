package huffman

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the *last* bit, so bits are emitted most significant
	// first.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// appendBit returns the Code extended by one bit.
func (hc Code) appendBit(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | bit}
}

// bitString returns the bits as a bare string of '0' and '1' characters.
func (hc Code) bitString() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.bitString())
}

var _ fmt.Stringer = Code{}
