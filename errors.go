package huffman

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by BuildTree when the frequency table is empty.
// A Huffman tree over zero symbols is undefined.
var ErrEmptyInput = errors.New("huffman: cannot build a tree over an empty alphabet")

// UnknownSymbolError reports an attempt to encode a symbol that has no entry
// in the code table.  It means the table was not derived from the frequency
// distribution of the text being encoded.
type UnknownSymbolError struct {
	Symbol Symbol
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: symbol %q has no code", rune(e.Symbol))
}

// TruncatedStreamError reports a bit stream that ends in the middle of a
// code, i.e. the decode walk stopped between the root and a leaf.
type TruncatedStreamError struct {
	// Offset is the bit offset where the unfinished code starts.
	Offset int
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("huffman: bit stream truncated mid-code at bit %d", e.Offset)
}
