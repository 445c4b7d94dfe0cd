package huffman

import (
	"bytes"

	"github.com/icza/bitio"
)

// Encoder encodes symbol sequences using a fixed code table.
type Encoder struct {
	table CodeTable
}

// Init initializes this Encoder with the code table to encode with.  The
// table must cover every symbol that will be encoded; it is normally the
// table derived from the tree built over the input's own frequencies.
func (e *Encoder) Init(table CodeTable) {
	*e = Encoder{table: table}
}

// EncodeSymbols encodes a symbol sequence by concatenating each symbol's
// code in input order.  Encountering a symbol with no entry in the table is
// a precondition violation and fails with *UnknownSymbolError.
func (e Encoder) EncodeSymbols(symbols []Symbol) (*Bitstream, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	var bits int
	for _, symbol := range symbols {
		hc, found := e.table[symbol]
		if !found {
			return nil, &UnknownSymbolError{Symbol: symbol}
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, err
		}
		bits += int(hc.Size)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &Bitstream{data: buf.Bytes(), bits: bits}, nil
}

// EncodeString encodes text one rune at a time.
func (e Encoder) EncodeString(text string) (*Bitstream, error) {
	symbols := make([]Symbol, 0, len(text))
	for _, r := range text {
		symbols = append(symbols, Symbol(r))
	}
	return e.EncodeSymbols(symbols)
}
