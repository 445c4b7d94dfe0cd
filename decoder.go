package huffman

import (
	"strings"
)

// Decoder decodes bit streams by walking a Huffman tree.  The tree is only
// read, never mutated, so one tree may back any number of Decoders and
// concurrent Decode calls.
type Decoder struct {
	root *Node
}

// Init initializes this Decoder with the tree the stream was encoded
// against.
func (d *Decoder) Init(root *Node) {
	*d = Decoder{root: root}
}

// Decode reproduces the symbol sequence a stream was encoded from.
//
// The walk starts at the root and descends left on 0 and right on 1; at a
// leaf it emits that leaf's symbol and resets to the root.  If the tree is
// a single leaf the stream carries one placeholder bit per symbol, so every
// bit emits that symbol regardless of its value.
//
// A stream that ends between the root and a leaf does not decompose into
// complete codes; Decode fails with *TruncatedStreamError rather than
// silently dropping the leftover bits.
func (d Decoder) Decode(bs *Bitstream) ([]Symbol, error) {
	n := bs.Len()

	if d.root.IsLeaf() {
		out := make([]Symbol, n)
		for i := range out {
			out[i] = d.root.Symbol
		}
		return out, nil
	}

	out := make([]Symbol, 0, n/2)
	r := bs.reader()
	cur := d.root
	start := 0
	for i := 0; i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		if bit {
			cur = cur.Right
		} else {
			cur = cur.Left
		}
		if cur.IsLeaf() {
			out = append(out, cur.Symbol)
			cur = d.root
			start = i + 1
		}
	}
	if cur != d.root {
		return nil, &TruncatedStreamError{Offset: start}
	}
	return out, nil
}

// DecodeString decodes a stream back into text.
func (d Decoder) DecodeString(bs *Bitstream) (string, error) {
	symbols, err := d.Decode(bs)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, symbol := range symbols {
		sb.WriteRune(rune(symbol))
	}
	return sb.String(), nil
}
