package huffman

import (
	"fmt"
	"time"
)

// Result carries the raw numbers for one compression round trip.  The codec
// only measures; formatting and printing are the caller's business.
type Result struct {
	// OriginalBytes is the byte length of the input text.
	OriginalBytes int

	// CompressedBytes is the byte length of the packed bit stream.
	CompressedBytes int

	// Ratio is OriginalBytes divided by CompressedBytes.
	Ratio float64

	// EncodeTime covers frequency analysis, tree and table construction,
	// and the encode itself, matching how the phases are usually timed.
	EncodeTime time.Duration

	// DecodeTime covers the decode walk only.
	DecodeTime time.Duration
}

// Roundtrip runs the whole pipeline over text: count frequencies, build the
// tree and code table, encode, then decode and verify the result matches the
// input.  Each phase is timed with wall-clock time.
func Roundtrip(text string) (Result, error) {
	var res Result
	res.OriginalBytes = len(text)

	start := time.Now()
	freqs := CountString(text)
	root, err := BuildTree(freqs)
	if err != nil {
		return Result{}, err
	}
	table := NewCodeTable(root)

	var enc Encoder
	enc.Init(table)
	stream, err := enc.EncodeString(text)
	if err != nil {
		return Result{}, err
	}
	res.EncodeTime = time.Since(start)
	res.CompressedBytes = stream.ByteLen()

	start = time.Now()
	var dec Decoder
	dec.Init(root)
	decoded, err := dec.DecodeString(stream)
	if err != nil {
		return Result{}, err
	}
	res.DecodeTime = time.Since(start)

	if decoded != text {
		return Result{}, fmt.Errorf("huffman: round trip mismatch: decoded %d bytes, want %d", len(decoded), len(text))
	}
	if res.CompressedBytes > 0 {
		res.Ratio = float64(res.OriginalBytes) / float64(res.CompressedBytes)
	}
	return res, nil
}
