package huffman

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundtrip(t *testing.T, text string) (*Bitstream, string) {
	t.Helper()
	root, err := BuildTree(CountString(text))
	require.NoError(t, err)

	var e Encoder
	e.Init(NewCodeTable(root))
	stream, err := e.EncodeString(text)
	require.NoError(t, err)

	var d Decoder
	d.Init(root)
	decoded, err := d.DecodeString(stream)
	require.NoError(t, err)
	return stream, decoded
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"a",
		"ab",
		"aaaa",
		"aabbbbbb",
		"Huffman Coding",
		"a man a plan a canal panama",
		"the quick brown fox jumps over the lazy dog",
		"ααββγ mixed código текст",
		"\x00\x01\x02\x00\x00",
	}
	for _, text := range texts {
		_, decoded := roundtrip(t, text)
		require.Equal(t, text, decoded)
	}
}

func TestEndToEnd_HuffmanCoding(t *testing.T) {
	text := "Huffman Coding"
	freqs := CountString(text)
	require.Len(t, freqs, 12)
	require.Equal(t, 2, freqs['f'])
	require.Equal(t, 2, freqs['n'])
	require.Equal(t, 1, freqs[' '])
	require.Equal(t, 1, freqs['H'])

	stream, decoded := roundtrip(t, text)
	require.Equal(t, text, decoded)

	// Strictly better than fixed-length coding for this non-uniform
	// distribution: 14 symbols at ceil(log2(12)) bits each.
	naive := 14 * int(math.Ceil(math.Log2(12)))
	require.Less(t, stream.Len(), naive)
}

// The greedy merge is optimal: for the textbook distribution the weighted
// code length must equal that of the known-optimal code (224 bits), and
// beat a fixed-length code (300 bits).
func TestOptimality(t *testing.T) {
	freqs := FreqTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}
	root, err := BuildTree(freqs)
	require.NoError(t, err)
	table := NewCodeTable(root)

	var weighted int
	for symbol, freq := range freqs {
		weighted += freq * int(table[symbol].Size)
	}
	require.Equal(t, 224, weighted)
	require.Less(t, weighted, 3*freqs.Total())
}
