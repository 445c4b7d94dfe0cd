package huffman

import (
	"errors"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestDecoder_TwoSymbols(t *testing.T) {
	root := mustTree(t, "aabbbbbb")

	var d Decoder
	d.Init(root)

	stream, err := ParseBitstream("00111111")
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := d.DecodeString(stream)
	if err != nil {
		t.Fatal(err)
	}
	if expect := "aabbbbbb"; decoded != expect {
		t.Errorf("expected %q, got %q", expect, decoded)
	}
}

// In a single-leaf tree every bit is a placeholder: it emits the symbol
// regardless of its value.
func TestDecoder_SingleLeaf(t *testing.T) {
	root := mustTree(t, "aaaa")

	var d Decoder
	d.Init(root)

	for _, bits := range []string{"0000", "1010", "11"} {
		stream, err := ParseBitstream(bits)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := d.DecodeString(stream)
		if err != nil {
			t.Fatal(err)
		}
		expect := "aaaa"[:len(bits)]
		if decoded != expect {
			t.Errorf("%q: expected %q, got %q", bits, expect, decoded)
		}
	}
}

func TestDecoder_EmptyStream(t *testing.T) {
	root := mustTree(t, "ab")

	var d Decoder
	d.Init(root)

	stream, err := ParseBitstream("")
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := d.Decode(stream)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected no symbols, got %d", len(decoded))
	}
}

func TestDecoder_TruncatedStream(t *testing.T) {
	root := mustTree(t, "Huffman Coding")
	table := NewCodeTable(root)

	var e Encoder
	e.Init(table)
	stream, err := e.EncodeString("Hu")
	if err != nil {
		t.Fatal(err)
	}

	// Every code in this tree is at least 3 bits, so dropping the last
	// bit leaves the walk mid-tree.
	bits := stream.String()
	truncated, err := ParseBitstream(bits[:len(bits)-1])
	if err != nil {
		t.Fatal(err)
	}

	var d Decoder
	d.Init(root)
	_, err = d.Decode(truncated)

	var truncErr *TruncatedStreamError
	if !errors.As(err, &truncErr) {
		t.Fatalf("expected *TruncatedStreamError, got %v", err)
	}
	if expect := int(table['H'].Size); truncErr.Offset != expect {
		t.Errorf("expected offset %d, got %d", expect, truncErr.Offset)
	}
}

// A tree is read-only after construction, so one tree and one stream may be
// shared across concurrent decodes.
func TestDecoder_ConcurrentSharedTree(t *testing.T) {
	text := "a man a plan a canal panama"
	root := mustTree(t, text)

	var e Encoder
	e.Init(NewCodeTable(root))
	stream, err := e.EncodeString(text)
	if err != nil {
		t.Fatal(err)
	}

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			var d Decoder
			d.Init(root)
			decoded, err := d.DecodeString(stream)
			if err != nil {
				return err
			}
			if decoded != text {
				t.Errorf("expected %q, got %q", text, decoded)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
