// Command huffbench compresses each input file with a Huffman code built
// from that file's own symbol frequencies, verifies the round trip, and
// reports sizes, compression ratio, and per-phase timings.
//
// Usage:
//
//	huffbench FILE...
//
// Files are processed concurrently; each gets its own frequency table, tree,
// and code table.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bitweaver/huffman"
)

type report struct {
	path string
	res  huffman.Result
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s FILE...", os.Args[0])
	}
	paths := os.Args[1:]

	reports := make([]report, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			res, err := huffman.Roundtrip(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report{path: path, res: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	p := message.NewPrinter(language.English) // commas between thousands
	for _, r := range reports {
		p.Printf("%s:\n", r.path)
		p.Printf("  original:   %d bytes\n", r.res.OriginalBytes)
		p.Printf("  compressed: %d bytes\n", r.res.CompressedBytes)
		p.Printf("  ratio:      %.2f:1\n", r.res.Ratio)
		p.Printf("  encode:     %.2f ms\n", float64(r.res.EncodeTime.Microseconds())/1000)
		p.Printf("  decode:     %.2f ms\n", float64(r.res.DecodeTime.Microseconds())/1000)
	}
}
