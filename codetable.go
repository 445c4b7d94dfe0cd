package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol in a tree to its code, the root-to-leaf path
// with 0 for left and 1 for right.  Codes are prefix-free because leaves
// have no descendants.
type CodeTable map[Symbol]Code

// NewCodeTable assigns a code to every leaf of the tree.  A tree that is a
// single leaf gets the one-bit code "0" rather than an empty path.
//
// The table is freshly allocated on every call, so repeated calls on the
// same tree yield equal, independent tables.
func NewCodeTable(root *Node) CodeTable {
	table := make(CodeTable)
	if root != nil {
		walkTree(table, root, Code{})
	}
	return table
}

func walkTree(table CodeTable, n *Node, prefix Code) {
	assert.Assertf((n.Left == nil) == (n.Right == nil), "node %q has exactly one child", rune(n.Symbol))

	if n.IsLeaf() {
		if prefix.Size == 0 {
			prefix = MakeCode(1, 0)
		}
		table[n.Symbol] = prefix
		return
	}
	walkTree(table, n.Left, prefix.appendBit(0))
	walkTree(table, n.Right, prefix.appendBit(1))
}

// MaxSize is the bit length of the longest code in the table.
func (table CodeTable) MaxSize() byte {
	var max byte
	for _, hc := range table {
		if hc.Size > max {
			max = hc.Size
		}
	}
	return max
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer, sorted by symbol.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	keys := make(bySymbol, 0, len(table))
	for symbol := range table {
		keys = append(keys, symbol)
	}
	keys.Sort()
	for _, symbol := range keys {
		fmt.Fprintf(&buf, "\t%q: %s\n", rune(symbol), table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
