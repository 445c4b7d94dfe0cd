package huffman

import (
	"container/heap"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree.  A Node is a leaf iff both children are
// nil; leaves carry the symbol, internal nodes carry InvalidSymbol.  Every
// internal node's Freq is the sum of its children's, so the root's Freq
// equals the length of the counted input.
type Node struct {
	Symbol Symbol
	Freq   int
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether this node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree constructs the optimal Huffman tree for the given frequencies by
// greedily merging the two least-frequent nodes until one remains.  The
// returned root owns all nodes and must not be mutated afterward.
//
// Ties on frequency are broken by insertion order: leaves enter the queue in
// ascending symbol order and merged nodes after them, so the exact codes
// produced are deterministic across runs.
//
// An empty table yields ErrEmptyInput.  A single-symbol table yields a tree
// that is just that one leaf.
func BuildTree(freqs FreqTable) (*Node, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}

	symbols := make([]Symbol, 0, len(freqs))
	for symbol := range freqs {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	h := nodeHeap{list: make([]nodeAndSeq, 0, len(symbols))}
	for _, symbol := range symbols {
		h.push(&Node{Symbol: symbol, Freq: freqs[symbol]})
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)

		// First extracted becomes the left child.
		merged := &Node{
			Symbol: InvalidSymbol,
			Freq:   a.node.Freq + b.node.Freq,
			Left:   a.node,
			Right:  b.node,
		}
		heap.Push(&h, h.next(merged))
	}

	root := heap.Pop(&h).(nodeAndSeq).node
	assert.Assertf(h.Len() == 0, "merge loop left %d nodes behind", h.Len())
	return root, nil
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  int
}

type nodeHeap struct {
	list    []nodeAndSeq
	nextSeq int
}

// push appends without restoring heap order; used only before Init.
func (h *nodeHeap) push(n *Node) {
	h.list = append(h.list, h.next(n))
}

// next wraps a node with the next insertion sequence number.
func (h *nodeHeap) next(n *Node) nodeAndSeq {
	ns := nodeAndSeq{node: n, seq: h.nextSeq}
	h.nextSeq++
	return ns
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
