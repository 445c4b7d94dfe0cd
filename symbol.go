package huffman

// Symbol represents a symbol in the input alphabet.  Text is counted per
// code point, so one Symbol is one rune.  Negative symbols are not valid.
type Symbol rune

// InvalidSymbol marks tree nodes that carry no symbol of their own, i.e.
// internal nodes.
const InvalidSymbol = Symbol(-1)
