// Package huffman implements Huffman coding for text: frequency analysis,
// optimal prefix-code tree construction, code assignment by tree traversal,
// and the bit-level encode/decode transformations.
//
// The pipeline runs strictly forward: text → FreqTable → tree → CodeTable →
// Bitstream.  The tree is the shared artifact needed both to assign codes
// and to decode.  All artifacts are immutable once built, so a single tree
// may safely serve any number of concurrent decodes.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
