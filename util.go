package huffman

// byteLen returns the number of bytes needed to hold n bits.
func byteLen(n int) int {
	return (n + 7) / 8
}
