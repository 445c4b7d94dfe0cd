package huffman

// FreqTable maps each Symbol to the number of times it occurs in the input.
// The sum of all counts equals the input length.
type FreqTable map[Symbol]int

// CountSymbols builds a FreqTable for a symbol sequence.  An empty sequence
// yields an empty table, which BuildTree rejects.
func CountSymbols(symbols []Symbol) FreqTable {
	freqs := make(FreqTable)
	for _, symbol := range symbols {
		freqs[symbol]++
	}
	return freqs
}

// CountString builds a FreqTable for text, one Symbol per rune.
func CountString(text string) FreqTable {
	freqs := make(FreqTable)
	for _, r := range text {
		freqs[Symbol(r)]++
	}
	return freqs
}

// Total returns the sum of all counts, i.e. the length of the counted input.
func (freqs FreqTable) Total() int {
	var total int
	for _, freq := range freqs {
		total += freq
	}
	return total
}
