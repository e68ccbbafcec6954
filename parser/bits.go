package parser

import "fmt"

// ByteBits renders v as an 8-bit two's-complement binary string
// (v & 0xFF, zero-padded), matching the original compiler's
// integerToBinary for both immediates and resolved addresses.
func ByteBits(v int) string {
	return fmt.Sprintf("%08b", v&0xFF)
}
