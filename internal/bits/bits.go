// Package bits implements the redundancy code and byte packing used by
// the fallback embedding engine.
//
// Each payload bit is written twice (2x repetition) and recovered with
// an OR rule: a pair decodes to 1 if either bit survived. The rule is
// deliberately more forgiving than strict majority — with only two
// copies there is no majority, and a lone surviving 1-bit is treated as
// signal rather than noise.
package bits

// Expand converts raw bytes into the embedded bitstream: each byte is
// walked MSB-first and every bit is emitted twice. The result has
// length 16*len(data).
func Expand(data []byte) []byte {
	out := make([]byte, 0, len(data)*16)
	for _, b := range data {
		for shift := 7; shift >= 0; shift-- {
			bit := (b >> shift) & 1
			out = append(out, bit, bit)
		}
	}
	return out
}

// Collapse decodes a raw extracted bitstream by grouping consecutive
// pairs and applying the OR rule. A trailing unpaired bit is dropped.
func Collapse(raw []byte) []byte {
	out := make([]byte, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		out = append(out, raw[i]|raw[i+1])
	}
	return out
}

// Pack groups decoded bits into bytes, MSB-first, starting at the given
// bit offset. Any final incomplete byte is dropped.
func Pack(decoded []byte, offset int) []byte {
	if offset < 0 || offset > len(decoded) {
		return nil
	}
	decoded = decoded[offset:]

	out := make([]byte, 0, len(decoded)/8)
	for i := 0; i+8 <= len(decoded); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | decoded[i+j]
		}
		out = append(out, b)
	}
	return out
}
