package compress_pure

import (
	"math/bits"

	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

func ssig0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

func ssig1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}

func bsig0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bsig1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func ch(e, f, g uint32) uint32  { return (e & f) ^ (^e & g) }
func maj(a, b, c uint32) uint32 { return (a & b) ^ (a & c) ^ (b & c) }

// expand fills in the message schedule from the 16 block words.
func expand(block *[16]uint32, w *[64]uint32) {
	copy(w[:16], block[:])
	for t := 16; t < 64; t++ {
		w[t] = w[t-16] + ssig0(w[t-15]) + w[t-7] + ssig1(w[t-2])
	}
}

// Compress folds one block into the hash state.
func Compress(state *[8]uint32, block *[16]uint32) {
	var w [64]uint32
	expand(block, &w)

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for t := 0; t < 64; t++ {
		t1 := h + bsig1(e) + ch(e, f, g) + consts.K[t] + w[t]
		t2 := bsig0(a) + maj(a, b, c)
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// Blocks compresses every whole block of p into state, in order. Trailing
// bytes that do not fill a block are ignored.
func Blocks(state *[8]uint32, p []byte) {
	var block [16]uint32
	for len(p) >= consts.BlockLen {
		utils.BytesToWords((*[consts.BlockLen]uint8)(p), &block)
		Compress(state, &block)
		p = p[consts.BlockLen:]
	}
}
