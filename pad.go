package sha256

import (
	"encoding/binary"

	"github.com/zeebo/sha256/internal/consts"
)

// pad returns a copy of message extended to a whole number of blocks: a 0x80
// byte, zeros up to the length field, then the message length in bits. The
// result is always at least 9 bytes longer than message.
func pad(message []byte) []byte {
	out := make([]byte, len(message), paddedLen(len(message)))
	copy(out, message)
	return appendPadding(out, uint64(len(message)))
}

func paddedLen(n int) int {
	return (n + 1 + consts.LenFieldLen + consts.BlockLen - 1) / consts.BlockLen * consts.BlockLen
}

// appendPadding appends the padding for a message of length bytes to dst.
// dst must hold the message tail starting on a block boundary, so that
// len(dst) is congruent to length mod the block size. Only the low 64 bits
// of the bit length are kept.
func appendPadding(dst []byte, length uint64) []byte {
	dst = append(dst, 0x80)
	for len(dst)%consts.BlockLen != consts.PadStart {
		dst = append(dst, 0)
	}
	return binary.BigEndian.AppendUint64(dst, length<<3)
}
