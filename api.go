// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4.
package sha256

import (
	"encoding/hex"

	"github.com/zeebo/sha256/internal/consts"
)

// Size is the size of a SHA-256 digest in bytes.
const Size = consts.Size

// BlockSize is the block size of SHA-256 in bytes.
const BlockSize = consts.BlockLen

// Hasher is a hash.Hash for SHA-256.
type Hasher struct {
	h hasher
}

// New returns a new Hasher.
func New() *Hasher {
	h := new(Hasher)
	h.h.reset()
	return h
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// WriteString is like Write but specialized to strings to avoid allocations.
func (h *Hasher) WriteString(p string) (int, error) {
	h.h.updateString(p)
	return len(p), nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Clone returns a new Hasher with the same internal state.
//
// Modifying the resulting Hasher will not modify the original Hasher, and vice versa.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{h: h.h}
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return consts.Size
}

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int {
	return consts.BlockLen
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it. The Hasher may continue
// to be written to afterwards.
func (h *Hasher) Sum(b []byte) []byte {
	if top := len(b) + consts.Size; top <= cap(b) && top >= len(b) {
		h.h.finalize((*[consts.Size]byte)(b[len(b):top]))
		return b[:top]
	}

	var tmp [consts.Size]byte
	h.h.finalize(&tmp)
	return append(b, tmp[:]...)
}

// SumHex returns the digest of the Hasher as 64 lowercase hex characters.
func (h *Hasher) SumHex() string {
	var tmp [consts.Size]byte
	h.h.finalize(&tmp)
	return hex.EncodeToString(tmp[:])
}

// Sum256 returns the SHA-256 digest of the data.
func Sum256(data []byte) (sum [Size]byte) {
	state := sum256(data)
	encodeBytes(&state, &sum)
	return sum
}

// Hex returns the SHA-256 digest of the data as 64 lowercase hex characters.
func Hex(data []byte) string {
	state := sum256(data)
	return encode(&state)
}
