package sha256

import (
	"unsafe"

	"github.com/zeebo/sha256/internal/alg/compress/compress_pure"
	"github.com/zeebo/sha256/internal/consts"
)

//
// one shot
//

// sum256 runs the whole message through a fresh state. Nothing is shared
// between calls.
func sum256(data []byte) [8]uint32 {
	state := consts.IV
	compress_pure.Blocks(&state, pad(data))
	return state
}

//
// hasher contains state for an incremental sha256 hash
//

type hasher struct {
	state [8]uint32
	len   uint64 // total bytes written, mod 2^64
	buf   [consts.BlockLen]byte
	bufn  int
}

func (a *hasher) reset() {
	a.state = consts.IV
	a.len = 0
	a.bufn = 0
}

func (a *hasher) update(buf []byte) {
	a.len += uint64(len(buf))

	if a.bufn > 0 {
		n := copy(a.buf[a.bufn:], buf)
		a.bufn += n
		buf = buf[n:]

		if a.bufn < consts.BlockLen {
			return
		}

		compress_pure.Blocks(&a.state, a.buf[:])
		a.bufn = 0
	}

	if n := len(buf) &^ (consts.BlockLen - 1); n > 0 {
		compress_pure.Blocks(&a.state, buf[:n])
		buf = buf[n:]
	}

	a.bufn = copy(a.buf[:], buf)
}

// updateString hashes buf without copying it. update must never write to its
// argument.
func (a *hasher) updateString(buf string) {
	a.update(unsafe.Slice(unsafe.StringData(buf), len(buf)))
}

// finalize writes the digest of everything written so far into out. The
// hasher is left untouched.
func (a *hasher) finalize(out *[consts.Size]byte) {
	state := a.state

	var tail [2 * consts.BlockLen]byte
	compress_pure.Blocks(&state, appendPadding(append(tail[:0], a.buf[:a.bufn]...), a.len))

	encodeBytes(&state, out)
}
