package sha256

import (
	"encoding/hex"

	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

func encodeBytes(state *[8]uint32, out *[consts.Size]byte) {
	utils.WordsToBytes(state, out)
}

// encode renders the state as 64 lowercase hex characters, H0 first.
func encode(state *[8]uint32) string {
	var digest [consts.Size]byte
	encodeBytes(state, &digest)
	return hex.EncodeToString(digest[:])
}
