package consts

import "golang.org/x/sys/cpu"

// IsBigEndian is true when the host word layout already matches the
// big-endian words SHA-256 reads from and writes to byte streams.
const IsBigEndian = cpu.IsBigEndian
