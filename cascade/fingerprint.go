package cascade

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint mints an opaque change token over the given parts. The
// serialization is length-prefixed so distinct part boundaries can
// never collide ("ab","c" vs "a","bc"). Orchestrators that keep their
// own tokens can ignore this helper; the cascade only ever compares
// tokens for equality.
func Fingerprint(parts ...string) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Unreachable: blake2b only fails on oversized keys.
		panic(err)
	}

	var size [8]byte
	for _, part := range parts {
		binary.LittleEndian.PutUint64(size[:], uint64(len(part)))
		h.Write(size[:])
		h.Write([]byte(part))
	}

	return hex.EncodeToString(h.Sum(nil))
}
