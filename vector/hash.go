package vector

import (
	"encoding/hex"
	"strings"
)

// HASH_SIZE is the size of a test fingerprint.
const HASH_SIZE = 20

// Hash is the 20 byte fingerprint of a test.
type Hash [HASH_SIZE]byte

// String is the upper-case hex form.
func (hash Hash) String() string {
	return strings.ToUpper(hex.EncodeToString(hash[:]))
}

// ParseHash decodes 40 hex digits, in either case.
func ParseHash(text string) (hash Hash, err error) {
	if len(text) != HASH_SIZE*2 {
		err = ErrHash(text)
		return
	}

	_, err = hex.Decode(hash[:], []byte(text))
	if err != nil {
		err = ErrHash(text)
	}

	return
}
