package utils

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const joinCodeLength = 6

// NewID returns a fresh entity identifier of the form "prefix_xxxxxxxx",
// e.g. "league_3f9a1c07". The suffix is taken from a random UUID.
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + raw[:8]
}

// NewJoinCode returns a short human-typable code used to join a league.
func NewJoinCode() string {
	var b strings.Builder
	b.Grow(joinCodeLength)
	max := big.NewInt(int64(len(joinCodeAlphabet)))
	for i := 0; i < joinCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken.
			panic(err)
		}
		b.WriteByte(joinCodeAlphabet[n.Int64()])
	}
	return b.String()
}
