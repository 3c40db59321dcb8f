package dice

import (
	"crypto/rand"
	"math/big"
)

// Source produces uniformly distributed ints in [0, n)
type Source interface {
	Intn(n int) int
}

type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn panics when n <= 0 or crypto/rand fails
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}
