package tests

import (
	"math/rand"

	"github.com/mr-tron/base58"
)

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

// dummyID makes an opaque correlation identifier such as a payment or map
// ID. The ledger never parses them, any label the backend picks works.
func dummyID(prefix string) string {
	return prefix + base58.Encode(randomBytes(8))
}
