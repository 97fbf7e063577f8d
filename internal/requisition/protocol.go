package requisition

import (
	"crypto/rand"
	"math/big"
)

const (
	protocolLength  = 6
	protocolCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewProtocolID creates a short random requisition code, e.g. "7QX2M9".
// It is not checked against existing requisitions; the collision risk is
// accepted for codes this short-lived.
func NewProtocolID() (string, error) {
	result := make([]byte, protocolLength)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(protocolCharset))))
		if err != nil {
			return "", err
		}
		result[i] = protocolCharset[n.Int64()]
	}
	return string(result), nil
}
