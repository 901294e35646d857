package authservice

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// generateCode produces a random 6-digit reset code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
