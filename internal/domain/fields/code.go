package fields

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	invitationCodeLength   = 6
	invitationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

func generateCode(length int) (string, error) {
	max := big.NewInt(int64(len(invitationCodeAlphabet)))

	var builder strings.Builder
	builder.Grow(length)

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(invitationCodeAlphabet[n.Int64()])
	}

	return builder.String(), nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
