package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// ==================== UUID ====================

// legacyNamespace scopes ids derived from integer keys of imported CSV files.
var legacyNamespace = uuid.MustParse("6f1c1b7e-8d0a-4c53-9a59-3f3f3c1d2a10")

// LegacyUUID maps an integer key of table to a stable UUID, so rows imported in
// separate runs still reference each other.
func LegacyUUID(table, id string) uuid.UUID {
	return uuid.NewSHA1(legacyNamespace, []byte(table+":"+id))
}

// ==================== OTP ====================

// GenerateOTP returns a numeric code of the given length (6 when length <= 0).
func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	otp := make([]byte, length)
	for i := range otp {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate otp digit: %w", err)
		}
		otp[i] = byte('0' + n.Int64())
	}

	return string(otp), nil
}
