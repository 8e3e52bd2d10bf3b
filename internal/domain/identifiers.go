package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// NewUserCode generates an 8-char alphanumeric user code. Uses crypto/rand:
// the code is handed out as a public identifier.
func NewUserCode() (string, error) {
	var sb strings.Builder
	alphabetLen := big.NewInt(int64(len(UserCodeAlphabet)))
	for i := 0; i < UserCodeLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("domain: generate user code: %w", err)
		}
		sb.WriteByte(UserCodeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// NewQRCodeID derives a QR_XXXXXXXX scan token: SHA-256 over
// "<userCode>_<phone>_<8 hex chars of a fresh uuid>", first 8 hex chars
// uppercased. The uuid component makes regenerated tokens differ for the
// same user.
func NewQRCodeID(userCode, phone string) string {
	u := uuid.New()
	entropy := hex.EncodeToString(u[:])[:8]

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s_%s_%s", userCode, phone, entropy)))
	short := strings.ToUpper(hex.EncodeToString(sum[:]))[:QRCodeHashLength]
	return QRCodePrefix + short
}
