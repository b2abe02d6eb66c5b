package solana

import (
	"filippo.io/edwards25519"

	"github.com/mr-tron/base58"
)

// ValidateAddress reports whether s decodes to a 32-byte Solana public key.
// The check is structural only: the account may not exist on chain, and
// off-curve addresses (PDAs) are structurally valid.
func ValidateAddress(s string) bool {
	if len(s) < 32 || len(s) > 44 {
		return false
	}
	decoded, err := base58.Decode(s)
	return err == nil && len(decoded) == 32
}

// DecodeAddress decodes a base58 address into its 32-byte public key.
func DecodeAddress(s string) ([]byte, error) {
	decoded, err := base58.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) != 32 {
		return nil, errInvalidLength
	}
	return decoded, nil
}

// IsOnCurve reports whether a decoded public key lies on the ed25519 curve.
// Keys off the curve cannot sign; program derived addresses are off-curve.
func IsOnCurve(pubkey []byte) bool {
	if len(pubkey) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(pubkey)
	return err == nil
}
