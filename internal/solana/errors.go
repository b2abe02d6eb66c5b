package solana

import "errors"

var errInvalidLength = errors.New("address is not a 32-byte public key")
