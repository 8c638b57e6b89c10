package blockchain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AddressLength is the size in bytes of a Sui address or object ID.
const AddressLength = common.HashLength

// ErrInvalidAddress is returned when a string cannot be read as a Sui
// address or object ID.
var ErrInvalidAddress = errors.New("invalid sui address")

// IsValidAddress reports whether s is a canonical Sui address: a "0x" prefix
// followed by exactly 64 hex digits. Short forms such as "0x2" are rejected;
// use NormalizeAddress to expand them first.
func IsValidAddress(s string) bool {
	if !has0xPrefix(s) || len(s) != 2+2*AddressLength {
		return false
	}
	_, err := hexutil.Decode(s)
	return err == nil
}

// NormalizeAddress left-pads s to 32 bytes and returns it in lower-case
// canonical form. The "0x" prefix is optional on input and always present
// on output.
func NormalizeAddress(s string) (string, error) {
	h, err := parseAddress(s)
	if err != nil {
		return "", err
	}
	return h.Hex(), nil
}

// AddressToBytes32 decodes s (short forms allowed) into its 32-byte value.
func AddressToBytes32(s string) ([32]byte, error) {
	h, err := parseAddress(s)
	if err != nil {
		return [32]byte{}, err
	}
	return h, nil
}

// Bytes32ToAddress renders b as a canonical Sui address.
func Bytes32ToAddress(b [32]byte) string {
	return common.Hash(b).Hex()
}

func parseAddress(s string) (common.Hash, error) {
	digits := strings.TrimSpace(s)
	if has0xPrefix(digits) {
		digits = digits[2:]
	}
	if digits == "" || len(digits) > 2*AddressLength {
		return common.Hash{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	padded := strings.Repeat("0", 2*AddressLength-len(digits)) + digits
	raw, err := hexutil.Decode("0x" + padded)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	return common.BytesToHash(raw), nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
