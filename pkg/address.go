package pkg

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// NormalizeEthAddress lowercases a 0x-prefixed EVM address so that addresses
// returned by different subgraph versions compare equal.
func NormalizeEthAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func ValidateEthAddress(address string) error {
	addr := NormalizeEthAddress(address)
	if !strings.HasPrefix(addr, "0x") {
		return fmt.Errorf("address %q must start with 0x", address)
	}

	body := addr[2:]
	if len(body) != 40 {
		return fmt.Errorf("address %q must be 20 bytes", address)
	}
	if _, err := hex.DecodeString(body); err != nil {
		return fmt.Errorf("address %q is not valid hex: %w", address, err)
	}

	return nil
}
