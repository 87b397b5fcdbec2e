package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/brianvoe/gofakeit/v7"
)

// RandomAlphaNum generates random alphanumeric string
// in case length <= 0 it returns an error
func RandomAlphaNum(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	randomString := make([]byte, length)
	for i := range randomString {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		randomString[i] = charset[num.Int64()]
	}

	return string(randomString), nil
}

// RandomEthAddress returns a lowercase 0x-prefixed 20 byte address.
func RandomEthAddress() string {
	buf := make([]byte, 20)
	_, _ = rand.Read(buf)
	return "0x" + hex.EncodeToString(buf)
}

// RandomWei returns a base-unit amount string roughly in the range of
// 0.1 to 10k tokens at 18 decimals.
func RandomWei() string {
	tokens := gofakeit.Number(1, 10_000)
	wei := new(big.Int).Mul(big.NewInt(int64(tokens)), big.NewInt(1e17))
	return wei.String()
}

// RandomProjectName returns a plausible builders project display name.
func RandomProjectName() string {
	return gofakeit.AppName()
}
