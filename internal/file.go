// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package internal

import (
	"encoding/hex"
	"os"

	"golang.org/x/crypto/sha3"
)

// Checksum calculates the SHA3-256 checksum of the file at path.
func Checksum(path string) ([]byte, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sum := sha3.Sum256(f)
	return sum[:], nil
}

// ChecksumHex calculates the SHA3-256 checksum of the file at path and returns it as a hex-encoded string.
func ChecksumHex(path string) (string, error) {
	sum, err := Checksum(path)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}
