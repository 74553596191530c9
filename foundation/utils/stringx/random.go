// File: random.go
// Title: Random Tokens, UUIDs and Comparison
// Description: Random tokens drawn from crypto/rand over an ASCII character
//              set, version 4 UUIDs and a best-effort constant-time compare.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with secure random generation
// - 2026-10-16 v0.2.0: Reduced to tokens, UUID via google/uuid, Equals

package stringx

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"

	"github.com/google/uuid"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Alphanumeric is the default character set of RandomString.
const Alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns length characters drawn uniformly from charset,
// which must be ASCII. An empty charset means Alphanumeric; a non-positive
// length yields "".
func RandomString(length int, charset string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if charset == "" {
		charset = Alphanumeric
	}

	limit := big.NewInt(int64(len(charset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.OperationFailed(errors.ModuleStringx, "random_string", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}

// UUID returns a random (version 4) UUID in canonical form.
func UUID() string {
	return uuid.NewString()
}

// Equals compares two strings in time that depends only on their lengths.
// It is not a cryptographic primitive.
func Equals(known, input string) bool {
	return subtle.ConstantTimeCompare([]byte(known), []byte(input)) == 1
}
