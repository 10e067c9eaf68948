// Package hash provides hashing utilities for short identifiers.
package hash

import (
	"crypto/md5"
	"encoding/hex"
	"io"
)

// FingerprintLen is the length of a Fingerprint.
const FingerprintLen = 8

// Fingerprint returns the first 8 hex characters of the MD5 of s.
func Fingerprint(s string) string {
	return MD5Sum(s)[:FingerprintLen]
}

// MD5Sum returns the full MD5 hash of a string.
func MD5Sum(s string) string {
	hasher := md5.New()
	_, _ = io.WriteString(hasher, s)
	return hex.EncodeToString(hasher.Sum(nil))
}
