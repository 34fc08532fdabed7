package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// shortChecksumLen is the number of hex digits kept by the short checksums.
const shortChecksumLen = 8

// ShortChecksum returns the first hex digits of the SHA-256 of input. It is
// used to label inline scripts and to tell files apart in log lines.
func ShortChecksum(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:shortChecksumLen]
}

// ShortChecksumReader is ShortChecksum over everything read from reader.
func ShortChecksumReader(reader io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, reader); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil))[:shortChecksumLen], nil
}
