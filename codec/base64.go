package codec

import (
	"encoding/base64"

	"github.com/iov-one/suimsig/errors"
)

// EncodeBase64 returns the standard, padded base64 representation.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 decodes a standard, padded base64 string. Any failure is
// reported as errors.ErrDecode.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDecode, "base64: %s", err)
	}
	return b, nil
}
