package codec

import (
	"bytes"
	"encoding/base64"

	"github.com/cockroachdb/errors"
)

// Encode returns the padded standard base64 encoding of data.
func Encode(data []byte) []byte {
	return encode(base64.StdEncoding, data)
}

// EncodeURL returns the URL-safe base64 encoding of data without padding.
func EncodeURL(data []byte) []byte {
	return encode(base64.RawURLEncoding, data)
}

// Decode decodes standard base64. Trailing padding is optional but must be well formed.
func Decode(data []byte) ([]byte, error) {
	out, err := decode(base64.RawStdEncoding, data)
	if err != nil {
		return nil, errors.Wrap(err, "decode base64")
	}
	return out, nil
}

// DecodeURL decodes URL-safe base64. Trailing padding is optional but must be well formed.
func DecodeURL(data []byte) ([]byte, error) {
	out, err := decode(base64.RawURLEncoding, data)
	if err != nil {
		return nil, errors.Wrap(err, "decode url-safe base64")
	}
	return out, nil
}

func encode(enc *base64.Encoding, data []byte) []byte {
	out := make([]byte, enc.EncodedLen(len(data)))
	enc.Encode(out, data)
	return out
}

// decode strips padding and decodes with a Raw (unpadded) encoding. Padding, when
// present, must complete the final quantum: two '=' after two symbols, one after three.
func decode(enc *base64.Encoding, data []byte) ([]byte, error) {
	trimmed := bytes.TrimRight(data, "=")
	if pad := len(data) - len(trimmed); pad > 0 {
		if len(data)%4 != 0 || pad != (4-len(trimmed)%4)%4 {
			return nil, base64.CorruptInputError(len(trimmed))
		}
	}
	data = trimmed
	out := make([]byte, enc.DecodedLen(len(data)))
	n, err := enc.Decode(out, data)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}
