// Package codec provides standard and URL-safe base64 over raw byte slices.
//
// Encode produces padded output in the standard alphabet; EncodeURL uses the
// URL-safe alphabet and omits padding. Both decoders accept input with or without
// trailing '=' padding, so values produced elsewhere round-trip cleanly.
//
//	enc := codec.EncodeURL([]byte("hello?"))
//	raw, err := codec.DecodeURL(enc)
package codec
