package check

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Codec converts file bytes to and from text in a configured
// charset. A zero Codec is not usable; construct with NewCodec.
type Codec struct {
	name   string
	enc    encoding.Encoding
	isUTF8 bool
}

// NewCodec resolves a charset by its IANA name, e.g. "utf-8" or
// "latin1". An empty name means utf-8. Unknown names return an error
// so the caller can reject the configuration before any file is read.
func NewCodec(name string) (*Codec, error) {
	if name == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = strings.ToLower(name)
	}
	return &Codec{name: name, enc: enc, isUTF8: canonical == "utf-8"}, nil
}

// Name returns the charset name the codec was built with.
func (c *Codec) Name() string { return c.name }

// Decode converts raw bytes into a UTF-8 string. Byte sequences that
// are not valid in the configured charset yield a *DecodeError
// instead of replacement runes. Safe for concurrent use.
func (c *Codec) Decode(raw []byte) (string, error) {
	if c.isUTF8 {
		if !utf8.Valid(raw) {
			return "", &DecodeError{Encoding: c.name, Err: errInvalidBytes}
		}
		return string(raw), nil
	}
	out, err := c.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &DecodeError{Encoding: c.name, Err: err}
	}
	// x/text decoders substitute U+FFFD for undecodable input rather
	// than failing, so the substitution itself marks the failure.
	if strings.ContainsRune(string(out), utf8.RuneError) {
		return "", &DecodeError{Encoding: c.name, Err: errInvalidBytes}
	}
	return string(out), nil
}

// Encode converts a UTF-8 string into the configured charset. Runes
// the charset cannot represent yield an error.
func (c *Codec) Encode(s string) ([]byte, error) {
	if c.isUTF8 {
		return []byte(s), nil
	}
	out, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode as %s: %w", c.name, err)
	}
	return out, nil
}
