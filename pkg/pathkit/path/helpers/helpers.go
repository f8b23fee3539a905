package helpers

import (
	"errors"
	"runtime"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

var ErrUnrepresentable = errors.New("content cannot be represented in specified encoding")

const minBufferSize = 512

// GetOptimalBufferSize returns the optimal buffer size based on the file size and system
func GetOptimalBufferSize(fileSize int64) int {
	// Base buffer size (4KB)
	baseSize := 4 * 1024

	if fileSize < minBufferSize {
		return minBufferSize
	}

	// For small files, use file size as buffer size
	if fileSize < int64(baseSize) {
		return int(fileSize)
	}

	// Scale buffer size based on available CPU cores
	scaledSize := baseSize * runtime.GOMAXPROCS(0)

	// Cap maximum buffer size at 1MB
	maxSize := 1 * 1024 * 1024
	if scaledSize > maxSize {
		return maxSize
	}

	return scaledSize
}

// NormalizeEncoding maps an empty encoding name to utf-8.
func NormalizeEncoding(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "utf-8"
	}
	return name
}

// ToSlash rewrites every occurrence of sep to a forward slash.
func ToSlash(p string, sep string) string {
	if sep == "/" || sep == "" {
		return p
	}
	return strings.ReplaceAll(p, sep, "/")
}

// LookupEncoding resolves an IANA encoding name, utf-8 when empty.
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(NormalizeEncoding(name))
	if err != nil {
		return nil, err
	}
	if enc == nil {
		// known to IANA but without a codec; pass bytes through
		enc = encoding.Nop
	}
	return enc, nil
}

// EncodeText encodes content and checks that it decodes back unchanged.
func EncodeText(enc encoding.Encoding, content string) ([]byte, error) {
	encoded, err := enc.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return nil, err
	}

	decoded, err := enc.NewDecoder().Bytes(encoded)
	if err != nil {
		return nil, errors.Join(ErrUnrepresentable, err)
	}
	if string(decoded) != content {
		return nil, ErrUnrepresentable
	}
	return encoded, nil
}
