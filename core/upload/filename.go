package upload

import (
	"fmt"
	"strings"
)

// DefaultMaxExtensionLength bounds the characters after the dot.
const DefaultMaxExtensionLength = 16

// Extension returns the extension of filename including the leading dot.
// Only ASCII letters and digits are accepted after the dot; case is kept.
func Extension(filename string, maxLen int) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultMaxExtensionLength
	}

	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrMissingExtension, filename)
	}

	ext := filename[i:]
	body := ext[1:]
	if body == "" {
		return "", fmt.Errorf("%w: %q ends with a dot", ErrInvalidExtension, filename)
	}
	if len(body) > maxLen {
		return "", fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidExtension, ext, maxLen)
	}
	for i := 0; i < len(body); i++ {
		if !isAlnum(body[i]) {
			return "", fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}

	return ext, nil
}

// DeriveName builds the storage name for a client filename: id followed by
// the validated extension.
func DeriveName(filename, id string, maxLen int) (string, error) {
	ext, err := Extension(filename, maxLen)
	if err != nil {
		return "", err
	}
	return id + ext, nil
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
