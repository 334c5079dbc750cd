package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxNameRunes bounds couple names so they fit on the share card.
const maxNameRunes = 64

// ValidateName validates one of the couple's display names.
// The name is checked after trimming surrounding whitespace:
//   - No empty names
//   - No control characters
//   - Maximum length of 64 characters
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return New(ErrCodeMissingName, "please enter both names")
	}

	if utf8.RuneCountInString(name) > maxNameRunes {
		return New(ErrCodeInvalidInput, "name too long (max %d characters)", maxNameRunes)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name contains invalid control characters")
		}
	}

	return nil
}

// ValidateImageName validates the display name of an uploaded image.
// It must be a simple basename without path components.
func ValidateImageName(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "image name cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "image name cannot contain path separators")
	}

	for _, r := range filename {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "image name contains invalid characters")
		}
	}

	if filename == "." || filename == ".." {
		return New(ErrCodeInvalidPath, "image name cannot be a directory reference")
	}

	return nil
}
