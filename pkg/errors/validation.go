package errors

import (
	"strings"
	"unicode"
)

// ValidateDescription validates a natural-language network description
// before it is sent to the extraction service.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only descriptions
//   - No control characters other than whitespace
//   - Maximum length of 2000 characters
func ValidateDescription(desc string) error {
	if strings.TrimSpace(desc) == "" {
		return New(ErrCodeInvalidInput, "description cannot be empty")
	}

	if len(desc) > 2000 {
		return New(ErrCodeInvalidInput, "description too long (max 2000 characters)")
	}

	for _, r := range desc {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "description contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates an output file path for the compiled network.
// It rejects paths that could clobber unrelated files via traversal tricks.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
