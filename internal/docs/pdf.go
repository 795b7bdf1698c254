// Package docs turns uploaded temple circulars and reports (PDF files or
// links) into short summaries.
package docs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var extraneousWhitespace = regexp.MustCompile(`[ \t]+`)

// ErrNoText is returned when a PDF has no extractable text layer.
var ErrNoText = errors.New("docs: no text in document")

// ExtractText returns the plain text of the PDF at path.
func ExtractText(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}
	var builder strings.Builder
	if _, err := io.Copy(&builder, content); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}

	text := strings.TrimSpace(extraneousWhitespace.ReplaceAllString(builder.String(), " "))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// Load resolves source to text. http(s) links are downloaded through the
// local cache first; anything else is read as a file path.
func Load(ctx context.Context, source string) (string, error) {
	source = strings.TrimSpace(source)
	if !isURL(source) {
		return ExtractText(source)
	}
	cache, err := NewCache("", nil)
	if err != nil {
		return "", err
	}
	path, err := cache.Fetch(ctx, source)
	if err != nil {
		return "", err
	}
	return ExtractText(path)
}

func isURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
