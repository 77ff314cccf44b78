// Package corpus loads the text a trigram profile is built from.
package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidEncoding is returned for corpus files which are not valid UTF-8
var ErrInvalidEncoding = errors.New("corpus is not valid utf-8")

// Format of the corpus file
type Format string

// supported corpus formats
const (
	FormatText    Format = "text"
	FormatHTML    Format = "html"
	FormatArticle Format = "article"
)

// Options define how corpus file is read
type Options struct {
	Format Format // empty means FormatText
	NFC    bool   // compose text to unicode NFC
}

// Load reads the whole corpus file and returns its text.
// Empty file is a valid, empty corpus.
func Load(path string, opts Options) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return "", fmt.Errorf("read corpus %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read corpus %s: %w", path, ErrInvalidEncoding)
	}

	text, err := decode(data, opts.Format)
	if err != nil {
		return "", fmt.Errorf("decode corpus %s: %w", path, err)
	}

	if opts.NFC {
		text = norm.NFC.String(text)
	}
	return text, nil
}

// Chars returns corpus size in characters
func Chars(text string) int {
	return utf8.RuneCountInString(text)
}

func decode(data []byte, format Format) (string, error) {
	switch format {
	case "", FormatText:
		return string(data), nil
	case FormatHTML:
		return StripHTML(string(data)), nil
	case FormatArticle:
		if len(bytes.TrimSpace(data)) == 0 {
			return "", nil
		}
		return ExtractArticle(bytes.NewReader(data))
	default:
		return "", fmt.Errorf("unsupported corpus format %q", format)
	}
}
