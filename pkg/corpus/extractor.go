package corpus

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/microcosm-cc/bluemonday"
)

// StripHTML removes all markup from page and returns its text with entities unescaped.
// Contents of script and style elements are dropped.
func StripHTML(page string) string {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return html.UnescapeString(p.Sanitize(page))
}

// ExtractArticle returns the main text of an html page, without navigation, comments and boilerplate
func ExtractArticle(r io.Reader) (string, error) {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
	}

	result, err := trafilatura.Extract(r, opts)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}
	if result == nil {
		return "", errors.New("no content extracted")
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return "", errors.New("no text content extracted")
	}
	return text, nil
}
