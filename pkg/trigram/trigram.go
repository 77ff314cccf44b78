// Package trigram builds character trigram profiles from raw text.
// Words are padded with a single space on each side, so " ab" and "ab "
// capture word starts and endings.
package trigram

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultTopN is the number of trigrams kept in a language profile
const DefaultTopN = 300

// Separator joins trigrams in a profile string
const Separator = "|"

// Extract returns the topN most frequent trigrams of text joined with Separator.
// Ties keep the order in which trigrams were first seen.
func Extract(text string, topN int) string {
	return Join(Count(text).Top(topN))
}

// Count tallies trigrams of every word in text
func Count(text string) *Table {
	tbl := NewTable()
	for _, token := range Tokens(text) {
		if token == "" {
			continue
		}
		for _, tri := range Windows(token) {
			tbl.Add(tri)
		}
	}
	return tbl
}

// Normalize lowercases text and reduces it to words separated by a single space.
// Punctuation, symbols and runs of decimal digits act as word separators.
func Normalize(text string) string {
	// caser keeps state (final sigma), make a fresh one per call
	text = cases.Lower(language.Und).String(text)

	var sb strings.Builder
	sb.Grow(len(text))
	sep := false
	for _, r := range text {
		if !isWordRune(r) || unicode.IsDigit(r) {
			sep = true
			continue
		}
		if sep && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sep = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// Tokens returns normalized words of text
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}

// Windows pads token with spaces and returns every 3-rune window containing a letter.
// Windows of a token are returned in order and may repeat.
func Windows(token string) []string {
	padded := []rune(" " + token + " ")
	if len(padded) < 3 {
		return nil
	}
	res := make([]string, 0, len(padded)-2)
	for i := 0; i+3 <= len(padded); i++ {
		w := padded[i : i+3]
		if !hasLetter(w) {
			continue
		}
		res = append(res, string(w))
	}
	return res
}

// Join concatenates trigrams of entries with Separator
func Join(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Trigram
	}
	return strings.Join(parts, Separator)
}

// Split breaks a profile string back into trigrams. Empty string gives no trigrams.
func Split(profile string) []string {
	if profile == "" {
		return []string{}
	}
	return strings.Split(profile, Separator)
}

// isWordRune matches letters, numbers and underscore
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func hasLetter(rs []rune) bool {
	for _, r := range rs {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
