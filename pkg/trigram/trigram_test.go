package trigram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_SingleWord(t *testing.T) {
	res := Extract("кыргыз", DefaultTopN)
	assert.Equal(t, " кы|кыр|ырг|ргы|гыз|ыз ", res)

	tbl := Count("кыргыз")
	assert.Equal(t, 6, tbl.Len())
	for _, tri := range []string{" кы", "кыр", "ырг", "ргы", "гыз", "ыз "} {
		assert.Equal(t, 1, tbl.Get(tri), "trigram %q", tri)
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		topN int
		want string
	}{
		{name: "empty corpus", text: "", topN: 300, want: ""},
		{name: "only punctuation", text: "!!!", topN: 300, want: ""},
		{name: "only digits and spaces", text: " 123  456\n", topN: 300, want: ""},
		{name: "underscores without letters", text: "__ ___", topN: 300, want: ""},
		{name: "single letter", text: "a", topN: 300, want: " a "},
		{name: "top one, ties by first seen", text: "ba ab", topN: 1, want: " ba"},
		{name: "most frequent first", text: "xy ab ab", topN: 2, want: " ab|ab "},
		{name: "fewer trigrams than top", text: "yes", topN: 300, want: " ye|yes|es "},
		{name: "zero top", text: "yes", topN: 0, want: ""},
		{name: "negative top", text: "yes", topN: -5, want: ""},
		{name: "underscore joins words", text: "a_b", topN: 300, want: " a_|a_b|_b "},
		{name: "digits split words", text: "a1b", topN: 300, want: " a |" + " b "},
		{name: "punctuation dropped", text: "Give - IT...", topN: 300, want: " gi|giv|ive|ve | it|it "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text, tt.topN))
		})
	}
}

func TestExtract_Properties(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		text := "Кыргыз тили — түрк тилдеринин бири. Кыргыз Республикасынын мамлекеттик тили."
		assert.Equal(t, Extract(text, DefaultTopN), Extract(text, DefaultTopN))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, Extract("ABC", DefaultTopN), Extract("abc", DefaultTopN))
		assert.Equal(t, Extract("КЫРГЫЗ", DefaultTopN), Extract("кыргыз", DefaultTopN))
	})

	t.Run("punctuation and digits stripped", func(t *testing.T) {
		assert.ElementsMatch(t, Split(Extract("кыргыз", DefaultTopN)), Split(Extract("кыргыз, 2024!", DefaultTopN)))
	})

	t.Run("top truncation", func(t *testing.T) {
		res := Split(Extract("ааа ббб ааа", 1))
		require.Len(t, res, 1)
		assert.Equal(t, " аа", res[0])
	})

	t.Run("no more than top", func(t *testing.T) {
		text := strings.Repeat("алма өрүк жаңгак үзүм ", 10)
		assert.Len(t, Split(Extract(text, 5)), 5)
	})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Hello, World!  42 times", "hello world times"},
		{"  leading and trailing\t\n", "leading and trailing"},
		{"foo_bar", "foo_bar"},
		{"x2y", "x y"},
		{"Ысык-Көл", "ысык көл"},
		{"ΟΔΟΣ", "οδος"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"кыргыз", "тили"}, Tokens("Кыргыз, тили!"))
	assert.Empty(t, Tokens(""))
	assert.Empty(t, Tokens("... 2024 ..."))
}

func TestWindows(t *testing.T) {
	assert.Equal(t, []string{" a "}, Windows("a"))
	assert.Equal(t, []string{" ab", "ab "}, Windows("ab"))
	assert.Equal(t, []string{" аа", "ааа", "ааа", "аа "}, Windows("аааа"))
	assert.Empty(t, Windows("_"))
	assert.Empty(t, Windows("__"))
}

func TestJoinSplit(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, " ab|ab ", Join([]Entry{{Trigram: " ab", Count: 2}, {Trigram: "ab ", Count: 1}}))

	assert.Equal(t, []string{}, Split(""))
	assert.Equal(t, []string{" ab", "ab "}, Split(" ab|ab "))
}
