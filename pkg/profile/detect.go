package profile

import (
	"strings"

	"github.com/RadhiFadlillah/whatlanggo"
)

// Guess is the script and closest known language of a text
type Guess struct {
	Script     string  // script name as used for profile keys, i.e. "Cyrillic"
	Lang       string  // iso 639-3 code of the closest known language
	Confidence float64 // 0..1
}

// Detect guesses script and language of text. Zero Guess if nothing detected.
// Language is a hint only, a corpus of a new language is reported as its nearest known neighbour.
func Detect(text string) Guess {
	if strings.TrimSpace(text) == "" {
		return Guess{}
	}

	info := whatlanggo.Detect(text)
	if info.Script == nil {
		return Guess{}
	}

	return Guess{
		Script:     whatlanggo.Scripts[info.Script],
		Lang:       info.Lang.Iso6393(),
		Confidence: info.Confidence,
	}
}
