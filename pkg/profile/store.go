// Package profile maintains language profile files, a json map of
// script -> language code -> pipe-separated trigrams.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// Store is a profile file loaded in memory
type Store struct {
	path string
	data map[string]map[string]string
}

// Load reads profile file at path. Missing file gives an empty store, saved on the first Save call.
func Load(path string) (*Store, error) {
	s := &Store{path: path, data: map[string]map[string]string{}}

	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.data); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if s.data == nil { // file with "null"
		s.data = map[string]map[string]string{}
	}
	return s, nil
}

// Set replaces trigrams of lang in script, other entries are kept
func (s *Store) Set(script, lang, trigrams string) error {
	if script == "" {
		return errors.New("empty script")
	}
	if lang == "" {
		return errors.New("empty language code")
	}
	if _, ok := s.data[script]; !ok {
		s.data[script] = map[string]string{}
	}
	s.data[script][lang] = trigrams
	return nil
}

// Get returns trigrams of lang in script
func (s *Store) Get(script, lang string) (string, bool) {
	res, ok := s.data[script][lang]
	return res, ok
}

// Langs returns sorted language codes of script
func (s *Store) Langs(script string) []string {
	res := make([]string, 0, len(s.data[script]))
	for lang := range s.data[script] {
		res = append(res, lang)
	}
	sort.Strings(res)
	return res
}

// Save writes the store back to its file, keys sorted
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, 0o644); err != nil { //nolint:gosec // profile is a public data file
		return fmt.Errorf("write profile %s: %w", s.path, err)
	}
	return nil
}
