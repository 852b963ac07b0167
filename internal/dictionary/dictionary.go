// Package dictionary provides the English word list and the geographical terms
// used by the language filter
package dictionary

import (
	"bufio"
	_ "embed" // required for go:embed
	"os"
	"strings"
	"sync"
)

//go:embed english.txt
var englishRaw string

//go:embed geo.txt
var geoRaw string

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Dictionary is a read-only set of known English words plus the list of geographical terms
type Dictionary struct {
	words map[string]struct{}
	geo   []string
}

// New creates a dictionary from the embedded word lists and optional extra words
func New(extra ...string) *Dictionary {
	d := &Dictionary{
		words: make(map[string]struct{}, 4096),
		geo:   parseTerms(geoRaw),
	}
	for _, word := range parseLines(englishRaw) {
		d.words[word] = struct{}{}
	}
	for _, word := range extra {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		d.words[word] = struct{}{}
	}

	return d
}

// Load creates a dictionary from the embedded word lists and the words from the file (one per line)
func Load(path string) (*Dictionary, error) {
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	extra := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		extra = append(extra, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return New(extra...), nil
}

// Default returns the shared dictionary built from the embedded lists
func Default() *Dictionary {
	defaultOnce.Do(func() {
		defaultDict = New()
	})
	return defaultDict
}

// Contains checks if the exact (case-sensitive) word is known
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Len returns the number of known words
func (d *Dictionary) Len() int {
	return len(d.words)
}

// GeoTerms returns geographical terms that should be removed before analysis
func (d *Dictionary) GeoTerms() []string {
	return d.geo
}

func parseLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result = append(result, line)
	}
	return result
}

// parseTerms returns the first field of each line
func parseTerms(raw string) []string {
	lines := parseLines(raw)
	terms := make([]string, 0, len(lines))
	for _, line := range lines {
		term, _, _ := strings.Cut(line, ",")
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}
