// https://dictionaryapi.dev
package freedictionary

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/glossa/internal/dictionary"
)

// NoDefinitionsTitle is the title the API uses when it has no entry for a word.
const NoDefinitionsTitle = "No Definitions Found"

type Entry struct {
	Word       string              `json:"word"`
	Phonetic   string              `json:"phonetic,omitempty"`
	Phonetics  []Phonetic          `json:"phonetics"`
	Origin     string              `json:"origin,omitempty"`
	Meanings   []Meaning           `json:"meanings"`
	License    *dictionary.License `json:"license,omitempty"`
	SourceURLs []string            `json:"sourceUrls,omitempty"`

	// Set on the "not found" envelope instead of the fields above.
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Resolution string `json:"resolution,omitempty"`
}

type Phonetic struct {
	Text      string              `json:"text,omitempty"`
	Audio     string              `json:"audio,omitempty"`
	SourceURL string              `json:"sourceUrl,omitempty"`
	License   *dictionary.License `json:"license,omitempty"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
	Antonyms     []string     `json:"antonyms"`
}

type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// HasNoDefinitions reports whether the entry is the API's "no definitions" marker.
func (e Entry) HasNoDefinitions() bool {
	return e.Title == NoDefinitionsTitle
}

// ToContent reduces an entry to the first audio clip and the first definition.
func (e Entry) ToContent() (dictionary.Content, error) {
	if len(e.Meanings) == 0 || len(e.Meanings[0].Definitions) == 0 {
		return dictionary.Content{}, fmt.Errorf("word %q: %w", e.Word, dictionary.ErrNoMeaning)
	}

	content := dictionary.Content{
		Word:       e.Word,
		Phonetic:   e.Phonetic,
		Meaning:    e.Meanings[0].Definitions[0].Definition,
		License:    e.License,
		SourceURLs: e.SourceURLs,
	}
	if len(e.Phonetics) > 0 {
		content.AudioSrc = e.Phonetics[0].Audio
	}
	return content, nil
}

// Summary renders every definition of the entry, one block per part of speech.
func (e Entry) Summary() string {
	meanings := make([]string, 0, len(e.Meanings))
	for _, meaning := range e.Meanings {
		lines := make([]string, 0, len(meaning.Definitions)+1)
		for i, definition := range meaning.Definitions {
			lines = append(lines, fmt.Sprintf("%d. [%s]: %s", i+1, meaning.PartOfSpeech, definition.Definition))
			if definition.Example != "" {
				lines = append(lines, fmt.Sprintf("   Example: %s", definition.Example))
			}
		}
		if len(meaning.Synonyms) > 0 {
			lines = append(lines, fmt.Sprintf("Synonyms: %s", strings.Join(meaning.Synonyms, ", ")))
		}
		if len(meaning.Antonyms) > 0 {
			lines = append(lines, fmt.Sprintf("Antonyms: %s", strings.Join(meaning.Antonyms, ", ")))
		}
		meanings = append(meanings, strings.Join(lines, "\n"))
	}

	builder := strings.Builder{}
	if e.Phonetic != "" {
		builder.WriteString(fmt.Sprintf("%s: %s\n", e.Word, e.Phonetic))
	} else {
		builder.WriteString(e.Word + "\n")
	}
	builder.WriteString(strings.Join(meanings, "\n"+strings.Repeat("-", 50)+"\n"))

	return builder.String()
}
