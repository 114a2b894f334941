package freedictionary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/glossa/internal/dictionary"
)

func TestEntry_UnmarshalJSON(t *testing.T) {
	body := `[{
		"word": "run",
		"phonetic": "/rʌn/",
		"phonetics": [{"text": "/rʌn/", "audio": "https://example.com/run.mp3"}],
		"meanings": [{
			"partOfSpeech": "verb",
			"definitions": [{"definition": "to move fast", "example": "run home", "synonyms": [], "antonyms": []}],
			"synonyms": ["sprint"],
			"antonyms": []
		}],
		"license": {"name": "CC BY-SA 3.0", "url": "https://creativecommons.org/licenses/by-sa/3.0"},
		"sourceUrls": ["https://en.wiktionary.org/wiki/run"]
	}]`

	var entries []Entry
	require.NoError(t, json.Unmarshal([]byte(body), &entries))
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, "run", got.Word)
	assert.Equal(t, "https://example.com/run.mp3", got.Phonetics[0].Audio)
	assert.Equal(t, "to move fast", got.Meanings[0].Definitions[0].Definition)
	assert.Equal(t, &dictionary.License{Name: "CC BY-SA 3.0", URL: "https://creativecommons.org/licenses/by-sa/3.0"}, got.License)
	assert.Equal(t, []string{"https://en.wiktionary.org/wiki/run"}, got.SourceURLs)
	assert.False(t, got.HasNoDefinitions())
}

func TestEntry_HasNoDefinitions(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{
			name:  "not found envelope",
			entry: Entry{Title: "No Definitions Found", Message: "Sorry pal"},
			want:  true,
		},
		{
			name:  "regular entry",
			entry: Entry{Word: "run"},
			want:  false,
		},
		{
			name:  "different title",
			entry: Entry{Title: "no definitions found"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.HasNoDefinitions())
		})
	}
}

func TestEntry_ToContent(t *testing.T) {
	license := &dictionary.License{Name: "CC BY-SA 3.0"}

	tests := []struct {
		name    string
		entry   Entry
		want    dictionary.Content
		wantErr error
	}{
		{
			name: "first phonetic audio and first definition",
			entry: Entry{
				Word:     "run",
				Phonetic: "/rʌn/",
				Phonetics: []Phonetic{
					{Audio: "a.mp3"},
					{Audio: "b.mp3"},
				},
				Meanings: []Meaning{
					{Definitions: []Definition{{Definition: "to move fast"}, {Definition: "to operate"}}},
					{Definitions: []Definition{{Definition: "an act of running"}}},
				},
				License:    license,
				SourceURLs: []string{"https://en.wiktionary.org/wiki/run"},
			},
			want: dictionary.Content{
				Word:       "run",
				Phonetic:   "/rʌn/",
				AudioSrc:   "a.mp3",
				Meaning:    "to move fast",
				License:    license,
				SourceURLs: []string{"https://en.wiktionary.org/wiki/run"},
			},
		},
		{
			name: "first phonetic without audio",
			entry: Entry{
				Word:      "set",
				Phonetics: []Phonetic{{Text: "/sɛt/"}, {Audio: "set.mp3"}},
				Meanings:  []Meaning{{Definitions: []Definition{{Definition: "to put"}}}},
			},
			want: dictionary.Content{
				Word:    "set",
				Meaning: "to put",
			},
		},
		{
			name: "no phonetics",
			entry: Entry{
				Word:     "go",
				Meanings: []Meaning{{Definitions: []Definition{{Definition: "to leave"}}}},
			},
			want: dictionary.Content{
				Word:    "go",
				Meaning: "to leave",
			},
		},
		{
			name:    "no meanings",
			entry:   Entry{Word: "empty"},
			wantErr: dictionary.ErrNoMeaning,
		},
		{
			name:    "meaning without definitions",
			entry:   Entry{Word: "hollow", Meanings: []Meaning{{PartOfSpeech: "noun"}}},
			wantErr: dictionary.ErrNoMeaning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.entry.ToContent()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntry_Summary(t *testing.T) {
	tests := []struct {
		name         string
		entry        Entry
		wantContains []string
	}{
		{
			name: "word with phonetic and examples",
			entry: Entry{
				Word:     "happy",
				Phonetic: "/ˈhæpi/",
				Meanings: []Meaning{
					{
						PartOfSpeech: "adjective",
						Definitions:  []Definition{{Definition: "feeling pleasure", Example: "a happy child"}},
						Synonyms:     []string{"joyful", "cheerful"},
					},
				},
			},
			wantContains: []string{
				"happy: /ˈhæpi/",
				"1. [adjective]: feeling pleasure",
				"Example: a happy child",
				"Synonyms: joyful, cheerful",
			},
		},
		{
			name: "word without phonetic",
			entry: Entry{
				Word: "test",
				Meanings: []Meaning{
					{PartOfSpeech: "noun", Definitions: []Definition{{Definition: "a trial"}}},
					{PartOfSpeech: "verb", Definitions: []Definition{{Definition: "to try"}}, Antonyms: []string{"ignore"}},
				},
			},
			wantContains: []string{
				"test\n",
				"[noun]: a trial",
				"[verb]: to try",
				"Antonyms: ignore",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.entry.Summary()
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}
