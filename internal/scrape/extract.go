// Package scrape extracts a definition from a rendered dictionary web page.
package scrape

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// DefaultSpeechURI is the text-to-speech endpoint used when a page has an
// audio player but no audio source.
const DefaultSpeechURI = "https://www.google.com/speech-api/v1/synthesize"

const (
	headwordSelector    = "[data-dobid='hdw']"
	definitionSelector  = "div[data-dobid='dfn']"
	audioSelector       = "audio[jsname='QInZvb']"
	audioSourceSelector = "audio[jsname='QInZvb'] source"

	syllableSeparator = "·"
)

// Context carries the request details the page itself does not have.
type Context struct {
	Lang string
}

// Extraction is a definition read from a page.
type Extraction struct {
	Word     string `json:"word"`
	Meaning  string `json:"meaning"`
	AudioSrc string `json:"audioSrc,omitempty"`
}

type Extractor struct {
	speechURI string
}

func NewExtractor(speechURI string) *Extractor {
	return &Extractor{speechURI: speechURI}
}

// ExtractMeaning returns nil when the document has no headword.
func (e *Extractor) ExtractMeaning(doc *goquery.Document, ctx Context) *Extraction {
	headword := doc.Find(headwordSelector).First()
	if headword.Length() == 0 {
		return nil
	}
	word := headword.Text()

	return &Extraction{
		Word:     word,
		Meaning:  capitalize(extractDefinition(doc)),
		AudioSrc: e.audioSrc(doc, word, ctx),
	}
}

func extractDefinition(doc *goquery.Document) string {
	definition := doc.Find(definitionSelector).First()
	if definition.Length() == 0 {
		return ""
	}

	var meaning strings.Builder
	definition.Find("span").Each(func(_ int, span *goquery.Selection) {
		// Spans with a superscript are footnote markers.
		if span.Find("sup").Length() > 0 {
			return
		}
		meaning.WriteString(span.Text())
	})
	return meaning.String()
}

func (e *Extractor) audioSrc(doc *goquery.Document, word string, ctx Context) string {
	src, _ := doc.Find(audioSourceSelector).First().Attr("src")
	if src != "" {
		if !strings.Contains(src, "http") {
			src = strings.Replace(src, "//", "https://", 1)
		}
		return src
	}
	if doc.Find(audioSelector).Length() == 0 {
		return ""
	}
	return e.SpeechURL(word, ctx.Lang)
}

// SpeechURL builds a text-to-speech URL reading word in lang.
func (e *Extractor) SpeechURL(word, lang string) string {
	text := strings.ReplaceAll(word, syllableSeparator, "")
	return e.speechURI + "?" + encodeOrdered([][2]string{
		{"text", text},
		{"enc", "mpeg"},
		{"lang", lang},
		{"speed", "0.4"},
		{"client", "lr-language-tts"},
		{"use_google_only_voices", "1"},
	})
}

// encodeOrdered form-encodes params keeping their order; url.Values sorts keys.
func encodeOrdered(params [][2]string) string {
	pairs := make([]string, 0, len(params))
	for _, param := range params {
		pairs = append(pairs, url.QueryEscape(param[0])+"="+url.QueryEscape(param[1]))
	}
	return strings.Join(pairs, "&")
}

// capitalize upper-cases the first character and leaves an empty string as is.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}
