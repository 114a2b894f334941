// Package cli renders lookup results and history for the terminal.
package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fatih/color"

	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/dictionary/freedictionary"
	"github.com/at-ishikawa/glossa/internal/history"
	"github.com/at-ishikawa/glossa/internal/scrape"
)

type Printer struct {
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
}

func NewPrinter(stdoutWriter io.Writer) *Printer {
	return &Printer{
		stdoutWriter: stdoutWriter,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

// PrintLookup shows the outcome of a lookup. entry is only read when the word was found.
func (p *Printer) PrintLookup(word string, entry freedictionary.Entry, result dictionary.Result) error {
	switch result.Status {
	case dictionary.StatusFound:
		return p.println(entry.Summary())
	case dictionary.StatusNoDefinitions, dictionary.StatusNotFound:
		return p.println(p.red.Sprintf("No definitions found for %s", p.bold.Sprint(word)))
	default:
		return p.println(p.red.Sprintf("Failed to look up %s: %v", p.bold.Sprint(word), result.Err))
	}
}

// PrintDefinitions lists saved definitions in word order.
func (p *Printer) PrintDefinitions(definitions map[string]string) error {
	if len(definitions) == 0 {
		return p.println("No definitions saved yet")
	}
	for _, word := range slices.Sorted(maps.Keys(definitions)) {
		if err := p.println(fmt.Sprintf("%s: %s", p.bold.Sprint(word), p.italic.Sprint(definitions[word]))); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) PrintSetting(setting history.Setting) error {
	if setting.Enabled {
		return p.println("History is " + p.green.Sprint("enabled"))
	}
	return p.println("History is " + p.red.Sprint("disabled"))
}

// PrintExtraction shows what was read from a dictionary page, or that nothing was.
func (p *Printer) PrintExtraction(extraction *scrape.Extraction) error {
	if extraction == nil {
		return p.println(p.red.Sprint("No headword found on the page"))
	}
	if err := p.println(p.bold.Sprint(extraction.Word)); err != nil {
		return err
	}
	if extraction.Meaning != "" {
		if err := p.println(p.italic.Sprint(extraction.Meaning)); err != nil {
			return err
		}
	}
	if extraction.AudioSrc != "" {
		if err := p.println("Audio: " + extraction.AudioSrc); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) println(s string) error {
	if _, err := fmt.Fprintln(p.stdoutWriter, s); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}
