package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/glossa/internal/cli"
	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/scrape"
)

func newScrapeCommand() *cobra.Command {
	var lang string
	var save bool

	command := &cobra.Command{
		Use:   "scrape <url|file>",
		Short: "Extract a definition from a dictionary result page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var doc *goquery.Document
			if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
				fetcher := scrape.NewFetcher(cfg.Dictionary.Timeout())
				defer func() {
					_ = fetcher.Close()
				}()
				doc, err = fetcher.Fetch(ctx, source)
			} else {
				doc, err = scrape.ParseFile(source)
			}
			if err != nil {
				return err
			}

			extraction := scrape.NewExtractor(cfg.Speech.SynthesizeURL).ExtractMeaning(doc, scrape.Context{Lang: lang})
			if err := cli.NewPrinter(cmd.OutOrStdout()).PrintExtraction(extraction); err != nil {
				return err
			}
			if !save || extraction == nil {
				return nil
			}

			recorder, backend, err := openRecorder(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = backend.Close()
			}()
			recorded, err := recorder.Record(ctx, dictionary.Content{
				Word:     extraction.Word,
				Meaning:  extraction.Meaning,
				AudioSrc: extraction.AudioSrc,
			})
			if err != nil {
				return fmt.Errorf("recorder.Record > %w", err)
			}
			slog.Default().Debug("scraped definition", "word", extraction.Word, "recorded", recorded)
			return nil
		},
	}
	command.Flags().StringVar(&lang, "lang", "en", "language code used for synthesized audio")
	command.Flags().BoolVar(&save, "save", false, "record the extracted definition in history")
	return command
}
