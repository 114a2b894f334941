package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/glossa/internal/cli"
	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/dictionary/freedictionary"
	"github.com/at-ishikawa/glossa/internal/lookup"
)

// entryCapture keeps the full entry of the last lookup so it can be printed.
type entryCapture struct {
	client *freedictionary.Client
	entry  freedictionary.Entry
}

func (c *entryCapture) Lookup(ctx context.Context, lang, word string) dictionary.Result {
	entry, result := c.client.LookupEntry(ctx, lang, word)
	c.entry = entry
	return result
}

func newLookupCommand() *cobra.Command {
	var lang string
	var asJSON bool

	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a word and record its meaning in history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			recorder, backend, err := openRecorder(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = backend.Close()
			}()

			dict := &entryCapture{
				client: freedictionary.NewClient(cfg.Dictionary.Endpoint, cfg.Dictionary.Timeout()),
			}
			service := lookup.NewService(dict, recorder)
			result := service.Lookup(ctx, lookup.Request{Word: word, Lang: lang})
			service.Wait()

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				if err := encoder.Encode(lookup.ReplyFrom(result)); err != nil {
					return fmt.Errorf("encoder.Encode > %w", err)
				}
				return nil
			}
			return cli.NewPrinter(cmd.OutOrStdout()).PrintLookup(word, dict.entry, result)
		},
	}
	command.Flags().StringVar(&lang, "lang", "en", "language code of the word")
	command.Flags().BoolVar(&asJSON, "json", false, "print the reply message as JSON")
	return command
}
