package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/glossa/internal/cli"
	"github.com/at-ishikawa/glossa/internal/history"
)

func newHistoryCommand() *cobra.Command {
	historyCommand := &cobra.Command{
		Use:   "history",
		Short: "Manage looked-up words and the history setting",
	}

	historyCommand.AddCommand(
		newHistorySubcommand("list", "List saved definitions", func(ctx context.Context, recorder *history.Recorder, printer *cli.Printer) error {
			definitions, err := recorder.Definitions(ctx)
			if err != nil {
				return err
			}
			return printer.PrintDefinitions(definitions)
		}),
		newHistorySubcommand("status", "Show whether lookups are recorded", printSetting),
		newHistorySubcommand("enable", "Record looked-up words", func(ctx context.Context, recorder *history.Recorder, printer *cli.Printer) error {
			if err := recorder.SetEnabled(ctx, true); err != nil {
				return err
			}
			return printSetting(ctx, recorder, printer)
		}),
		newHistorySubcommand("disable", "Stop recording looked-up words", func(ctx context.Context, recorder *history.Recorder, printer *cli.Printer) error {
			if err := recorder.SetEnabled(ctx, false); err != nil {
				return err
			}
			return printSetting(ctx, recorder, printer)
		}),
	)
	return historyCommand
}

func printSetting(ctx context.Context, recorder *history.Recorder, printer *cli.Printer) error {
	setting, err := recorder.Setting(ctx)
	if err != nil {
		return err
	}
	return printer.PrintSetting(setting)
}

func newHistorySubcommand(
	use, short string,
	run func(ctx context.Context, recorder *history.Recorder, printer *cli.Printer) error,
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			return run(ctx, recorder, cli.NewPrinter(cmd.OutOrStdout()))
		},
	}
}
