package main

import (
	"log/slog"

	"github.com/damonto/carrier-id/internal/app"
	"github.com/damonto/carrier-id/internal/app/handler"
	"github.com/damonto/carrier-id/internal/pkg/config"
	"github.com/mymmrac/telego"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Answer /carrier requests on Telegram",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.C.IsBotValid(); err != nil {
			return err
		}
		ctx := cmd.Context()
		bot, err := telego.NewBot(config.C.BotToken, telego.WithDefaultLogger(config.C.Verbose, true))
		if err != nil {
			return err
		}
		var read handler.SnapshotReader
		if config.C.Source == config.SourceModem {
			read = readSnapshot
		}
		application, err := app.NewApp(ctx, bot, newResolver, read)
		if err != nil {
			return err
		}
		go func() {
			if err := application.Start(); err != nil {
				slog.Error("failed to start bot", "error", err)
			}
		}()
		slog.Info("bot started", "source", config.C.Source)
		<-ctx.Done()
		slog.Info("shutting down")
		application.Shutdown()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(botCmd)

	botCmd.Flags().String("token", "", "Telegram bot token")
	botCmd.Flags().StringSlice("admin-id", nil, "Telegram user ids allowed to use the bot")
	for _, name := range []string{"token", "admin-id"} {
		if err := viper.BindPFlag(name, botCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}
