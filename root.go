package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/damonto/carrier-id/internal/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const DefaultEndpoint = "https://fmobileapi.groupe-minaste.org"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "carrier-id",
	Short: "Identify SIM carriers and detect national roaming",
	Long: `carrier-id resolves the carrier identity of each SIM slot from the carrier
config files or from ModemManager, then enriches it with the remote carrier
profile to decide whether the device is on a national roaming partner.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loadConfig()
		setupLogging()
		return config.C.IsValid()
	},
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.carrier-id.yaml)")
	flags.BoolP("verbose", "v", false, "enable verbose output")
	flags.String("endpoint", DefaultEndpoint, "carrier profile endpoint")
	flags.String("preferences-dir", "/var/mobile/Library/Preferences", "directory holding the carrier config files")
	flags.String("platform-version", "", "platform version used to derive capabilities (default: current platform)")
	flags.Bool("tablet", false, "apply tablet profile overrides")
	flags.String("source", config.SourceFiles, "where to read SIM state from: files or modem")
	flags.Bool("euicc", false, "read missing EIDs from the eUICC over QMI")
	flags.Duration("timeout", 10*time.Second, "carrier profile request timeout")
	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".carrier-id")
	}

	viper.SetEnvPrefix("carrier_id")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func loadConfig() {
	config.C.BotToken = viper.GetString("token")
	config.C.AdminId = config.ChatId(viper.GetStringSlice("admin-id"))
	config.C.Endpoint = viper.GetString("endpoint")
	config.C.PreferencesDir = viper.GetString("preferences-dir")
	config.C.PlatformVersion = viper.GetString("platform-version")
	config.C.Tablet = viper.GetBool("tablet")
	config.C.Source = viper.GetString("source")
	config.C.EUICC = viper.GetBool("euicc")
	config.C.Timeout = viper.GetDuration("timeout")
	config.C.Verbose = viper.GetBool("verbose")
}

func setupLogging() {
	level := slog.LevelInfo
	if config.C.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
