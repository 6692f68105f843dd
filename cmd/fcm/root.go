package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:          "fcm",
		Short:        "Fuzzy C-Means clustering of comma-separated point files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path := v.GetString("config"); path != "" {
				v.SetConfigFile(path)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config %s: %w", path, err)
				}
			}
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "YAML config file supplying flag values")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	mustBind(v.BindPFlag("config", root.PersistentFlags().Lookup("config")))
	mustBind(v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level")))

	root.AddCommand(newClusterCmd(v))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return root
}

// mustBind panics on a flag binding error; the flags are fixed at build time.
func mustBind(err error) {
	if err != nil {
		panic(fmt.Sprintf("binding flags: %v", err))
	}
}

// newLogger writes human-readable logs to the command's stderr.
func newLogger(cmd *cobra.Command, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	out := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
