package main

import (
	"errors"
	"os"

	"github.com/drakos74/silhouette/infra/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

const key = "silhouette"

var (
	cfgDir   string
	logLevel string
	dataPath string
	headers  bool
	settings = defaults()
)

type fileSettings struct {
	Name     string  `json:"name"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	LogLevel string  `json:"log_level"`
}

func defaults() fileSettings {
	return fileSettings{
		Width:    6.4,
		Height:   4.8,
		LogLevel: zerolog.InfoLevel.String(),
	}
}

func (s fileSettings) width() vg.Length {
	return vg.Length(s.Width) * vg.Inch
}

func (s fileSettings) height() vg.Length {
	return vg.Length(s.Height) * vg.Inch
}

var rootCmd = &cobra.Command{
	Use:   "silhouette",
	Short: "Inspect the silhouette of a clustering result",
	Long: `Computes per sample and per cluster silhouette scores for a labelled data set
and renders the silhouette plot.

The data set is a csv file with the feature values of one sample per line,
followed by its cluster label in the last column.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		if err := config.Load(cfgDir, key, &settings); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			log.Warn().Err(err).Str("dir", cfgDir).Msg("using default config")
		}

		level := settings.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			return err
		}
		zerolog.SetGlobalLevel(lvl)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", config.Path, "directory of the config files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", zerolog.InfoLevel.String(), "log level")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "labelled csv data set")
	rootCmd.PersistentFlags().BoolVar(&headers, "headers", false, "the data set starts with a header line")
	_ = rootCmd.MarkPersistentFlagRequired("data")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(plotCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
