package cmd

import (
	"os"

	"github.com/banachtech/patent-valuation/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "patent-valuation",
	Short: "Real-option valuation of patents on a binomial lattice",
	Long: `patent-valuation values the option to commercialise a patent with a
binomial lattice that charges a time-varying cost of delay, and reports how
the value responds to each input.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing app.env.")
	rootCmd.AddCommand(serveCmd, valueCmd)
}

func loadConfig() (util.Config, *logrus.Logger, error) {
	config, err := util.LoadConfig(configPath)
	if err != nil {
		return config, nil, err
	}
	return config, util.NewLogger(config), nil
}
