package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/banachtech/patent-valuation/export"
	"github.com/banachtech/patent-valuation/sensitivity"
	"github.com/banachtech/patent-valuation/valuation"
	"github.com/spf13/cobra"
)

type valueFlags struct {
	input    valuation.Input
	export   string
	asJSON   bool
	workers  int
	progress bool
}

var valueOpts valueFlags

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Value a patent once and print the lattices and sensitivities",
	Example: `  patent-valuation value --V 1000 --K 800 --T 5 --sigma 0.3 --r 0.04 --delta 0.05
  patent-valuation value --V 1000 --K 800 --T 5 --sigma 0.3 --r 0.04 --delta-mode manual --delta 0.05,0.06,0.07,0.08,0.09 --export tree.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := loadConfig()
		if err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}

		workers := valueOpts.workers
		if workers == 0 {
			workers = config.SensitivityWorkers
		}
		opts := []sensitivity.Option{sensitivity.WithWorkers(workers)}
		if valueOpts.progress {
			bar := progressBar(os.Stderr, sensitivity.Evaluations())
			defer bar.Finish()
			opts = append(opts, sensitivity.WithObserver(func() { _ = bar.Add(1) }))
		}

		service := valuation.NewService(sensitivity.NewAnalyzer(opts...), logger)
		v, err := service.Compute(cmd.Context(), valueOpts.input)
		if err != nil {
			return err
		}

		if valueOpts.export != "" {
			if err := writeExport(valueOpts.export, v); err != nil {
				return err
			}
			logger.WithField("file", valueOpts.export).Info("workbook written")
		}

		out := cmd.OutOrStdout()
		if valueOpts.asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(v.Output())
		}
		render(out, v)
		return nil
	},
}

func writeExport(path string, v *valuation.Valuation) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Write(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	flags := valueCmd.Flags()
	flags.Float64Var(&valueOpts.input.AssetValue, "V", 0, "Asset value in thousands.")
	flags.Float64Var(&valueOpts.input.ExerciseCost, "K", 0, "Exercise cost in thousands.")
	flags.Float64Var(&valueOpts.input.Maturity, "T", 0, "Time to maturity in years.")
	flags.Float64Var(&valueOpts.input.Volatility, "sigma", 0, "Annualised volatility.")
	flags.Float64Var(&valueOpts.input.RiskFree, "r", 0, "Continuously compounded risk-free rate.")
	flags.StringVar(&valueOpts.input.DeltaMode, "delta-mode", "auto", "Cost of delay mode: auto or manual.")
	flags.StringVar(&valueOpts.input.Delta, "delta", "0", "Cost of delay at t=0 (auto) or a comma-separated list, one per period (manual).")
	flags.StringVar(&valueOpts.export, "export", "", "Write the lattices to this xlsx file.")
	flags.BoolVar(&valueOpts.asJSON, "json", false, "Print the full result as JSON.")
	flags.IntVar(&valueOpts.workers, "workers", 0, "Concurrent sensitivity evaluations (0 uses SENSITIVITY_WORKERS).")
	flags.BoolVar(&valueOpts.progress, "progress", true, "Show sensitivity progress on stderr.")

	valueCmd.MarkFlagRequired("V")
	valueCmd.MarkFlagRequired("K")
	valueCmd.MarkFlagRequired("T")
}
