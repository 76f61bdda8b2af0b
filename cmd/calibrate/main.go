// Command calibrate refits the bot utility weights from every draft result
// stored in the database and writes them to a yaml file the server loads via
// the WEIGHTS_FILE environment variable.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/papapp1293/FantasyFootballDraftHelper/controller"
	"github.com/papapp1293/FantasyFootballDraftHelper/db"
	"github.com/papapp1293/FantasyFootballDraftHelper/engine"
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

var (
	outPath string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Fit bot utility weights from stored draft results",
	Long: `Replays every completed draft stored in the database, rebuilds the pick
observations each one produced, and fits the utility weights that best explain
the choices made. The fitted weights are written as yaml for the server to
load on startup.`,
	RunE: runCalibrate,
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "weights.yaml", "file to write the fitted weights to")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall timeout for the calibration run")
}

func runCalibrate(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	clock := clock.New()
	database, err := db.New(ctx, connString, clock)
	if err != nil {
		return fmt.Errorf("cannot connect to DB: %w", err)
	}
	defer database.Close()

	ctrl, err := controller.New(clock, database, engine.DefaultConfig(), model.DefaultUtilityWeights())
	if err != nil {
		return fmt.Errorf("error creating controller: %w", err)
	}

	weights, err := ctrl.CalibrateWeights(ctx)
	if err != nil {
		return err
	}

	if err := engine.SaveWeights(outPath, weights); err != nil {
		return err
	}

	fmt.Printf("wrote %s: value=%.4f scarcity=%.4f need=%.4f availability_risk=%.4f\n",
		outPath, weights.Value, weights.Scarcity, weights.Need, weights.AvailabilityRisk)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
